package models

import "gorm.io/datatypes"

const EnrollmentActive = "Active"

// Enrollment links one student to one course. The unique index on
// (user_id, course_id) is the authoritative guard against duplicates.
type Enrollment struct {
	Base
	UserID     uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID   uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course;index"`
	EnrollDate datatypes.Date `json:"enroll_date"`
	Status     string         `json:"status" gorm:"default:'Active'"`
	User       *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course     *Course        `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
