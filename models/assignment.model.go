package models

import (
	"time"

	"gorm.io/datatypes"
)

// Assignment belongs to a lesson. A nil MaxScore means the score is unbounded.
type Assignment struct {
	Base
	LessonID    uint            `json:"lesson_id" gorm:"index;not null"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	DueDate     *datatypes.Date `json:"due_date"`
	MaxScore    *int            `json:"max_score"`
}

// Submission is a student's answer to an assignment, at most one per
// (student_id, assignment_id).
type Submission struct {
	Base
	AssignmentID uint        `json:"assignment_id" gorm:"not null;uniqueIndex:idx_submission_student_assignment;index"`
	StudentID    uint        `json:"student_id" gorm:"not null;uniqueIndex:idx_submission_student_assignment"`
	Content      string      `json:"content" gorm:"type:text"`
	SubmittedAt  time.Time   `json:"submitted_at"`
	Score        *int        `json:"score"`
	Feedback     *string     `json:"feedback" gorm:"type:text"`
	Assignment   *Assignment `json:"assignment,omitempty" gorm:"foreignKey:AssignmentID"`
	Student      *User       `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}
