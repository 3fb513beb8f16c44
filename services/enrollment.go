package services

import (
	"context"
	"log"

	"school/models"

	"github.com/jinzhu/now"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnrollmentService registers students in courses, at most once per pair.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll creates an Active enrollment dated today and returns its id.
//
// The pre-check only saves a failed write; two concurrent calls can both pass
// it, and the loser is stopped by the unique index and reported as the same
// Conflict.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID, studentID uint) (uint, error) {
	var enrollment models.Enrollment

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.Course{}, courseID, "course"); err != nil {
			return err
		}
		if err := requireExists(tx, &models.User{}, studentID, "user"); err != nil {
			return err
		}

		// Check if user is already enrolled
		var existing int64
		if err := tx.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", studentID, courseID).
			Count(&existing).Error; err != nil {
			return internal(err, "failed to check enrollment")
		}
		if existing > 0 {
			return alreadyEnrolled(nil, courseID, studentID)
		}

		enrollment = models.Enrollment{
			UserID:     studentID,
			CourseID:   courseID,
			EnrollDate: datatypes.Date(now.BeginningOfDay()),
			Status:     models.EnrollmentActive,
		}
		return insertEnrollment(tx, &enrollment)
	})
	if err != nil {
		return 0, classify(err, "enrollment")
	}

	log.Printf("[ENROLLMENT] Student %d enrolled in course %d (enrollment %d)", studentID, courseID, enrollment.ID)
	return enrollment.ID, nil
}

// insertEnrollment writes e and maps a unique-index rejection to Conflict.
func insertEnrollment(tx *gorm.DB, e *models.Enrollment) error {
	if err := tx.Create(e).Error; err != nil {
		if isUniqueViolation(err) {
			return alreadyEnrolled(err, e.CourseID, e.UserID)
		}
		return internal(err, "failed to enroll in course")
	}
	return nil
}

func alreadyEnrolled(cause error, courseID, studentID uint) error {
	return conflict(cause, "student %d is already enrolled in course %d", studentID, courseID)
}

// Unenroll deletes the (student, course) enrollment. It reports false, with no
// side effect, when the student was not enrolled.
func (s *EnrollmentService) Unenroll(ctx context.Context, courseID, studentID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", studentID, courseID).
		Delete(&models.Enrollment{})
	if result.Error != nil {
		return false, internal(result.Error, "failed to unenroll")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	log.Printf("[ENROLLMENT] Student %d unenrolled from course %d", studentID, courseID)
	return true, nil
}

// CoursesForStudent lists the courses a student is enrolled in, oldest enrollment first.
func (s *EnrollmentService) CoursesForStudent(ctx context.Context, studentID uint) ([]models.Course, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.User{}, studentID, "user"); err != nil {
		return nil, err
	}

	courses := []models.Course{}
	err := db.Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", studentID).
		Order("enrollments.id asc").
		Find(&courses).Error
	if err != nil {
		return nil, internal(err, "failed to fetch courses")
	}
	return courses, nil
}

// StudentsForCourse lists the users enrolled in a course, oldest enrollment first.
func (s *EnrollmentService) StudentsForCourse(ctx context.Context, courseID uint) ([]models.User, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Course{}, courseID, "course"); err != nil {
		return nil, err
	}

	students := []models.User{}
	err := db.Joins("JOIN enrollments ON enrollments.user_id = users.id").
		Where("enrollments.course_id = ?", courseID).
		Order("enrollments.id asc").
		Find(&students).Error
	if err != nil {
		return nil, internal(err, "failed to fetch students")
	}
	return students, nil
}
