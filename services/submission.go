package services

import (
	"context"
	"log"
	"time"

	"school/models"

	"gorm.io/gorm"
)

// SubmissionService records assignment submissions, at most one per
// (student, assignment), and grades them.
type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

// Submit stores content for the assignment and returns the submission id.
// Score and feedback start out empty. Duplicates are rejected the same way as
// in EnrollmentService.Enroll: a pre-check, then the unique index.
func (s *SubmissionService) Submit(ctx context.Context, studentID, assignmentID uint, content string) (uint, error) {
	var submission models.Submission

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.User{}, studentID, "user"); err != nil {
			return err
		}
		if err := requireExists(tx, &models.Assignment{}, assignmentID, "assignment"); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.Submission{}).
			Where("student_id = ? AND assignment_id = ?", studentID, assignmentID).
			Count(&existing).Error; err != nil {
			return internal(err, "failed to check submission")
		}
		if existing > 0 {
			return alreadySubmitted(nil, studentID, assignmentID)
		}

		submission = models.Submission{
			StudentID:    studentID,
			AssignmentID: assignmentID,
			Content:      content,
			SubmittedAt:  time.Now(),
		}
		return insertSubmission(tx, &submission)
	})
	if err != nil {
		return 0, classify(err, "submission")
	}

	log.Printf("[SUBMISSION] Student %d submitted assignment %d (submission %d)", studentID, assignmentID, submission.ID)
	return submission.ID, nil
}

func insertSubmission(tx *gorm.DB, sub *models.Submission) error {
	if err := tx.Create(sub).Error; err != nil {
		if isUniqueViolation(err) {
			return alreadySubmitted(err, sub.StudentID, sub.AssignmentID)
		}
		return internal(err, "failed to submit assignment")
	}
	return nil
}

func alreadySubmitted(cause error, studentID, assignmentID uint) error {
	return conflict(cause, "student %d has already submitted assignment %d", studentID, assignmentID)
}

// ListByStudent returns a student's submissions with their assignments.
func (s *SubmissionService) ListByStudent(ctx context.Context, studentID uint) ([]models.Submission, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.User{}, studentID, "user"); err != nil {
		return nil, err
	}

	submissions := []models.Submission{}
	if err := db.Where("student_id = ?", studentID).
		Preload("Assignment").
		Order("id asc").
		Find(&submissions).Error; err != nil {
		return nil, internal(err, "failed to fetch submissions")
	}
	return submissions, nil
}

// ListByAssignment returns every submission for an assignment with its student.
func (s *SubmissionService) ListByAssignment(ctx context.Context, assignmentID uint) ([]models.Submission, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Assignment{}, assignmentID, "assignment"); err != nil {
		return nil, err
	}

	submissions := []models.Submission{}
	if err := db.Where("assignment_id = ?", assignmentID).
		Preload("Student").
		Order("id asc").
		Find(&submissions).Error; err != nil {
		return nil, internal(err, "failed to fetch submissions")
	}
	return submissions, nil
}
