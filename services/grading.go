package services

import (
	"context"
	"log"

	"school/models"

	"gorm.io/gorm"
)

// ValidateScore checks a score against an assignment's optional maximum.
func ValidateScore(score int, maxScore *int) error {
	if score < 0 {
		return invalidInput("score cannot be negative")
	}
	if maxScore != nil && score > *maxScore {
		return invalidInput("score %d exceeds maximum score %d for this assignment", score, *maxScore)
	}
	return nil
}

// Grade sets score and feedback on a submission, replacing any earlier grade.
func (s *SubmissionService) Grade(ctx context.Context, submissionID uint, score int, feedback string) (*models.Submission, error) {
	var submission models.Submission

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockByID(tx.Preload("Assignment"), &submission, submissionID, "submission"); err != nil {
			return err
		}
		if submission.Assignment == nil {
			return internal(gorm.ErrRecordNotFound, "submission has no assignment")
		}

		if err := ValidateScore(score, submission.Assignment.MaxScore); err != nil {
			return err
		}

		// Update by id only; the preloaded assignment must not be written back.
		if err := tx.Model(&models.Submission{}).Where("id = ?", submission.ID).Updates(map[string]any{
			"score":    score,
			"feedback": feedback,
		}).Error; err != nil {
			return internal(err, "failed to grade submission")
		}
		submission.Score = &score
		submission.Feedback = &feedback
		return nil
	})
	if err != nil {
		return nil, classify(err, "submission")
	}

	log.Printf("[GRADING] Submission %d graded %d", submissionID, score)
	return &submission, nil
}
