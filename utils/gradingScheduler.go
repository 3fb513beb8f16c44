package utils

import (
	"log"
	"time"

	"school/database"
	"school/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// PendingGrading is one line of the grading digest.
type PendingGrading struct {
	AssignmentID uint
	Title        string
	LessonID     uint
	Pending      int64
}

// InitializeGradingDigest schedules the ungraded-submission digest on schedule
// (standard five-field cron). The returned scheduler is already running.
func InitializeGradingDigest(schedule string) (*cron.Cron, error) {
	log.Println("[GRADING-DIGEST] Initializing grading digest scheduler...")

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		log.Println("[GRADING-DIGEST] Running grading digest...")
		LogPendingGrading(database.Database.Db, time.Now())
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[GRADING-DIGEST] Grading digest scheduler started - schedule %q", schedule)
	return c, nil
}

// LogPendingGrading writes one log line per assignment that still has ungraded work.
func LogPendingGrading(db *gorm.DB, asOf time.Time) {
	rows, err := PendingGradingDigest(db, asOf)
	if err != nil {
		log.Printf("[GRADING-DIGEST] Error fetching ungraded submissions: %v", err)
		return
	}

	log.Printf("[GRADING-DIGEST] Found %d assignments past due with ungraded submissions", len(rows))
	for _, row := range rows {
		log.Printf("[GRADING-DIGEST] Assignment %d (%s, lesson %d): %d ungraded", row.AssignmentID, row.Title, row.LessonID, row.Pending)
	}
}

// PendingGradingDigest groups ungraded submissions by assignment for
// assignments whose due date is before the day of asOf.
func PendingGradingDigest(db *gorm.DB, asOf time.Time) ([]PendingGrading, error) {
	cutoff := now.With(asOf).BeginningOfDay()

	rows := []PendingGrading{}
	err := db.Model(&models.Submission{}).
		Select("assignments.id AS assignment_id, assignments.title AS title, assignments.lesson_id AS lesson_id, COUNT(submissions.id) AS pending").
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Where("submissions.score IS NULL").
		Where("assignments.due_date IS NOT NULL AND assignments.due_date < ?", cutoff).
		Group("assignments.id, assignments.title, assignments.lesson_id").
		Order("assignments.id asc").
		Scan(&rows).Error
	return rows, err
}
