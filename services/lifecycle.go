package services

import (
	"context"
	"log"

	"school/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// owned describes one level of the ownership graph: rows of model whose
// foreignKey column points at the parent level, and what they own in turn.
type owned struct {
	table      string
	model      any
	foreignKey string
	children   []owned
}

var (
	submissionsOfAssignment = owned{table: "submissions", model: &models.Submission{}, foreignKey: "assignment_id"}

	assignmentsOfLesson = owned{
		table: "assignments", model: &models.Assignment{}, foreignKey: "lesson_id",
		children: []owned{submissionsOfAssignment},
	}

	lessonsOfModule = owned{
		table: "lessons", model: &models.Lesson{}, foreignKey: "module_id",
		children: []owned{assignmentsOfLesson},
	}

	quizOfModule = owned{
		table: "quizzes", model: &models.Quiz{}, foreignKey: "module_id",
		children: []owned{
			{
				table: "questions", model: &models.Question{}, foreignKey: "quiz_id",
				children: []owned{{table: "answer_options", model: &models.AnswerOption{}, foreignKey: "question_id"}},
			},
			{table: "quiz_submissions", model: &models.QuizSubmission{}, foreignKey: "quiz_id"},
		},
	}
)

// CascadeResult counts the rows removed per table by one cascade.
type CascadeResult map[string]int64

// LifecycleService deletes catalog records together with everything they own.
type LifecycleService struct {
	db *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{db: db}
}

// DeleteAssignment removes an assignment and its submissions.
func (s *LifecycleService) DeleteAssignment(ctx context.Context, assignmentID uint) (CascadeResult, error) {
	return s.cascade(ctx, "assignments", &models.Assignment{}, assignmentID, "assignment", submissionsOfAssignment)
}

// DeleteLesson removes a lesson, its assignments and their submissions.
// Sibling lessons are not touched.
func (s *LifecycleService) DeleteLesson(ctx context.Context, lessonID uint) (CascadeResult, error) {
	return s.cascade(ctx, "lessons", &models.Lesson{}, lessonID, "lesson", assignmentsOfLesson)
}

// DeleteModule removes a module with its lessons (and what they own) and its
// quiz with questions, options and recorded attempts.
func (s *LifecycleService) DeleteModule(ctx context.Context, moduleID uint) (CascadeResult, error) {
	return s.cascade(ctx, "modules", &models.Module{}, moduleID, "module", lessonsOfModule, quizOfModule)
}

// cascade locks the root row, walks the ownership graph below it and deletes
// leaves first, all in one transaction.
func (s *LifecycleService) cascade(ctx context.Context, table string, model any, id uint, what string, children ...owned) (CascadeResult, error) {
	result := CascadeResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockByID(tx, model, id, what); err != nil {
			return err
		}
		for _, child := range children {
			if err := purge(tx, child, []uint{id}, result); err != nil {
				return err
			}
		}

		res := tx.Where("id = ?", id).Delete(model)
		if res.Error != nil {
			return internal(res.Error, "failed to delete "+what)
		}
		result[table] += res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, classify(err, what)
	}

	log.Printf("[LIFECYCLE] Deleted %s %d: %v", what, id, result)
	return result, nil
}

// purge deletes every row of level owned by parentIDs after purging what
// those rows own. Rows are locked before their children are read so no new
// child can attach to a parent that is being removed.
func purge(tx *gorm.DB, level owned, parentIDs []uint, result CascadeResult) error {
	var ids []uint
	if err := tx.Model(level.model).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(level.foreignKey+" IN ?", parentIDs).
		Order("id asc").
		Pluck("id", &ids).Error; err != nil {
		return internal(err, "failed to load "+level.table)
	}
	if len(ids) == 0 {
		return nil
	}

	for _, child := range level.children {
		if err := purge(tx, child, ids, result); err != nil {
			return err
		}
	}

	res := tx.Where("id IN ?", ids).Delete(level.model)
	if res.Error != nil {
		return internal(res.Error, "failed to delete "+level.table)
	}
	result[level.table] += res.RowsAffected
	return nil
}
