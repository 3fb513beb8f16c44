package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"school/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizService authors quizzes and scores attempts against their answer key.
type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// CreateQuiz attaches a quiz to a module. A module owns at most one quiz.
func (s *QuizService) CreateQuiz(ctx context.Context, moduleID uint, title string, timeLimit *int) (*models.Quiz, error) {
	if strings.TrimSpace(title) == "" {
		return nil, invalidInput("quiz title is required")
	}
	if timeLimit != nil && *timeLimit <= 0 {
		return nil, invalidInput("time limit must be positive")
	}

	quiz := models.Quiz{ModuleID: moduleID, Title: title, TimeLimit: timeLimit}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.Module{}, moduleID, "module"); err != nil {
			return err
		}
		if err := tx.Create(&quiz).Error; err != nil {
			if isUniqueViolation(err) {
				return conflict(err, "module %d already has a quiz", moduleID)
			}
			return internal(err, "failed to create quiz")
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "quiz")
	}
	return &quiz, nil
}

// AddQuestion appends a question to a quiz. An empty type means SINGLE_CHOICE.
func (s *QuizService) AddQuestion(ctx context.Context, quizID uint, text, questionType string) (*models.Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalidInput("question text is required")
	}
	if questionType == "" {
		questionType = models.QuestionSingleChoice
	}
	if questionType != models.QuestionSingleChoice && questionType != models.QuestionMultipleChoice {
		return nil, invalidInput("unknown question type %q", questionType)
	}

	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Quiz{}, quizID, "quiz"); err != nil {
		return nil, err
	}

	question := models.Question{QuizID: quizID, Text: text, Type: questionType}
	if err := db.Create(&question).Error; err != nil {
		return nil, internal(err, "failed to add question")
	}
	return &question, nil
}

// AddAnswerOption adds an option to a question.
func (s *QuizService) AddAnswerOption(ctx context.Context, questionID uint, text string, isCorrect bool) (*models.AnswerOption, error) {
	if strings.TrimSpace(text) == "" {
		return nil, invalidInput("option text is required")
	}

	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Question{}, questionID, "question"); err != nil {
		return nil, err
	}

	option := models.AnswerOption{QuestionID: questionID, Text: text, IsCorrect: isCorrect}
	if err := db.Create(&option).Error; err != nil {
		return nil, internal(err, "failed to add answer option")
	}
	return &option, nil
}

// GetQuiz loads a quiz with its questions and options.
func (s *QuizService) GetQuiz(ctx context.Context, quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	db := s.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") })
	if err := findByID(db, &quiz, quizID, "quiz"); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// TakeQuiz validates an attempt against the quiz structure, scores it and
// records it. Nothing is written unless every answer is valid.
func (s *QuizService) TakeQuiz(ctx context.Context, studentID, quizID uint, answers AnswerSheet) (*models.QuizSubmission, error) {
	var submission models.QuizSubmission

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireExists(tx, &models.User{}, studentID, "user"); err != nil {
			return err
		}
		if err := requireExists(tx, &models.Quiz{}, quizID, "quiz"); err != nil {
			return err
		}

		var questions []models.Question
		if err := tx.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
			return internal(err, "failed to load questions")
		}

		var options []models.AnswerOption
		if len(questions) > 0 {
			questionIDs := make([]uint, len(questions))
			for i, q := range questions {
				questionIDs[i] = q.ID
			}
			if err := tx.Where("question_id IN ?", questionIDs).Find(&options).Error; err != nil {
				return internal(err, "failed to load answer options")
			}
		}

		keys := buildAnswerKeys(questions, options)
		if err := validateAnswers(quizID, keys, answers); err != nil {
			return err
		}

		recorded, err := json.Marshal(answers.normalize())
		if err != nil {
			return internal(err, "failed to encode answers")
		}

		submission = models.QuizSubmission{
			QuizID:    quizID,
			StudentID: studentID,
			Score:     scoreAnswers(keys, answers),
			Total:     len(questions),
			Answers:   datatypes.JSON(recorded),
			TakenAt:   time.Now(),
		}
		if err := tx.Create(&submission).Error; err != nil {
			return internal(err, "failed to save quiz submission")
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "quiz submission")
	}

	log.Printf("[QUIZ] Student %d scored %d/%d on quiz %d", studentID, submission.Score, submission.Total, quizID)
	return &submission, nil
}

// SubmissionsByStudent lists every quiz attempt by a student.
func (s *QuizService) SubmissionsByStudent(ctx context.Context, studentID uint) ([]models.QuizSubmission, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.User{}, studentID, "user"); err != nil {
		return nil, err
	}

	submissions := []models.QuizSubmission{}
	if err := db.Where("student_id = ?", studentID).Order("id asc").Find(&submissions).Error; err != nil {
		return nil, internal(err, "failed to fetch quiz submissions")
	}
	return submissions, nil
}

// SubmissionsByQuiz lists every attempt at a quiz.
func (s *QuizService) SubmissionsByQuiz(ctx context.Context, quizID uint) ([]models.QuizSubmission, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Quiz{}, quizID, "quiz"); err != nil {
		return nil, err
	}

	submissions := []models.QuizSubmission{}
	if err := db.Where("quiz_id = ?", quizID).Order("id asc").Find(&submissions).Error; err != nil {
		return nil, internal(err, "failed to fetch quiz submissions")
	}
	return submissions, nil
}
