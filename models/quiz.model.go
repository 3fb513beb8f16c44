package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	QuestionSingleChoice   = "SINGLE_CHOICE"
	QuestionMultipleChoice = "MULTIPLE_CHOICE"
)

// Quiz belongs to a module; TimeLimit is in seconds and is stored but not enforced.
type Quiz struct {
	Base
	ModuleID  uint       `json:"module_id" gorm:"not null;uniqueIndex"`
	Title     string     `json:"title" gorm:"not null"`
	TimeLimit *int       `json:"time_limit"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

type Question struct {
	Base
	QuizID  uint           `json:"quiz_id" gorm:"index;not null"`
	Text    string         `json:"text" gorm:"type:text;not null"`
	Type    string         `json:"type" gorm:"default:'SINGLE_CHOICE'"` // SINGLE_CHOICE, MULTIPLE_CHOICE
	Options []AnswerOption `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}

type AnswerOption struct {
	Base
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text" gorm:"not null"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
}

// QuizSubmission records one scored attempt. Attempts are not deduplicated.
type QuizSubmission struct {
	Base
	QuizID    uint           `json:"quiz_id" gorm:"index;not null"`
	StudentID uint           `json:"student_id" gorm:"index;not null"`
	Score     int            `json:"score"`
	Total     int            `json:"total"`
	Answers   datatypes.JSON `json:"answers"` // question id -> selected option ids
	TakenAt   time.Time      `json:"taken_at"`
	Quiz      *Quiz          `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Student   *User          `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}
