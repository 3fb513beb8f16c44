package services

import (
	"testing"

	"school/models"

	"github.com/stretchr/testify/assert"
)

// quizKeys builds a two-question key: question 1 with options 10 (correct)
// and 11, question 2 with options 20 and 21 (both correct) and 22.
func quizKeys() map[uint]answerKey {
	q := func(id uint) models.Question {
		question := models.Question{QuizID: 1}
		question.ID = id
		return question
	}
	opt := func(id, questionID uint, correct bool) models.AnswerOption {
		option := models.AnswerOption{QuestionID: questionID, IsCorrect: correct}
		option.ID = id
		return option
	}

	return buildAnswerKeys(
		[]models.Question{q(1), q(2)},
		[]models.AnswerOption{
			opt(10, 1, true), opt(11, 1, false),
			opt(20, 2, true), opt(21, 2, true), opt(22, 2, false),
			opt(99, 7, true),
		},
	)
}

func TestBuildAnswerKeysIgnoresForeignOptions(t *testing.T) {
	keys := quizKeys()

	assert.Len(t, keys, 2)
	assert.NotContains(t, keys, uint(7))
	assert.Len(t, keys[1].options, 2)
	assert.Len(t, keys[2].correct, 2)
}

func TestScoreAnswersExactSet(t *testing.T) {
	keys := quizKeys()

	tests := []struct {
		name    string
		answers AnswerSheet
		want    int
	}{
		{name: "all correct", answers: AnswerSheet{1: {10}, 2: {20, 21}}, want: 2},
		{name: "order does not matter", answers: AnswerSheet{1: {10}, 2: {21, 20}}, want: 2},
		{name: "duplicates collapse", answers: AnswerSheet{1: {10, 10}, 2: {20, 21, 20}}, want: 2},
		{name: "superset is wrong", answers: AnswerSheet{1: {10, 11}, 2: {20, 21}}, want: 1},
		{name: "subset is wrong", answers: AnswerSheet{1: {10}, 2: {20}}, want: 1},
		{name: "extra wrong option", answers: AnswerSheet{1: {10}, 2: {20, 21, 22}}, want: 1},
		{name: "unanswered question", answers: AnswerSheet{1: {10}}, want: 1},
		{name: "empty sheet", answers: AnswerSheet{}, want: 0},
		{name: "nil sheet", answers: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreAnswers(keys, tt.answers))
		})
	}
}

func TestQuestionWithoutCorrectOptionsIsWonByEmptySelection(t *testing.T) {
	question := models.Question{QuizID: 1}
	question.ID = 5
	wrong := models.AnswerOption{QuestionID: 5}
	wrong.ID = 50
	keys := buildAnswerKeys([]models.Question{question}, []models.AnswerOption{wrong})

	assert.Equal(t, 1, scoreAnswers(keys, AnswerSheet{}))
	assert.Equal(t, 1, scoreAnswers(keys, AnswerSheet{5: {}}))
	assert.Equal(t, 0, scoreAnswers(keys, AnswerSheet{5: {50}}))
}

func TestValidateAnswers(t *testing.T) {
	keys := quizKeys()

	tests := []struct {
		name    string
		answers AnswerSheet
		wantErr string
	}{
		{name: "valid", answers: AnswerSheet{1: {11}, 2: {22}}},
		{name: "empty selection is valid", answers: AnswerSheet{1: {}}},
		{name: "foreign question", answers: AnswerSheet{7: {99}}, wantErr: "question 7 does not belong to quiz 3"},
		{name: "option of another question", answers: AnswerSheet{1: {20}}, wantErr: "option 20 does not belong to question 1"},
		{name: "unknown option", answers: AnswerSheet{2: {20, 500}}, wantErr: "option 500 does not belong to question 2"},
		{name: "question reported before option", answers: AnswerSheet{1: {20}, 8: {}}, wantErr: "question 8 does not belong to quiz 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAnswers(3, keys, tt.answers)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			requireKind(t, KindInvalidInput, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestNormalizeDoesNotAlias(t *testing.T) {
	selected := []uint{3, 1, 3}
	sheet := AnswerSheet{1: selected, 2: nil}

	normalized := sheet.normalize()

	assert.Equal(t, []uint{1, 3}, normalized[1])
	assert.Equal(t, []uint{}, normalized[2])
	assert.Equal(t, []uint{3, 1, 3}, selected)
}
