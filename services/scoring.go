package services

import (
	"maps"
	"slices"

	"school/models"
)

// AnswerSheet maps a question id to the option ids the student selected.
type AnswerSheet map[uint][]uint

// answerKey is the structure of one question: every option it owns and the
// subset marked correct.
type answerKey struct {
	options map[uint]struct{}
	correct map[uint]struct{}
}

// buildAnswerKeys groups options by question. Every question gets a key, even
// one with no options.
func buildAnswerKeys(questions []models.Question, options []models.AnswerOption) map[uint]answerKey {
	keys := make(map[uint]answerKey, len(questions))
	for _, q := range questions {
		keys[q.ID] = answerKey{options: map[uint]struct{}{}, correct: map[uint]struct{}{}}
	}
	for _, opt := range options {
		key, ok := keys[opt.QuestionID]
		if !ok {
			continue
		}
		key.options[opt.ID] = struct{}{}
		if opt.IsCorrect {
			key.correct[opt.ID] = struct{}{}
		}
	}
	return keys
}

// validateAnswers rejects answers to questions outside the quiz and
// selections of options outside their question. Ids are checked in ascending
// order so the reported offender is stable.
func validateAnswers(quizID uint, keys map[uint]answerKey, answers AnswerSheet) error {
	questionIDs := slices.Sorted(maps.Keys(answers))

	for _, questionID := range questionIDs {
		if _, ok := keys[questionID]; !ok {
			return invalidInput("question %d does not belong to quiz %d", questionID, quizID)
		}
	}

	for _, questionID := range questionIDs {
		key := keys[questionID]
		for _, optionID := range answers[questionID] {
			if _, ok := key.options[optionID]; !ok {
				return invalidInput("option %d does not belong to question %d", optionID, questionID)
			}
		}
	}
	return nil
}

// scoreAnswers counts questions whose selected set equals the correct set
// exactly. Missing answers count as the empty selection, so a question with
// no correct options is won by selecting nothing.
func scoreAnswers(keys map[uint]answerKey, answers AnswerSheet) int {
	score := 0
	for questionID, key := range keys {
		if sameSet(key.correct, answers[questionID]) {
			score++
		}
	}
	return score
}

// sameSet compares want with selected as sets; duplicates in selected collapse.
func sameSet(want map[uint]struct{}, selected []uint) bool {
	seen := make(map[uint]struct{}, len(selected))
	for _, id := range selected {
		if _, ok := want[id]; !ok {
			return false
		}
		seen[id] = struct{}{}
	}
	return len(seen) == len(want)
}

// normalize returns a copy of answers with each selection sorted and
// de-duplicated, ready to be stored with the attempt.
func (a AnswerSheet) normalize() AnswerSheet {
	out := make(AnswerSheet, len(a))
	for questionID, selected := range a {
		ids := append([]uint{}, selected...)
		slices.Sort(ids)
		out[questionID] = slices.Compact(ids)
	}
	return out
}
