package services

import (
	"context"
	"testing"

	"school/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		maxScore *int
		wantErr  string
	}{
		{name: "negative without maximum", score: -1, wantErr: "score cannot be negative"},
		{name: "negative with maximum", score: -5, maxScore: intPtr(10), wantErr: "score cannot be negative"},
		{name: "above maximum", score: 11, maxScore: intPtr(10), wantErr: "score 11 exceeds maximum score 10 for this assignment"},
		{name: "at maximum", score: 10, maxScore: intPtr(10)},
		{name: "zero", score: 0, maxScore: intPtr(10)},
		{name: "zero maximum", score: 0, maxScore: intPtr(0)},
		{name: "unbounded", score: 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScore(tt.score, tt.maxScore)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			requireKind(t, KindInvalidInput, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestGradeAgainstMaxScore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewSubmissionService(f.db)

	bounded := f.addAssignment(t, f.lesson.ID, intPtr(100))
	id, err := svc.Submit(ctx, f.student.ID, bounded.ID, "answer")
	require.NoError(t, err)

	_, err = svc.Grade(ctx, id, 150, "too generous")
	requireKind(t, KindInvalidInput, err)
	assert.Contains(t, err.Error(), "exceeds maximum score 100")

	_, err = svc.Grade(ctx, id, -1, "")
	requireKind(t, KindInvalidInput, err)

	var untouched models.Submission
	require.NoError(t, f.db.First(&untouched, id).Error)
	assert.Nil(t, untouched.Score)
	assert.Nil(t, untouched.Feedback)

	graded, err := svc.Grade(ctx, id, 95, "Great work")
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 95, *graded.Score)
	assert.Equal(t, "Great work", *graded.Feedback)

	regraded, err := svc.Grade(ctx, id, 100, "Perfect on review")
	require.NoError(t, err)
	assert.Equal(t, 100, *regraded.Score)

	var stored models.Submission
	require.NoError(t, f.db.First(&stored, id).Error)
	require.NotNil(t, stored.Score)
	assert.Equal(t, 100, *stored.Score)
	assert.Equal(t, "Perfect on review", *stored.Feedback)
}

func TestGradeWithoutMaxScore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewSubmissionService(f.db)

	id, err := svc.Submit(ctx, f.student.ID, f.assignment.ID, "answer")
	require.NoError(t, err)

	graded, err := svc.Grade(ctx, id, 1_000_000, "")
	require.NoError(t, err)
	assert.Equal(t, 1_000_000, *graded.Score)

	_, err = svc.Grade(ctx, id, -3, "")
	requireKind(t, KindInvalidInput, err)
}

func TestGradeWritesOnlyTheSubmission(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := NewSubmissionService(f.db)

	bounded := f.addAssignment(t, f.lesson.ID, intPtr(10))
	id, err := svc.Submit(ctx, f.student.ID, bounded.ID, "answer")
	require.NoError(t, err)

	written := tablesWritten(t, f.db)
	graded, err := svc.Grade(ctx, id, 5, "ok")
	require.NoError(t, err)
	require.NotNil(t, graded.Assignment)

	assert.Equal(t, []string{"update submissions"}, *written)

	var stored models.Submission
	require.NoError(t, f.db.First(&stored, id).Error)
	assert.Equal(t, bounded.ID, stored.AssignmentID)
	assert.Equal(t, 5, *stored.Score)
}

func TestGradeUnknownSubmission(t *testing.T) {
	f := newFixture(t)

	_, err := NewSubmissionService(f.db).Grade(context.Background(), 9999, 1, "")
	requireKind(t, KindNotFound, err)
}
