package database

import (
	"testing"

	"school/config"
	"school/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestDialectorByDriver(t *testing.T) {
	tests := []struct {
		driver string
		name   string
	}{
		{driver: "postgres", name: "postgres"},
		{driver: "", name: "postgres"},
		{driver: "mysql", name: "mysql"},
		{driver: "sqlite", name: "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := Dialector(&config.Config{DBDriver: tt.driver, DBName: "school"})
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}

	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, LogLevel("silent"))
	assert.Equal(t, logger.Info, LogLevel("info"))
	assert.Equal(t, logger.Warn, LogLevel("bogus"))
}

func TestMigrateCreatesUniqueIndexes(t *testing.T) {
	db, err := Open(&config.Config{
		DBDriver:   "sqlite",
		DBName:     "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBLogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	m := db.Migrator()
	assert.True(t, m.HasIndex(&models.Enrollment{}, "idx_enrollment_user_course"))
	assert.True(t, m.HasIndex(&models.Submission{}, "idx_submission_student_assignment"))
	assert.True(t, m.HasTable(&models.QuizSubmission{}))
}
