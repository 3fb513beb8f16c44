package services

import (
	"context"
	"fmt"
	"testing"

	"school/config"
	"school/database"
	"school/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite catalog. A single connection
// serializes units of work, so concurrent callers never interleave inside a
// transaction; lost races are staged with callbacks instead.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Config{
		DBDriver:   "sqlite",
		DBName:     "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBLogLevel: "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

// fixture is a course with one module, one lesson and one assignment, a
// teacher and a student.
type fixture struct {
	db         *gorm.DB
	catalog    *CatalogService
	teacher    *models.User
	student    *models.User
	course     *models.Course
	module     *models.Module
	lesson     *models.Lesson
	assignment *models.Assignment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db := newTestDB(t)
	f := &fixture{db: db, catalog: NewCatalogService(db)}

	f.teacher = f.user(t, models.RoleTeacher)
	f.student = f.user(t, models.RoleStudent)

	var err error
	f.course, err = f.catalog.CreateCourse(ctx, NewCourse{Title: "Go Basics", TeacherID: f.teacher.ID, Tags: []string{"go"}})
	require.NoError(t, err)
	f.module, err = f.catalog.CreateModule(ctx, f.course.ID, "Syntax", 0)
	require.NoError(t, err)
	f.lesson = f.addLesson(t, f.module.ID)
	f.assignment = f.addAssignment(t, f.lesson.ID, nil)

	return f
}

func (f *fixture) user(t *testing.T, role string) *models.User {
	t.Helper()
	name := uuid.NewString()[:8]
	u, err := f.catalog.CreateUser(context.Background(), name, name+"@example.com", role)
	require.NoError(t, err)
	return u
}

func (f *fixture) addLesson(t *testing.T, moduleID uint) *models.Lesson {
	t.Helper()
	l, err := f.catalog.AddLesson(context.Background(), moduleID, "Lesson "+uuid.NewString()[:4], "text", "")
	require.NoError(t, err)
	return l
}

func (f *fixture) addAssignment(t *testing.T, lessonID uint, maxScore *int) *models.Assignment {
	t.Helper()
	a, err := f.catalog.CreateAssignment(context.Background(), lessonID, NewAssignment{
		Title:    "Homework " + uuid.NewString()[:4],
		MaxScore: maxScore,
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) count(t *testing.T, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

// tablesWritten records the table of every create, update and delete issued
// through db from now on, nested association writes included.
func tablesWritten(t *testing.T, db *gorm.DB) *[]string {
	t.Helper()
	written := []string{}
	record := func(op string) func(*gorm.DB) {
		return func(tx *gorm.DB) { written = append(written, op+" "+tx.Statement.Table) }
	}

	cb := db.Callback()
	require.NoError(t, cb.Create().After("gorm:create").Register("test:record_create", record("create")))
	require.NoError(t, cb.Update().After("gorm:update").Register("test:record_update", record("update")))
	require.NoError(t, cb.Delete().After("gorm:delete").Register("test:record_delete", record("delete")))
	return &written
}

// failDeletesOf makes every delete on table fail with cause.
func failDeletesOf(t *testing.T, db *gorm.DB, table string, cause error) {
	t.Helper()
	require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail_delete_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			tx.AddError(cause)
		}
	}))
}

// beforeFirstInsert runs insert once, inside the same transaction, right
// before the first create on table. It stands in for a rival writer that
// commits between a pre-check and the insert that follows it.
func beforeFirstInsert(t *testing.T, db *gorm.DB, table string, insert func(tx *gorm.DB) error) {
	t.Helper()
	fired := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:rival_"+table, func(tx *gorm.DB) {
		if fired || tx.Statement.Table != table {
			return
		}
		fired = true
		if err := insert(tx.Session(&gorm.Session{NewDB: true})); err != nil {
			tx.AddError(err)
		}
	}))
}

func intPtr(v int) *int { return &v }

func requireKind(t *testing.T, want Kind, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, KindOf(err), fmt.Sprintf("error: %v", err))
}
