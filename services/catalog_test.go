package services

import (
	"context"
	"encoding/json"
	"testing"

	"school/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	svc := NewCatalogService(db)

	user, err := svc.CreateUser(ctx, "Ada", "  Ada@Example.com ", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	_, err = svc.CreateUser(ctx, "Ada again", "ada@example.com", models.RoleTeacher)
	requireKind(t, KindConflict, err)

	_, err = svc.CreateUser(ctx, "Eve", "eve@example.com", "ADMIN")
	requireKind(t, KindInvalidInput, err)
}

func TestCreateCourse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	category, err := f.catalog.CreateCategory(ctx, "Programming")
	require.NoError(t, err)
	_, err = f.catalog.CreateCategory(ctx, "Programming")
	requireKind(t, KindConflict, err)

	course, err := f.catalog.CreateCourse(ctx, NewCourse{
		Title:      "Concurrency",
		TeacherID:  f.teacher.ID,
		CategoryID: &category.ID,
		Tags:       []string{"go", "channels"},
	})
	require.NoError(t, err)

	var tags []string
	require.NoError(t, json.Unmarshal(course.Tags, &tags))
	assert.Equal(t, []string{"go", "channels"}, tags)

	_, err = f.catalog.CreateCourse(ctx, NewCourse{Title: "By a student", TeacherID: f.student.ID})
	requireKind(t, KindInvalidInput, err)

	_, err = f.catalog.CreateCourse(ctx, NewCourse{Title: "Nobody", TeacherID: 9999})
	requireKind(t, KindNotFound, err)

	missing := uint(9999)
	_, err = f.catalog.CreateCourse(ctx, NewCourse{Title: "Lost", TeacherID: f.teacher.ID, CategoryID: &missing})
	requireKind(t, KindNotFound, err)

	loaded, err := f.catalog.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Category)
	assert.Equal(t, "Programming", loaded.Category.Name)
	require.NotNil(t, loaded.Teacher)
	assert.Equal(t, f.teacher.ID, loaded.Teacher.ID)
}

func TestCourseHierarchyReads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	late, err := f.catalog.CreateModule(ctx, f.course.ID, "Later", 5)
	require.NoError(t, err)

	course, err := f.catalog.GetCourse(ctx, f.course.ID)
	require.NoError(t, err)
	require.Len(t, course.Modules, 2)
	assert.Equal(t, f.module.ID, course.Modules[0].ID)
	assert.Equal(t, late.ID, course.Modules[1].ID)

	module, err := f.catalog.GetModule(ctx, f.module.ID)
	require.NoError(t, err)
	require.Len(t, module.Lessons, 1)

	lesson, err := f.catalog.GetLesson(ctx, f.lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, f.module.ID, lesson.ModuleID)

	assignments, err := f.catalog.ListAssignmentsByLesson(ctx, f.lesson.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Nil(t, assignments[0].MaxScore)

	_, err = f.catalog.GetCourse(ctx, 9999)
	requireKind(t, KindNotFound, err)
	_, err = f.catalog.CreateModule(ctx, 9999, "Orphan", 0)
	requireKind(t, KindNotFound, err)
	_, err = f.catalog.AddLesson(ctx, 9999, "Orphan", "", "")
	requireKind(t, KindNotFound, err)
	_, err = f.catalog.GetAssignment(ctx, 9999)
	requireKind(t, KindNotFound, err)
}

func TestCreateAssignmentRejectsNegativeMaxScore(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.CreateAssignment(context.Background(), f.lesson.ID, NewAssignment{Title: "Bad", MaxScore: intPtr(-1)})
	requireKind(t, KindInvalidInput, err)

	_, err = f.catalog.CreateAssignment(context.Background(), 9999, NewAssignment{Title: "Orphan"})
	requireKind(t, KindNotFound, err)
}
