package services

import (
	"context"
	"encoding/json"
	"strings"

	"school/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogService covers the plain create/read side of the course hierarchy.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type NewCourse struct {
	Title       string
	Description string
	CategoryID  *uint
	TeacherID   uint
	Tags        []string
}

type NewAssignment struct {
	Title       string
	Description string
	DueDate     *datatypes.Date
	MaxScore    *int
}

func (s *CatalogService) CreateUser(ctx context.Context, name, email, role string) (*models.User, error) {
	if !models.IsValidRole(role) {
		return nil, invalidInput("role must be %s or %s", models.RoleTeacher, models.RoleStudent)
	}

	user := models.User{Name: name, Email: strings.ToLower(strings.TrimSpace(email)), Role: role}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict(err, "email %s is already registered", user.Email)
		}
		return nil, internal(err, "failed to create user")
	}
	return &user, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := models.Category{Name: name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, conflict(err, "category %s already exists", name)
		}
		return nil, internal(err, "failed to create category")
	}
	return &category, nil
}

// CreateCourse requires the teacher to exist with role TEACHER; the category is optional.
func (s *CatalogService) CreateCourse(ctx context.Context, in NewCourse) (*models.Course, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	encodedTags, err := json.Marshal(tags)
	if err != nil {
		return nil, invalidInput("invalid tags")
	}

	course := models.Course{
		Title:       in.Title,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		TeacherID:   in.TeacherID,
		Tags:        datatypes.JSON(encodedTags),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var teacher models.User
		if err := findByID(tx, &teacher, in.TeacherID, "teacher"); err != nil {
			return err
		}
		if teacher.Role != models.RoleTeacher {
			return invalidInput("user %d is not a teacher", in.TeacherID)
		}
		if in.CategoryID != nil {
			if err := requireExists(tx, &models.Category{}, *in.CategoryID, "category"); err != nil {
				return err
			}
		}
		if err := tx.Create(&course).Error; err != nil {
			return internal(err, "failed to create course")
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "course")
	}
	return &course, nil
}

// GetCourse loads a course with its category, teacher and modules.
func (s *CatalogService) GetCourse(ctx context.Context, courseID uint) (*models.Course, error) {
	var course models.Course
	db := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Teacher").
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("order_index asc, id asc") })
	if err := findByID(db, &course, courseID, "course"); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CatalogService) CreateModule(ctx context.Context, courseID uint, title string, orderIndex int) (*models.Module, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Course{}, courseID, "course"); err != nil {
		return nil, err
	}

	module := models.Module{CourseID: courseID, Title: title, OrderIndex: orderIndex}
	if err := db.Create(&module).Error; err != nil {
		return nil, internal(err, "failed to create module")
	}
	return &module, nil
}

// GetModule loads a module with its lessons.
func (s *CatalogService) GetModule(ctx context.Context, moduleID uint) (*models.Module, error) {
	var module models.Module
	db := s.db.WithContext(ctx).Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") })
	if err := findByID(db, &module, moduleID, "module"); err != nil {
		return nil, err
	}
	return &module, nil
}

func (s *CatalogService) AddLesson(ctx context.Context, moduleID uint, title, content, videoURL string) (*models.Lesson, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Module{}, moduleID, "module"); err != nil {
		return nil, err
	}

	lesson := models.Lesson{ModuleID: moduleID, Title: title, Content: content, VideoURL: videoURL}
	if err := db.Create(&lesson).Error; err != nil {
		return nil, internal(err, "failed to add lesson")
	}
	return &lesson, nil
}

func (s *CatalogService) GetLesson(ctx context.Context, lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := findByID(s.db.WithContext(ctx), &lesson, lessonID, "lesson"); err != nil {
		return nil, err
	}
	return &lesson, nil
}

// CreateAssignment adds an assignment to a lesson. A nil MaxScore leaves the score unbounded.
func (s *CatalogService) CreateAssignment(ctx context.Context, lessonID uint, in NewAssignment) (*models.Assignment, error) {
	if in.MaxScore != nil && *in.MaxScore < 0 {
		return nil, invalidInput("max score cannot be negative")
	}

	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Lesson{}, lessonID, "lesson"); err != nil {
		return nil, err
	}

	assignment := models.Assignment{
		LessonID:    lessonID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		MaxScore:    in.MaxScore,
	}
	if err := db.Create(&assignment).Error; err != nil {
		return nil, internal(err, "failed to create assignment")
	}
	return &assignment, nil
}

func (s *CatalogService) GetAssignment(ctx context.Context, assignmentID uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := findByID(s.db.WithContext(ctx), &assignment, assignmentID, "assignment"); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *CatalogService) ListAssignmentsByLesson(ctx context.Context, lessonID uint) ([]models.Assignment, error) {
	db := s.db.WithContext(ctx)
	if err := requireExists(db, &models.Lesson{}, lessonID, "lesson"); err != nil {
		return nil, err
	}

	assignments := []models.Assignment{}
	if err := db.Where("lesson_id = ?", lessonID).Order("id asc").Find(&assignments).Error; err != nil {
		return nil, internal(err, "failed to fetch assignments")
	}
	return assignments, nil
}
