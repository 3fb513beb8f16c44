package courseValidator

import "github.com/gofiber/fiber/v2"

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=TEACHER STUDENT"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreateCourseRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	CategoryID  *uint    `json:"category_id" validate:"omitempty,gt=0"`
	TeacherID   uint     `json:"teacher_id" validate:"required,gt=0"`
	Tags        []string `json:"tags" validate:"dive,required,max=50"`
}

type CreateModuleRequest struct {
	Title      string `json:"title" validate:"required,min=3,max=200"`
	OrderIndex int    `json:"order_index"`
}

type AddLessonRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=200"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
}

type CreateAssignmentRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	MaxScore    *int   `json:"max_score"`
}

// CreateUser validates a user registration body
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUserRequest)
		return bindBody(c, reqData, "validatedUser")
	}
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(CreateCategoryRequest), "validatedCategory")
	}
}

// CreateCourse validates a course creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(CreateCourseRequest), "validatedCourse")
	}
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(CreateModuleRequest), "validatedModule")
	}
}

func AddLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(AddLessonRequest), "validatedLesson")
	}
}

// CreateAssignment validates an assignment body; the max score itself is
// checked by the catalog service.
func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(CreateAssignmentRequest), "validatedAssignment")
	}
}
