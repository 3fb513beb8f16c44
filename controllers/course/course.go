package controllers

import (
	"school/database"
	"school/middleware"
	"school/services"
	validators "school/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateUser(c *fiber.Ctx) error {
	reqData := c.Locals("validatedUser").(*validators.CreateUserRequest)

	user, err := services.NewCatalogService(database.Database.Db).
		CreateUser(c.UserContext(), reqData.Name, reqData.Email, reqData.Role)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", user)
}

func CreateCategory(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCategory").(*validators.CreateCategoryRequest)

	category, err := services.NewCatalogService(database.Database.Db).CreateCategory(c.UserContext(), reqData.Name)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*validators.CreateCourseRequest)

	course, err := services.NewCatalogService(database.Database.Db).CreateCourse(c.UserContext(), services.NewCourse{
		Title:       reqData.Title,
		Description: reqData.Description,
		CategoryID:  reqData.CategoryID,
		TeacherID:   reqData.TeacherID,
		Tags:        reqData.Tags,
	})
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetCourseDetails returns a course with its category, teacher and modules
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := services.NewCatalogService(database.Database.Db).GetCourse(c.UserContext(), courseID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
