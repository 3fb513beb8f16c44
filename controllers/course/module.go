package controllers

import (
	"school/database"
	"school/middleware"
	"school/services"
	validators "school/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedModule").(*validators.CreateModuleRequest)

	module, err := services.NewCatalogService(database.Database.Db).
		CreateModule(c.UserContext(), courseID, reqData.Title, reqData.OrderIndex)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

func GetModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	module, err := services.NewCatalogService(database.Database.Db).GetModule(c.UserContext(), moduleID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// DeleteModule removes the module with its lessons, assignments, submissions and quiz
func DeleteModule(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)

	removed, err := services.NewLifecycleService(database.Database.Db).DeleteModule(c.UserContext(), moduleID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", removed)
}

func AddLesson(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	reqData := c.Locals("validatedLesson").(*validators.AddLessonRequest)

	lesson, err := services.NewCatalogService(database.Database.Db).
		AddLesson(c.UserContext(), moduleID, reqData.Title, reqData.Content, reqData.VideoURL)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

func GetLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	lesson, err := services.NewCatalogService(database.Database.Db).GetLesson(c.UserContext(), lessonID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

// DeleteLesson removes the lesson with its assignments and their submissions
func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	removed, err := services.NewLifecycleService(database.Database.Db).DeleteLesson(c.UserContext(), lessonID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", removed)
}
