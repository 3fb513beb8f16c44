package controllers

import (
	"school/database"
	"school/middleware"
	"school/services"
	validators "school/validators/course"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("validatedEnrollment").(*validators.EnrollRequest)

	enrollmentID, err := services.NewEnrollmentService(database.Database.Db).
		Enroll(c.UserContext(), courseID, reqData.StudentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", fiber.Map{
		"enrollment_id": enrollmentID,
	})
}

// UnenrollFromCourse reports 404 when the student was not enrolled
func UnenrollFromCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	studentID := c.Locals("studentID").(uint)

	removed, err := services.NewEnrollmentService(database.Database.Db).Unenroll(c.UserContext(), courseID, studentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if !removed {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student is not enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unenrolled from course successfully!", nil)
}

func GetCourseStudents(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	students, err := services.NewEnrollmentService(database.Database.Db).StudentsForCourse(c.UserContext(), courseID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}

func GetStudentCourses(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	courses, err := services.NewEnrollmentService(database.Database.Db).CoursesForStudent(c.UserContext(), studentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}
