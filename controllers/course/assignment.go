package controllers

import (
	"time"

	"school/database"
	"school/middleware"
	"school/services"
	validators "school/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func CreateAssignment(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)
	reqData := c.Locals("validatedAssignment").(*validators.CreateAssignmentRequest)

	in := services.NewAssignment{
		Title:       reqData.Title,
		Description: reqData.Description,
		MaxScore:    reqData.MaxScore,
	}
	if reqData.DueDate != "" {
		// Format already checked by the validator
		due, err := time.Parse(time.DateOnly, reqData.DueDate)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid due date!", nil)
		}
		dueDate := datatypes.Date(due)
		in.DueDate = &dueDate
	}

	assignment, err := services.NewCatalogService(database.Database.Db).CreateAssignment(c.UserContext(), lessonID, in)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment created successfully!", assignment)
}

func GetAssignment(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(uint)

	assignment, err := services.NewCatalogService(database.Database.Db).GetAssignment(c.UserContext(), assignmentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment fetched successfully!", assignment)
}

func GetLessonAssignments(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(uint)

	assignments, err := services.NewCatalogService(database.Database.Db).ListAssignmentsByLesson(c.UserContext(), lessonID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", assignments)
}

// DeleteAssignment removes the assignment and every submission for it
func DeleteAssignment(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(uint)

	removed, err := services.NewLifecycleService(database.Database.Db).DeleteAssignment(c.UserContext(), assignmentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment deleted successfully!", removed)
}

func SubmitAssignment(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(uint)
	reqData := c.Locals("validatedSubmission").(*validators.SubmitAssignmentRequest)

	submissionID, err := services.NewSubmissionService(database.Database.Db).
		Submit(c.UserContext(), reqData.StudentID, assignmentID, reqData.Content)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment submitted successfully!", fiber.Map{
		"submission_id": submissionID,
	})
}

func GetAssignmentSubmissions(c *fiber.Ctx) error {
	assignmentID := c.Locals("assignmentID").(uint)

	submissions, err := services.NewSubmissionService(database.Database.Db).ListByAssignment(c.UserContext(), assignmentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

func GetStudentSubmissions(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	submissions, err := services.NewSubmissionService(database.Database.Db).ListByStudent(c.UserContext(), studentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", submissions)
}

// GradeSubmission overwrites score and feedback on a submission
func GradeSubmission(c *fiber.Ctx) error {
	submissionID := c.Locals("submissionID").(uint)
	reqData := c.Locals("validatedGrade").(*validators.GradeSubmissionRequest)

	submission, err := services.NewSubmissionService(database.Database.Db).
		Grade(c.UserContext(), submissionID, *reqData.Score, reqData.Feedback)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission graded successfully!", submission)
}
