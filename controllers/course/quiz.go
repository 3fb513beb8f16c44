package controllers

import (
	"school/database"
	"school/middleware"
	"school/services"
	validators "school/validators/course"

	"github.com/gofiber/fiber/v2"
)

func CreateQuiz(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(uint)
	reqData := c.Locals("validatedQuiz").(*validators.CreateQuizRequest)

	quiz, err := services.NewQuizService(database.Database.Db).
		CreateQuiz(c.UserContext(), moduleID, reqData.Title, reqData.TimeLimit)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// GetQuiz returns the quiz with questions and options
func GetQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)

	quiz, err := services.NewQuizService(database.Database.Db).GetQuiz(c.UserContext(), quizID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

func AddQuestion(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)
	reqData := c.Locals("validatedQuestion").(*validators.AddQuestionRequest)

	question, err := services.NewQuizService(database.Database.Db).
		AddQuestion(c.UserContext(), quizID, reqData.Text, reqData.Type)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question added successfully!", question)
}

func AddAnswerOption(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(uint)
	reqData := c.Locals("validatedOption").(*validators.AddAnswerOptionRequest)

	option, err := services.NewQuizService(database.Database.Db).
		AddAnswerOption(c.UserContext(), questionID, reqData.Text, reqData.IsCorrect)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Answer option added successfully!", option)
}

// TakeQuiz scores an attempt and records it; every attempt is kept
func TakeQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)
	reqData := c.Locals("validatedAttempt").(*validators.TakeQuizRequest)

	submission, err := services.NewQuizService(database.Database.Db).
		TakeQuiz(c.UserContext(), reqData.StudentID, quizID, services.AnswerSheet(reqData.Answers))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz submitted!", submission)
}

func GetQuizSubmissions(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(uint)

	submissions, err := services.NewQuizService(database.Database.Db).SubmissionsByQuiz(c.UserContext(), quizID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submissions fetched successfully!", submissions)
}

func GetStudentQuizSubmissions(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(uint)

	submissions, err := services.NewQuizService(database.Database.Db).SubmissionsByStudent(c.UserContext(), studentID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submissions fetched successfully!", submissions)
}
