package courseValidator

import "github.com/gofiber/fiber/v2"

type CreateQuizRequest struct {
	Title     string `json:"title" validate:"required,min=3,max=200"`
	TimeLimit *int   `json:"time_limit" validate:"omitempty,gt=0"`
}

type AddQuestionRequest struct {
	Text string `json:"text" validate:"required"`
	Type string `json:"type" validate:"omitempty,oneof=SINGLE_CHOICE MULTIPLE_CHOICE"`
}

type AddAnswerOptionRequest struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

// TakeQuizRequest carries answers keyed by question id; JSON object keys are
// decoded straight into uint.
type TakeQuizRequest struct {
	StudentID uint            `json:"student_id" validate:"required,gt=0"`
	Answers   map[uint][]uint `json:"answers"`
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(CreateQuizRequest), "validatedQuiz")
	}
}

func AddQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(AddQuestionRequest), "validatedQuestion")
	}
}

func AddAnswerOption() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(AddAnswerOptionRequest), "validatedOption")
	}
}

func TakeQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(TakeQuizRequest), "validatedAttempt")
	}
}
