package courseValidator

import "github.com/gofiber/fiber/v2"

type SubmitAssignmentRequest struct {
	StudentID uint   `json:"student_id" validate:"required,gt=0"`
	Content   string `json:"content" validate:"required"`
}

// GradeSubmissionRequest leaves the score range to the grading rules so a
// negative or too-high score is reported as a bad request, not a shape error.
type GradeSubmissionRequest struct {
	Score    *int   `json:"score" validate:"required"`
	Feedback string `json:"feedback" validate:"max=5000"`
}

func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(SubmitAssignmentRequest), "validatedSubmission")
	}
}

func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(GradeSubmissionRequest), "validatedGrade")
	}
}
