package courseValidator

import "github.com/gofiber/fiber/v2"

type EnrollRequest struct {
	StudentID uint `json:"student_id" validate:"required,gt=0"`
}

// EnrollCourse validates the enrollment body; the course id comes from the path.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return bindBody(c, new(EnrollRequest), "validatedEnrollment")
	}
}
