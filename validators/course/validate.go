package courseValidator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"school/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name so error keys match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ParamID parses a positive integer path parameter and stores it in c.Locals(local) as uint.
func ParamID(param, local, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" ID is required!", nil)
		}

		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+" ID!", nil)
		}

		c.Locals(local, uint(id))
		return c.Next()
	}
}

// bindBody parses the JSON body into req and validates it, storing it in
// c.Locals(local) on success.
func bindBody(c *fiber.Ctx, req interface{}, local string) error {
	if err := c.BodyParser(req); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if errors := validationErrors(req); len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals(local, req)
	return c.Next()
}

// validationErrors runs struct validation and returns one message per failing field.
func validationErrors(req interface{}) map[string]string {
	errors := make(map[string]string)

	err := validate.Struct(req)
	if err == nil {
		return errors
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, fe := range fieldErrors {
		errors[fe.Field()] = message(fe)
	}
	return errors
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email!", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters!", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as YYYY-MM-DD!", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL!", field)
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}
