package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report the json names so messages match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// bind parses the JSON body into in and checks its validate tags.
func bind(c *fiber.Ctx, in any) error {
	if err := c.BodyParser(in); err != nil {
		return errInvalidBody
	}
	return validate.Struct(in)
}
