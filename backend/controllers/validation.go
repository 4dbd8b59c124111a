package controllers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"project/backend/utils"
)

var validate = validator.New()

// validateStruct returns field -> failed rule, or nil when the input is valid.
func validateStruct(input interface{}) map[string]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	errs := map[string]string{}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errs[strings.ToLower(fieldErr.Field())] = fieldErr.Tag()
	}
	return errs
}

func validationFailed(c *fiber.Ctx, errs map[string]string) error {
	return utils.ValidationError(c, errs)
}
