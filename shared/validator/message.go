package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be at most {param} characters",
		"min":      "{field} must be at least {param}",
		"email":    "{field} must be a valid email address",
		"uuid":     "{field} must be a valid UUID",
		"phone":    "{field} must be a valid phone number",
		"isodate":  "{field} must be a date in the format yyyy-MM-dd",
	}
)

func message(err error) string {
	return messageFor(err, "")
}

// messageFor names the field when the error carries none, as with Var.
func messageFor(err error, name string) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		errStr := messages[valErr.Tag()]
		if errStr == "" {
			continue
		}

		field := valErr.Field()
		if field == "" {
			field = name
		}

		errStr = strings.ReplaceAll(errStr, "{field}", field)
		errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

		return errStr
	}

	return valErrors.Error()
}
