package validator

import (
	"corais/shared/constant"
	"corais/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-]{8,20}$`)
)

func registerPhoneValidation(field val.FieldLevel) bool {
	return phonePattern.MatchString(strings.TrimSpace(field.Field().String()))
}

func registerDateValidation(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DateOnlyFormat, field.Field().String())

	return err == nil
}

// jsonFieldName reports request fields by their wire name.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	registrations := map[string]val.Func{
		"phone":   registerPhoneValidation,
		"isodate": registerDateValidation,
	}

	for tag, fn := range registrations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value, such as a path parameter, reported as name.
func ValidateVar(name string, field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(messageFor(err, name)) //nolint:wrapcheck
	}

	return nil
}
