package validator

import (
	"agency/shared/datetime"
	"agency/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

// stringRules are the custom tags for the wire formats of dates and clock times.
var stringRules = map[string]func(string) bool{
	"isodate": func(value string) bool {
		_, err := datetime.ParseDate(value)

		return err == nil
	},
	"clocktime": func(value string) bool {
		_, err := datetime.ParseClock(value)

		return err == nil
	},
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	// Messages name fields the way clients send them.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	for tag, rule := range stringRules {
		err := v.RegisterValidation(tag, func(field val.FieldLevel) bool {
			value, ok := field.Field().Interface().(string)

			return ok && rule(value)
		})
		if err != nil {
			panic(err)
		}
	}

	return v
}

// Validate decodes a JSON body into data and validates it. Both failures are 400s.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct reports the first broken rule as the message and every broken field in details.fields.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	first, fields := messages(err, "")
	if len(fields) == 0 {
		return failure.BadRequestFromString(first) //nolint:wrapcheck
	}

	return failure.BadRequestWithDetails(first, map[string]any{"fields": fields}) //nolint:wrapcheck
}

// ValidateVar checks a single value, such as a query parameter, reported under name.
func ValidateVar(name string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	first, _ := messages(err, name)

	return failure.BadRequestFromString(first) //nolint:wrapcheck
}
