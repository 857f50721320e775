package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var templates = map[string]string{
	"required":  "{field} is required",
	"gte":       "{field} must be greater than or equal to {param}",
	"lte":       "{field} must be less than or equal to {param}",
	"oneof":     "{field} must be one of {param}",
	"max":       "{field} must be at most {param} characters",
	"min":       "{field} must be at least {param} characters",
	"email":     "{field} must be a valid email address",
	"isodate":   "{field} must be a date in YYYY-MM-DD format",
	"clocktime": "{field} must be a time such as 09:00 or 9:00 AM",
}

func describe(fieldErr val.FieldError, name string) string {
	field := fieldErr.Field()
	if name != "" {
		field = name
	}

	tmpl, ok := templates[fieldErr.Tag()]
	if !ok {
		return field + " is invalid"
	}

	return strings.NewReplacer("{field}", field, "{param}", fieldErr.Param()).Replace(tmpl)
}

// messages renders the first failure and a per-field map. name overrides the field name for single values.
func messages(err error, name string) (string, map[string]string) {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(fieldErrs))

	for _, fieldErr := range fieldErrs {
		if field := fieldErr.Field(); field != "" {
			if _, seen := fields[field]; !seen {
				fields[field] = describe(fieldErr, name)
			}
		}
	}

	return describe(fieldErrs[0], name), fields
}
