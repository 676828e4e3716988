package validator

import (
	"errors"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"

	"stayadmin/shared/constant"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"isodate":     "{field} must be a calendar date in YYYY-MM-DD format",
		"mimetypes":   "{field} must be one of the following types: {param}",
		"maxfilesize": "{field} must be smaller than {param} MB",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := ""
			field := valErr.Field()
			param := valErr.Param()

			errStr = messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}

func parseISODate(value string) (time.Time, error) {
	return time.Parse(constant.CalendarDateFormat, value) //nolint:wrapcheck
}
