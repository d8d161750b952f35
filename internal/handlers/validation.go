package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	v1 "github.com/zhakazx/animeinfo/api/v1"
	srvErrors "github.com/zhakazx/animeinfo/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report query parameter names instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateParams checks the validate tags of generated query parameters.
func validateParams(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return srvErrors.NewValidationError("%v", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return srvErrors.NewValidationError("%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("invalid %s %q: must be one of %s", fe.Field(), fmt.Sprint(fe.Value()), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	default:
		return fmt.Sprintf("invalid %s", fe.Field())
	}
}

func validateSearch(params v1.SearchAnimeParams) error {
	if err := validateParams(params); err != nil {
		return err
	}
	if params.MinScore != nil && params.MaxScore != nil && *params.MinScore > *params.MaxScore {
		return srvErrors.NewValidationError("min_score cannot be greater than max_score")
	}
	if params.StartDate != nil && params.EndDate != nil && *params.StartDate > *params.EndDate {
		return srvErrors.NewValidationError("start_date cannot be after end_date")
	}
	return nil
}
