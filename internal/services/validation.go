package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"portfolio/internal/apperror"

	"github.com/go-playground/validator/v10"
)

// emailPattern accepts local@domain with at least one dot in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email has the local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// newValidator returns a validator that reports JSON field names and knows
// the contactemail rule.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	err := v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("services: registering contactemail rule: %v", err))
	}
	return v
}

// toValidationError converts validator errors into an apperror.ValidationError
// carrying one entry per failed field.
func toValidationError(err error, message string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}
	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return &apperror.ValidationError{Message: message, Fields: fields}
}

// hasTag reports whether any failed field in err failed on tag.
func hasTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, e := range verrs {
		if e.Tag() == tag {
			return true
		}
	}
	return false
}
