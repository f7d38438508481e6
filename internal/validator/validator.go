package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern is the only accepted student phone format: local numbers
// starting with 09 or 07, ten digits total.
var phonePattern = regexp.MustCompile(`^(09|07)\d{8}$`)

// ValidPhone reports whether phone matches the accepted format.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// Validator wraps go-playground/validator with the portal's custom rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	validate := validator.New()

	v := &Validator{validate: validate}
	v.registerRules()

	return v
}

// Validate validates a struct against its validate tags.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err != nil {
		var errs ValidationErrors
		for _, fieldErr := range err.(validator.ValidationErrors) {
			errs = append(errs, ValidationError{
				Field:   fieldErr.Field(),
				Message: errorMessage(fieldErr),
				Value:   fieldErr.Value(),
				Rule:    fieldErr.Tag(),
			})
		}
		return errs
	}
	return nil
}

func (v *Validator) registerRules() {
	v.validate.RegisterValidation("student_phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Field, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// errorMessage returns user-friendly error messages.
func errorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", err.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "student_phone":
		return "must start with 09 or 07 and be 10 digits long"
	default:
		return fmt.Sprintf("validation failed for rule '%s'", err.Tag())
	}
}
