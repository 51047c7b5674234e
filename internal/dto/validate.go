package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidationError reports a request rejected before it reaches a store.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Message: message, Fields: map[string]string{field: message}}
}

var fieldMessages = map[string]string{
	"categoryName.notblank":      "Category name must not be empty.",
	"recyclingTip.notblank":      "Tip must not be blank.",
	"disposalGuideline.notblank": "Disposal guideline must not be blank.",
	"disposalGuideline.max":      "Disposal guideline must be at most 255 characters.",
	"wasteCategoryId.required":   "Waste category ID must not be null.",
}

// Validate checks a request struct against its validate tags and returns a
// *ValidationError describing every failing field.
func Validate(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s failed on the '%s' rule.", fe.Field(), fe.Tag())
		}
		verr.Fields[fe.Field()] = msg
		messages = append(messages, msg)
	}
	verr.Message = strings.Join(messages, " ")
	return verr
}
