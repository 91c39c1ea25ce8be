package form

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator with the list rules registered.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// hasvalue: a ListField with at least one non-blank entry.
		_ = validate.RegisterValidation("hasvalue", func(fl validator.FieldLevel) bool {
			f, ok := fl.Field().Interface().(ListField)
			return ok && len(f.Values()) > 0
		})
	})
	return validate
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Draft  string
	Fields []string
	cause  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Draft, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return e.cause }

func check(draft string, v interface{}) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %s: %w", draft, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return &ValidationError{Draft: draft, Fields: fields, cause: err}
}
