// Package contact implements the contact-form flow: schema-driven
// validation, submission through the site API, and the mailto preview link.
package contact

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/ibrahimlogs/folio/internal/canonical"
)

const messageMinLength = 10

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the contact package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate checks submitted values against the form schema and returns one
// message per failing field. Required is checked on the trimmed value first;
// length and format rules only apply to non-empty values, matching the form's
// behavior of not stacking errors on an empty field.
func Validate(fields []canonical.FormField, values map[string]string) map[string]string {
	errs := make(map[string]string)

	for _, f := range fields {
		label := f.Label
		if label == "" {
			label = f.Name
		}
		val := strings.TrimSpace(values[f.Name])

		if f.Required && val == "" {
			errs[f.Name] = fmt.Sprintf("%s is required.", label)
			continue
		}
		if val == "" {
			continue
		}

		if f.Name == "message" && utf8.RuneCountInString(val) < messageMinLength {
			errs[f.Name] = "Message must be at least 10 characters."
		}
		if f.MinLength > 0 && utf8.RuneCountInString(val) < f.MinLength {
			errs[f.Name] = fmt.Sprintf("%s must be at least %d characters.", label, f.MinLength)
		}
		if f.Type == "email" {
			if err := validatorInstance().Var(val, "email"); err != nil {
				errs[f.Name] = fmt.Sprintf("%s must be a valid email address.", label)
			}
		}
	}

	return errs
}
