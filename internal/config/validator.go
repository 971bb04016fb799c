package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ibrahimlogs/folio/internal/theme"
	folioerrors "github.com/ibrahimlogs/folio/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_key", func(fl validator.FieldLevel) bool {
			_, err := theme.ParseKey(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})
	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// Validate checks a configuration against its struct rules and reports the
// first failing field.
func Validate(cfg *Config) error {
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fmt.Sprintf("failed on rule %q", fe.Tag())
		return folioerrors.NewValidationError(fe.Namespace(), msg, err)
	}
	return folioerrors.NewValidationError("config", "invalid configuration", err)
}
