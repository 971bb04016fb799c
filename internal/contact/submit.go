package contact

import (
	"context"
	"strings"

	"github.com/ibrahimlogs/folio/internal/canonical"
	"github.com/ibrahimlogs/folio/internal/siteapi"
)

// Sender is the part of the site API client the submission flow needs.
type Sender interface {
	SubmitContact(ctx context.Context, msg siteapi.Message) error
}

// Submit validates values against the form schema and, when clean, forwards
// exactly one message to the API. Validation failures short-circuit before
// any network call and come back as the field-error map; an upstream failure
// comes back as the error for the caller's transient toast.
func Submit(ctx context.Context, sender Sender, fields []canonical.FormField, values map[string]string) (map[string]string, error) {
	if errs := Validate(fields, values); len(errs) > 0 {
		return errs, nil
	}

	msg := siteapi.Message{
		Name:    strings.TrimSpace(values["name"]),
		Email:   strings.TrimSpace(values["email"]),
		Subject: strings.TrimSpace(values["subject"]),
		Message: strings.TrimSpace(values["message"]),
	}
	if err := sender.SubmitContact(ctx, msg); err != nil {
		return nil, err
	}
	return nil, nil
}
