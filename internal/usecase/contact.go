package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"notary-profile/internal/domain"
)

var ErrInvalidContact = errors.New("invalid contact form")

// ContactSink receives captured contact forms. Nothing is delivered.
type ContactSink interface {
	Capture(ctx context.Context, to string, form domain.ContactForm) error
}

// ContactReceipt reports what happened to a submitted form. Sent is always
// false: capture is the whole contract.
type ContactReceipt struct {
	Captured bool `json:"captured"`
	Sent     bool `json:"sent"`
}

// ValidateContact checks that all three fields are present and the address parses.
func ValidateContact(f domain.ContactForm) error {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(f.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidContact, strings.Join(missing, ", "))
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(f.Email)); err != nil {
		return fmt.Errorf("%w: email: %v", ErrInvalidContact, err)
	}
	return nil
}

// SubmitContact validates f and hands it to sink, addressed to the
// profile's work e-mail when one is known.
func SubmitContact(ctx context.Context, sink ContactSink, p *domain.Profile, f domain.ContactForm) (ContactReceipt, error) {
	if err := ValidateContact(f); err != nil {
		return ContactReceipt{}, err
	}
	to := ""
	if p != nil {
		to = p.WorkEmail
		if to == "" {
			to = p.Email
		}
	}
	if err := sink.Capture(ctx, to, f); err != nil {
		return ContactReceipt{}, fmt.Errorf("capture contact form: %w", err)
	}
	return ContactReceipt{Captured: true}, nil
}

// LogSink records captured forms as structured log entries.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Capture(ctx context.Context, to string, f domain.ContactForm) error {
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.InfoContext(ctx, "contact.captured",
		"to", to,
		"from_name", f.Name,
		"from_email", f.Email,
		"message_len", len(f.Message),
	)
	return nil
}
