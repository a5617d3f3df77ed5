package email

import (
	"context"
	"fmt"
	"regexp"
)

// EmailSender sends a single transactional email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes one outbound message.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty"` // Optional delivery-analytics tag.
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate rejects messages that no provider would accept.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" || !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: invalid recipient %q", ErrInvalidParams, p.SendTo)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: empty subject", ErrInvalidParams)
	}
	if p.BodyHTML == "" {
		return fmt.Errorf("%w: empty body", ErrInvalidParams)
	}
	return nil
}
