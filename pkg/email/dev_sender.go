package email

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender writes emails to disk instead of delivering them, so local
// development works without Postmark credentials. One HTML file per message.
type DevSender struct {
	dir string
}

// NewDevSender creates a file-based sender. The directory is created lazily.
func NewDevSender(dir string) EmailSender {
	return &DevSender{dir: dir}
}

func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create mail directory: %v", ErrFailedToSendEmail, err)
	}

	name := fmt.Sprintf("%s_%s.html",
		time.Now().Format("2006_01_02_150405"),
		filenameSafe(params.Tag+"_"+params.SendTo),
	)

	body := fmt.Sprintf("<!-- to: %s subject: %s -->\n%s", params.SendTo, params.Subject, params.BodyHTML)
	if err := os.WriteFile(filepath.Join(d.dir, name), []byte(body), 0o644); err != nil {
		return fmt.Errorf("%w: write mail file: %v", ErrFailedToSendEmail, err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func filenameSafe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
