package mail

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/linkvaulthq/linkvault/pkg/email"
	"github.com/linkvaulthq/linkvault/pkg/logger"
)

type messageKind string

const (
	kindVerification messageKind = "verification"
	kindWelcome      messageKind = "welcome"
	kindReset        messageKind = "password_reset"
)

type message struct {
	ID    uuid.UUID
	Kind  messageKind
	Email string
	Name  string
	Token string
}

// Dispatcher delivers transactional email off the request path. Send methods
// only enqueue; a worker pool drains the queue and talks to the sender.
// Delivery failures are logged and never reach the caller.
type Dispatcher struct {
	sender email.EmailSender
	cfg    Config
	log    *slog.Logger

	queue chan message
	wg    sync.WaitGroup
	stop  sync.Once
}

// Option configures the dispatcher.
type Option func(*Dispatcher)

// WithLogger supplies a logger; a noop logger is used otherwise.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// NewDispatcher creates a dispatcher. Start must be called before messages
// are delivered.
func NewDispatcher(sender email.EmailSender, cfg Config, opts ...Option) *Dispatcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 128
	}
	d := &Dispatcher{
		sender: sender,
		cfg:    cfg,
		queue:  make(chan message, cfg.QueueSize),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}
	d.log = d.log.With(logger.Component("mail"))
	return d
}

// Start launches the worker pool. Workers exit when the context is canceled
// or Stop closes the queue.
func (d *Dispatcher) Start(ctx context.Context) {
	for range d.cfg.Workers {
		d.wg.Add(1)
		go d.worker(ctx)
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	d.stop.Do(func() { close(d.queue) })
	d.wg.Wait()
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-d.queue:
			if !ok {
				return
			}
			d.deliver(ctx, msg)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg message) {
	subject, body, err := d.compose(msg)
	if err != nil {
		d.log.ErrorContext(ctx, "compose email failed",
			logger.Error(err), logger.Event(string(msg.Kind)))
		return
	}
	err = d.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   msg.Email,
		Subject:  subject,
		BodyHTML: body,
		Tag:      string(msg.Kind),
	})
	if err != nil {
		d.log.ErrorContext(ctx, "email delivery failed",
			logger.Error(err), logger.Event(string(msg.Kind)), logger.Email(msg.Email))
		return
	}
	d.log.InfoContext(ctx, "email delivered",
		logger.Event(string(msg.Kind)), logger.Email(msg.Email))
}

func (d *Dispatcher) compose(msg message) (subject, body string, err error) {
	data := templateData{
		AppName: d.cfg.AppName,
		Name:    msg.Name,
		Token:   msg.Token,
	}
	var tmpl *template.Template
	switch msg.Kind {
	case kindVerification:
		data.Link = fmt.Sprintf("%s/api/auth/verify-email/%s",
			strings.TrimRight(d.cfg.BaseURL, "/"), msg.Token)
		subject = "Verify your email address"
		tmpl = verificationTmpl
	case kindWelcome:
		subject = fmt.Sprintf("Welcome to %s", d.cfg.AppName)
		tmpl = welcomeTmpl
	case kindReset:
		data.Link = fmt.Sprintf("%s/reset-password/%s",
			strings.TrimRight(d.cfg.ClientURL, "/"), msg.Token)
		subject = "Reset your password"
		tmpl = resetTmpl
	default:
		return "", "", fmt.Errorf("unknown message kind %q", msg.Kind)
	}
	body, err = render(tmpl, data)
	return subject, body, err
}

func (d *Dispatcher) enqueue(msg message) {
	msg.ID = uuid.New()
	select {
	case d.queue <- msg:
	default:
		// The request path must not block on a full queue.
		d.log.Error("mail queue full, message dropped",
			logger.Event(string(msg.Kind)), logger.Email(msg.Email))
	}
}

// SendVerificationEmail enqueues the email-ownership challenge message.
func (d *Dispatcher) SendVerificationEmail(emailAddr, name, token string) {
	d.enqueue(message{Kind: kindVerification, Email: emailAddr, Name: name, Token: token})
}

// SendWelcomeEmail enqueues the post-verification welcome message.
func (d *Dispatcher) SendWelcomeEmail(emailAddr, name string) {
	d.enqueue(message{Kind: kindWelcome, Email: emailAddr, Name: name})
}

// SendPasswordResetEmail enqueues the reset-link message.
func (d *Dispatcher) SendPasswordResetEmail(emailAddr, name, token string) {
	d.enqueue(message{Kind: kindReset, Email: emailAddr, Name: name, Token: token})
}
