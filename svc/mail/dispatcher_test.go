package mail

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkvaulthq/linkvault/pkg/email"
)

type captureSender struct {
	mu   sync.Mutex
	sent []email.SendEmailParams
	err  error
}

func (s *captureSender) SendEmail(_ context.Context, params email.SendEmailParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, params)
	return nil
}

func (s *captureSender) all() []email.SendEmailParams {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]email.SendEmailParams(nil), s.sent...)
}

func testDispatcherConfig() Config {
	return Config{
		AppName:   "LinkVault",
		Workers:   2,
		QueueSize: 16,
		BaseURL:   "http://localhost:8080",
		ClientURL: "http://localhost:3000",
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestDispatcherDelivers(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	d := NewDispatcher(sender, testDispatcherConfig())
	d.Start(context.Background())
	defer d.Stop()

	d.SendVerificationEmail("al@example.com", "Al", "123456")
	d.SendWelcomeEmail("al@example.com", "Al")
	d.SendPasswordResetEmail("al@example.com", "Al", "deadbeef")

	waitFor(t, func() bool { return len(sender.all()) == 3 })

	byTag := map[string]email.SendEmailParams{}
	for _, p := range sender.all() {
		byTag[p.Tag] = p
	}

	verification := byTag["verification"]
	assert.Equal(t, "al@example.com", verification.SendTo)
	assert.Equal(t, "Verify your email address", verification.Subject)
	assert.Contains(t, verification.BodyHTML, "http://localhost:8080/api/auth/verify-email/123456")

	welcome := byTag["welcome"]
	assert.Equal(t, "Welcome to LinkVault", welcome.Subject)
	assert.Contains(t, welcome.BodyHTML, "Hi Al")

	reset := byTag["password_reset"]
	assert.Equal(t, "Reset your password", reset.Subject)
	assert.Contains(t, reset.BodyHTML, "http://localhost:3000/reset-password/deadbeef")
}

func TestDispatcherSwallowsDeliveryFailures(t *testing.T) {
	t.Parallel()

	sender := &captureSender{err: errors.New("provider down")}
	d := NewDispatcher(sender, testDispatcherConfig())
	d.Start(context.Background())

	// Enqueue never returns an error, and Stop drains cleanly even when
	// every delivery fails.
	d.SendVerificationEmail("al@example.com", "Al", "123456")
	d.Stop()
	assert.Empty(t, sender.all())
}

func TestDispatcherFullQueueDoesNotBlock(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	cfg := testDispatcherConfig()
	cfg.QueueSize = 1
	d := NewDispatcher(sender, cfg)
	// Not started: the queue can only hold one message.

	done := make(chan struct{})
	go func() {
		for range 10 {
			d.SendWelcomeEmail("al@example.com", "Al")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on full queue")
	}
}

func TestComposeEscapesUserInput(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(&captureSender{}, testDispatcherConfig())
	_, body, err := d.compose(message{
		Kind:  kindWelcome,
		Email: "al@example.com",
		Name:  `<script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
