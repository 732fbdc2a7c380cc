// Package notify delivers best-effort notifications about new inquiries.
//
// The Sink interface is the seam the inquiry service depends on: callers
// invoke Notify before responding and swallow any error, so a broken mail
// server or Slack webhook can never fail a contact-form submission.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/config"
	"github.com/webnexa/api/pkg/logger"
	"github.com/webnexa/api/pkg/mail"
)

// Sink receives a notification for a freshly persisted inquiry.
type Sink interface {
	Notify(ctx context.Context, inq models.Inquiry) error
}

// FromConfig assembles the configured channels: mail when NOTIFY_EMAIL is
// set, Slack when SLACK_WEBHOOK_URL is set. With neither, notifications are
// dropped silently.
func FromConfig() Sink {
	var sinks []Sink
	if addr := config.NotifyEmail(); addr != "" {
		sinks = append(sinks, &MailSink{To: addr})
	}
	if url := config.SlackWebhookURL(); url != "" {
		sinks = append(sinks, &SlackSink{WebhookURL: url})
	}
	return MultiSink(sinks)
}

// ─── Mail channel ─────────────────────────────────────────────────────────────

// MailSink emails each inquiry to a fixed admin address via pkg/mail.
type MailSink struct {
	To string
}

func (s *MailSink) Notify(_ context.Context, inq models.Inquiry) error {
	subject := fmt.Sprintf("New contact form submission from %s", inq.Name)
	return mail.To(s.To).
		Subject(subject).
		Body(inquiryHTML(inq)).
		Send()
}

func inquiryHTML(inq models.Inquiry) string {
	field := func(label, value string) string {
		if value == "" {
			value = "Not provided"
		}
		return fmt.Sprintf("<p><strong>%s:</strong> %s</p>", label, html.EscapeString(value))
	}

	return fmt.Sprintf(`<div style="max-width:600px;margin:0 auto;font-family:sans-serif">
<h2>New Contact Form Submission</h2>
%s%s%s%s
<p><strong>Submitted:</strong> %s</p>
<div style="border-left:4px solid #1C5D99;padding-left:12px">
<h3>Message</h3>
<p style="white-space:pre-wrap">%s</p>
</div>
</div>`,
		field("Name", inq.Name),
		field("Email", inq.Email),
		field("Phone", inq.Phone),
		field("Service", inq.Service),
		inq.SubmittedAt.Format("January 2, 2006 at 3:04 PM"),
		html.EscapeString(inq.Message),
	)
}

// ─── Slack channel ────────────────────────────────────────────────────────────

// SlackSink posts each inquiry to a Slack incoming webhook.
type SlackSink struct {
	WebhookURL string
	Client     *http.Client
}

type slackPayload struct {
	Text string `json:"text"`
}

func (s *SlackSink) Notify(ctx context.Context, inq models.Inquiry) error {
	if s.WebhookURL == "" {
		return fmt.Errorf("notify: slack webhook URL not configured")
	}

	payload := slackPayload{
		Text: fmt.Sprintf("New inquiry from %s <%s>: %s", inq.Name, inq.Email, inq.Message),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify: slack marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("notify: slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: slack post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notify: slack returned HTTP %d", resp.StatusCode)
	}
	return nil
}

// ─── Fan-out ──────────────────────────────────────────────────────────────────

// MultiSink fans out to every channel. Per-channel failures are logged and
// collected into one error; the caller decides whether to care.
type MultiSink []Sink

func (m MultiSink) Notify(ctx context.Context, inq models.Inquiry) error {
	var failed int
	for _, s := range m {
		if err := s.Notify(ctx, inq); err != nil {
			logger.WithCtx(ctx).Error("notify: channel failed", "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("notify: %d of %d channels failed", failed, len(m))
	}
	return nil
}
