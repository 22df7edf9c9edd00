package appupdate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Notification is the payload posted when a store publishes a newer version.
type Notification struct {
	Content   string
	Username  string
	AvatarURL string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// WebhookNotifier posts form-encoded notifications to a Discord-style webhook.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

func NewWebhookNotifier(webhookURL string, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &WebhookNotifier{url: webhookURL, client: &http.Client{Timeout: timeout}}
}

func (w *WebhookNotifier) Notify(ctx context.Context, n Notification) error {
	form := url.Values{}
	form.Set("content", n.Content)
	form.Set("username", n.Username)
	form.Set("avatar_url", n.AvatarURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
			return fmt.Errorf("webhook status=%d body=%s", resp.StatusCode, trimmed)
		}
		return fmt.Errorf("webhook status=%d", resp.StatusCode)
	}
	return nil
}
