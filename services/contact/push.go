// Package contact implements the outbound notification channels: push,
// email, and SMS.
package contact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"court_watch_go/config"
)

// PushService delivers push notifications to registered device tokens through
// an FCM-compatible HTTP gateway.
type PushService struct {
	cfg    *config.Config
	client *http.Client
}

func NewPushService(cfg *config.Config) *PushService {
	return &PushService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type pushPayload struct {
	To           string           `json:"to"`
	Notification pushNotification `json:"notification"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send pushes one message to one device token. An empty token is a no-op.
func (s *PushService) Send(deviceToken, title, body string) error {
	if deviceToken == "" {
		log.Printf("[PUSH] Skipping push notification: empty token for title: %s", title)
		return nil
	}

	if s.cfg.PushTestMode {
		log.Printf("[PUSH] Test mode: would push %q to token %.12s...", title, deviceToken)
		return nil
	}

	if s.cfg.PushServerKey == "" {
		return fmt.Errorf("PUSH_SERVER_KEY not configured")
	}

	payload, err := json.Marshal(pushPayload{
		To:           deviceToken,
		Notification: pushNotification{Title: title, Body: body},
	})
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.PushGatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+s.cfg.PushServerKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push gateway returned status: %d", resp.StatusCode)
	}
	return nil
}
