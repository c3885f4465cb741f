package contact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"time"

	"court_watch_go/config"

	"github.com/ttacon/libphonenumber"
)

var nonDigitRe = regexp.MustCompile(`\D+`)

// SMSService sends text messages through an SMS gateway REST API.
type SMSService struct {
	cfg    *config.Config
	client *http.Client
}

func NewSMSService(cfg *config.Config) *SMSService {
	return &SMSService{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type smsPayload struct {
	PhoneNumbers []string       `json:"phoneNumbers"`
	DeviceID     string         `json:"deviceId,omitempty"`
	TextMessage  smsTextMessage `json:"textMessage"`
}

type smsTextMessage struct {
	Text string `json:"text"`
}

// Send sends one SMS to a phone number, normalizing it to a country-coded
// format first.
func (s *SMSService) Send(toPhoneNumber, text string) error {
	if toPhoneNumber == "" {
		return fmt.Errorf("empty phone number")
	}

	formatted := FormatPhoneNumber(toPhoneNumber, s.cfg.SMSDefaultRegion)

	if s.cfg.SMSTestMode {
		log.Printf("[SMS] Test mode: would send to %s: %s", formatted, text)
		return nil
	}

	if s.cfg.SMSGatewayUsername == "" || s.cfg.SMSGatewayPassword == "" {
		return fmt.Errorf("SMS gateway credentials not configured")
	}

	payload, err := json.Marshal(smsPayload{
		PhoneNumbers: []string{formatted},
		DeviceID:     s.cfg.SMSDeviceID,
		TextMessage:  smsTextMessage{Text: text},
	})
	if err != nil {
		return fmt.Errorf("failed to encode SMS payload: %w", err)
	}

	endpoint := s.cfg.SMSGatewayURL + "/3rdparty/v1/messages"
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.cfg.SMSGatewayUsername, s.cfg.SMSGatewayPassword)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("SMS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("SMS gateway returned status: %d", resp.StatusCode)
	}
	return nil
}

// FormatPhoneNumber normalizes a raw phone number to E.164. Ten bare digits
// are assumed to belong to the default region; already country-coded numbers
// pass through unchanged.
func FormatPhoneNumber(raw, defaultRegion string) string {
	if defaultRegion == "" {
		defaultRegion = "IN"
	}

	num, err := libphonenumber.Parse(raw, defaultRegion)
	if err == nil && libphonenumber.IsValidNumber(num) {
		return libphonenumber.Format(num, libphonenumber.E164)
	}

	// Fallback for numbers the parser rejects: keep digits and prefix "+".
	digitsOnly := nonDigitRe.ReplaceAllString(raw, "")
	if digitsOnly == "" {
		return raw
	}
	return "+" + digitsOnly
}
