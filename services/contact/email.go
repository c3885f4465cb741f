package contact

import (
	"fmt"
	"html"
	"log"
	"strings"

	"court_watch_go/config"

	"github.com/resend/resend-go/v2"
)

// EmailService sends hearing alert emails through the Resend API.
type EmailService struct {
	cfg *config.Config
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{cfg: cfg}
}

// Send sends one plain-text email. In test mode the message is logged instead
// of sent.
func (s *EmailService) Send(toAddress, subject, body string) error {
	if toAddress == "" {
		return fmt.Errorf("empty recipient address")
	}

	if s.cfg.EmailTestMode {
		logEmailToConsole(toAddress, subject, body)
		return nil
	}

	if s.cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(s.cfg.ResendAPIKey)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.cfg.EmailFromName, s.cfg.EmailFrom),
		To:      []string{toAddress},
		Subject: subject,
		Html:    textToHTML(body),
		Text:    body,
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func logEmailToConsole(to, subject, body string) {
	log.Println("========== EMAIL (development mode) ==========")
	log.Printf("To: %s", to)
	log.Printf("Subject: %s", subject)
	log.Printf("Body:\n%s", body)
	log.Println("==============================================")
}

// textToHTML wraps a plain-text body in a minimal HTML shell so line breaks
// survive HTML mail clients.
func textToHTML(text string) string {
	escaped := html.EscapeString(text)
	return "<div>" + strings.ReplaceAll(escaped, "\n", "<br>\n") + "</div>"
}
