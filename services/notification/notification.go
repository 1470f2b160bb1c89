package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jdservices/config"
	"jdservices/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// Sender delivers notification emails to the company inbox.
type Sender interface {
	SendLeadAlert(ctx context.Context, sub models.EstimateSubmission) error
	SendContactMessage(ctx context.Context, msg models.ContactMessage) error
}

// ResendSender is the production implementation over the Resend HTTP API.
type ResendSender struct {
	apiKey       string
	fromEmail    string
	companyEmail string
	httpClient   *http.Client
}

func NewResendSender() *ResendSender {
	return &ResendSender{
		apiKey:       config.AppConfig.ResendAPIKey,
		fromEmail:    config.AppConfig.FromEmail,
		companyEmail: config.AppConfig.CompanyEmail,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SendLeadAlert emails the company about a new estimate or visit request.
func (s *ResendSender) SendLeadAlert(ctx context.Context, sub models.EstimateSubmission) error {
	subject := fmt.Sprintf("New %s lead: %s", sub.Service, sub.Contact.Name)

	var details strings.Builder
	fmt.Fprintf(&details, "<p><strong>%s</strong> requested a %s %s.</p>", sub.Contact.Name, sub.Service, sub.Type)
	fmt.Fprintf(&details, "<p>Email: %s<br>Phone: %s</p>", sub.Contact.Email, sub.Contact.Phone)
	fmt.Fprintf(&details, "<p>Address: %s, %s</p>", sub.Address, sub.ZipCode)
	if sub.NeedsMeasurement {
		details.WriteString("<p><strong>Needs on-site measurement.</strong></p>")
	}
	if sub.Price != nil {
		fmt.Fprintf(&details, "<p>Estimate: $%.2f (%g sq ft)</p>", *sub.Price, sub.TotalSqFt)
	}
	if sub.RoomDetails != "" {
		fmt.Fprintf(&details, "<p>Rooms: %s</p>", sub.RoomDetails)
	}
	if sub.Contact.Observations != "" {
		fmt.Fprintf(&details, "<p>Notes: %s</p>", sub.Contact.Observations)
	}

	return s.send(ctx, subject, details.String(), sub.Contact.Email)
}

// SendContactMessage forwards a contact-form message.
func (s *ResendSender) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	subject := fmt.Sprintf("New contact form submission from %s", msg.Name)
	html := fmt.Sprintf(
		"<p><strong>%s</strong> (%s, %s) wrote:</p><p>%s</p>",
		msg.Name, msg.Email, msg.Phone, msg.Message,
	)
	return s.send(ctx, subject, html, msg.Email)
}

func (s *ResendSender) send(ctx context.Context, subject, html, replyTo string) error {
	if s.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if s.companyEmail == "" {
		return fmt.Errorf("COMPANY_EMAIL not configured")
	}

	payload := map[string]interface{}{
		"from":     fmt.Sprintf("JD Services <%s>", s.fromEmail),
		"to":       []string{s.companyEmail},
		"subject":  subject,
		"html":     html,
		"reply_to": replyTo,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}
