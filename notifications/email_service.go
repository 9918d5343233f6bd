package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/chalkroute/teacher_match/configs"
)

type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

var EmailClient *BrevoService

// SendRequest is one outbound email. To, Subject and HTML are required; the
// rest is optional and falls back to configured defaults.
type SendRequest struct {
	To      string
	ToName  string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
	From    string
	Tags    []string
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	ReplyTo     map[string]string   `json:"replyTo,omitempty"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
	TextContent string              `json:"textContent,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
}

type brevoResponse struct {
	MessageID string `json:"messageId"`
}

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
	}
	log.Println("✅ Email service initialized successfully.")
}

// Send delivers one email through the Brevo API and returns the provider's
// message id.
func (s *BrevoService) Send(req SendRequest) (string, error) {
	url := "https://api.brevo.com/v3/smtp/email"

	if req.To == "" || !strings.Contains(req.To, "@") {
		return "", fmt.Errorf("invalid recipient email: %s", req.To)
	}

	recipientName := req.ToName
	if recipientName == "" {
		recipientName = req.To[:strings.Index(req.To, "@")]
	}

	senderEmail := s.SenderEmail
	if req.From != "" {
		senderEmail = req.From
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": senderEmail},
		To:          []map[string]string{{"email": req.To, "name": recipientName}},
		Subject:     req.Subject,
		HTMLContent: req.HTML,
		TextContent: req.Text,
		Tags:        req.Tags,
	}
	if req.ReplyTo != "" {
		payload.ReplyTo = map[string]string{"email": req.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %v", err)
	}

	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	httpReq.Header.Set("accept", "application/json")
	httpReq.Header.Set("api-key", s.APIKey)
	httpReq.Header.Set("content-type", "application/json")

	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		log.Printf("Brevo API error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return "", fmt.Errorf("failed to send email via Brevo: %s", string(bodyBytes))
	}

	var parsed brevoResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		log.Printf("Could not parse Brevo response: %v", err)
	}
	return parsed.MessageID, nil
}

// SendEmail is the fire-and-forget path used by internal notifications.
func SendEmail(toName, toEmail, subject, htmlContent string) {
	if EmailClient == nil {
		log.Println("Email client not initialized, skipping email send.")
		return
	}

	_, err := EmailClient.Send(SendRequest{
		To:      toEmail,
		ToName:  toName,
		Subject: subject,
		HTML:    htmlContent,
	})
	if err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", toEmail, err)
		return
	}

	log.Printf("✅ Email sent successfully to %s", toEmail)
}
