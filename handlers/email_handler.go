package handlers

import (
	"log"

	"github.com/chalkroute/teacher_match/notifications"
	"github.com/gofiber/fiber/v2"
)

// SendEmailRequest is the transactional relay payload. Only admins can use
// the relay endpoint.
type SendEmailRequest struct {
	To      string   `json:"to" validate:"required,email"`
	ToName  string   `json:"toName"`
	Subject string   `json:"subject" validate:"required,min=1,max=255"`
	HTML    string   `json:"html" validate:"required"`
	Text    string   `json:"text"`
	ReplyTo string   `json:"replyTo" validate:"omitempty,email"`
	From    string   `json:"from" validate:"omitempty,email"`
	Tags    []string `json:"tags"`
}

func SendEmail(c *fiber.Ctx) error {
	req := new(SendEmailRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	if notifications.EmailClient == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"success": false, "error": "Email service is not configured"})
	}

	messageID, err := notifications.EmailClient.Send(notifications.SendRequest{
		To:      req.To,
		ToName:  req.ToName,
		Subject: req.Subject,
		HTML:    req.HTML,
		Text:    req.Text,
		ReplyTo: req.ReplyTo,
		From:    req.From,
		Tags:    req.Tags,
	})
	if err != nil {
		log.Printf("🔥 Email relay failed for %s: %v", req.To, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "messageId": messageID})
}
