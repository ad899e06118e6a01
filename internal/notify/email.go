package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mroshb/edu_admissions/internal/models"
	"github.com/mroshb/edu_admissions/pkg/logger"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailMessage is a single outgoing email.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
	HTML    string
}

type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SendGridSender delivers email through the SendGrid v3 API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", msg.To)

	htmlBody := msg.HTML
	if htmlBody == "" {
		htmlBody = html.EscapeString(msg.Body)
	}

	response, err := s.client.SendWithContext(ctx, mail.NewSingleEmail(from, msg.Subject, to, msg.Body, htmlBody))
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		logger.Error("SendGrid returned error status", "status", response.StatusCode, "body", response.Body, "to", msg.To)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// EmailNotifier mails the application summary to the admissions inbox.
type EmailNotifier struct {
	sender EmailSender
	to     string
}

func NewEmailNotifier(sender EmailSender, to string) *EmailNotifier {
	return &EmailNotifier{sender: sender, to: to}
}

var plainText = bluemonday.StrictPolicy()

func (n *EmailNotifier) ApplicationSubmitted(ctx context.Context, app *models.Application, university *models.University, specialization *models.Specialization) error {
	summary := FormatApplication(app, university, specialization)

	subject := "طلب التحاق جديد " + app.ReferenceCode
	if university != nil {
		subject += " - " + university.LocalizedName(models.LocaleAR)
	}

	msg := EmailMessage{
		To:      n.to,
		Subject: subject,
		Body:    html.UnescapeString(plainText.Sanitize(summary)),
		HTML:    `<div dir="rtl">` + strings.ReplaceAll(summary, "\n", "<br>\n") + `</div>`,
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to email application notification: %w", err)
	}
	return nil
}
