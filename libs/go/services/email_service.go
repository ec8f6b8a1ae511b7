package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

var orderAlertTemplate = template.Must(template.New("order_alert").Parse(`<h2>New order #{{.OrderID}}</h2>
<table>
  <tr><td><b>Item</b></td><td>{{.ProductName}} &times; {{.Quantity}}</td></tr>
  <tr><td><b>Name</b></td><td>{{.CustomerName}}</td></tr>
  <tr><td><b>Phone</b></td><td>{{.CustomerPhone}}</td></tr>
  <tr><td><b>City</b></td><td>{{.City}}</td></tr>
  <tr><td><b>Address</b></td><td>{{.Address}}</td></tr>
  <tr><td><b>Total</b></td><td>{{.Total}} BDT</td></tr>
</table>
<p><a href="{{.AdminURL}}">Open Admin Panel</a></p>`))

// EmailService sends order alerts through Resend
type EmailService struct {
	sender    interfaces.ResendEmailSender
	fromEmail string
	fromName  string
	adminURL  string
	logger    *zap.Logger
}

// NewEmailService creates an email service backed by the Resend API
func NewEmailService(apiKey, fromEmail, fromName, adminURL string) *EmailService {
	return NewEmailServiceWithSender(resend.NewClient(apiKey).Emails, fromEmail, fromName, adminURL)
}

// NewEmailServiceWithSender creates an email service over an existing sender
func NewEmailServiceWithSender(sender interfaces.ResendEmailSender, fromEmail, fromName, adminURL string) *EmailService {
	return &EmailService{
		sender:    sender,
		fromEmail: fromEmail,
		fromName:  fromName,
		adminURL:  adminURL,
		logger:    logger.Log,
	}
}

// SendOrderAlert e-mails the new order details to an admin address
func (s *EmailService) SendOrderAlert(ctx context.Context, event events.OrderEvent, to string) error {
	if to == "" {
		return invalidf("recipient address is required")
	}

	var html bytes.Buffer
	err := orderAlertTemplate.Execute(&html, struct {
		events.OrderEvent
		Total    string
		AdminURL string
	}{event, helpers.FormatTaka(event.Total), s.adminURL})
	if err != nil {
		return fmt.Errorf("failed to render order alert: %w", err)
	}

	sent, err := s.sender.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{to},
		Subject: fmt.Sprintf("New order #%d: %s", event.OrderID, event.ProductName),
		Html:    html.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "order_alert"},
		},
	})
	if err != nil {
		s.logger.Error("failed to send order alert email",
			zap.Error(err),
			zap.Int64("order_id", event.OrderID))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("order alert email sent",
		zap.String("email_id", sent.Id),
		zap.Int64("order_id", event.OrderID))
	return nil
}
