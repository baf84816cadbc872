package digest

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Mailer interface {
	Send(subject, htmlBody string) error
}

type SendGridMailer struct {
	client    *sendgrid.Client
	sender    string
	recipient string
}

func NewSendGridMailer(apiKey, sender, recipient string) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		sender:    sender,
		recipient: recipient,
	}
}

func (m *SendGridMailer) Send(subject, htmlBody string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail("", m.sender),
		subject,
		mail.NewEmail("", m.recipient),
		"",
		htmlBody,
	)

	resp, err := m.client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
