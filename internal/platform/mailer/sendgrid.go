package mailer

import (
	"context"

	"github.com/yungbote/portfolio-backend/internal/platform/sendgrid"
)

// SendGridSender delivers through the SendGrid v3 API instead of SMTP.
type SendGridSender struct {
	client sendgrid.Client
}

var _ Sender = (*SendGridSender)(nil)

func NewSendGridSender(client sendgrid.Client) *SendGridSender {
	return &SendGridSender{client: client}
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	req := sendgrid.SendEmailRequest{
		From:    sendgrid.EmailAddress{Email: msg.From},
		To:      []sendgrid.EmailAddress{{Email: msg.To}},
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		req.ReplyTo = &sendgrid.EmailAddress{Email: msg.ReplyTo}
	}
	_, err := s.client.Send(ctx, req)
	return err
}
