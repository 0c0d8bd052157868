package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/mailer"
)

type DeliveryStatus string

const (
	DeliverySent    DeliveryStatus = "sent"
	DeliverySkipped DeliveryStatus = "skipped"
	DeliveryFailed  DeliveryStatus = "failed"
)

// Delivery is the outcome of one notification attempt. Err is set only when
// Status is DeliveryFailed.
type Delivery struct {
	Status DeliveryStatus
	Err    error
}

func (d Delivery) Sent() bool { return d.Status == DeliverySent }

type MailNotifier interface {
	NotifyContact(ctx context.Context, msg *types.Message) Delivery
}

type mailNotifier struct {
	log     *logger.Logger
	sender  mailer.Sender
	mailbox string
}

// NewMailNotifier returns a notifier that mails contact submissions to
// mailbox. A nil sender or empty mailbox makes every notification a skip.
func NewMailNotifier(log *logger.Logger, sender mailer.Sender, mailbox string) MailNotifier {
	notifierLog := log.With("service", "MailNotifier")
	if sender == nil || strings.TrimSpace(mailbox) == "" {
		notifierLog.Warn("Email service not configured; contact submissions will not be mailed")
	}
	return &mailNotifier{log: notifierLog, sender: sender, mailbox: strings.TrimSpace(mailbox)}
}

var contactEmailTemplate = template.Must(template.New("contact").Funcs(template.FuncMap{
	"lines": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
	},
}).Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<div style="background-color: #f9f9f9; padding: 15px; border-radius: 5px;">
  {{lines .Body}}
</div>
<p style="margin-top: 20px; font-size: 12px; color: #666;">
  This message was sent from your portfolio website contact form.
</p>
`))

func renderContactEmail(msg *types.Message) (html string, text string, err error) {
	var buf bytes.Buffer
	if err := contactEmailTemplate.Execute(&buf, msg); err != nil {
		return "", "", err
	}
	text = fmt.Sprintf(
		"New Contact Form Submission\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n\nThis message was sent from your portfolio website contact form.\n",
		msg.Name, msg.Email, msg.Subject, msg.Body,
	)
	return buf.String(), text, nil
}

func (mn *mailNotifier) NotifyContact(ctx context.Context, msg *types.Message) Delivery {
	if mn.sender == nil || mn.mailbox == "" {
		mn.log.Warn("Skipping contact email; email service not configured", "message_id", msg.ID)
		return Delivery{Status: DeliverySkipped}
	}

	html, text, err := renderContactEmail(msg)
	if err != nil {
		mn.log.Error("Rendering contact email failed", "message_id", msg.ID, "error", err)
		return Delivery{Status: DeliveryFailed, Err: err}
	}

	out := mailer.Message{
		From:    mn.mailbox,
		To:      mn.mailbox,
		ReplyTo: msg.Email,
		Subject: "Portfolio Contact: " + msg.Subject,
		Text:    text,
		HTML:    html,
	}
	if err := mn.sender.Send(ctx, out); err != nil {
		mn.log.Error("Sending contact email failed", "message_id", msg.ID, "error", err)
		return Delivery{Status: DeliveryFailed, Err: err}
	}
	mn.log.Info("Contact email sent", "message_id", msg.ID)
	return Delivery{Status: DeliverySent}
}
