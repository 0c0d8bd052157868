package app

import (
	"fmt"
	"strings"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/mailer"
	"github.com/yungbote/portfolio-backend/internal/platform/sendgrid"
	"github.com/yungbote/portfolio-backend/internal/platform/stripe"
	"github.com/yungbote/portfolio-backend/internal/platform/uploads"
)

type Clients struct {
	Mailer  mailer.Sender
	Mailbox string
	Stripe  stripe.Client
	Uploads uploads.Store
}

// wireMailer returns a nil sender when email is not configured or its
// transport cannot be built; contact submissions are still stored then.
func wireMailer(log *logger.Logger, cfg Config) mailer.Sender {
	if !cfg.EmailConfigured() {
		log.Warn("Email not configured; contact notifications disabled")
		return nil
	}
	sender, err := newMailSender(log, cfg)
	if err != nil {
		log.Warn("Email transport unavailable; contact notifications disabled", "error", err)
		return nil
	}
	return sender
}

func newMailSender(log *logger.Logger, cfg Config) (mailer.Sender, error) {
	if strings.EqualFold(strings.TrimSpace(cfg.EmailService), "sendgrid") {
		client, err := sendgrid.New(log, sendgrid.Config{
			APIKey:  cfg.EmailPassword,
			BaseURL: cfg.SendGridBaseURL,
			Timeout: cfg.EmailTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("init sendgrid client: %w", err)
		}
		return mailer.NewSendGridSender(client), nil
	}
	sender, err := mailer.NewSMTPSender(log, mailer.Config{
		Service:  cfg.EmailService,
		Host:     cfg.EmailSMTPHost,
		Port:     cfg.EmailSMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPassword,
		Timeout:  cfg.EmailTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init smtp sender: %w", err)
	}
	return sender, nil
}

func wireStripe(log *logger.Logger, cfg Config) (stripe.Client, error) {
	if !cfg.StripeConfigured() {
		return nil, nil
	}
	client, err := stripe.New(log, stripe.Config{
		SecretKey: cfg.StripeSecretKey,
		BaseURL:   cfg.StripeAPIBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init stripe client: %w", err)
	}
	return client, nil
}

func wireClients(log *logger.Logger, cfg Config, store uploads.Store) (Clients, error) {
	log.Info("Wiring clients...")

	sender := wireMailer(log, cfg)
	sc, err := wireStripe(log, cfg)
	if err != nil {
		return Clients{}, err
	}
	return Clients{
		Mailer:  sender,
		Mailbox: strings.TrimSpace(cfg.EmailUser),
		Stripe:  sc,
		Uploads: store,
	}, nil
}
