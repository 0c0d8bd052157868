package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

// Message is a single outbound mail with a plain-text body and an optional
// HTML alternative.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var ErrUnknownService = errors.New("unknown mail service")

type Config struct {
	Service  string
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

type hostPort struct {
	host string
	port int
}

var wellKnownServices = map[string]hostPort{
	"gmail":         {"smtp.gmail.com", 465},
	"googlemail":    {"smtp.gmail.com", 465},
	"outlook":       {"smtp-mail.outlook.com", 587},
	"hotmail":       {"smtp-mail.outlook.com", 587},
	"outlook365":    {"smtp.office365.com", 587},
	"office365":     {"smtp.office365.com", 587},
	"yahoo":         {"smtp.mail.yahoo.com", 465},
	"icloud":        {"smtp.mail.me.com", 587},
	"zoho":          {"smtp.zoho.com", 465},
	"fastmail":      {"smtp.fastmail.com", 465},
	"mailgun":       {"smtp.mailgun.org", 465},
	"postmark":      {"smtp.postmarkapp.com", 2525},
	"mailjet":       {"in-v3.mailjet.com", 587},
	"brevo":         {"smtp-relay.brevo.com", 587},
	"sendinblue":    {"smtp-relay.brevo.com", 587},
	"sendgrid-smtp": {"smtp.sendgrid.net", 587},
	"ses":           {"email-smtp.us-east-1.amazonaws.com", 465},
}

func normalizeService(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ResolveSMTP picks the relay for cfg. An explicit host wins over the service
// table; an explicit port wins over the table's port.
func ResolveSMTP(cfg Config) (string, int, error) {
	host := strings.TrimSpace(cfg.Host)
	port := cfg.Port
	if host == "" {
		hp, ok := wellKnownServices[normalizeService(cfg.Service)]
		if !ok {
			return "", 0, fmt.Errorf("%w: %q", ErrUnknownService, cfg.Service)
		}
		host = hp.host
		if port <= 0 {
			port = hp.port
		}
	}
	if port <= 0 {
		port = mail.DefaultPortTLS
	}
	return host, port, nil
}

type SMTPSender struct {
	log      *logger.Logger
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(log *logger.Logger, cfg Config) (*SMTPSender, error) {
	host, port, err := ResolveSMTP(cfg)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	senderLog := log.With("client", "SMTPSender")
	senderLog.Info("SMTP mail transport configured", "host", host, "port", port)
	return &SMTPSender{
		log:      senderLog,
		host:     host,
		port:     port,
		username: cfg.Username,
		password: cfg.Password,
		timeout:  timeout,
	}, nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithTimeout(s.timeout),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
	}
	if s.port == mail.DefaultPortSSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	}
	// WithPort comes last so it overrides the port implied by the TLS options.
	return append(opts, mail.WithPort(s.port))
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMsg(msg, s.log)
	if err != nil {
		return err
	}
	client, err := mail.NewClient(s.host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// buildMsg drops an unparsable reply-to instead of failing, since it comes
// from untrusted form input.
func buildMsg(msg Message, log *logger.Logger) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	if strings.TrimSpace(msg.ReplyTo) != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			log.Warn("Dropping invalid reply-to address", "error", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}
