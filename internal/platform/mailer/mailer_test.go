package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/sendgrid"
)

func TestResolveSMTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Config
		wantHost string
		wantPort int
		wantErr  error
	}{
		{name: "gmail", cfg: Config{Service: "gmail"}, wantHost: "smtp.gmail.com", wantPort: 465},
		{name: "case insensitive", cfg: Config{Service: " Outlook "}, wantHost: "smtp-mail.outlook.com", wantPort: 587},
		{name: "explicit port", cfg: Config{Service: "gmail", Port: 587}, wantHost: "smtp.gmail.com", wantPort: 587},
		{name: "explicit host", cfg: Config{Service: "custom", Host: "mail.example.com", Port: 2525}, wantHost: "mail.example.com", wantPort: 2525},
		{name: "explicit host default port", cfg: Config{Host: "mail.example.com"}, wantHost: "mail.example.com", wantPort: 587},
		{name: "unknown", cfg: Config{Service: "carrier-pigeon"}, wantErr: ErrUnknownService},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			host, port, err := ResolveSMTP(tc.cfg)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err: got=%v want=%v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveSMTP: %v", err)
			}
			if host != tc.wantHost || port != tc.wantPort {
				t.Fatalf("got=%s:%d want=%s:%d", host, port, tc.wantHost, tc.wantPort)
			}
		})
	}
}

func TestBuildMsg(t *testing.T) {
	t.Parallel()

	m, err := buildMsg(Message{
		From:    "me@example.com",
		To:      "me@example.com",
		ReplyTo: "visitor@example.com",
		Subject: "Portfolio Contact: Hello",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	}, logger.Nop())
	if err != nil {
		t.Fatalf("buildMsg: %v", err)
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	raw := buf.String()
	for _, want := range []string{
		"Subject: Portfolio Contact: Hello",
		"Reply-To: <visitor@example.com>",
		"text/plain",
		"text/html",
		"plain body",
		"<p>html body</p>",
	} {
		if !strings.Contains(raw, want) {
			t.Fatalf("rendered message missing %q:\n%s", want, raw)
		}
	}
}

func TestBuildMsgDropsInvalidReplyTo(t *testing.T) {
	t.Parallel()

	m, err := buildMsg(Message{
		From:    "me@example.com",
		To:      "me@example.com",
		ReplyTo: "not an address",
		Subject: "s",
		Text:    "t",
	}, logger.Nop())
	if err != nil {
		t.Fatalf("buildMsg: %v", err)
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if strings.Contains(buf.String(), "Reply-To") {
		t.Fatalf("expected no Reply-To header:\n%s", buf.String())
	}
}

func TestBuildMsgRejectsBadFrom(t *testing.T) {
	t.Parallel()
	if _, err := buildMsg(Message{From: "nope", To: "me@example.com"}, logger.Nop()); err == nil {
		t.Fatalf("expected error for invalid from address")
	}
}

type fakeSendGrid struct {
	got sendgrid.SendEmailRequest
	err error
}

func (f *fakeSendGrid) Send(ctx context.Context, req sendgrid.SendEmailRequest) (*sendgrid.SendEmailResult, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &sendgrid.SendEmailResult{StatusCode: 202}, nil
}

func TestSendGridSender(t *testing.T) {
	t.Parallel()

	fake := &fakeSendGrid{}
	s := NewSendGridSender(fake)
	err := s.Send(context.Background(), Message{
		From:    "me@example.com",
		To:      "me@example.com",
		ReplyTo: "visitor@example.com",
		Subject: "Portfolio Contact: Hi",
		Text:    "t",
		HTML:    "<p>t</p>",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if fake.got.ReplyTo == nil || fake.got.ReplyTo.Email != "visitor@example.com" {
		t.Fatalf("reply-to: got=%+v", fake.got.ReplyTo)
	}
	if len(fake.got.To) != 1 || fake.got.To[0].Email != "me@example.com" {
		t.Fatalf("to: got=%+v", fake.got.To)
	}

	fake.err = errors.New("boom")
	if err := s.Send(context.Background(), Message{From: "a@b.c", To: "a@b.c"}); err == nil {
		t.Fatalf("expected transport error to propagate")
	}
}
