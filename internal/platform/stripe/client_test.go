package stripe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(logger.Nop(), Config{SecretKey: "sk_test_123", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestCreateIntent(t *testing.T) {
	var form map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment_intents" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		form = map[string]string{
			"amount":      r.PostForm.Get("amount"),
			"currency":    r.PostForm.Get("currency"),
			"description": r.PostForm.Get("description"),
			"apm":         r.PostForm.Get("automatic_payment_methods[enabled]"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc","amount":2500,"currency":"usd","status":"requires_payment_method","created":1700000000}`))
	})

	got, err := c.CreateIntent(context.Background(), CreateIntentParams{
		AmountCents: 2500,
		Currency:    "usd",
		Description: "Rage Bet deposit",
	})
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if got.ID != "pi_123" || got.ClientSecret != "pi_123_secret_abc" || got.AmountCents != 2500 {
		t.Fatalf("intent: got=%+v", got)
	}
	if form["amount"] != "2500" || form["currency"] != "usd" || form["description"] != "Rage Bet deposit" || form["apm"] != "true" {
		t.Fatalf("form: got=%v", form)
	}
}

func TestGetIntent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/payment_intents/pi_123" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","amount":1999,"currency":"usd","status":"succeeded","payment_method":"pm_abc","created":1700000001}`))
	})

	got, err := c.GetIntent(context.Background(), "pi_123")
	if err != nil {
		t.Fatalf("GetIntent: %v", err)
	}
	if got.Status != "succeeded" || got.AmountCents != 1999 || got.PaymentMethodID != "pm_abc" || got.Created != 1700000001 {
		t.Fatalf("intent: got=%+v", got)
	}
}

func TestProviderErrorCarriesMessageWithoutRetry(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such payment_intent: 'nope'"}}`))
	})

	_, err := c.GetIntent(context.Background(), "nope")
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %T (%v)", err, err)
	}
	if pe.Message != "No such payment_intent: 'nope'" || pe.HTTPStatus != http.StatusNotFound {
		t.Fatalf("ProviderError: got=%+v", pe)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("calls: got=%d want=1", n)
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := New(logger.Nop(), Config{}); err == nil {
		t.Fatalf("expected error for missing secret key")
	}
}
