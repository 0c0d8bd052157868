package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/yungbote/portfolio-backend/internal/platform/ctxutil"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type Config struct {
	SecretKey string
	// BaseURL overrides the API endpoint, e.g. for stripe-mock.
	BaseURL string
	Timeout time.Duration
}

type CreateIntentParams struct {
	AmountCents int64
	Currency    string
	Description string
}

type Intent struct {
	ID              string
	ClientSecret    string
	Status          string
	AmountCents     int64
	Currency        string
	PaymentMethodID string
	Created         int64
}

type Client interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
}

// ProviderError carries the provider's own message text.
type ProviderError struct {
	HTTPStatus int
	Code       string
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e == nil {
		return "stripe: <nil error>"
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

type client struct {
	log     *logger.Logger
	intents paymentintent.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	key := strings.TrimSpace(cfg.SecretKey)
	if key == "" {
		return nil, fmt.Errorf("missing stripe secret key")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	clientLog := log.With("client", "StripeClient")

	backendCfg := &stripego.BackendConfig{
		HTTPClient:        &http.Client{Timeout: cfg.Timeout},
		LeveledLogger:     clientLog,
		MaxNetworkRetries: stripego.Int64(0),
	}
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		backendCfg.URL = stripego.String(base)
	}
	backend := stripego.GetBackendWithConfig(stripego.APIBackend, backendCfg)

	return &client{
		log:     clientLog,
		intents: paymentintent.Client{B: backend, Key: key},
	}, nil
}

func (c *client) CreateIntent(ctx context.Context, p CreateIntentParams) (*Intent, error) {
	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(p.AmountCents),
		Currency: stripego.String(p.Currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	if p.Description != "" {
		params.Description = stripego.String(p.Description)
	}
	params.Context = ctxutil.Default(ctx)

	pi, err := c.intents.New(params)
	if err != nil {
		return nil, wrapError(err)
	}
	c.log.Info("Created payment intent", "payment_intent", pi.ID, "amount_cents", pi.Amount)
	return toIntent(pi), nil
}

func (c *client) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripego.PaymentIntentParams{}
	params.Context = ctxutil.Default(ctx)

	pi, err := c.intents.Get(id, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return toIntent(pi), nil
}

func toIntent(pi *stripego.PaymentIntent) *Intent {
	out := &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		AmountCents:  pi.Amount,
		Currency:     string(pi.Currency),
		Created:      pi.Created,
	}
	if pi.PaymentMethod != nil {
		out.PaymentMethodID = pi.PaymentMethod.ID
	}
	return out
}

func wrapError(err error) error {
	var se *stripego.Error
	if errors.As(err, &se) {
		msg := se.Msg
		if msg == "" {
			msg = se.Error()
		}
		return &ProviderError{
			HTTPStatus: se.HTTPStatusCode,
			Code:       string(se.Code),
			Message:    msg,
			Err:        err,
		}
	}
	return &ProviderError{Message: err.Error(), Err: err}
}
