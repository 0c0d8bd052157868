package services

import (
	"context"
	"math"
	"strings"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/stripe"
)

const (
	PaymentCurrency           = "usd"
	DefaultPaymentDescription = "Rage Bet deposit"
	MinimumPaymentAmount      = 1
)

type PaymentIntent struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type PaymentStatus struct {
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod *string `json:"paymentMethod"`
	Created       int64   `json:"created"`
}

type PaymentService interface {
	Configured() bool
	CreateIntent(ctx context.Context, amount float64, description string) (*PaymentIntent, error)
	Status(ctx context.Context, intentID string) (*PaymentStatus, error)
}

type paymentService struct {
	log    *logger.Logger
	client stripe.Client
}

// NewPaymentService accepts a nil client; every call then reports
// ErrPaymentUnavailable without reaching the provider.
func NewPaymentService(log *logger.Logger, client stripe.Client) PaymentService {
	serviceLog := log.With("service", "PaymentService")
	if client == nil {
		serviceLog.Warn("Stripe secret key not set; payment endpoints will return 503")
	}
	return &paymentService{log: serviceLog, client: client}
}

func (ps *paymentService) Configured() bool { return ps.client != nil }

func (ps *paymentService) CreateIntent(ctx context.Context, amount float64, description string) (*PaymentIntent, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < MinimumPaymentAmount {
		return nil, ErrInvalidAmount
	}
	if ps.client == nil {
		return nil, ErrPaymentUnavailable
	}
	if strings.TrimSpace(description) == "" {
		description = DefaultPaymentDescription
	}

	intent, err := ps.client.CreateIntent(ctx, stripe.CreateIntentParams{
		AmountCents: int64(math.Round(amount * 100)),
		Currency:    PaymentCurrency,
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	return &PaymentIntent{ClientSecret: intent.ClientSecret, PaymentIntentID: intent.ID}, nil
}

func (ps *paymentService) Status(ctx context.Context, intentID string) (*PaymentStatus, error) {
	if ps.client == nil {
		return nil, ErrPaymentUnavailable
	}
	intent, err := ps.client.GetIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	out := &PaymentStatus{
		Status:   intent.Status,
		Amount:   float64(intent.AmountCents) / 100,
		Currency: intent.Currency,
		Created:  intent.Created,
	}
	if intent.PaymentMethodID != "" {
		pm := intent.PaymentMethodID
		out.PaymentMethod = &pm
	}
	return out, nil
}
