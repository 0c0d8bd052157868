package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type ContactResult struct {
	Message  *types.Message
	Delivery Delivery
}

type ContactService interface {
	Submit(ctx context.Context, in types.MessageInput) (*ContactResult, error)
	Messages(ctx context.Context) ([]*types.Message, error)
}

type contactService struct {
	db          *gorm.DB
	log         *logger.Logger
	messageRepo repos.MessageRepo
	notifier    MailNotifier
	now         func() time.Time
}

func NewContactService(db *gorm.DB, log *logger.Logger, messageRepo repos.MessageRepo, notifier MailNotifier) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{
		db:          db,
		log:         serviceLog,
		messageRepo: messageRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

// Submit persists the message and then attempts exactly one notification.
// A failed notification does not fail the submission.
func (cs *contactService) Submit(ctx context.Context, in types.MessageInput) (*ContactResult, error) {
	msg, err := cs.messageRepo.Create(ctx, nil, in.Model(cs.now()))
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	delivery := Delivery{Status: DeliverySkipped}
	if cs.notifier != nil {
		delivery = cs.notifier.NotifyContact(ctx, msg)
	}
	return &ContactResult{Message: msg, Delivery: delivery}, nil
}

func (cs *contactService) Messages(ctx context.Context) ([]*types.Message, error) {
	msgs, err := cs.messageRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
