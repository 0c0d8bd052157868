package analytics

import (
	"context"
	"time"

	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type VisitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, visit *types.Visit) (*types.Visit, error)
	ListBetween(ctx context.Context, tx *gorm.DB, start, end time.Time) ([]*types.Visit, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type visitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVisitRepo(db *gorm.DB, baseLog *logger.Logger) VisitRepo {
	repoLog := baseLog.With("repo", "VisitRepo")
	return &visitRepo{db: db, log: repoLog}
}

func (vr *visitRepo) Create(ctx context.Context, tx *gorm.DB, visit *types.Visit) (*types.Visit, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).Create(visit).Error; err != nil {
		return nil, err
	}
	return visit, nil
}

// ListBetween returns visits with start <= timestamp <= end in recording order.
func (vr *visitRepo) ListBetween(ctx context.Context, tx *gorm.DB, start, end time.Time) ([]*types.Visit, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}

	results := []*types.Visit{}
	if err := transaction.WithContext(ctx).
		Where("timestamp >= ? AND timestamp <= ?", start.UTC(), end.UTC()).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (vr *visitRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Visit{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
