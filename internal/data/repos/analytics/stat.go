package analytics

import (
	"context"
	"fmt"

	types "github.com/yungbote/portfolio-backend/internal/domain"
	statdomain "github.com/yungbote/portfolio-backend/internal/domain/analytics"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type StatRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Stat, error)
	Create(ctx context.Context, tx *gorm.DB, stat *types.Stat) (*types.Stat, error)
	IncrementVisits(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type statRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatRepo(db *gorm.DB, baseLog *logger.Logger) StatRepo {
	repoLog := baseLog.With("repo", "StatRepo")
	return &statRepo{db: db, log: repoLog}
}

func (sr *statRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Stat, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var results []*types.Stat
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (sr *statRepo) Create(ctx context.Context, tx *gorm.DB, stat *types.Stat) (*types.Stat, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(stat).Error; err != nil {
		return nil, err
	}
	return stat, nil
}

// IncrementVisits bumps total_visits by one and recomputes unique_visitors from
// the new total in the same statement, so concurrent visits never lose counts.
func (sr *statRepo) IncrementVisits(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	uniqueExpr := fmt.Sprintf("((total_visits + 1) * %d) / %d",
		statdomain.UniqueVisitorNumerator, statdomain.UniqueVisitorDenominator)
	res := transaction.WithContext(ctx).
		Model(&types.Stat{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_visits":    gorm.Expr("total_visits + 1"),
			"unique_visitors": gorm.Expr(uniqueExpr),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
