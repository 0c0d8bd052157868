package portfolio

import (
	"context"

	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProfileRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Profile, error)
	Save(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, cols map[string]any) (bool, error)
}

type profileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfileRepo(db *gorm.DB, baseLog *logger.Logger) ProfileRepo {
	repoLog := baseLog.With("repo", "ProfileRepo")
	return &profileRepo{db: db, log: repoLog}
}

// GetByID returns nil, nil when the row does not exist.
func (pr *profileRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Profile
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

// Save inserts the profile, or overwrites every column when its id already exists.
func (pr *profileRepo) Save(ctx context.Context, tx *gorm.DB, profile *types.Profile) (*types.Profile, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateFields reports false when no row matched id.
func (pr *profileRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, cols map[string]any) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(cols) == 0 {
		var count int64
		if err := transaction.WithContext(ctx).
			Model(&types.Profile{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}
	res := transaction.WithContext(ctx).
		Model(&types.Profile{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
