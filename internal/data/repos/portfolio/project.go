package portfolio

import (
	"context"

	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	Create(ctx context.Context, tx *gorm.DB, projects []*types.Project) ([]*types.Project, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Project, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Project, error)
	GetFirstFeatured(ctx context.Context, tx *gorm.DB) (*types.Project, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uint, cols map[string]any) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	repoLog := baseLog.With("repo", "ProjectRepo")
	return &projectRepo{db: db, log: repoLog}
}

func (pr *projectRepo) Create(ctx context.Context, tx *gorm.DB, projects []*types.Project) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(projects) == 0 {
		return []*types.Project{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// List returns projects in insertion order.
func (pr *projectRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	results := []*types.Project{}
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *projectRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Project
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

// GetFirstFeatured returns the lowest-id featured project, or nil.
func (pr *projectRepo) GetFirstFeatured(ctx context.Context, tx *gorm.DB) (*types.Project, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Project
	if err := transaction.WithContext(ctx).
		Where("featured = ?", true).
		Order("id ASC").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (pr *projectRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uint, cols map[string]any) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if len(cols) == 0 {
		var count int64
		if err := transaction.WithContext(ctx).
			Model(&types.Project{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	}
	res := transaction.WithContext(ctx).
		Model(&types.Project{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (pr *projectRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Project{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
