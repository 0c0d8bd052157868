package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type ProjectService interface {
	All(ctx context.Context) ([]*types.Project, error)
	Featured(ctx context.Context) (*types.Project, error)
	Get(ctx context.Context, id uint) (*types.Project, error)
	Create(ctx context.Context, in types.ProjectInput) (*types.Project, error)
	Update(ctx context.Context, id uint, patch types.ProjectPatch) (*types.Project, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type projectService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewProjectService(db *gorm.DB, log *logger.Logger, projectRepo repos.ProjectRepo) ProjectService {
	serviceLog := log.With("service", "ProjectService")
	return &projectService{db: db, log: serviceLog, projectRepo: projectRepo}
}

func (ps *projectService) All(ctx context.Context) ([]*types.Project, error) {
	projects, err := ps.projectRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (ps *projectService) Featured(ctx context.Context) (*types.Project, error) {
	project, err := ps.projectRepo.GetFirstFeatured(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("get featured project: %w", err)
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (ps *projectService) Get(ctx context.Context, id uint) (*types.Project, error) {
	project, err := ps.projectRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, ErrNotFound
	}
	return project, nil
}

func (ps *projectService) Create(ctx context.Context, in types.ProjectInput) (*types.Project, error) {
	created, err := ps.projectRepo.Create(ctx, nil, []*types.Project{in.Model()})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created[0], nil
}

func (ps *projectService) Update(ctx context.Context, id uint, patch types.ProjectPatch) (*types.Project, error) {
	var out *types.Project
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cols := patch.Columns()
		if len(cols) > 0 {
			ok, err := ps.projectRepo.UpdateFields(ctx, tx, id, cols)
			if err != nil {
				return err
			}
			if !ok {
				return ErrNotFound
			}
		}
		project, err := ps.projectRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if project == nil {
			return ErrNotFound
		}
		out = project
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (ps *projectService) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := ps.projectRepo.Delete(ctx, nil, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return deleted, nil
}
