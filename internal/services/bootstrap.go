package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/data/seed"
	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

type BootstrapService interface {
	// Seed loads data when the store has no profile yet. It reports whether
	// anything was written.
	Seed(ctx context.Context, data *seed.Data) (bool, error)
}

type bootstrapService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	projectRepo repos.ProjectRepo
	statRepo    repos.StatRepo
	now         func() time.Time
}

func NewBootstrapService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo, projectRepo repos.ProjectRepo, statRepo repos.StatRepo) BootstrapService {
	serviceLog := log.With("service", "BootstrapService")
	return &bootstrapService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		projectRepo: projectRepo,
		statRepo:    statRepo,
		now:         time.Now,
	}
}

func (bs *bootstrapService) Seed(ctx context.Context, data *seed.Data) (bool, error) {
	if data == nil {
		return false, fmt.Errorf("seed data is nil")
	}
	seeded := false
	err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := bs.profileRepo.GetByID(ctx, tx, types.ProfileID)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}

		profile := data.Profile.Model()
		profile.ID = types.ProfileID
		if _, err := bs.profileRepo.Save(ctx, tx, profile); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}

		projects := make([]*types.Project, 0, len(data.Projects))
		for _, in := range data.Projects {
			projects = append(projects, in.Model())
		}
		if _, err := bs.projectRepo.Create(ctx, tx, projects); err != nil {
			return fmt.Errorf("seed projects: %w", err)
		}

		stat := data.Stats.Model(bs.now())
		stat.ID = types.StatID
		if _, err := bs.statRepo.Create(ctx, tx, stat); err != nil {
			return fmt.Errorf("seed stats: %w", err)
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		bs.log.Info("Seeded store", "projects", len(data.Projects))
	} else {
		bs.log.Info("Store already seeded; skipping")
	}
	return seeded, nil
}
