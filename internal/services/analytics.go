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

const DefaultReferrerLimit = 10

type AnalyticsService interface {
	RecordVisit(ctx context.Context, in types.VisitInput) (*types.Visit, error)
	Stats(ctx context.Context) (*types.Stat, error)
	VisitsBetween(ctx context.Context, start, end time.Time) ([]*types.Visit, error)
	Locations(ctx context.Context) (types.Breakdown, error)
	TopReferrers(ctx context.Context, limit int) ([]types.ReferrerCount, error)
}

type analyticsService struct {
	db        *gorm.DB
	log       *logger.Logger
	visitRepo repos.VisitRepo
	statRepo  repos.StatRepo
	now       func() time.Time
}

func NewAnalyticsService(db *gorm.DB, log *logger.Logger, visitRepo repos.VisitRepo, statRepo repos.StatRepo) AnalyticsService {
	serviceLog := log.With("service", "AnalyticsService")
	return &analyticsService{
		db:        db,
		log:       serviceLog,
		visitRepo: visitRepo,
		statRepo:  statRepo,
		now:       time.Now,
	}
}

// RecordVisit appends the visit and bumps the aggregate counters in one
// transaction. A missing stat row leaves counters untouched.
func (as *analyticsService) RecordVisit(ctx context.Context, in types.VisitInput) (*types.Visit, error) {
	visit := in.Model(as.now())
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.visitRepo.Create(ctx, tx, visit); err != nil {
			return fmt.Errorf("create visit: %w", err)
		}
		ok, err := as.statRepo.IncrementVisits(ctx, tx, types.StatID)
		if err != nil {
			return fmt.Errorf("increment visits: %w", err)
		}
		if !ok {
			as.log.Debug("No stat row to increment", "visit_id", visit.ID)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return visit, nil
}

func (as *analyticsService) Stats(ctx context.Context) (*types.Stat, error) {
	stat, err := as.statRepo.GetByID(ctx, nil, types.StatID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	if stat == nil {
		return nil, ErrNotFound
	}
	return stat, nil
}

func (as *analyticsService) VisitsBetween(ctx context.Context, start, end time.Time) ([]*types.Visit, error) {
	visits, err := as.visitRepo.ListBetween(ctx, nil, start, end)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	return visits, nil
}

// Locations returns the seeded location breakdown, or an empty one when no
// stat row exists.
func (as *analyticsService) Locations(ctx context.Context) (types.Breakdown, error) {
	stat, err := as.statRepo.GetByID(ctx, nil, types.StatID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	if stat == nil {
		return types.Breakdown{}, nil
	}
	locations := stat.VisitorsByLocation.Data()
	if locations == nil {
		locations = types.Breakdown{}
	}
	return locations, nil
}

func (as *analyticsService) TopReferrers(ctx context.Context, limit int) ([]types.ReferrerCount, error) {
	stat, err := as.statRepo.GetByID(ctx, nil, types.StatID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return stat.TopReferrerCounts(limit), nil
}
