package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/db"
	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a private in-memory SQLite database with every table migrated.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:test_%s?mode=memory&cache=shared", uuid.NewString())
	svc, err := db.Open(Logger(tb), db.Config{Driver: db.DriverSQLite, DSN: dsn, Silent: true})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	tb.Cleanup(func() { _ = svc.Close() })
	return svc.DB()
}

// Tx begins a transaction that is rolled back when the test ends. While it is
// open it holds the database's only connection, so pass it to every call.
func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, featured bool) *types.Project {
	tb.Helper()
	p := types.ProjectInput{
		Title:       title,
		Description: title + " description",
		Featured:    featured,
		Tags:        []string{"Go"},
	}.Model()
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedProfile(tb testing.TB, ctx context.Context, tx *gorm.DB) *types.Profile {
	tb.Helper()
	bio := "bio"
	p := types.ProfileInput{Name: "Ada", Age: 36, Location: "London", Bio: &bio}.Model()
	p.ID = 1
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed profile: %v", err)
	}
	return p
}

func SeedStat(tb testing.TB, ctx context.Context, tx *gorm.DB, total int) *types.Stat {
	tb.Helper()
	s := types.StatInput{
		TotalVisits:    total,
		UniqueVisitors: 0,
		VisitorsByLocation: types.Breakdown{
			{Key: "Greece", Value: 45},
			{Key: "Other", Value: 5},
		},
		TopReferrers: []types.Referrer{
			{Source: "Google", Count: 10, Percentage: 1.5},
			{Source: "GitHub", Count: 5, Percentage: 2.5},
		},
	}.Model(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	s.ID = 1
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed stat: %v", err)
	}
	return s
}
