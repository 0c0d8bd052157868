package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/data/repos/testutil"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/uploads"
)

type testEnv struct {
	db  *gorm.DB
	log *logger.Logger
	ctx context.Context
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	return testEnv{db: testutil.DB(t), log: testutil.Logger(t), ctx: context.Background()}
}

func (e testEnv) analytics() *analyticsService {
	return NewAnalyticsService(e.db, e.log, repos.NewVisitRepo(e.db, e.log), repos.NewStatRepo(e.db, e.log)).(*analyticsService)
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeStore) Put(ctx context.Context, name, contentType string, data []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[name] = append([]byte(nil), data...)
	f.types[name] = contentType
	return nil
}

func (f *fakeStore) Open(ctx context.Context, name string) (io.ReadCloser, uploads.ObjectInfo, error) {
	return nil, uploads.ObjectInfo{}, errors.New("not implemented")
}
