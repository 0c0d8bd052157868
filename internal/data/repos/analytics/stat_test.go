package analytics

import (
	"context"
	"testing"

	"github.com/yungbote/portfolio-backend/internal/data/repos/testutil"
	types "github.com/yungbote/portfolio-backend/internal/domain"
)

func TestStatRepoIncrementVisits(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewStatRepo(db, testutil.Logger(t))
	ctx := context.Background()

	ok, err := repo.IncrementVisits(ctx, tx, types.StatID)
	if err != nil || ok {
		t.Fatalf("IncrementVisits on missing row: ok=%v err=%v", ok, err)
	}

	testutil.SeedStat(t, ctx, tx, 1245)

	for i := 0; i < 7; i++ {
		ok, err := repo.IncrementVisits(ctx, tx, types.StatID)
		if err != nil || !ok {
			t.Fatalf("IncrementVisits #%d: ok=%v err=%v", i, ok, err)
		}
	}

	got, err := repo.GetByID(ctx, tx, types.StatID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.TotalVisits != 1252 {
		t.Fatalf("TotalVisits: got=%d want=%d", got.TotalVisits, 1252)
	}
	if want := types.UniqueVisitorsFor(1252); got.UniqueVisitors != want {
		t.Fatalf("UniqueVisitors: got=%d want=%d", got.UniqueVisitors, want)
	}
	if loc := got.VisitorsByLocation.Data(); len(loc) != 2 || loc[0].Key != "Greece" {
		t.Fatalf("VisitorsByLocation changed: %+v", loc)
	}
	if refs := got.TopReferrers.Data(); len(refs) != 2 || refs[1].Source != "GitHub" {
		t.Fatalf("TopReferrers changed: %+v", refs)
	}
}

func TestStatRepoGetByIDMissing(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStatRepo(db, testutil.Logger(t))

	got, err := repo.GetByID(context.Background(), nil, types.StatID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("GetByID: expected nil, got %+v", got)
	}
}
