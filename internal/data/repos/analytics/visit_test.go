package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/portfolio-backend/internal/data/repos/testutil"
	types "github.com/yungbote/portfolio-backend/internal/domain"
)

func TestVisitRepoListBetween(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewVisitRepo(db, testutil.Logger(t))
	ctx := context.Background()

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{-time.Hour, 0, time.Hour, 2 * time.Hour} {
		in := types.VisitInput{Path: "/p"}
		if _, err := repo.Create(ctx, tx, in.Model(base.Add(offset))); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}

	count, err := repo.Count(ctx, tx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 4 {
		t.Fatalf("Count: got=%d want=%d", count, 4)
	}

	got, err := repo.ListBetween(ctx, tx, base, base.Add(time.Hour))
	if err != nil {
		t.Fatalf("ListBetween: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListBetween inclusive bounds: got=%d want=%d", len(got), 2)
	}
	if !got[0].Timestamp.Equal(base) || !got[1].Timestamp.Equal(base.Add(time.Hour)) {
		t.Fatalf("ListBetween: unexpected timestamps %v, %v", got[0].Timestamp, got[1].Timestamp)
	}

	// Bounds given in another zone select the same instants.
	athens := time.FixedZone("EET", 2*60*60)
	got, err = repo.ListBetween(ctx, tx, base.In(athens), base.Add(time.Hour).In(athens))
	if err != nil {
		t.Fatalf("ListBetween zoned: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListBetween zoned: got=%d want=%d", len(got), 2)
	}

	got, err = repo.ListBetween(ctx, tx, base.Add(time.Hour), base)
	if err != nil {
		t.Fatalf("ListBetween reversed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ListBetween reversed: got=%d want=0", len(got))
	}
}
