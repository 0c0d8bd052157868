package portfolio

import (
	"context"
	"testing"

	"github.com/yungbote/portfolio-backend/internal/data/repos/testutil"
	types "github.com/yungbote/portfolio-backend/internal/domain"
	"gorm.io/datatypes"
)

func TestProjectRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewProjectRepo(db, testutil.Logger(t))
	ctx := context.Background()

	featured, err := repo.GetFirstFeatured(ctx, tx)
	if err != nil {
		t.Fatalf("GetFirstFeatured: %v", err)
	}
	if featured != nil {
		t.Fatalf("GetFirstFeatured: expected nil on empty table, got %+v", featured)
	}

	created, err := repo.Create(ctx, tx, []*types.Project{
		types.ProjectInput{Title: "A", Description: "a"}.Model(),
		types.ProjectInput{Title: "B", Description: "b", Featured: true, Tags: []string{"x", "y"}}.Model(),
		types.ProjectInput{Title: "C", Description: "c", Featured: true}.Model(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("Create: expected 3 projects, got %d", len(created))
	}
	for i := 1; i < len(created); i++ {
		if created[i].ID <= created[i-1].ID {
			t.Fatalf("Create: ids not increasing: %d then %d", created[i-1].ID, created[i].ID)
		}
	}

	list, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 || list[0].Title != "A" || list[2].Title != "C" {
		t.Fatalf("List: unexpected order: %+v", list)
	}
	if got := []string(list[1].Tags); len(got) != 2 || got[0] != "x" {
		t.Fatalf("List: tags did not round-trip: %v", got)
	}

	featured, err = repo.GetFirstFeatured(ctx, tx)
	if err != nil {
		t.Fatalf("GetFirstFeatured: %v", err)
	}
	if featured == nil || featured.Title != "B" || !featured.Featured {
		t.Fatalf("GetFirstFeatured: expected B, got %+v", featured)
	}

	ok, err := repo.UpdateFields(ctx, tx, created[0].ID, map[string]any{
		"title": "A2",
		"tags":  datatypes.NewJSONSlice([]string{"z"}),
	})
	if err != nil || !ok {
		t.Fatalf("UpdateFields: ok=%v err=%v", ok, err)
	}
	got, err := repo.GetByID(ctx, tx, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "A2" || got.Description != "a" || len(got.Tags) != 1 || got.Tags[0] != "z" {
		t.Fatalf("GetByID: unexpected %+v", got)
	}

	ok, err = repo.UpdateFields(ctx, tx, 9999, map[string]any{"title": "nope"})
	if err != nil || ok {
		t.Fatalf("UpdateFields unknown id: ok=%v err=%v", ok, err)
	}

	deleted, err := repo.Delete(ctx, tx, created[1].ID)
	if err != nil || !deleted {
		t.Fatalf("Delete: deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, tx, created[1].ID)
	if err != nil || deleted {
		t.Fatalf("Delete twice: deleted=%v err=%v", deleted, err)
	}

	next, err := repo.Create(ctx, tx, []*types.Project{types.ProjectInput{Title: "D", Description: "d"}.Model()})
	if err != nil {
		t.Fatalf("Create after delete: %v", err)
	}
	if next[0].ID <= created[2].ID {
		t.Fatalf("Create after delete: id %d reused or decreased (last %d)", next[0].ID, created[2].ID)
	}
}
