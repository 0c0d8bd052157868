package services

import (
	"errors"
	"testing"
	"time"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	"github.com/yungbote/portfolio-backend/internal/data/repos/testutil"
	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/pkg/optional"
)

func newProfileService(env testEnv, store *fakeStore) *profileService {
	return NewProfileService(env.db, env.log, repos.NewProfileRepo(env.db, env.log), store).(*profileService)
}

func TestProfileServiceGetAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := newProfileService(env, newFakeStore())

	if _, err := svc.Get(env.ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store: want=%v got=%v", ErrNotFound, err)
	}
	if _, err := svc.Update(env.ctx, types.ProfilePatch{Name: optional.Of("x")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update on empty store: want=%v got=%v", ErrNotFound, err)
	}

	testutil.SeedProfile(t, env.ctx, env.db)

	updated, err := svc.Update(env.ctx, types.ProfilePatch{
		Location: optional.Of("Athens"),
		Bio:      optional.Null[string](),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Location != "Athens" || updated.Bio != nil || updated.Name != "Ada" || updated.Age != 36 {
		t.Fatalf("Update: unexpected profile %+v", updated)
	}

	unchanged, err := svc.Update(env.ctx, types.ProfilePatch{})
	if err != nil {
		t.Fatalf("Update with empty patch: %v", err)
	}
	if unchanged.Location != "Athens" {
		t.Fatalf("Update with empty patch changed profile: %+v", unchanged)
	}

	got, err := svc.Get(env.ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Location != "Athens" {
		t.Fatalf("Get: want=%q got=%q", "Athens", got.Location)
	}
}

func TestProfileServiceUpdateImage(t *testing.T) {
	env := newTestEnv(t)
	store := newFakeStore()
	svc := newProfileService(env, store)
	svc.now = fixedClock(time.UnixMilli(1700000000123))

	testutil.SeedProfile(t, env.ctx, env.db)

	path, err := svc.UpdateImage(env.ctx, ImageUpload{Filename: "Me.PNG", ContentType: "image/png", Data: []byte("img")})
	if err != nil {
		t.Fatalf("UpdateImage: %v", err)
	}
	if path != "/uploads/profile-1700000000123.PNG" {
		t.Fatalf("path: want=%q got=%q", "/uploads/profile-1700000000123.PNG", path)
	}
	if string(store.objects["profile-1700000000123.PNG"]) != "img" {
		t.Fatalf("stored bytes: got=%q", store.objects["profile-1700000000123.PNG"])
	}

	profile, err := svc.Get(env.ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile.ProfileImage == nil || *profile.ProfileImage != path {
		t.Fatalf("profile image: want=%q got=%v", path, profile.ProfileImage)
	}
}

func TestProfileServiceUpdateImageRejectsNonImages(t *testing.T) {
	env := newTestEnv(t)
	store := newFakeStore()
	svc := newProfileService(env, store)

	cases := []ImageUpload{
		{Filename: "notes.txt", ContentType: "text/plain"},
		{Filename: "photo.txt", ContentType: "image/png"},
		{Filename: "photo.png", ContentType: "application/octet-stream"},
		{Filename: "photo", ContentType: "image/jpeg"},
	}
	for _, tc := range cases {
		if _, err := svc.UpdateImage(env.ctx, tc); !errors.Is(err, ErrInvalidUpload) {
			t.Fatalf("UpdateImage(%+v): want=%v got=%v", tc, ErrInvalidUpload, err)
		}
	}
	if len(store.objects) != 0 {
		t.Fatalf("rejected uploads were stored: %v", store.objects)
	}
}

func TestProfileServiceUpdateImageWithoutProfile(t *testing.T) {
	env := newTestEnv(t)
	store := newFakeStore()
	svc := newProfileService(env, store)
	svc.now = fixedClock(time.UnixMilli(42))

	path, err := svc.UpdateImage(env.ctx, ImageUpload{Filename: "a.gif", ContentType: "image/gif", Data: []byte("g")})
	if err != nil {
		t.Fatalf("UpdateImage: %v", err)
	}
	if path != "/uploads/profile-42.gif" {
		t.Fatalf("path: got=%q", path)
	}
}

func TestProfileServiceUpdateImageStoreFailure(t *testing.T) {
	env := newTestEnv(t)
	store := newFakeStore()
	store.putErr = errors.New("disk full")
	svc := newProfileService(env, store)

	testutil.SeedProfile(t, env.ctx, env.db)

	if _, err := svc.UpdateImage(env.ctx, ImageUpload{Filename: "a.jpg", ContentType: "image/jpeg"}); !errors.Is(err, store.putErr) {
		t.Fatalf("UpdateImage: want wrapped %v, got %v", store.putErr, err)
	}
	profile, err := svc.Get(env.ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if profile.ProfileImage != nil {
		t.Fatalf("profile image changed after failed store: %v", *profile.ProfileImage)
	}
}

func TestProfileServiceCreateReplaces(t *testing.T) {
	env := newTestEnv(t)
	svc := newProfileService(env, newFakeStore())

	testutil.SeedProfile(t, env.ctx, env.db)

	created, err := svc.Create(env.ctx, types.ProfileInput{Name: "Grace", Age: 40, Location: "NYC"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != types.ProfileID {
		t.Fatalf("id: want=%d got=%d", types.ProfileID, created.ID)
	}
	got, err := svc.Get(env.ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Grace" || got.Bio != nil {
		t.Fatalf("Get: unexpected %+v", got)
	}
}
