package services

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/data/repos"
	types "github.com/yungbote/portfolio-backend/internal/domain"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/uploads"
)

// ImageUpload is a file received from a multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ProfileService interface {
	Get(ctx context.Context) (*types.Profile, error)
	Update(ctx context.Context, patch types.ProfilePatch) (*types.Profile, error)
	UpdateImage(ctx context.Context, upload ImageUpload) (string, error)
	Create(ctx context.Context, in types.ProfileInput) (*types.Profile, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profileRepo repos.ProfileRepo
	store       uploads.Store
	now         func() time.Time
}

func NewProfileService(db *gorm.DB, log *logger.Logger, profileRepo repos.ProfileRepo, store uploads.Store) ProfileService {
	serviceLog := log.With("service", "ProfileService")
	return &profileService{
		db:          db,
		log:         serviceLog,
		profileRepo: profileRepo,
		store:       store,
		now:         time.Now,
	}
}

func (ps *profileService) Get(ctx context.Context) (*types.Profile, error) {
	profile, err := ps.profileRepo.GetByID(ctx, nil, types.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

func (ps *profileService) Update(ctx context.Context, patch types.ProfilePatch) (*types.Profile, error) {
	var out *types.Profile
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := ps.profileRepo.UpdateFields(ctx, tx, types.ProfileID, patch.Columns())
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotFound
		}
		out, err = ps.profileRepo.GetByID(ctx, tx, types.ProfileID)
		if err != nil {
			return err
		}
		if out == nil {
			return ErrNotFound
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

var imageTypePattern = regexp.MustCompile(`jpeg|jpg|png|gif`)

// acceptImage requires both the declared MIME type and the file extension to
// name one of the supported image formats.
func acceptImage(upload ImageUpload) bool {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	return imageTypePattern.MatchString(upload.ContentType) && imageTypePattern.MatchString(ext)
}

// UpdateImage stores the file and points the profile at it. Without a profile
// row the file is still stored and its path returned.
func (ps *profileService) UpdateImage(ctx context.Context, upload ImageUpload) (string, error) {
	if !acceptImage(upload) {
		return "", ErrInvalidUpload
	}
	if ps.store == nil {
		return "", fmt.Errorf("upload store not configured")
	}

	name := fmt.Sprintf("profile-%d%s", ps.now().UnixMilli(), filepath.Ext(upload.Filename))
	if err := ps.store.Put(ctx, name, upload.ContentType, upload.Data); err != nil {
		return "", fmt.Errorf("store profile image: %w", err)
	}
	imagePath := uploads.PublicPath(name)

	ok, err := ps.profileRepo.UpdateFields(ctx, nil, types.ProfileID, map[string]any{"profile_image": imagePath})
	if err != nil {
		return "", fmt.Errorf("set profile image: %w", err)
	}
	if !ok {
		ps.log.Warn("Stored profile image without a profile row", "path", imagePath)
	}
	ps.log.Info("Profile image updated", "path", imagePath, "bytes", len(upload.Data))
	return imagePath, nil
}

// Create writes the singleton profile, replacing any existing one.
func (ps *profileService) Create(ctx context.Context, in types.ProfileInput) (*types.Profile, error) {
	profile := in.Model()
	profile.ID = types.ProfileID
	out, err := ps.profileRepo.Save(ctx, nil, profile)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return out, nil
}
