package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yungbote/portfolio-backend/internal/platform/gcp"
	"github.com/yungbote/portfolio-backend/internal/platform/localfs"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/uploads"
)

const uploadsModeLocal = "local"

var (
	newBucketStore = func(ctx context.Context, log *logger.Logger, cfg gcp.ObjectStorageConfig) (uploads.Store, error) {
		store, err := gcp.NewBucketStore(ctx, log, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	newLocalStore = func(log *logger.Logger, dir string) (uploads.Store, error) {
		store, err := localfs.New(log, dir)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
)

type StorageProviderBootstrapErrorCode string

const (
	StorageProviderBootstrapErrorInvalidMode         StorageProviderBootstrapErrorCode = "invalid_mode"
	StorageProviderBootstrapErrorMissingBucket       StorageProviderBootstrapErrorCode = "missing_bucket"
	StorageProviderBootstrapErrorMissingEmulatorHost StorageProviderBootstrapErrorCode = "missing_emulator_host"
	StorageProviderBootstrapErrorInvalidEmulatorHost StorageProviderBootstrapErrorCode = "invalid_emulator_host"
	StorageProviderBootstrapErrorConnectFailed       StorageProviderBootstrapErrorCode = "connect_failed"
)

type StorageProviderBootstrapError struct {
	Code         StorageProviderBootstrapErrorCode
	Mode         string
	EmulatorHost string
	Cause        error
}

func (e *StorageProviderBootstrapError) Error() string {
	if e == nil {
		return "upload storage bootstrap failed"
	}
	return fmt.Sprintf(
		"upload storage bootstrap failed (code=%s mode=%q emulator_host=%q): %v",
		e.Code,
		e.Mode,
		e.EmulatorHost,
		e.Cause,
	)
}

func (e *StorageProviderBootstrapError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// resolveUploadStore picks where profile images live: a local directory
// (default) or a GCS bucket, real or emulated.
func resolveUploadStore(ctx context.Context, log *logger.Logger, cfg Config) (uploads.Store, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.UploadsMode))
	if mode == "" || mode == uploadsModeLocal {
		log.Info("Selecting upload storage provider", "mode", uploadsModeLocal, "dir", cfg.UploadsDir)
		store, err := newLocalStore(log, cfg.UploadsDir)
		if err != nil {
			return nil, &StorageProviderBootstrapError{
				Code:  StorageProviderBootstrapErrorConnectFailed,
				Mode:  uploadsModeLocal,
				Cause: err,
			}
		}
		return store, nil
	}

	storageCfg := gcp.ObjectStorageConfig{
		Mode:            gcp.ObjectStorageMode(mode),
		EmulatorHost:    strings.TrimSpace(cfg.StorageEmulatorHost),
		Bucket:          strings.TrimSpace(cfg.UploadsGCSBucket),
		CredentialsJSON: cfg.GCPCredentials,
	}
	if !gcp.IsSupportedObjectStorageMode(storageCfg.Mode) {
		err := &StorageProviderBootstrapError{
			Code:         StorageProviderBootstrapErrorInvalidMode,
			Mode:         mode,
			EmulatorHost: storageCfg.EmulatorHost,
			Cause:        fmt.Errorf("unsupported upload storage mode %q", mode),
		}
		log.Error("Upload storage provider selection failed", "mode", mode, "error_code", err.Code, "error", err)
		return nil, err
	}

	log.Info(
		"Selecting upload storage provider",
		"mode", storageCfg.Mode,
		"bucket", storageCfg.Bucket,
		"emulator_host", storageCfg.EmulatorHost,
	)
	store, err := newBucketStore(ctx, log, storageCfg)
	if err != nil {
		classified := classifyStorageProviderBootstrapError(storageCfg, err)
		log.Error(
			"Upload storage provider bootstrap failed",
			"mode", storageCfg.Mode,
			"emulator_host", storageCfg.EmulatorHost,
			"error_code", storageProviderBootstrapErrorCode(classified),
			"error", classified,
		)
		return nil, classified
	}
	return store, nil
}

func classifyStorageProviderBootstrapError(storageCfg gcp.ObjectStorageConfig, err error) error {
	code := StorageProviderBootstrapErrorConnectFailed
	var cfgErr *gcp.ObjectStorageConfigError
	if errors.As(err, &cfgErr) {
		switch cfgErr.Code {
		case gcp.ObjectStorageConfigErrorInvalidMode:
			code = StorageProviderBootstrapErrorInvalidMode
		case gcp.ObjectStorageConfigErrorMissingBucket:
			code = StorageProviderBootstrapErrorMissingBucket
		case gcp.ObjectStorageConfigErrorMissingEmulatorHost:
			code = StorageProviderBootstrapErrorMissingEmulatorHost
		case gcp.ObjectStorageConfigErrorInvalidEmulatorHost:
			code = StorageProviderBootstrapErrorInvalidEmulatorHost
		}
	}
	return &StorageProviderBootstrapError{
		Code:         code,
		Mode:         string(storageCfg.Mode),
		EmulatorHost: storageCfg.EmulatorHost,
		Cause:        err,
	}
}

func storageProviderBootstrapErrorCode(err error) StorageProviderBootstrapErrorCode {
	var bootstrapErr *StorageProviderBootstrapError
	if errors.As(err, &bootstrapErr) && bootstrapErr.Code != "" {
		return bootstrapErr.Code
	}
	return StorageProviderBootstrapErrorConnectFailed
}
