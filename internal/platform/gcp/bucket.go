package gcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/uploads"
)

// BucketStore keeps uploads as objects in a single GCS bucket.
type BucketStore struct {
	log           *logger.Logger
	storageClient *storage.Client
	storageMode   ObjectStorageMode
	emulatorHost  string
	bucket        string
	httpClient    *http.Client
}

var _ uploads.Store = (*BucketStore)(nil)

func NewBucketStore(ctx context.Context, log *logger.Logger, storageCfg ObjectStorageConfig) (*BucketStore, error) {
	if err := ValidateObjectStorageConfig(storageCfg); err != nil {
		return nil, fmt.Errorf("validate object storage config: %w", err)
	}
	storeLog := log.With("store", "gcs")

	stClient, err := newStorageClientForMode(ctx, storageCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	storeLog.Info(
		"Object storage initialized",
		"mode", storageCfg.Mode,
		"emulator_host", storageCfg.EmulatorHost,
		"bucket", storageCfg.Bucket,
	)

	return &BucketStore{
		log:           storeLog,
		storageClient: stClient,
		storageMode:   storageCfg.Mode,
		emulatorHost:  strings.TrimRight(strings.TrimSpace(storageCfg.EmulatorHost), "/"),
		bucket:        strings.TrimSpace(storageCfg.Bucket),
		httpClient:    &http.Client{Timeout: 2 * time.Minute},
	}, nil
}

func newStorageClientForMode(ctx context.Context, storageCfg ObjectStorageConfig) (*storage.Client, error) {
	switch storageCfg.Mode {
	case ObjectStorageModeGCS:
		opts := clientOptions(storageCfg.CredentialsJSON)
		opts = append(opts, option.WithScopes(storage.ScopeReadWrite))
		return storage.NewClient(ctx, opts...)
	case ObjectStorageModeGCSEmulator:
		endpoint := strings.TrimRight(strings.TrimSpace(storageCfg.EmulatorHost), "/")
		_ = os.Setenv("STORAGE_EMULATOR_HOST", endpoint)
		return storage.NewClient(ctx, option.WithoutAuthentication())
	default:
		return nil, &ObjectStorageConfigError{
			Code: ObjectStorageConfigErrorInvalidMode,
			Mode: string(storageCfg.Mode),
		}
	}
}

func (bs *BucketStore) Close() error {
	return bs.storageClient.Close()
}

func (bs *BucketStore) Put(ctx context.Context, name, contentType string, data []byte) error {
	if err := uploads.ValidName(name); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := bs.storageClient.Bucket(bs.bucket).Object(name).NewWriter(ctx)
	if contentType == "" {
		contentType = uploads.ContentTypeForName(name)
	}
	w.ContentType = contentType
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close GCS writer: %w", err)
	}
	bs.log.Debug("Stored upload", "name", name, "bytes", len(data))
	return nil
}

// readCloserWithCancel keeps the request context alive until the caller is
// done reading.
type readCloserWithCancel struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (r *readCloserWithCancel) Close() error {
	err := r.ReadCloser.Close()
	if r.cancel != nil {
		r.cancel()
	}
	return err
}

func (bs *BucketStore) isEmulatorMode() bool {
	return bs != nil && IsEmulatorObjectStorageMode(bs.storageMode) && bs.emulatorHost != ""
}

func (bs *BucketStore) emulatorObjectMediaURL(key string) string {
	return fmt.Sprintf(
		"%s/storage/v1/b/%s/o/%s?alt=media",
		bs.emulatorHost,
		url.PathEscape(bs.bucket),
		url.PathEscape(key),
	)
}

func (bs *BucketStore) Open(ctx context.Context, name string) (io.ReadCloser, uploads.ObjectInfo, error) {
	if err := uploads.ValidName(name); err != nil {
		return nil, uploads.ObjectInfo{}, err
	}
	if bs.isEmulatorMode() {
		return bs.openEmulator(ctx, name)
	}

	ctx2, cancel := context.WithTimeout(ctx, 2*time.Minute)
	r, err := bs.storageClient.Bucket(bs.bucket).Object(name).NewReader(ctx2)
	if err != nil {
		cancel()
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, uploads.ObjectInfo{}, uploads.ErrNotExist
		}
		return nil, uploads.ObjectInfo{}, fmt.Errorf("failed to open GCS reader: %w", err)
	}
	info := uploads.ObjectInfo{
		Size:        r.Attrs.Size,
		ContentType: r.Attrs.ContentType,
		Updated:     r.Attrs.LastModified,
	}
	if info.ContentType == "" {
		info.ContentType = uploads.ContentTypeForName(name)
	}
	return &readCloserWithCancel{ReadCloser: r, cancel: cancel}, info, nil
}

func (bs *BucketStore) openEmulator(ctx context.Context, name string) (io.ReadCloser, uploads.ObjectInfo, error) {
	ctx2, cancel := context.WithTimeout(ctx, 2*time.Minute)
	req, err := http.NewRequestWithContext(ctx2, http.MethodGet, bs.emulatorObjectMediaURL(name), nil)
	if err != nil {
		cancel()
		return nil, uploads.ObjectInfo{}, fmt.Errorf("failed creating emulator download request: %w", err)
	}
	resp, err := bs.httpClient.Do(req)
	if err != nil {
		cancel()
		return nil, uploads.ObjectInfo{}, fmt.Errorf("failed emulator download request: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		_ = resp.Body.Close()
		cancel()
		return nil, uploads.ObjectInfo{}, uploads.ErrNotExist
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		_ = resp.Body.Close()
		cancel()
		return nil, uploads.ObjectInfo{}, fmt.Errorf("emulator download failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	info := uploads.ObjectInfo{
		Size:        resp.ContentLength,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if info.ContentType == "" {
		info.ContentType = uploads.ContentTypeForName(name)
	}
	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			info.Updated = t
		}
	}
	return &readCloserWithCancel{ReadCloser: resp.Body, cancel: cancel}, info, nil
}
