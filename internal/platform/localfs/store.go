package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
	"github.com/yungbote/portfolio-backend/internal/platform/uploads"
)

// Store writes uploads into a single directory on local disk.
type Store struct {
	dir string
	log *logger.Logger
}

var _ uploads.Store = (*Store)(nil)

func New(log *logger.Logger, dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("uploads dir is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve uploads dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	storeLog := log.With("store", "localfs")
	storeLog.Info("Local upload store ready", "dir", abs)
	return &Store{dir: abs, log: storeLog}, nil
}

func (s *Store) Dir() string { return s.dir }

// Put writes to a temp file first so readers never see a partial image.
func (s *Store) Put(ctx context.Context, name, contentType string, data []byte) error {
	if err := uploads.ValidName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close upload: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod upload: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename upload: %w", err)
	}
	s.log.Debug("Stored upload", "name", name, "bytes", len(data))
	return nil
}

func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, uploads.ObjectInfo, error) {
	if err := uploads.ValidName(name); err != nil {
		return nil, uploads.ObjectInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, uploads.ObjectInfo{}, err
	}
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, uploads.ObjectInfo{}, uploads.ErrNotExist
		}
		return nil, uploads.ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, uploads.ObjectInfo{}, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, uploads.ObjectInfo{}, uploads.ErrNotExist
	}
	return f, uploads.ObjectInfo{
		Size:        st.Size(),
		ContentType: uploads.ContentTypeForName(name),
		Updated:     st.ModTime().UTC(),
	}, nil
}
