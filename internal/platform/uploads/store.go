package uploads

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

// Store keeps uploaded files under flat, single-segment names.
type Store interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
	Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
}

type ObjectInfo struct {
	Size        int64
	ContentType string
	Updated     time.Time
}

var (
	ErrNotExist    = errors.New("upload does not exist")
	ErrInvalidName = errors.New("invalid upload name")
)

// PublicPath is the URL path an object is served under.
func PublicPath(name string) string {
	return "/uploads/" + name
}

func ValidName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidName
	case strings.ContainsAny(name, "/\\\x00"):
		return ErrInvalidName
	case strings.TrimSpace(name) != name:
		return ErrInvalidName
	}
	return nil
}

func ContentTypeForName(name string) string {
	switch strings.ToLower(path.Ext(strings.TrimSpace(name))) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
