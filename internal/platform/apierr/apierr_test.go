package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsFindsWrappedError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	wrapped := fmt.Errorf("upload: %w", Internal("upload_failed", "Failed to upload profile image", cause))

	got, ok := As(wrapped)
	if !ok {
		t.Fatalf("As: expected match")
	}
	if got.Status != http.StatusInternalServerError {
		t.Fatalf("status: got=%d want=%d", got.Status, http.StatusInternalServerError)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if got.Error() != "Failed to upload profile image: disk full" {
		t.Fatalf("unexpected message: %q", got.Error())
	}
}

func TestAsMissing(t *testing.T) {
	t.Parallel()

	if _, ok := As(errors.New("plain")); ok {
		t.Fatalf("As: expected no match")
	}
}
