package gcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

func TestBucketStoreEmulatorRoundTrip(t *testing.T) {
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("PORTFOLIO_RUN_GCS_EMULATOR_INTEGRATION")), "true") {
		t.Skip("set PORTFOLIO_RUN_GCS_EMULATOR_INTEGRATION=true to run emulator integration tests")
	}

	emulatorHost := strings.TrimSpace(os.Getenv("STORAGE_EMULATOR_HOST"))
	if emulatorHost == "" {
		emulatorHost = "http://127.0.0.1:4443"
	}
	emulatorHost = strings.TrimRight(emulatorHost, "/")

	if !isEmulatorReachable(t, emulatorHost) {
		t.Skipf("storage emulator not reachable at %s", emulatorHost)
	}

	bucket := fmt.Sprintf("portfolio-it-%d", time.Now().UnixNano())
	createBucketIfMissing(t, emulatorHost, bucket)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	defer log.Sync()

	ctx := context.Background()
	store, err := NewBucketStore(ctx, log, ObjectStorageConfig{
		Mode:         ObjectStorageModeGCSEmulator,
		EmulatorHost: emulatorHost,
		Bucket:       bucket,
	})
	if err != nil {
		t.Fatalf("NewBucketStore: %v", err)
	}
	defer store.Close()

	if err := store.Put(ctx, "profile-1.png", "image/png", []byte("alpha")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		rc, _, err := store.Open(ctx, "profile-1.png")
		if err == nil {
			body, readErr := io.ReadAll(rc)
			_ = rc.Close()
			if readErr != nil {
				t.Fatalf("ReadAll: %v", readErr)
			}
			if string(body) != "alpha" {
				t.Fatalf("body: want=%q got=%q", "alpha", body)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("Open: %v", err)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func isEmulatorReachable(t *testing.T, emulatorHost string) bool {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(emulatorHost + "/storage/v1/b?project=local-dev")
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 500
}

func createBucketIfMissing(t *testing.T, emulatorHost string, bucket string) {
	t.Helper()
	payload, err := json.Marshal(map[string]string{"name": bucket})
	if err != nil {
		t.Fatalf("json.Marshal(bucket): %v", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequest(
		http.MethodPost,
		emulatorHost+"/storage/v1/b?project=local-dev",
		bytes.NewReader(payload),
	)
	if err != nil {
		t.Fatalf("http.NewRequest(create bucket): %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("create bucket %q: %v", bucket, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusConflict {
		return
	}
	b, _ := io.ReadAll(resp.Body)
	t.Fatalf("create bucket %q failed: status=%d body=%s", bucket, resp.StatusCode, strings.TrimSpace(string(b)))
}
