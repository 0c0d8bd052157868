package gcp

import (
	"strings"

	"google.golang.org/api/option"
)

// clientOptions turns inline JSON or a file path into credentials. Empty falls
// back to application default credentials.
func clientOptions(creds string) []option.ClientOption {
	creds = strings.TrimSpace(creds)
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}
