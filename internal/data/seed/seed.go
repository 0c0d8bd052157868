// Package seed holds the initial profile, projects and stats a fresh database starts with.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/portfolio-backend/internal/domain"
)

//go:embed seed.yaml
var defaultDocument []byte

type Data struct {
	Profile  types.ProfileInput   `yaml:"profile"`
	Projects []types.ProjectInput `yaml:"projects"`
	Stats    types.StatInput      `yaml:"stats"`
}

// Default returns the embedded seed document.
func Default() (*Data, error) {
	return Parse(defaultDocument)
}

// Load reads a seed document from path, or the embedded one when path is empty.
func Load(path string) (*Data, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var d Data
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if strings.TrimSpace(d.Profile.Name) == "" {
		return nil, fmt.Errorf("parse seed: profile.name is required")
	}
	for i, p := range d.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("parse seed: projects[%d].title is required", i)
		}
	}
	return &d, nil
}
