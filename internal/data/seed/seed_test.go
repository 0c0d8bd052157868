package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSeed(t *testing.T) {
	t.Parallel()

	d, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if d.Profile.Name != "Aggelos Kwnstantinou" || d.Profile.Age != 17 {
		t.Fatalf("unexpected profile: %+v", d.Profile)
	}
	if d.Profile.Bio == nil || !strings.HasPrefix(*d.Profile.Bio, "I'm a 17-year-old developer") || strings.Contains(*d.Profile.Bio, "\n") {
		t.Fatalf("unexpected bio: %v", d.Profile.Bio)
	}
	if len(d.Projects) != 3 || !d.Projects[0].Featured || d.Projects[1].Featured {
		t.Fatalf("unexpected projects: %+v", d.Projects)
	}
	if got := strings.Join(d.Projects[0].Tags, ","); got != "React,Node.js,MongoDB,Socket.IO,Stripe" {
		t.Fatalf("unexpected tags: %s", got)
	}
	if d.Stats.TotalVisits != 12486 || d.Stats.UniqueVisitors != 4827 {
		t.Fatalf("unexpected stats: %+v", d.Stats)
	}
	if len(d.Stats.VisitorsByTime) != 12 || d.Stats.VisitorsByTime[0].Key != "Jan" || d.Stats.VisitorsByTime[11].Value != 1850 {
		t.Fatalf("unexpected visitorsByTime: %+v", d.Stats.VisitorsByTime)
	}
	if len(d.Stats.TopReferrers) != 4 || d.Stats.TopReferrers[3].Source != "Twitter" {
		t.Fatalf("unexpected referrers: %+v", d.Stats.TopReferrers)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := "profile:\n  name: Someone\n  age: 30\n  location: Nowhere\nprojects: []\nstats:\n  totalVisits: 0\n  uniqueVisitors: 0\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.Profile.Name != "Someone" || d.Profile.Bio != nil {
		t.Fatalf("unexpected profile: %+v", d.Profile)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte("profile:\n  name: X\n  nickname: y\n")); err == nil {
		t.Fatalf("Parse: expected error for unknown field")
	}
	if _, err := Parse([]byte("profile:\n  age: 3\n")); err == nil {
		t.Fatalf("Parse: expected error for missing name")
	}
}
