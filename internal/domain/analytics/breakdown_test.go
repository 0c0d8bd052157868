package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestBreakdownKeepsOrderThroughJSON(t *testing.T) {
	t.Parallel()

	in := []byte(`{"Jan":750,"Feb":820,"Mar":900,"Apr":1200}`)
	var b Breakdown
	if err := json.Unmarshal(in, &b); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(b) != 4 || b[0].Key != "Jan" || b[3].Key != "Apr" {
		t.Fatalf("unexpected order: %+v", b)
	}
	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != string(in) {
		t.Fatalf("got=%s want=%s", out, in)
	}
}

func TestBreakdownFromYAML(t *testing.T) {
	t.Parallel()

	var holder struct {
		Loc Breakdown `yaml:"loc"`
	}
	src := "loc:\n  Greece: 45\n  United States: 25\n  Other: 5\n"
	if err := yaml.Unmarshal([]byte(src), &holder); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if len(holder.Loc) != 3 || holder.Loc[1].Key != "United States" || holder.Loc[1].Value != 25 {
		t.Fatalf("unexpected breakdown: %+v", holder.Loc)
	}
	if v, ok := holder.Loc.Get("Other"); !ok || v != 5 {
		t.Fatalf("Get(Other): got=%d ok=%v", v, ok)
	}
}

func TestUniqueVisitorsFor(t *testing.T) {
	t.Parallel()

	cases := map[int]int{0: 0, 1: 0, 3: 1, 5: 2, 12487: 4994, 12490: 4996}
	for total, want := range cases {
		if got := UniqueVisitorsFor(total); got != want {
			t.Fatalf("UniqueVisitorsFor(%d): got=%d want=%d", total, got, want)
		}
	}
}

func TestTopReferrerCounts(t *testing.T) {
	t.Parallel()

	s := StatInput{TopReferrers: []Referrer{
		{Source: "Google", Count: 1843, Percentage: 7.2},
		{Source: "GitHub", Count: 952, Percentage: 8.5},
		{Source: "LinkedIn", Count: 684, Percentage: 5.5},
	}}.Model(fixedDate())

	got := s.TopReferrerCounts(2)
	if len(got) != 2 || got[0].Source != "Google" || got[1].Count != 952 {
		t.Fatalf("unexpected: %+v", got)
	}
	if got := s.TopReferrerCounts(0); len(got) != 0 {
		t.Fatalf("limit 0: expected empty, got %+v", got)
	}
	if got := s.TopReferrerCounts(10); len(got) != 3 {
		t.Fatalf("limit 10: expected 3, got %d", len(got))
	}
}

func fixedDate() time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
}
