package portfolio

import (
	"encoding/json"
	"testing"
)

func TestProfilePatchOnlyPresentFields(t *testing.T) {
	t.Parallel()

	var p ProfilePatch
	if err := json.Unmarshal([]byte(`{"bio":"x","resumeUrl":null}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	cols := p.Columns()
	if len(cols) != 2 {
		t.Fatalf("columns: want=%d got=%d (%+v)", 2, len(cols), cols)
	}
	if got, ok := cols["bio"].(*string); !ok || got == nil || *got != "x" {
		t.Fatalf("bio: unexpected %#v", cols["bio"])
	}
	if got, ok := cols["resume_url"].(*string); !ok || got != nil {
		t.Fatalf("resume_url: expected typed nil, got %#v", cols["resume_url"])
	}
}

func TestProfilePatchRejectsNullRequiredFields(t *testing.T) {
	t.Parallel()

	var p ProfilePatch
	if err := json.Unmarshal([]byte(`{"name":null,"age":null,"bio":null}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	err := p.Validate()
	want := `Validation error: Expected string, received null at "name"; Expected number, received null at "age"`
	if err == nil || err.Error() != want {
		t.Fatalf("Validate: want=%q got=%v", want, err)
	}
}

func TestProfilePatchEmpty(t *testing.T) {
	t.Parallel()

	var p ProfilePatch
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !p.Empty() {
		t.Fatalf("expected empty patch")
	}
}
