package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.Schedule.AnnouncementDays != 30 {
		t.Errorf("AnnouncementDays = %d, want 30", p.Schedule.AnnouncementDays)
	}
	if p.Schedule.AppealDays != 15 {
		t.Errorf("AppealDays = %d, want 15", p.Schedule.AppealDays)
	}
	if p.Schedule.ForeignJudgmentDays != 60 {
		t.Errorf("ForeignJudgmentDays = %d, want 60", p.Schedule.ForeignJudgmentDays)
	}
	if p.Interest.YearBasis != 365 {
		t.Errorf("YearBasis = %d, want 365", p.Interest.YearBasis)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if p != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", p)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := `
schedule:
  announcement_days: 45
interest:
  year_basis: 360
  cadence: month
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Schedule.AnnouncementDays != 45 {
		t.Errorf("AnnouncementDays = %d, want 45", p.Schedule.AnnouncementDays)
	}
	// Unset fields keep their defaults.
	if p.Schedule.AppealDays != 15 {
		t.Errorf("AppealDays = %d, want default 15", p.Schedule.AppealDays)
	}
	if p.Interest.YearBasis != 360 || p.Interest.Cadence != "month" {
		t.Errorf("Interest = %+v", p.Interest)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name, content string
	}{
		{"bad yaml", "schedule: ["},
		{"bad basis", "interest:\n  year_basis: 400\n  cadence: year\n"},
		{"bad cadence", "interest:\n  year_basis: 365\n  cadence: weekly\n"},
		{"negative days", "schedule:\n  appeal_days: -1\n"},
	}
	for _, tc := range cases {
		path := filepath.Join(dir, tc.name+".yaml")
		if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
