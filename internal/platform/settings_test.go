package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemorySettingsDefaults(t *testing.T) {
	st := NewMemorySettings()
	if got := st.ThawInt(42, "missing"); got != 42 {
		t.Fatalf("got %d, want default", got)
	}
	st.FreezeInt(7, "k")
	if got := st.ThawInt(0, "k"); got != 7 {
		t.Fatalf("got %d", got)
	}
	st.FreezeFloat(1.5, "f")
	if got := st.ThawFloat(0, "f"); got != 1.5 {
		t.Fatalf("got %v", got)
	}
	st.FreezeString("hi", "s")
	if got := st.ThawString("", "s"); got != "hi" {
		t.Fatalf("got %q", got)
	}
}

func TestMemorySettingsTypeMismatchYieldsDefault(t *testing.T) {
	st := NewMemorySettings()
	st.FreezeString("text", "k")
	if got := st.ThawInt(9, "k"); got != 9 {
		t.Fatalf("got %d, want default on type mismatch", got)
	}
}

func TestFileSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "settings.yaml")
	st, err := OpenFileSettings(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	st.FreezeInt(120, "main_left")
	st.FreezeInt(80, "main_top")
	st.FreezeFloat(2.5, "zoom")
	st.FreezeString("dark", "theme")

	reopened, err := OpenFileSettings(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.ThawInt(0, "main_left"); got != 120 {
		t.Fatalf("main_left = %d", got)
	}
	if got := reopened.ThawInt(0, "main_top"); got != 80 {
		t.Fatalf("main_top = %d", got)
	}
	if got := reopened.ThawFloat(0, "zoom"); got != 2.5 {
		t.Fatalf("zoom = %v", got)
	}
	if got := reopened.ThawString("", "theme"); got != "dark" {
		t.Fatalf("theme = %q", got)
	}
	if got := reopened.ThawInt(-1, "absent"); got != -1 {
		t.Fatalf("absent = %d, want default", got)
	}
}

func TestFileSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yaml")
	st, err := OpenFileSettings(path)
	if err != nil {
		t.Fatalf("open missing: %v", err)
	}
	if got := st.ThawInt(3, "k"); got != 3 {
		t.Fatalf("got %d", got)
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("file should not exist before a freeze")
	}
}
