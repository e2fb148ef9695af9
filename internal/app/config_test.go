package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestConfigBindAndParse(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-n", "12", "-birth", "6", "-wrap=false"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.GridSize != 12 || cfg.Birth != 6 || cfg.Wrap {
		t.Fatalf("parsed config = %+v", cfg)
	}
	// Unset flags keep their defaults.
	if cfg.SMin != 4 || cfg.SMax != 5 {
		t.Fatalf("defaults lost: smin=%d smax=%d", cfg.SMin, cfg.SMax)
	}
}

func TestConfigLoadFileMerges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life3d.json")
	if err := os.WriteFile(path, []byte(`{"grid_size": 30, "density": 0.35}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.GridSize != 30 {
		t.Fatalf("GridSize = %d, want 30", cfg.GridSize)
	}
	if cfg.Density != 0.35 {
		t.Fatalf("Density = %v, want 0.35", cfg.Density)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Birth != 4 || cfg.TPS != 60 {
		t.Fatalf("merge lost defaults: %+v", cfg)
	}
}

func TestConfigLoadFileMissing(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("loading a missing file must fail")
	}
}

func TestSimOptionsRoundTrip(t *testing.T) {
	cfg := NewConfig()
	cfg.GridSize = 15
	cfg.Wrap = false
	opts := cfg.SimOptions()
	if opts["n"] != "15" || opts["wrap"] != "false" || opts["birth"] != "4" {
		t.Fatalf("options = %v", opts)
	}
}
