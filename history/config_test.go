package history_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vikdevelop/bintrans/history"
)

func TestDefaultConfig(t *testing.T) {
	cfg := history.DefaultConfig()

	if cfg.Dir != "" {
		t.Errorf("got Dir %q, want empty string", cfg.Dir)
	}
	if cfg.File != history.DefaultFile {
		t.Errorf("got File %q, want %q", cfg.File, history.DefaultFile)
	}
	if cfg.Matching != "exact" {
		t.Errorf("got Matching %q, want %q", cfg.Matching, "exact")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := history.DefaultConfig()

	cfg.Merge(&history.Config{Dir: "/data", Matching: "legacy"})

	if cfg.Dir != "/data" {
		t.Errorf("got Dir %q, want %q", cfg.Dir, "/data")
	}
	if cfg.File != history.DefaultFile {
		t.Errorf("got File %q, want %q (preserved)", cfg.File, history.DefaultFile)
	}
	if cfg.Matching != "legacy" {
		t.Errorf("got Matching %q, want %q", cfg.Matching, "legacy")
	}
}

func TestConfig_Path(t *testing.T) {
	cfg := history.Config{Dir: "/data"}
	if got, want := cfg.Path(), filepath.Join("/data", history.DefaultFile); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}

	disabled := history.DefaultConfig()
	if got := disabled.Path(); got != "" {
		t.Errorf("Path() = %q, want empty when Dir unset", got)
	}
}

func TestNewStore_Disabled(t *testing.T) {
	cfg := history.DefaultConfig()
	store, err := history.NewStore(&cfg)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store != nil {
		t.Error("NewStore() should return nil store when Dir is empty")
	}
}

func TestNewStore_UnknownMatching(t *testing.T) {
	cfg := history.Config{Dir: t.TempDir(), Matching: "fuzzy"}
	_, err := history.NewStore(&cfg)
	if !errors.Is(err, history.ErrUnknownMatching) {
		t.Errorf("NewStore() error = %v, want ErrUnknownMatching", err)
	}
}
