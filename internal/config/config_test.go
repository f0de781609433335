package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{Version: "1", PageSize: 10, SiblingCount: 2}
	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("expected an error for a missing config")
	}
}

func TestLoadConfigCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".empdir"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".empdir", "config.json"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Error("expected an error for corrupt config")
	}
}

func TestEffectiveDefaults(t *testing.T) {
	var nilCfg *Config
	if got := nilCfg.EffectivePageSize(); got != DefaultPageSize {
		t.Errorf("nil config page size = %d, want %d", got, DefaultPageSize)
	}

	empty := &Config{}
	if got := empty.EffectivePageSize(); got != DefaultPageSize {
		t.Errorf("empty config page size = %d, want %d", got, DefaultPageSize)
	}
	if got := empty.EffectiveSiblingCount(); got != DefaultSiblingCount {
		t.Errorf("empty config sibling count = %d, want %d", got, DefaultSiblingCount)
	}

	set := &Config{PageSize: 25, SiblingCount: 3}
	if got := set.EffectivePageSize(); got != 25 {
		t.Errorf("page size = %d, want 25", got)
	}
	if got := set.EffectiveSiblingCount(); got != 3 {
		t.Errorf("sibling count = %d, want 3", got)
	}
}
