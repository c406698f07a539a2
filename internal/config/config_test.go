package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != FormatText || len(cfg.SearchPaths) != 1 {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
}

func TestLoadDecodesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".swcconfig.yaml")
	content := "search_paths:\n  - ./units\n  - ./vendor\njobs: 4\nformat: json\nverbose: true\ndefines:\n  DEBUG: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Jobs != 4 || cfg.Format != FormatJSON || !cfg.Verbose {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.SearchPaths) != 2 || cfg.SearchPaths[1] != "./vendor" {
		t.Fatalf("unexpected search paths: %v", cfg.SearchPaths)
	}
	if !cfg.Defines["DEBUG"] {
		t.Fatalf("expected DEBUG define true")
	}
}
