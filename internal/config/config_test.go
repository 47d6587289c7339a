package config

import (
	"testing"

	"github.com/park285/chess-movelog/internal/board"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MOVELOG_PROMOTION_PIECE", "")
	t.Setenv("MOVELOG_FILE_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FileFormat != "json" {
		t.Fatalf("expected json default, got %q", cfg.FileFormat)
	}
	if pt, _ := cfg.Promotion(); pt != board.Queen {
		t.Fatalf("expected queen promotion default, got %v", pt)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MOVELOG_PROMOTION_PIECE", " N ")
	t.Setenv("MOVELOG_FILE_FORMAT", "YAML")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FileFormat != "yaml" {
		t.Fatalf("expected yaml, got %q", cfg.FileFormat)
	}
	if pt, _ := cfg.Promotion(); pt != board.Knight {
		t.Fatalf("expected knight, got %v", pt)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct{ promo, format string }{
		{"k", "json"},
		{"p", "json"},
		{"x", "json"},
		{"q", "xml"},
	}
	for _, tc := range cases {
		t.Setenv("MOVELOG_PROMOTION_PIECE", tc.promo)
		t.Setenv("MOVELOG_FILE_FORMAT", tc.format)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for promo=%q format=%q", tc.promo, tc.format)
		}
	}
}
