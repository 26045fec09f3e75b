package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PageSize != 25 {
		t.Errorf("default page size = %d, want 25", cfg.PageSize)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("default log level = %q, want warn", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ROLO_DB", "/tmp/test.db")
	t.Setenv("ROLO_PAGE_SIZE", "50")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.PageSize != 50 {
		t.Errorf("page size = %d, want 50", cfg.PageSize)
	}
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	t.Setenv("ROLO_PAGE_SIZE", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero page size")
	}
}
