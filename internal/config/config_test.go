package config

import (
	"context"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "test-token")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Store.Backend != BackendFile {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, BackendFile)
	}
	if cfg.Store.DataFile != "data/deals.json" {
		t.Errorf("Store.DataFile = %q, want data/deals.json", cfg.Store.DataFile)
	}
	if cfg.Store.BackupDir != "backup" {
		t.Errorf("Store.BackupDir = %q, want backup", cfg.Store.BackupDir)
	}
	if cfg.Admin.Token != "test-token" {
		t.Errorf("Admin.Token = %q, want test-token", cfg.Admin.Token)
	}
	if !cfg.App.IsDevelopment() {
		t.Errorf("App.Environment = %q, want development by default", cfg.App.Environment)
	}
}

func TestLoadRequiresAdminToken(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("Load succeeded without ADMIN_TOKEN")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "test-token")
	t.Setenv("STORE_BACKEND", "redis")

	if _, err := Load(context.Background()); err == nil {
		t.Fatal("Load accepted an unknown store backend")
	}
}

func TestLoadPostgresBackend(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "test-token")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "deals")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.Backend != BackendPostgres {
		t.Errorf("Store.Backend = %q, want %q", cfg.Store.Backend, BackendPostgres)
	}
	url := cfg.Database.GetDatabaseURL()
	want := "host=db.internal port=5432 user=postgres password=postgres dbname=deals sslmode=disable"
	if url != want {
		t.Errorf("GetDatabaseURL = %q, want %q", url, want)
	}
}

func TestGetServerAddr(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: "9090"}
	if got := c.GetServerAddr(); got != "127.0.0.1:9090" {
		t.Errorf("GetServerAddr = %q, want 127.0.0.1:9090", got)
	}
}
