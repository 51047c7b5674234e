//go:build unit

package config

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Server.Port != "8080" {
			t.Errorf("expected default port '8080', got '%s'", cfg.Server.Port)
		}
		if cfg.DB.Driver != "sqlite3" {
			t.Errorf("expected default driver 'sqlite3', got '%s'", cfg.DB.Driver)
		}
		if !cfg.DB.Migrate {
			t.Error("expected migrations to be enabled by default")
		}
		if !cfg.Seed.Enabled {
			t.Error("expected seeding to be enabled by default")
		}
		if cfg.Log.Level != "info" {
			t.Errorf("expected default log level 'info', got '%s'", cfg.Log.Level)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("WASTE_SERVER_PORT", "9090")
		t.Setenv("WASTE_SERVER_BASE_URL", "https://recycle.example.com")
		t.Setenv("WASTE_DB_DRIVER", "mysql")
		t.Setenv("WASTE_SEED_ENABLED", "false")

		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}
		if cfg.Server.Port != "9090" {
			t.Errorf("expected port '9090', got '%s'", cfg.Server.Port)
		}
		if cfg.Server.BaseURL != "https://recycle.example.com" {
			t.Errorf("unexpected base url '%s'", cfg.Server.BaseURL)
		}
		if cfg.DB.Driver != "mysql" {
			t.Errorf("expected driver 'mysql', got '%s'", cfg.DB.Driver)
		}
		if cfg.Seed.Enabled {
			t.Error("expected seeding to be disabled")
		}
	})
}
