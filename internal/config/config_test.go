package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdir changes the working directory for the test and restores it on
// cleanup; t.Chdir requires Go 1.24, which this toolchain predates.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

const validYAML = `
tracker:
  api_base_url: "https://tracker.example.com"
  owner: "acme"
  repo: "widgets"
  token: "file-token"

run:
  timeout: "5m"

log:
  level: "debug"
  format: "json"
`

func TestLoad_FromYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Tracker.APIBaseURL != "https://tracker.example.com" {
		t.Errorf("APIBaseURL = %q", cfg.Tracker.APIBaseURL)
	}
	if cfg.Tracker.Owner != "acme" || cfg.Tracker.Repo != "widgets" {
		t.Errorf("Owner/Repo = %q/%q", cfg.Tracker.Owner, cfg.Tracker.Repo)
	}
	if cfg.Tracker.Token != "file-token" {
		t.Errorf("Token = %q", cfg.Tracker.Token)
	}
	if cfg.Run.Timeout != 5*time.Minute {
		t.Errorf("Run.Timeout = %v", cfg.Run.Timeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("TRACKER_TOKEN", "env-token")
	t.Setenv("TRACKER_REPO", "env-repo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tracker.Token != "env-token" {
		t.Errorf("Token = %q, want env override", cfg.Tracker.Token)
	}
	if cfg.Tracker.Repo != "env-repo" {
		t.Errorf("Repo = %q, want env override", cfg.Tracker.Repo)
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdir(t, t.TempDir()) // no ./config.yaml present
	t.Setenv("TRACKER_TOKEN", "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tracker.APIBaseURL != "https://api.github.com" {
		t.Errorf("APIBaseURL default = %q", cfg.Tracker.APIBaseURL)
	}
	if cfg.Run.Timeout != 30*time.Minute {
		t.Errorf("Run.Timeout default = %v", cfg.Run.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level default = %q", cfg.Log.Level)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	chdir(t, t.TempDir())
	t.Setenv("TRACKER_TOKEN", "x") // register restore, then clear
	os.Unsetenv("TRACKER_TOKEN")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail when TRACKER_TOKEN is not set")
	}
}

func TestLoad_ExplicitPathMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("TRACKER_TOKEN", "tok")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail when CONFIG_PATH points to a missing file")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Tracker: TrackerConfig{
				APIBaseURL: "https://api.github.com",
				Owner:      "o",
				Repo:       "r",
				Token:      "t",
			},
			Run: RunConfig{Timeout: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"blank token", func(c *Config) { c.Tracker.Token = "   " }, "token"},
		{"relative base url", func(c *Config) { c.Tracker.APIBaseURL = "/repos" }, "api_base_url"},
		{"empty owner", func(c *Config) { c.Tracker.Owner = "" }, "owner"},
		{"zero timeout", func(c *Config) { c.Run.Timeout = 0 }, "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
