package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"cdplay/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("CDPLAY_DRIVE", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLock := filepath.Join(tempHome, ".local", "state", "cdplay")
	if cfg.Paths.LockDir != wantLock {
		t.Fatalf("unexpected lock dir: got %q want %q", cfg.Paths.LockDir, wantLock)
	}
	if cfg.Paths.LogDir != filepath.Join(tempHome, ".local", "share", "cdplay", "logs") {
		t.Fatalf("unexpected log dir: %q", cfg.Paths.LogDir)
	}
	if cfg.Drive.Index != 0 {
		t.Fatalf("unexpected drive index: %d", cfg.Drive.Index)
	}
	if cfg.Drive.Device != "/dev/sr0" {
		t.Fatalf("unexpected device: %q", cfg.Drive.Device)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Watch.PollInterval != config.Default().Watch.PollInterval {
		t.Fatalf("unexpected poll interval: %d", cfg.Watch.PollInterval)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LockDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "cdplay.toml")
	t.Setenv("CDPLAY_DRIVE", "")

	type payload struct {
		Drive struct {
			Index  int    `toml:"index"`
			Device string `toml:"device"`
		} `toml:"drive"`
		Paths struct {
			LockDir string `toml:"lock_dir"`
		} `toml:"paths"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Drive.Index = 2
	custom.Drive.Device = " /dev/sr2 "
	custom.Paths.LockDir = filepath.Join(tempDir, "locks")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = " Debug "

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Drive.Index != 2 || cfg.Drive.Device != "/dev/sr2" {
		t.Fatalf("unexpected drive: %+v", cfg.Drive)
	}
	if cfg.Paths.LockDir != filepath.Join(tempDir, "locks") {
		t.Fatalf("unexpected lock dir: %q", cfg.Paths.LockDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestDriveEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CDPLAY_DRIVE", "3")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Drive.Index != 3 {
		t.Fatalf("expected drive index from env, got %d", cfg.Drive.Index)
	}

	t.Setenv("CDPLAY_DRIVE", "first")
	if _, _, _, err := config.Load(""); err == nil || !strings.Contains(err.Error(), "CDPLAY_DRIVE") {
		t.Fatalf("expected CDPLAY_DRIVE error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"negative drive", func(c *config.Config) { c.Drive.Index = -1 }, "drive.index"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"poll interval", func(c *config.Config) { c.Watch.PollInterval = 0 }, "watch.poll_interval"},
		{"netlink without device", func(c *config.Config) { c.Drive.Device = "" }, "drive.device"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tt.want)
			}
		})
	}

	cfg := config.Default()
	cfg.Drive.Device = ""
	cfg.Watch.UseNetlink = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("polling-only config should validate: %v", err)
	}
}

func TestCreateSampleLoads(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CDPLAY_DRIVE", "")
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Drive.Device != "/dev/sr0" || !cfg.Watch.UseNetlink {
		t.Fatalf("sample values not loaded: %+v", cfg)
	}

	encoded, err := cfg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(encoded), "[drive]") {
		t.Fatalf("encoded config missing drive table: %s", encoded)
	}
}
