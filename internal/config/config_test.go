package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsAndValidation(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file must not error: %v", err)
	}
	if cfg.Storage.DataDir != "data/users" {
		t.Errorf("unexpected data dir default: %q", cfg.Storage.DataDir)
	}
	if cfg.Schedule.MonthlyDigestCron == "" {
		t.Error("expected a digest cron default")
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation failure without a bot token")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "telegram:\n  bot_token: from-file\nstorage:\n  data_dir: /tmp/ledgers\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Telegram.BotToken != "from-env" {
		t.Errorf("env must override file, got %q", cfg.Telegram.BotToken)
	}
	if cfg.Storage.DataDir != "/tmp/ledgers" {
		t.Errorf("file value lost: %q", cfg.Storage.DataDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
