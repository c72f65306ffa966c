package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`default_path = "/srv/journal"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultPath != "/srv/journal" {
		t.Errorf("expected /srv/journal, got %q", cfg.DefaultPath)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

func TestLoad_MalformedToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`default_path = `), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
	if errors.Is(err, ErrMissing) {
		t.Error("malformed config should not report as missing")
	}
}

func TestLoad_IgnoresUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "default_path = \"/srv/journal\"\neditor = \"vim\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultPath != "/srv/journal" {
		t.Errorf("expected /srv/journal, got %q", cfg.DefaultPath)
	}
}

func TestLoad_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`default_path = "~/journal"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultPath != filepath.Join(home, "journal") {
		t.Errorf("expected tilde expansion, got %q", cfg.DefaultPath)
	}
}

func TestLoad_UserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".config", "file-journal")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`default_path = "/srv/journal"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultPath != "/srv/journal" {
		t.Errorf("expected /srv/journal, got %q", cfg.DefaultPath)
	}
}

func TestLoad_LocalConfigWinsOverUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "file-journal")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`default_path = "/from-home"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cwd := t.TempDir()
	t.Chdir(cwd)
	if err := os.WriteFile(filepath.Join(cwd, ".file-journal.toml"), []byte(`default_path = "/from-local"`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultPath != "/from-local" {
		t.Errorf("expected local config to win, got %q", cfg.DefaultPath)
	}
}

func TestLoad_NothingFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	_, err := Load("")
	if !errors.Is(err, ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

func TestJournalRoot_FlagWins(t *testing.T) {
	root, err := JournalRoot("/flag/root", nil, ErrMissing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/flag/root" {
		t.Errorf("expected flag root, got %q", root)
	}
}

func TestJournalRoot_ConfigFallback(t *testing.T) {
	root, err := JournalRoot("", &Config{DefaultPath: "/cfg/root"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != "/cfg/root" {
		t.Errorf("expected config root, got %q", root)
	}
}

func TestJournalRoot_MissingConfigPropagates(t *testing.T) {
	_, err := JournalRoot("", nil, ErrMissing)
	if !errors.Is(err, ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

func TestJournalRoot_EmptyDefaultPath(t *testing.T) {
	_, err := JournalRoot("", &Config{}, nil)
	if !errors.Is(err, ErrNoDefaultPath) {
		t.Errorf("expected ErrNoDefaultPath, got %v", err)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := Write(&Config{DefaultPath: "/srv/journal"}, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultPath != "/srv/journal" {
		t.Errorf("round trip lost default_path: %q", cfg.DefaultPath)
	}
}
