package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("expected a default db path")
	}
	if cfg.Language != "en" {
		t.Errorf("expected default language en, got %q", cfg.Language)
	}
	if cfg.ListenAddr == "" {
		t.Error("expected a default listen address")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yml")

	saved := &Config{
		DBPath:     "/tmp/notes.db",
		Language:   "ja",
		Theme:      "light",
		ListenAddr: "127.0.0.1:9999",
	}
	if err := saved.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !ConfigExists(path) {
		t.Fatal("ConfigExists should see the saved file")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *saved {
		t.Fatalf("round trip changed config: got %+v, want %+v", loaded, saved)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("db_path: ~/notes/quicknote.db\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	home, _ := os.UserHomeDir()
	want := filepath.Join(home, "notes", "quicknote.db")
	if cfg.DBPath != want {
		t.Errorf("got %q, want %q", cfg.DBPath, want)
	}
}
