package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/retrobank/internal/config"
	"github.com/jask/retrobank/internal/note"
)

func TestLoadNoteWithoutPath(t *testing.T) {
	n, st, err := loadNote(config.Config{})
	if err != nil {
		t.Fatalf("loadNote: %v", err)
	}
	if n != nil {
		t.Fatal("expected no note")
	}
	if st != note.DefaultChainState() {
		t.Fatalf("state = %+v, want defaults", st)
	}
}

func TestLoadNoteConfigOverridesFixtureState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.toml")
	body := "value = 1\ncommitment = \"0x10\"\nnullifier_hash = \"16\"\n[state]\nsize = 3\nroot = \"0xaa\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{Note: config.NoteConfig{Path: path, StateSize: 77}}
	n, st, err := loadNote(cfg)
	if err != nil {
		t.Fatalf("loadNote: %v", err)
	}
	if n == nil || n.Value != 1 {
		t.Fatalf("unexpected note %+v", n)
	}
	if st.Size != 77 || st.Root != "0xaa" {
		t.Fatalf("state = %+v", st)
	}
}

func TestLoadNoteBadFixture(t *testing.T) {
	cfg := config.Config{Note: config.NoteConfig{Path: filepath.Join(t.TempDir(), "missing.toml")}}
	if _, _, err := loadNote(cfg); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}

func TestRunReportsBadFixtureOnStderr(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, "retrobank.log")
	t.Setenv("RETROBANK_CONFIG", cfgPath)
	t.Setenv("RETROBANK_LOG_PATH", logPath)
	t.Setenv("RETROBANK_NOTE_PATH", filepath.Join(dir, "missing.toml"))

	var stderr bytes.Buffer
	if code := run(&stderr); code != 1 {
		t.Fatalf("run = %d, want 1", code)
	}
	if !strings.HasPrefix(stderr.String(), "note: ") || !strings.Contains(stderr.String(), "missing.toml") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Fatalf("log file should not be created before the note loads, stat err = %v", err)
	}
}
