package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
	if cfg.Window.TPS != SyncTPS {
		t.Errorf("expected tps synced to the display, got %d", cfg.Window.TPS)
	}
	if cfg.Terminal.FPS != 30 {
		t.Errorf("expected 30 fps, got %d", cfg.Terminal.FPS)
	}
	if !cfg.Caption.Enabled || cfg.Caption.Title == "" {
		t.Error("caption should be on with a title by default")
	}
	if cfg.StatsInterval != 5*time.Second {
		t.Errorf("expected 5s stats interval, got %v", cfg.StatsInterval)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != Default().Window.Width {
		t.Error("empty path should return defaults")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "led.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "window:\n  width: 640\nterminal:\n  fps: 12\nseed: 99\nstats_interval: 250ms\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("height should keep its default, got %d", cfg.Window.Height)
	}
	if cfg.Terminal.FPS != 12 {
		t.Errorf("expected fps 12, got %d", cfg.Terminal.FPS)
	}
	if cfg.SeedOr(1) != 99 {
		t.Errorf("expected seed 99, got %d", cfg.SeedOr(1))
	}
	if cfg.StatsInterval != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", cfg.StatsInterval)
	}
	if cfg.FrameInterval() != time.Second/12 {
		t.Errorf("frame interval %v", cfg.FrameInterval())
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeFile(t, "window:\n  tps: -1\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	path = writeFile(t, "window:\n  tps: 300\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}

	path = writeFile(t, "terminal:\n  fps: 500\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSyncTPSIsValid(t *testing.T) {
	path := writeFile(t, "window:\n  tps: 0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("tps 0 should sync with the display: %v", err)
	}
	if cfg.Window.TPS != SyncTPS {
		t.Errorf("expected SyncTPS, got %d", cfg.Window.TPS)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := writeFile(t, "window: [not, a, map]\n")
	if _, err := Load(path); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Caption.Title = "Lobby wall"
	cfg.StatsInterval = 2 * time.Second

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Caption.Title != "Lobby wall" || got.StatsInterval != 2*time.Second {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestSeedOrFallback(t *testing.T) {
	cfg := Default()
	if got := cfg.SeedOr(42); got != 42 {
		t.Errorf("expected fallback seed, got %d", got)
	}
}
