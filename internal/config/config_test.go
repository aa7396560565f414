package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Atomic-Germ/snes9xGC/internal/device"
	"github.com/Atomic-Germ/snes9xGC/internal/input"
	"github.com/Atomic-Germ/snes9xGC/internal/mapping"
	"github.com/Atomic-Germ/snes9xGC/internal/snes"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snes9xgc.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]string{"--config", writeConfig(t, "")})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":8080" {
		t.Errorf("listen = %q, want :8080", cfg.Listen)
	}
	if cfg.PollHz != 60 || cfg.Threshold != 70 || cfg.Deadzone != 20 {
		t.Errorf("defaults: %+v", cfg)
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "listen: ':9000'\npoll_hz: 30\n")
	cfg, err := Load([]string{"--config", path, "--listen", ":7000"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Listen != ":7000" {
		t.Errorf("flag did not win: listen = %q", cfg.Listen)
	}
	if cfg.PollHz != 30 {
		t.Errorf("file value lost: poll_hz = %d", cfg.PollHz)
	}
}

func TestReaderOptions(t *testing.T) {
	path := writeConfig(t, `
threshold: 60
deadzone: 35
poll_hz: 50
channels:
  - scheme: pad
    family: classic
  - scheme: superscope
    family: wiimote
hotkeys:
  - name: menu
    buttons: [L, R, Start]
  - name: broken
    buttons: [L, Turbo]
`)
	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.ReaderOptions()
	if err != nil {
		t.Fatal(err)
	}

	want0 := input.ChannelConfig{Scheme: snes.Pad, Family: device.Classic}
	if opts.Channels[0] != want0 {
		t.Errorf("channel 1 = %+v, want %+v", opts.Channels[0], want0)
	}
	want1 := input.ChannelConfig{Scheme: snes.Superscope, Family: device.Wiimote}
	if opts.Channels[1] != want1 {
		t.Errorf("channel 2 = %+v, want %+v", opts.Channels[1], want1)
	}
	// Unconfigured channels fall back to pad/gcpad.
	want3 := input.ChannelConfig{Scheme: snes.Pad, Family: device.GCPad}
	if opts.Channels[3] != want3 {
		t.Errorf("channel 4 = %+v, want %+v", opts.Channels[3], want3)
	}

	if opts.PollInterval != time.Second/50 {
		t.Errorf("poll interval = %v", opts.PollInterval)
	}
	if opts.Threshold != 60 {
		t.Errorf("threshold = %d", opts.Threshold)
	}
	if opts.Deadzone != 35 {
		t.Errorf("deadzone = %d", opts.Deadzone)
	}

	// The broken hotkey is dropped, not fatal.
	if len(opts.Hotkeys) != 1 {
		t.Fatalf("hotkeys = %+v, want one valid entry", opts.Hotkeys)
	}
	if opts.Hotkeys[0].Combo != snes.ButtonL|snes.ButtonR|snes.ButtonStart {
		t.Errorf("menu combo = %#x", opts.Hotkeys[0].Combo)
	}
}

func TestReaderOptionsRejectsUnknownScheme(t *testing.T) {
	path := writeConfig(t, "channels:\n  - scheme: gameboy\n    family: gcpad\n")
	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.ReaderOptions(); err == nil {
		t.Error("unknown scheme accepted")
	}
}

func TestApplyRemaps(t *testing.T) {
	path := writeConfig(t, `
remaps:
  - scheme: pad
    family: gcpad
    slot: 0
    code: 0x0200
  - scheme: pad
    family: gcpad
    slot: 99
    code: 0x0001
  - scheme: nosuch
    family: gcpad
    slot: 0
    code: 0x0001
`)
	cfg, err := Load([]string{"--config", path})
	if err != nil {
		t.Fatal(err)
	}

	reg := mapping.NewRegistry()
	if n := cfg.ApplyRemaps(reg); n != 1 {
		t.Errorf("applied = %d, want 1", n)
	}
	if got := reg.Entry(snes.Pad, device.GCPad, 0); got != device.GCB {
		t.Errorf("remapped slot = %#x, want %#x", got, device.GCB)
	}
	// The out-of-range slot left its row alone.
	if got := reg.Entry(snes.Pad, device.GCPad, 1); got != device.GCB {
		t.Errorf("slot 1 = %#x, want untouched %#x", got, device.GCB)
	}
}
