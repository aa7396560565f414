// Package config loads the daemon's settings: listen address, poll
// rate, analog thresholds, per-channel scheme/family assignment, hotkey
// combos, and the persisted user remap overlay applied on top of the
// canonical mapping defaults.
package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Atomic-Germ/snes9xGC/internal/device"
	"github.com/Atomic-Germ/snes9xGC/internal/input"
	"github.com/Atomic-Germ/snes9xGC/internal/mapping"
	"github.com/Atomic-Germ/snes9xGC/internal/snes"
)

// Channel assigns one controller channel a console scheme and the
// family driving it.
type Channel struct {
	Scheme string `mapstructure:"scheme"`
	Family string `mapstructure:"family"`
}

// Hotkey names a button combo in Pad button names.
type Hotkey struct {
	Name    string   `mapstructure:"name"`
	Buttons []string `mapstructure:"buttons"`
}

// Remap overrides a single mapping slot. Code is the family raw bit
// code to assign; 0 unmaps the slot.
type Remap struct {
	Scheme string `mapstructure:"scheme"`
	Family string `mapstructure:"family"`
	Slot   int    `mapstructure:"slot"`
	Code   uint32 `mapstructure:"code"`
}

type Config struct {
	Listen    string    `mapstructure:"listen"`
	PollHz    int       `mapstructure:"poll_hz"`
	Threshold int16     `mapstructure:"threshold"`
	Deadzone  int16     `mapstructure:"deadzone"`
	Channels  []Channel `mapstructure:"channels"`
	Hotkeys   []Hotkey  `mapstructure:"hotkeys"`
	Remaps    []Remap   `mapstructure:"remaps"`
}

// Load parses flags and the optional config file. Flags win over the
// file, the file over the defaults.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("snes9xgc", pflag.ContinueOnError)
	configFile := fs.String("config", "", "path to config file")
	fs.String("listen", ":8080", "HTTP listen address")
	fs.Int("poll-hz", 60, "input poll rate")
	fs.Int16("threshold", 70, "analog-to-digital direction threshold")
	fs.Int16("deadzone", 20, "analog stick deadzone")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("listen", ":8080")
	v.SetDefault("poll_hz", 60)
	v.SetDefault("threshold", 70)
	v.SetDefault("deadzone", 20)

	for flag, key := range map[string]string{
		"listen":    "listen",
		"poll-hz":   "poll_hz",
		"threshold": "threshold",
		"deadzone":  "deadzone",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix("SNES9XGC")
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("snes9xgc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/snes9xgc")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ReaderOptions translates the config into reader options. Channels
// beyond the configured list default to a GameCube pad driving a
// standard Pad port; a channel with an unknown scheme or family name is
// an error.
func (c *Config) ReaderOptions() (input.Options, error) {
	opts := input.Options{
		Threshold: c.Threshold,
		Deadzone:  c.Deadzone,
	}
	if c.PollHz > 0 {
		opts.PollInterval = time.Second / time.Duration(c.PollHz)
	}

	for i := range opts.Channels {
		opts.Channels[i] = input.ChannelConfig{
			Scheme: snes.Pad,
			Family: device.GCPad,
		}
	}
	for i, ch := range c.Channels {
		if i >= device.NumChannels {
			break
		}
		s, ok := snes.ParseScheme(ch.Scheme)
		if !ok || !s.Valid() {
			return opts, fmt.Errorf("channel %d: unknown scheme %q", i+1, ch.Scheme)
		}
		f, ok := device.ParseFamily(ch.Family)
		if !ok || !f.Valid() {
			return opts, fmt.Errorf("channel %d: unknown family %q", i+1, ch.Family)
		}
		opts.Channels[i] = input.ChannelConfig{Scheme: s, Family: f}
	}

	for _, hk := range c.Hotkeys {
		combo := snes.ComboByNames(hk.Buttons)
		if combo == 0 {
			log.Printf("Ignoring hotkey %q: unknown button in %v", hk.Name, hk.Buttons)
			continue
		}
		opts.Hotkeys = append(opts.Hotkeys, input.Hotkey{Name: hk.Name, Combo: combo})
	}
	return opts, nil
}

// ApplyRemaps overlays the persisted user remaps onto a freshly rebuilt
// registry, one bounds-checked entry at a time. Invalid entries are
// skipped, not fatal. Returns the number of entries applied.
func (c *Config) ApplyRemaps(reg *mapping.Registry) int {
	applied := 0
	for _, rm := range c.Remaps {
		s, ok := snes.ParseScheme(rm.Scheme)
		if !ok || !s.Valid() {
			log.Printf("Ignoring remap: unknown scheme %q", rm.Scheme)
			continue
		}
		f, ok := device.ParseFamily(rm.Family)
		if !ok || !f.Valid() {
			log.Printf("Ignoring remap: unknown family %q", rm.Family)
			continue
		}
		if !reg.SetEntry(s, f, rm.Slot, rm.Code) {
			log.Printf("Ignoring remap: slot %d out of range for %s", rm.Slot, s)
			continue
		}
		applied++
	}
	return applied
}
