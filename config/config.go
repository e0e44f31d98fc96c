// Package config loads mobileinput settings from an INI file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mobile-next/mobileinput/charmap"
	"github.com/mobile-next/mobileinput/events"
	"github.com/mobile-next/mobileinput/gesture"
	"github.com/mobile-next/mobileinput/utils"
	"gopkg.in/ini.v1"
)

const DefaultListenAddress = "localhost:12000"

// CharMapConfig sets up the character map used for typed text. Layout names
// the default layout: "us" or one defined in LayoutFile.
type CharMapConfig struct {
	CacheSize  int
	Layout     string
	LayoutFile string
}

// ScreenConfig describes the virtual screen a session normalizes input for.
// The on-screen keyboard occupies the bottom KeyboardHeight pixels.
type ScreenConfig struct {
	Width          int
	Height         int
	KeyboardHeight int
	// AVD, when set, names an emulator whose display size overrides
	// Width and Height.
	AVD string
}

type ServerConfig struct {
	Listen string
	CORS   bool
}

type Config struct {
	Input   events.Config
	Gesture gesture.Config
	CharMap CharMapConfig
	Screen  ScreenConfig
	Server  ServerConfig
}

func Default() *Config {
	return &Config{
		Input:   events.DefaultConfig(),
		Gesture: gesture.DefaultConfig(),
		CharMap: CharMapConfig{
			CacheSize: 16,
			Layout:    charmap.DefaultLayout,
		},
		Screen: ScreenConfig{
			Width:          1080,
			Height:         2400,
			KeyboardHeight: 800,
		},
		Server: ServerConfig{
			Listen: DefaultListenAddress,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		utils.Verbose("config file %s not found, using defaults", path)
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.apply(file); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	// layout files are relative to the config file
	if lf := cfg.CharMap.LayoutFile; lf != "" && !filepath.IsAbs(lf) {
		cfg.CharMap.LayoutFile = filepath.Join(filepath.Dir(path), lf)
	}

	if cfg.Screen.AVD != "" {
		display, err := LookupAVDDisplay(cfg.Screen.AVD)
		if err != nil {
			return nil, err
		}
		cfg.Screen.Width = display.Width
		cfg.Screen.Height = display.Height
	}

	return cfg, nil
}

func (c *Config) apply(file *ini.File) error {
	input := file.Section("input")
	if key := input.Key("long_press_timeout"); key.String() != "" {
		d, err := key.Duration()
		if err != nil {
			return fmt.Errorf("input.long_press_timeout: %w", err)
		}
		c.Input.LongPressTimeout = d
	}
	if input.HasKey("ime_sentinel") {
		sentinel := []rune(input.Key("ime_sentinel").String())
		switch len(sentinel) {
		case 0:
			c.Input.IMESentinel = 0
		case 1:
			c.Input.IMESentinel = sentinel[0]
		default:
			return fmt.Errorf("input.ime_sentinel: must be a single character")
		}
	}
	c.Input.HoverKeyCode = input.Key("hover_keycode").MustInt(c.Input.HoverKeyCode)
	c.Input.TrackballScale = float32(input.Key("trackball_scale").MustFloat64(float64(c.Input.TrackballScale)))
	c.Input.JoystickScale = float32(input.Key("joystick_scale").MustFloat64(float64(c.Input.JoystickScale)))

	g := file.Section("gesture")
	c.Gesture.TouchSlop = float32(g.Key("touch_slop").MustFloat64(float64(c.Gesture.TouchSlop)))
	c.Gesture.DoubleTapSlop = float32(g.Key("double_tap_slop").MustFloat64(float64(c.Gesture.DoubleTapSlop)))
	c.Gesture.DoubleTapTimeout = g.Key("double_tap_timeout").MustDuration(c.Gesture.DoubleTapTimeout)
	c.Gesture.DoubleTapMinTime = g.Key("double_tap_min_time").MustDuration(c.Gesture.DoubleTapMinTime)
	c.Gesture.MinFlingVelocity = float32(g.Key("min_fling_velocity").MustFloat64(float64(c.Gesture.MinFlingVelocity)))

	cm := file.Section("charmap")
	c.CharMap.CacheSize = cm.Key("cache_size").MustInt(c.CharMap.CacheSize)
	c.CharMap.Layout = cm.Key("layout").MustString(c.CharMap.Layout)
	c.CharMap.LayoutFile = cm.Key("layout_file").String()
	if c.CharMap.CacheSize <= 0 {
		return fmt.Errorf("charmap.cache_size: must be positive")
	}

	screen := file.Section("screen")
	c.Screen.Width = screen.Key("width").MustInt(c.Screen.Width)
	c.Screen.Height = screen.Key("height").MustInt(c.Screen.Height)
	c.Screen.KeyboardHeight = screen.Key("keyboard_height").MustInt(c.Screen.KeyboardHeight)
	c.Screen.AVD = screen.Key("avd").String()

	srv := file.Section("server")
	c.Server.Listen = srv.Key("listen").MustString(c.Server.Listen)
	c.Server.CORS = srv.Key("cors").MustBool(c.Server.CORS)

	return nil
}
