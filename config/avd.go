package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mobile-next/mobileinput/utils"
	"gopkg.in/ini.v1"
)

// AVDDisplay is the screen geometry of an Android Virtual Device.
type AVDDisplay struct {
	Name    string
	Width   int
	Height  int
	Density int
}

// avdHome returns ~/.android/avd. Overridable in tests.
var avdHome = func() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".android", "avd"), nil
}

// LookupAVDDisplay reads the display size of the named emulator from its
// config.ini.
func LookupAVDDisplay(name string) (AVDDisplay, error) {
	displays, err := listAVDDisplays()
	if err != nil {
		return AVDDisplay{}, err
	}

	display, ok := displays[name]
	if !ok {
		return AVDDisplay{}, fmt.Errorf("avd %q not found", name)
	}
	return display, nil
}

func listAVDDisplays() (map[string]AVDDisplay, error) {
	displays := make(map[string]AVDDisplay)

	avdDir, err := avdHome()
	if err != nil {
		return displays, err
	}

	matches, err := filepath.Glob(filepath.Join(avdDir, "*.ini"))
	if err != nil {
		return displays, err
	}

	for _, iniFile := range matches {
		avdName := strings.TrimSuffix(filepath.Base(iniFile), ".ini")

		pointer, err := ini.Load(iniFile)
		if err != nil {
			utils.Verbose("Failed to read %s: %v", iniFile, err)
			continue
		}

		avdPath := pointer.Section("").Key("path").String()
		if avdPath == "" {
			continue
		}

		configPath := filepath.Join(avdPath, "config.ini")
		configData, err := ini.Load(configPath)
		if err != nil {
			utils.Verbose("Failed to read %s: %v", configPath, err)
			continue
		}

		root := configData.Section("")
		width := root.Key("hw.lcd.width").MustInt(0)
		height := root.Key("hw.lcd.height").MustInt(0)
		if width <= 0 || height <= 0 {
			utils.Verbose("avd %s has no display size", avdName)
			continue
		}

		displays[avdName] = AVDDisplay{
			Name:    root.Key("avd.ini.displayname").MustString(avdName),
			Width:   width,
			Height:  height,
			Density: root.Key("hw.lcd.density").MustInt(0),
		}
	}

	return displays, nil
}
