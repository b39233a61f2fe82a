// Package config resolves where hulo keeps its data file and settings.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	// DataFileName is the name of the journal data file.
	DataFileName = "hulo.db"

	// SettingsFileName is the name of the user preference file.
	SettingsFileName = "settings.yaml"
)

// Dir returns the hulo configuration directory.
//
// Resolution:
//   - $HULO_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/hulo if set (respects XDG on any platform)
//   - %AppData%/hulo on Windows
//   - ~/.config/hulo on macOS and Linux
func Dir() string {
	if dir := os.Getenv("HULO_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hulo")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "hulo")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hulo")
}

// SettingsPath returns the path of the preference file.
// The file lives in Dir() regardless of where the journal is stored.
func SettingsPath() string {
	return filepath.Join(Dir(), SettingsFileName)
}

// DataPath returns the path of the journal data file.
//
// Resolution:
//   - $HULO_DB if set
//   - Dir()/hulo.db when global is true
//   - ./hulo.db in the working directory otherwise
func DataPath(global bool) string {
	if path := os.Getenv("HULO_DB"); path != "" {
		return path
	}
	if global {
		if dir := Dir(); dir != "" {
			return filepath.Join(dir, DataFileName)
		}
	}
	return DataFileName
}
