package config

import (
	"errors"
	"os"
	"path/filepath"
)

// AppName names the directory under the user's config dir.
const AppName = "spree"

// ErrNoConfigDir is returned when neither $XDG_CONFIG_HOME nor ~/.config exist.
var ErrNoConfigDir = errors.New("failed to find config directory")

// GetConfigDir returns $XDG_CONFIG_HOME when it exists, otherwise
// $HOME/.config when that exists.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" && exists(dir) {
		return dir, nil
	}

	if home := os.Getenv("HOME"); home != "" {
		dir := filepath.Join(home, ".config")
		if exists(dir) {
			return dir, nil
		}
	}

	return "", ErrNoConfigDir
}

// DefaultPath returns the config file location used when --config is not given.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, "config.toml"), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
