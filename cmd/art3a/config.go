package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// config holds the settings read from config.ini. Command line flags win
// over every field.
type config struct {
	Editor        string // stamped into the editor key by fmt when absent
	StripComments bool
	Verbose       bool
}

var iniOptions = ini.LoadOptions{
	InsensitiveSections:     true,
	InsensitiveKeys:         true,
	SkipUnrecognizableLines: true,
}

// defaultConfigPath returns $XDG_CONFIG_HOME/art3a/config.ini, or "" when no
// config directory is known.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "art3a", "config.ini")
}

// loadConfig reads path. A missing default file yields the zero config; a
// missing file given with --config is an error.
func loadConfig(path string, explicit bool) (*config, error) {
	if path == "" {
		return &config{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &config{}, nil
		}
		return nil, err
	}
	return parseConfig(path)
}

// parseConfig accepts a file name or raw []byte contents.
func parseConfig(source any) (*config, error) {
	f, err := ini.LoadSources(iniOptions, source)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	section := f.Section("fmt")
	return &config{
		Editor:        section.Key("editor").String(),
		StripComments: section.Key("strip_comments").MustBool(false),
		Verbose:       f.Section("log").Key("verbose").MustBool(false),
	}, nil
}
