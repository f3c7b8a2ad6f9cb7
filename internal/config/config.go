// Package config loads the user settings labnote needs to talk to Canvas.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultBaseURL  = "https://canvas.cse.taylor.edu/api/v1"
	DefaultLabGroup = "Labs & Homework"
	DefaultTimeout  = 5 * time.Second
	EnvPrefix       = "LABNOTE"
)

var (
	ErrMissingName  = errors.New("missing name")
	ErrMissingToken = errors.New("missing token")
)

// Format is shown to the user when the configuration is incomplete.
const Format = `name: <your name here>
token: <token from canvas here>`

// Config holds the resolved settings.
type Config struct {
	Name      string
	Token     string
	BaseURL   string
	Timeout   time.Duration
	LabGroup  string
	DB        string
	OutputDir string
	Editor    string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	v.SetDefault("base-url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("lab-group", DefaultLabGroup)
	v.SetDefault("db", filepath.Join(home, ".labnote_data", "labnote.db"))
	v.SetDefault("output-dir", ".")
	v.SetDefault("editor", os.Getenv("EDITOR"))
}

// Load reads the settings from v. Name and token are required.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Name:      strings.TrimSpace(v.GetString("name")),
		Token:     strings.TrimSpace(v.GetString("token")),
		BaseURL:   strings.TrimRight(v.GetString("base-url"), "/"),
		Timeout:   v.GetDuration("timeout"),
		LabGroup:  v.GetString("lab-group"),
		DB:        v.GetString("db"),
		OutputDir: v.GetString("output-dir"),
		Editor:    v.GetString("editor"),
	}

	if cfg.Name == "" {
		return nil, fmt.Errorf("%w in %s, expected:\n%s", ErrMissingName, source(v), Format)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w in %s, expected:\n%s", ErrMissingToken, source(v), Format)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.LabGroup == "" {
		cfg.LabGroup = DefaultLabGroup
	}
	return cfg, nil
}

func source(v *viper.Viper) string {
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	return "configuration"
}
