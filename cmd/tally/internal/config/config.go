// Package config loads the optional tally.yaml demo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional tally.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Labels LabelsConfig `yaml:"labels"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Title string `yaml:"title,omitempty"`
}

// LabelsConfig overrides the counter button labels.
type LabelsConfig struct {
	Increment string `yaml:"increment,omitempty"`
	Scale     string `yaml:"scale,omitempty"`
	Reset     string `yaml:"reset,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root   string
	Title  string
	Labels LabelsConfig
}

// LoadOptional reads tally.yaml if present. A missing file resolves to the
// zero config; a malformed file is an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "tally.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read tally.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tally.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads tally.yaml (if present) and resolves defaults. The app title
// defaults to the last segment of the enclosing module path, falling back to
// the directory name when no go.mod is found.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(cfg.App.Title)
	if title == "" {
		title = defaultTitle(dir)
	}

	return &Resolved{
		Root:   dir,
		Title:  title,
		Labels: cfg.Labels,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func defaultTitle(dir string) string {
	base := filepath.Base(dir)
	path, err := modulePath(dir)
	if err != nil {
		return base
	}
	modName, _, ok := module.SplitPathVersion(path)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			return parts[len(parts)-1]
		}
	}
	return base
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}
