// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

// Package credentials loads plotpost account credentials from a YAML
// file and the environment, so scripts do not have to embed API keys.
//
// Configuration is layered, later sources winning:
//
//  1. struct defaults
//  2. the credentials file (YAML)
//  3. PLOTPOST_* environment variables (PLOTPOST_USERNAME,
//     PLOTPOST_API_KEY, PLOTPOST_BASE_URL, ...)
package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are
// mapped onto Credentials fields.
const EnvPrefix = "PLOTPOST_"

// PathEnvVar overrides the credentials file search path.
const PathEnvVar = "PLOTPOST_CREDENTIALS"

// DefaultPaths lists where LoadDefault searches for a credentials file,
// in priority order. Entries beginning with ~ are expanded against the
// user's home directory.
var DefaultPaths = []string{
	".plotpost.yaml",
	".plotpost.yml",
	"~/.plotpost/credentials.yaml",
	"~/.plotpost/credentials.yml",
}

// Credentials is the on-disk and environment configuration for a client.
type Credentials struct {
	Username string `koanf:"username" validate:"required"`
	APIKey   string `koanf:"api_key" validate:"required"`

	// BaseURL overrides the production endpoint, e.g. for a staging
	// deployment of the service.
	BaseURL string `koanf:"base_url" validate:"omitempty,url"`

	// Filename and FileOpt seed the client's per-plot defaults.
	Filename string `koanf:"filename"`
	FileOpt  string `koanf:"fileopt" validate:"omitempty,oneof=new overwrite append extend"`

	// Verbose controls printing of informational server messages.
	Verbose bool `koanf:"verbose"`
}

// defaults returns the Credentials values applied before file and
// environment layers.
func defaults() *Credentials {
	return &Credentials{
		Verbose: true,
	}
}

// Load reads credentials from the given file path, then applies
// PLOTPOST_* environment overrides and validates the result. An empty
// path skips the file layer entirely (environment-only configuration).
func Load(path string) (*Credentials, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load credential defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load credentials file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load credential environment: %w", err)
	}

	creds := &Credentials{}
	if err := k.Unmarshal("", creds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}

	if err := validator.New().Struct(creds); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	return creds, nil
}

// LoadDefault resolves the credentials file path and loads it. The
// PLOTPOST_CREDENTIALS environment variable wins; otherwise the first
// existing file from DefaultPaths is used; with no file present the
// configuration must come entirely from the environment.
func LoadDefault() (*Credentials, error) {
	if path := os.Getenv(PathEnvVar); path != "" {
		return Load(path)
	}
	for _, candidate := range DefaultPaths {
		path, err := expandHome(candidate)
		if err != nil {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Load("")
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
}
