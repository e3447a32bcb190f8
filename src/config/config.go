// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// config.go - Runtime configuration read from the environment, with an
// optional .env file for local development.

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. TECHSUPPORT_SERVE_ADDR.
const EnvPrefix = "techsupport"

// Config holds all application configuration.
type Config struct {
	BotName         string `envconfig:"BOT_NAME" default:"DodgySoft Technical Support"`
	ResponseMapFile string `envconfig:"RESPONSE_MAP_FILE" default:"response_map.txt"`
	DefaultsFile    string `envconfig:"DEFAULTS_FILE" default:"default.txt"`
	ConfigFile      string `envconfig:"CONFIG_FILE" default:"techsupport.yaml"`

	// Seed fixes the default response sequence; 0 picks a random seed.
	Seed uint64 `envconfig:"SEED" default:"0"`

	// TrailingRecords keeps resource file records that are not followed by a
	// blank line at end of file.
	TrailingRecords bool `envconfig:"TRAILING_RECORDS" default:"false"`

	// ServeAddr switches from the terminal to HTTP when set, e.g. ":3000".
	ServeAddr string `envconfig:"SERVE_ADDR"`

	Log LogConfig `envconfig:"LOG"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"console"` // console or json
	Output     string `envconfig:"OUTPUT" default:"stderr"`  // stderr, stdout or file
	FilePath   string `envconfig:"FILE_PATH" default:"logs/techsupport.log"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"rfc3339"`
}

// Load reads the given .env files (".env" when none are given) and then the
// environment. Missing .env files are not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}
	return &cfg, nil
}

// IsServer reports whether the HTTP surface should run instead of the REPL.
func (c *Config) IsServer() bool {
	return c.ServeAddr != ""
}
