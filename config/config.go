// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.ttl", "jwt_ttl")

	v.BindEnv("db.driver", "database_driver")
	v.BindEnv("db.dsn", "database_url")

	v.BindEnv("storage.root", "storage_root")

	v.BindEnv("upload.max_size", "upload_max_size")
	v.BindEnv("upload.allowed_types", "upload_allowed_types")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)

	v.SetDefault("jwt.ttl", 7*24*time.Hour)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "portfolio.db")

	v.SetDefault("storage.root", "uploads")

	v.SetDefault("upload.max_size", 50)
	// Empty means any file type is accepted, matching what most
	// photographers actually want (raw files, sidecars, videos)
	v.SetDefault("upload.allowed_types", []string{})

	if err := v.ReadInConfig(); err != nil {
		// Running off env variables alone is fine
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	// A silently defaulted secret would sign tokens anyone can forge,
	// so refuse to start instead.
	if v.GetString("jwt.secret") == "" {
		return errors.New("jwt.secret is not set")
	}

	if v.GetDuration("jwt.ttl") <= 0 {
		return errors.New("jwt.ttl must be a positive duration")
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("database DSN can't be empty")
	}

	if v.GetString("storage.root") == "" {
		return errors.New("storage root can't be empty")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	// Configured in megabytes, used in bytes
	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
