// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers      = []string{"sqlite", "postgres"}
	validMailPolicies = []string{"propagate", "log_and_continue"}
	validLinkPolicies = []string{"link-by-email", "reject-on-conflict"}
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
	v.BindEnv("host.cors", "host_cors")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender", "mail_sender")
	v.BindEnv("mail.password", "mail_password")
	v.BindEnv("mail.on_failure", "mail_on_failure")

	v.BindEnv("google.client_id", "google_client_id")
	v.BindEnv("google.link_policy", "google_link_policy")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.cors", []string{"http://localhost:5173"})

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")

	v.SetDefault("mail.port", 465)
	v.SetDefault("mail.on_failure", "propagate")

	v.SetDefault("google.link_policy", "link-by-email")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	return validate()
}

// validate checks the merged configuration and rejects values the
// server can't run with
func validate() error {
	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	// The cors middleware refuses a config with no allowed origins,
	// so catch it at startup with a readable error
	if len(v.GetStringSlice("host.cors")) == 0 {
		return errors.New("host.cors needs at least one allowed origin")
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("database dsn can't be empty")
	}

	// The server can't mint or verify session tokens without this, so
	// refuse to start instead of failing on every request
	if v.GetString("jwt.secret") == "" {
		return errors.New("jwt.secret is not set")
	}

	if !slices.Contains(validMailPolicies, v.GetString("mail.on_failure")) {
		return errors.New("mail.on_failure must be propagate or log_and_continue")
	}

	if v.GetString("mail.on_failure") == "propagate" && v.GetString("mail.host") == "" {
		return errors.New("mail.host can't be empty when delivery failures propagate")
	}

	if v.GetString("google.client_id") == "" {
		return errors.New("google.client_id can't be empty")
	}

	if !slices.Contains(validLinkPolicies, v.GetString("google.link_policy")) {
		return errors.New("google.link_policy must be link-by-email or reject-on-conflict")
	}

	return nil
}
