// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "WLANSCAN"

// Config holds the settings of a scan run. Values are resolved from command
// line flags, WLANSCAN_* environment variables, an optional config.yaml and
// flag defaults, in that order.
type Config struct {
	Interface  string
	JSON       bool
	Quiet      bool
	Vendor     bool
	ESSID      string
	OutFile    string
	MaxResults int
	ScanWait   time.Duration
}

// DefaultDir returns the directory holding config.yaml and oui.txt
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()

	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "go-wlanscan"), nil
}

// Load resolves a Config for the given flag set. A missing config.yaml in
// dir is not an error.
func Load(flags *pflag.FlagSet, dir string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	if dir != "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)

		if err := v.ReadInConfig(); err != nil {
			notFound := viper.ConfigFileNotFoundError{}

			if !errors.As(err, &notFound) {
				return nil, err
			}
		}
	}

	return &Config{
		Interface:  v.GetString("interface"),
		JSON:       v.GetBool("json"),
		Quiet:      v.GetBool("quiet"),
		Vendor:     v.GetBool("vendor"),
		ESSID:      v.GetString("essid"),
		OutFile:    v.GetString("out-file"),
		MaxResults: v.GetInt("max-results"),
		ScanWait:   v.GetDuration("scan-wait"),
	}, nil
}
