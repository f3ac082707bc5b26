// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"github.com/robgonnella/go-wlanscan/internal/config"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("interface", "i", "wlan0", "")
	flags.Bool("json", false, "")
	flags.Bool("quiet", false, "")
	flags.Bool("vendor", false, "")
	flags.String("essid", "", "")
	flags.String("out-file", "", "")
	flags.Int("max-results", 0, "")
	flags.Duration("scan-wait", 15*time.Second, "")
	return flags
}

func TestLoad(t *testing.T) {
	t.Run("uses flag defaults", func(st *testing.T) {
		cfg, err := config.Load(testFlags(), st.TempDir())

		assert.NoError(st, err)
		assert.Equal(st, &config.Config{
			Interface: "wlan0",
			ScanWait:  15 * time.Second,
		}, cfg)
	})

	t.Run("reads config file", func(st *testing.T) {
		dir := st.TempDir()

		err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
			"interface: wlp3s0\njson: true\nmax-results: 5\nscan-wait: 3s\n",
		), 0644)

		assert.NoError(st, err)

		cfg, err := config.Load(testFlags(), dir)

		assert.NoError(st, err)
		assert.Equal(st, "wlp3s0", cfg.Interface)
		assert.True(st, cfg.JSON)
		assert.Equal(st, 5, cfg.MaxResults)
		assert.Equal(st, 3*time.Second, cfg.ScanWait)
	})

	t.Run("environment overrides config file", func(st *testing.T) {
		dir := st.TempDir()

		err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("essid: Office\n"), 0644)

		assert.NoError(st, err)

		st.Setenv("WLANSCAN_ESSID", "Home")
		st.Setenv("WLANSCAN_OUT_FILE", "report.json")

		cfg, err := config.Load(testFlags(), dir)

		assert.NoError(st, err)
		assert.Equal(st, "Home", cfg.ESSID)
		assert.Equal(st, "report.json", cfg.OutFile)
	})

	t.Run("changed flags override environment", func(st *testing.T) {
		st.Setenv("WLANSCAN_INTERFACE", "wlan1")

		flags := testFlags()

		assert.NoError(st, flags.Parse([]string{"--interface", "wlan2", "--vendor"}))

		cfg, err := config.Load(flags, "")

		assert.NoError(st, err)
		assert.Equal(st, "wlan2", cfg.Interface)
		assert.True(st, cfg.Vendor)
	})

	t.Run("returns error for an invalid config file", func(st *testing.T) {
		dir := st.TempDir()

		err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("interface: [\n"), 0644)

		assert.NoError(st, err)

		cfg, err := config.Load(testFlags(), dir)

		assert.Nil(st, cfg)
		assert.Error(st, err)
	})
}

func TestDefaultDir(t *testing.T) {
	t.Run("lives under the user config directory", func(st *testing.T) {
		home := st.TempDir()
		st.Setenv("HOME", home)

		dir, err := config.DefaultDir()

		assert.NoError(st, err)
		assert.Equal(st, filepath.Join(home, ".config", "go-wlanscan"), dir)
	})
}
