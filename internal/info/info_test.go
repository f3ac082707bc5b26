// SPDX-License-Identifier: GPL-3.0-or-later

package info_test

import (
	"testing"

	"github.com/robgonnella/go-wlanscan/internal/info"
	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	t.Run("prefers injected version", func(st *testing.T) {
		original := info.VERSION

		defer func() {
			info.VERSION = original
		}()

		info.VERSION = "v9.9.9"

		assert.Equal(st, "v9.9.9", info.Version())
		assert.Equal(st, "v9.9.9", info.GetBuild().Version)
	})

	t.Run("falls back to build information", func(st *testing.T) {
		original := info.VERSION

		defer func() {
			info.VERSION = original
		}()

		info.VERSION = ""

		assert.NotEmpty(st, info.Version())
	})
}
