// SPDX-License-Identifier: GPL-3.0-or-later

package oui_test

import (
	"os"
	"path"
	"testing"

	"github.com/robgonnella/go-wlanscan/pkg/oui"
	"github.com/stretchr/testify/assert"
)

func TestGetDefaultVendorRepo(t *testing.T) {
	t.Run("gets default vendor repo without downloading", func(st *testing.T) {
		st.Setenv("HOME", st.TempDir())

		repo, err := oui.GetDefaultVendorRepo()

		assert.NotNil(st, repo)
		assert.NoError(st, err)
	})
}

func TestGetDefaultOuiTxtPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()

	assert.NoError(t, err)

	ouiTxt := path.Join(homeDir, ".config", "go-wlanscan", "oui.txt")

	t.Run("returns default oui.txt path", func(st *testing.T) {
		filePath, err := oui.GetDefaultOuiTxtPath()

		assert.NoError(st, err)

		assert.Equal(st, ouiTxt, *filePath)
	})
}
