// SPDX-License-Identifier: GPL-3.0-or-later

//go:build debug

package logger

import (
	"os"

	"github.com/rs/zerolog"
)

func init() {
	*debugLogger.zl = *newDebugZerolog(os.Stderr, zerolog.DebugLevel)
}
