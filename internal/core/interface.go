// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"github.com/robgonnella/go-wlanscan/pkg/scanner"
)

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

// Runner performs a single scan run and reports the results
type Runner interface {
	Initialize(
		coreScanner scanner.Scanner,
		interfaceName string,
		essid string,
		maxResults int,
		quiet bool,
		printJson bool,
		outFile string,
	)
	Run() error
}
