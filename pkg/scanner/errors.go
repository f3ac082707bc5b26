// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import "errors"

var (
	// ErrInvalidInterface the interface name cannot be passed to the driver
	ErrInvalidInterface = errors.New("invalid interface name")
	// ErrChannelOpen no driver control channel could be acquired
	ErrChannelOpen = errors.New("failed to open driver channel")
	// ErrRangeUnavailable the driver could not report its capabilities
	ErrRangeUnavailable = errors.New("wireless range unavailable")
	// ErrScanRequestFailed the driver rejected or failed the scan
	ErrScanRequestFailed = errors.New("scan request failed")
	// ErrMalformedResultChain the result chain exceeded the node bound
	ErrMalformedResultChain = errors.New("malformed result chain")
)
