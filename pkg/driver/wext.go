// SPDX-License-Identifier: GPL-3.0-or-later

package driver

import (
	"time"

	"github.com/robgonnella/go-wlanscan/internal/logger"
)

// wireless extensions request and event codes
const (
	siocgiwname   = 0x8B01
	siocgiwnwid   = 0x8B03
	siocgiwfreq   = 0x8B05
	siocgiwmode   = 0x8B07
	siocgiwrange  = 0x8B0B
	siocgiwap     = 0x8B15
	siocsiwscan   = 0x8B18
	siocgiwscan   = 0x8B19
	siocgiwessid  = 0x8B1B
	siocgiwrate   = 0x8B21
	siocgiwencode = 0x8B2B
	iwevqual      = 0x8C01
	iwevcustom    = 0x8C02
	iwevgenie     = 0x8C05
)

const iwEncodeDisabled = 0x8000

const (
	// DefaultScanWait bounds how long results are polled for after a scan
	// has been triggered
	DefaultScanWait = 15 * time.Second
	// DefaultPollInterval is the delay between result reads while the
	// driver is still scanning
	DefaultPollInterval = 100 * time.Millisecond

	initialScanDelay  = 250 * time.Millisecond
	rangeBufferSize   = 2048
	scanBufferSize    = 4096
	maxScanBufferSize = 0xFFFF
)

// WirelessExtensionsOption configures a WirelessExtensions driver
type WirelessExtensionsOption = func(w *WirelessExtensions)

// WithScanWait sets how long to wait for the driver to finish scanning
func WithScanWait(d time.Duration) WirelessExtensionsOption {
	return func(w *WirelessExtensions) {
		if d > 0 {
			w.scanWait = d
		}
	}
}

// WithPollInterval sets the delay between result reads
func WithPollInterval(d time.Duration) WirelessExtensionsOption {
	return func(w *WirelessExtensions) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// WirelessExtensions is the production Driver backed by the Linux
// wireless extensions ioctl interface
type WirelessExtensions struct {
	scanWait     time.Duration
	pollInterval time.Duration
	debug        logger.DebugLogger
}

// NewWirelessExtensions returns a new wireless extensions driver
func NewWirelessExtensions(options ...WirelessExtensionsOption) *WirelessExtensions {
	w := &WirelessExtensions{
		scanWait:     DefaultScanWait,
		pollInterval: DefaultPollInterval,
		debug:        logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(w)
	}

	return w
}

// ScanWait returns the configured scan wait
func (w *WirelessExtensions) ScanWait() time.Duration {
	return w.scanWait
}
