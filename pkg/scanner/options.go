// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"github.com/robgonnella/go-wlanscan/pkg/driver"
	"github.com/robgonnella/go-wlanscan/pkg/oui"
)

// ScannerOption configures a Scanner
type ScannerOption = func(s Scanner)

// WithDriver sets the driver used to open control channels
func WithDriver(d driver.Driver) ScannerOption {
	return func(s Scanner) {
		s.SetDriver(d)
	}
}

// WithMaxNodes sets the upper bound on decoded result chain nodes
func WithMaxNodes(n int) ScannerOption {
	return func(s Scanner) {
		s.SetMaxNodes(n)
	}
}

// WithVendorInfo enables access point vendor lookups through repo
func WithVendorInfo(repo oui.VendorRepo) ScannerOption {
	return func(s Scanner) {
		s.IncludeVendorInfo(repo)
	}
}
