// SPDX-License-Identifier: GPL-3.0-or-later

package oui

import (
	"net"
)

//go:generate mockgen -destination=../../mock/oui/oui.go -package=mock_oui . VendorRepo

// VendorResult is the manufacturer registered for an access point's OUI
type VendorResult struct {
	Name string
}

// VendorRepo resolves access point hardware addresses to vendor names
type VendorRepo interface {
	// UpdateVendors refreshes the local copy of the vendor registry
	UpdateVendors() error
	Query(bssid net.HardwareAddr) (*VendorResult, error)
}
