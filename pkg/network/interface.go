// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"errors"
	"net"
)

//go:generate mockgen -destination=../../mock/network/network.go -package=mock_network . Network

// ErrNoWirelessInterface is returned when the host has no wireless interfaces
var ErrNoWirelessInterface = errors.New("no wireless interface found")

// WirelessInterface describes a wireless capable network interface
type WirelessInterface struct {
	Name         string
	Index        int
	HardwareAddr net.HardwareAddr
	PHY          int
	Type         string
	FrequencyMHz int
	// Default is set when the interface carries the default route
	Default bool
}

// Network discovers the wireless interfaces of the host
type Network interface {
	Interfaces() ([]*WirelessInterface, error)
	DefaultInterface() (*WirelessInterface, error)
}
