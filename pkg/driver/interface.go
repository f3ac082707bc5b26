// SPDX-License-Identifier: GPL-3.0-or-later

package driver

//go:generate mockgen -destination=../../mock/driver/driver.go -package=mock_driver . Driver,Channel

// Driver opens control channels to the operating system's wireless subsystem
type Driver interface {
	Open() (Channel, error)
}

// Channel is an open session with the wireless subsystem. Every channel
// returned by Driver.Open must be closed exactly once. The chain returned
// by Scan is owned by the channel and is only valid until Close is called.
type Channel interface {
	QueryRange(interfaceName string) (*Range, error)
	Scan(interfaceName string, protocolVersion uint8) (*ScanNode, error)
	Close() error
}
