// SPDX-License-Identifier: GPL-3.0-or-later

package driver

import "errors"

// Fixed buffer sizes of the configuration block
const (
	// MaxInterfaceNameLen is the longest interface name that still fits a
	// null terminated IFNAMSIZ field. A 16 byte name would fill the field
	// without its terminator and is rejected.
	MaxInterfaceNameLen = 15
	NameSize            = 17
	EssidMaxLen         = 32
	EssidSize           = EssidMaxLen + 2
	KeyMaxLen           = 64
)

// WPA version bits carried in WirelessConfig.KeyFlags
const (
	AuthWPAVersionDisabled uint16 = 0x0001
	AuthWPAVersionWPA      uint16 = 0x0002
	AuthWPAVersionWPA2     uint16 = 0x0004
)

// ARPHRDEther is the sockaddr family used for access point hardware addresses
const ARPHRDEther uint16 = 1

var (
	// ErrChannelOpen is returned when the control socket cannot be acquired
	ErrChannelOpen = errors.New("failed to open wireless control channel")
	// ErrRangeQuery is returned when the driver rejects a range query
	ErrRangeQuery = errors.New("failed to query wireless range")
	// ErrScanRequest is returned when a scan cannot be triggered or read back
	ErrScanRequest = errors.New("failed to scan")
	// ErrUnsupported is returned when no wireless driver binding exists for
	// the running platform
	ErrUnsupported = errors.New("wireless extensions are not supported on this platform")
	// ErrScanTimeout is returned when the driver never produced results
	// within the configured scan wait
	ErrScanTimeout = errors.New("timed out waiting for scan results")
	// ErrInterfaceName is returned for names that cannot be placed in a request
	ErrInterfaceName = errors.New("invalid interface name")
)

// Range is the subset of the driver's capability block needed to request
// a scan. Fields the driver does not report stay at their zero value.
type Range struct {
	WEVersionCompiled uint8
	WEVersionSource   uint8
}

// Param mirrors the driver's generic iw_param value
type Param struct {
	Value    int32
	Fixed    uint8
	Disabled uint8
	Flags    uint16
}

// Quality is a raw link quality snapshot
type Quality struct {
	Qual    uint8
	Level   uint8
	Noise   uint8
	Updated uint8
}

// Stats is the raw statistics block attached to a scan node
type Stats struct {
	Status  uint16
	Quality Quality
}

// Sockaddr is a raw socket address as reported for an access point
type Sockaddr struct {
	Family uint16
	Data   [14]byte
}

// WirelessConfig is the configuration block of a scan node
type WirelessConfig struct {
	Name [NameSize]byte

	HasNWID bool
	NWID    Param

	HasFreq   bool
	Freq      float64
	FreqFlags uint8

	HasKey      bool
	Key         [KeyMaxLen]byte
	KeySize     int
	KeyFlags    uint16
	EncodeFlags uint16

	HasEssid bool
	Essid    [EssidSize]byte
	EssidLen int
	EssidOn  bool

	HasMode bool
	Mode    int
}

// ScanNode is one entry of the nil terminated result chain produced by
// Channel.Scan
type ScanNode struct {
	Next *ScanNode

	Config WirelessConfig

	HasAPAddr bool
	APAddr    Sockaddr

	HasStats bool
	Stats    Stats

	HasMaxBitrate bool
	MaxBitrate    Param
}
