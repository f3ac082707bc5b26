// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"encoding/json"
	"net"

	"github.com/robgonnella/go-wlanscan/pkg/driver"
	"github.com/robgonnella/go-wlanscan/pkg/oui"
)

//go:generate mockgen -destination=../../mock/scanner/scanner.go -package=mock_scanner . Scanner

// Scanner interface for scanning the wireless networks visible to an interface
type Scanner interface {
	Scan(interfaceName string) (*WifiScanResult, error)
	SetDriver(d driver.Driver)
	SetMaxNodes(n int)
	IncludeVendorInfo(repo oui.VendorRepo)
}

// EncryptionClass is the coarse security class advertised by a network
type EncryptionClass int

const (
	// EncryptionNone open network
	EncryptionNone EncryptionClass = iota
	// EncryptionWPA network advertises WPA
	EncryptionWPA
	// EncryptionWPA2 network advertises WPA2 / RSN
	EncryptionWPA2
	// EncryptionUnknown no recognised security flag was reported
	EncryptionUnknown
)

func (e EncryptionClass) String() string {
	switch e {
	case EncryptionNone:
		return "None"
	case EncryptionWPA:
		return "WPA"
	case EncryptionWPA2:
		return "WPA2"
	default:
		return "Unknown"
	}
}

// Mode is the operating mode reported for a network
type Mode int

const (
	ModeAuto Mode = iota
	ModeAdHoc
	ModeManaged
	ModeMaster
	ModeRepeater
	ModeSecondary
	ModeMonitor
	ModeMesh
)

var modeNames = [...]string{
	"Auto",
	"Ad-Hoc",
	"Managed",
	"Master",
	"Repeater",
	"Secondary",
	"Monitor",
	"Mesh",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "Unknown"
	}

	return modeNames[m]
}

// qualityDBM marks level and noise as dBm values
const qualityDBM = 0x08

// SignalQuality link quality snapshot of a network
type SignalQuality struct {
	Quality uint8  `json:"quality"`
	Level   uint8  `json:"level"`
	Noise   uint8  `json:"noise"`
	Updated uint8  `json:"updated"`
	Status  uint16 `json:"status"`
}

// LevelDBM returns the signal level in dBm when the driver reports it
// on a logarithmic scale
func (q *SignalQuality) LevelDBM() (int, bool) {
	if q.Updated&qualityDBM == 0 {
		return 0, false
	}

	level := int(q.Level)

	if q.Level >= 64 {
		level -= 0x100
	}

	return level, true
}

// EncodingKey metadata of the encoding key reported for a network
type EncodingKey struct {
	Key   []byte
	Size  int
	Flags uint16
}

// WirelessNetwork represents a single network found by a scan. It owns all
// of its data and outlives the driver channel that produced it.
type WirelessNetwork struct {
	ESSID        *string
	Encryption   EncryptionClass
	Quality      *SignalQuality
	FrequencyGHz *float64
	Channel      *int
	Mode         *Mode
	AccessPoint  net.HardwareAddr
	MaxBitrate   *int32
	Protocol     *string
	Key          *EncodingKey
	Vendor       string
}

// Serializable returns a JSON friendly view of the network
func (n *WirelessNetwork) Serializable() interface{} {
	var mode string

	if n.Mode != nil {
		mode = n.Mode.String()
	}

	var bssid string

	if n.AccessPoint != nil {
		bssid = n.AccessPoint.String()
	}

	return struct {
		ESSID        *string        `json:"essid"`
		BSSID        string         `json:"bssid,omitempty"`
		Vendor       string         `json:"vendor,omitempty"`
		Encryption   string         `json:"encryption"`
		Quality      *SignalQuality `json:"quality,omitempty"`
		FrequencyGHz *float64       `json:"frequencyGHz,omitempty"`
		Channel      *int           `json:"channel,omitempty"`
		Mode         string         `json:"mode,omitempty"`
		MaxBitrate   *int32         `json:"maxBitrate,omitempty"`
		Protocol     *string        `json:"protocol,omitempty"`
	}{
		ESSID:        n.ESSID,
		BSSID:        bssid,
		Vendor:       n.Vendor,
		Encryption:   n.Encryption.String(),
		Quality:      n.Quality,
		FrequencyGHz: n.FrequencyGHz,
		Channel:      n.Channel,
		Mode:         mode,
		MaxBitrate:   n.MaxBitrate,
		Protocol:     n.Protocol,
	}
}

// WifiScanResult is the outcome of one scan session
type WifiScanResult struct {
	Interface string
	Networks  []*WirelessNetwork
}

// MarshalJSON implements json.Marshaler
func (r *WifiScanResult) MarshalJSON() ([]byte, error) {
	networks := make([]interface{}, 0, len(r.Networks))

	for _, n := range r.Networks {
		networks = append(networks, n.Serializable())
	}

	return json.Marshal(struct {
		Interface string        `json:"interface"`
		Networks  []interface{} `json:"networks"`
	}{
		Interface: r.Interface,
		Networks:  networks,
	})
}
