// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"bytes"
	"math"
	"net"
	"strings"
	"unicode/utf8"

	"github.com/robgonnella/go-wlanscan/pkg/driver"
)

// frequencies below this value are channel numbers rather than Hz
const channelThreshold = 1000

// DecodeEncryption maps the WPA version bits of a configuration block to an
// EncryptionClass. Disabled wins over WPA which wins over WPA2.
func DecodeEncryption(flags uint16) EncryptionClass {
	switch {
	case flags&driver.AuthWPAVersionDisabled != 0:
		return EncryptionNone
	case flags&driver.AuthWPAVersionWPA != 0:
		return EncryptionWPA
	case flags&driver.AuthWPAVersionWPA2 != 0:
		return EncryptionWPA2
	default:
		return EncryptionUnknown
	}
}

// DecodeText returns the bytes of buf up to the first NUL as a string.
// Invalid UTF-8 bytes are replaced with U+FFFD.
func DecodeText(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	if utf8.Valid(buf) {
		return string(buf)
	}

	sb := strings.Builder{}

	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		sb.WriteRune(r)
		buf = buf[size:]
	}

	return sb.String()
}

// DecodeEssid returns the network name held in buf, or nil when the driver
// did not report one
func DecodeEssid(buf []byte, hasEssid bool) *string {
	if !hasEssid {
		return nil
	}

	essid := DecodeText(buf)

	return &essid
}

// DecodeQuality copies the link quality snapshot when the driver reported one
func DecodeQuality(stats driver.Stats, hasStats bool) *SignalQuality {
	if !hasStats {
		return nil
	}

	return &SignalQuality{
		Quality: stats.Quality.Qual,
		Level:   stats.Quality.Level,
		Noise:   stats.Quality.Noise,
		Updated: stats.Quality.Updated,
		Status:  stats.Status,
	}
}

// DecodeBitrate returns the maximum advertised bitrate in bits per second
func DecodeBitrate(bitrate driver.Param, hasBitrate bool) *int32 {
	if !hasBitrate {
		return nil
	}

	value := bitrate.Value

	return &value
}

// DecodeFrequency splits a raw frequency into a value in GHz and a channel
// number. Drivers may report either one in the same field.
func DecodeFrequency(freq float64, hasFreq bool) (*float64, *int) {
	if !hasFreq {
		return nil, nil
	}

	if freq < channelThreshold {
		channel := int(freq)
		return nil, &channel
	}

	ghz := freq / 1e9

	if channel, ok := channelFromMHz(int(math.Round(freq / 1e6))); ok {
		return &ghz, &channel
	}

	return &ghz, nil
}

func channelFromMHz(mhz int) (int, bool) {
	switch {
	case mhz == 2484:
		return 14, true
	case mhz >= 2412 && mhz < 2484:
		return (mhz - 2407) / 5, true
	case mhz >= 5955 && mhz <= 7115:
		return (mhz - 5950) / 5, true
	case mhz >= 5000 && mhz < 5950:
		return (mhz - 5000) / 5, true
	default:
		return 0, false
	}
}

// DecodeMode returns the operating mode, or nil for unreported or unknown modes
func DecodeMode(mode int, hasMode bool) *Mode {
	if !hasMode || mode < int(ModeAuto) || mode > int(ModeMesh) {
		return nil
	}

	m := Mode(mode)

	return &m
}

// DecodeAccessPoint returns the hardware address of the access point. Only
// ethernet style addresses are recognised.
func DecodeAccessPoint(addr driver.Sockaddr, hasAddr bool) net.HardwareAddr {
	if !hasAddr || addr.Family != driver.ARPHRDEther {
		return nil
	}

	mac := make(net.HardwareAddr, 6)
	copy(mac, addr.Data[:6])

	return mac
}

// DecodeKey copies the encoding key metadata, clamping size to the key buffer
func DecodeKey(key []byte, size int, flags uint16, hasKey bool) *EncodingKey {
	if !hasKey {
		return nil
	}

	size = max(0, min(size, len(key)))

	return &EncodingKey{
		Key:   bytes.Clone(key[:size]),
		Size:  size,
		Flags: flags,
	}
}
