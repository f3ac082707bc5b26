// SPDX-License-Identifier: GPL-3.0-or-later

package driver

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

const (
	eventHeaderLen = 4
	pointHeaderLen = 4
	paramLen       = 8
	freqLen        = 8
	qualityLen     = 4
	sockaddrLen    = 16
	modeLen        = 4
	nameLen        = 16

	// offsets into the driver's iw_range block
	rangeVersionOffset = 280
	rangeMinLen        = 300

	// since version 19 point events no longer carry the pointer slot
	pointerlessVersion = 19
)

var wpaOUI = []byte{0x00, 0x50, 0xF2, 0x01}

// parseRange extracts protocol versions from a raw iw_range block. Drivers
// returning a block too short to carry versions leave the Range zeroed.
func parseRange(buf []byte) *Range {
	r := &Range{}

	if len(buf) < rangeMinLen {
		return r
	}

	r.WEVersionCompiled = buf[rangeVersionOffset]
	r.WEVersionSource = buf[rangeVersionOffset+1]

	return r
}

// ParseEventStream turns a raw wireless extensions event stream into a
// result chain. Every access point event starts a new node and the events
// that follow it fill that node in. Events seen before the first access
// point, unknown events and short payloads are skipped. A malformed event
// header ends parsing and whatever was decoded so far is returned.
func ParseEventStream(stream []byte, weVersion uint8) *ScanNode {
	var head, tail *ScanNode

	for offset := 0; offset+eventHeaderLen <= len(stream); {
		eventLen := int(binary.NativeEndian.Uint16(stream[offset:]))
		cmd := binary.NativeEndian.Uint16(stream[offset+2:])

		if eventLen <= eventHeaderLen || offset+eventLen > len(stream) {
			break
		}

		payload := stream[offset+eventHeaderLen : offset+eventLen]
		offset += eventLen

		if cmd == siocgiwap {
			node := &ScanNode{}

			if head == nil {
				head = node
			} else {
				tail.Next = node
			}

			tail = node
		}

		if tail == nil {
			continue
		}

		applyEvent(tail, cmd, payload, weVersion)
	}

	return head
}

func applyEvent(node *ScanNode, cmd uint16, payload []byte, weVersion uint8) {
	cfg := &node.Config

	switch cmd {
	case siocgiwap:
		if len(payload) < sockaddrLen {
			return
		}
		node.HasAPAddr = true
		node.APAddr.Family = binary.NativeEndian.Uint16(payload)
		copy(node.APAddr.Data[:], payload[2:sockaddrLen])
	case siocgiwnwid:
		if p, ok := decodeParam(payload); ok {
			cfg.HasNWID = true
			cfg.NWID = p
		}
	case siocgiwfreq:
		if len(payload) < freqLen {
			return
		}
		m := int32(binary.NativeEndian.Uint32(payload))
		e := int16(binary.NativeEndian.Uint16(payload[4:]))
		cfg.HasFreq = true
		cfg.Freq = float64(m) * math.Pow10(int(e))
		cfg.FreqFlags = payload[7]
	case siocgiwmode:
		if len(payload) < modeLen {
			return
		}
		cfg.HasMode = true
		cfg.Mode = int(binary.NativeEndian.Uint32(payload))
	case siocgiwname:
		if len(payload) < nameLen {
			return
		}
		copy(cfg.Name[:nameLen], payload[:nameLen])
	case siocgiwessid:
		length, flags, data, ok := decodePoint(payload, weVersion)
		if !ok {
			return
		}
		cfg.HasEssid = true
		cfg.EssidOn = flags != 0
		cfg.Essid = [EssidSize]byte{}
		cfg.EssidLen = copy(cfg.Essid[:EssidMaxLen], data[:length])
	case siocgiwencode:
		length, flags, data, ok := decodePoint(payload, weVersion)
		if !ok {
			return
		}
		cfg.HasKey = true
		cfg.EncodeFlags = flags
		cfg.KeySize = copy(cfg.Key[:], data[:length])
		if flags&iwEncodeDisabled != 0 {
			cfg.KeyFlags |= AuthWPAVersionDisabled
		}
	case iwevgenie:
		length, _, data, ok := decodePoint(payload, weVersion)
		if !ok {
			return
		}
		cfg.KeyFlags |= wpaVersionFlags(data[:length])
	case iwevqual:
		if len(payload) < qualityLen {
			return
		}
		node.HasStats = true
		node.Stats.Quality = Quality{
			Qual:    payload[0],
			Level:   payload[1],
			Noise:   payload[2],
			Updated: payload[3],
		}
	case siocgiwrate:
		p, ok := decodeParam(payload)
		if !ok {
			return
		}
		if !node.HasMaxBitrate || p.Value > node.MaxBitrate.Value {
			node.MaxBitrate = p
		}
		node.HasMaxBitrate = true
	case iwevcustom:
		// free form driver text, not modelled
	}
}

func decodeParam(payload []byte) (Param, bool) {
	if len(payload) < paramLen {
		return Param{}, false
	}

	return Param{
		Value:    int32(binary.NativeEndian.Uint32(payload)),
		Fixed:    payload[4],
		Disabled: payload[5],
		Flags:    binary.NativeEndian.Uint16(payload[6:]),
	}, true
}

// decodePoint splits a point event payload into its length, flags and
// variable data. The returned data is at least length bytes long.
func decodePoint(payload []byte, weVersion uint8) (uint16, uint16, []byte, bool) {
	if weVersion < pointerlessVersion {
		skip := bits.UintSize / 8
		if len(payload) < skip {
			return 0, 0, nil, false
		}
		payload = payload[skip:]
	}

	if len(payload) < pointHeaderLen {
		return 0, 0, nil, false
	}

	length := binary.NativeEndian.Uint16(payload)
	flags := binary.NativeEndian.Uint16(payload[2:])
	data := payload[pointHeaderLen:]

	if int(length) > len(data) {
		return 0, 0, nil, false
	}

	return length, flags, data, true
}

// wpaVersionFlags reports the WPA version bits advertised by a block of
// raw 802.11 information elements. Only vendor elements long enough to
// carry an OUI are handed to the decoder, which rejects anything shorter.
func wpaVersionFlags(data []byte) uint16 {
	var flags uint16

	for len(data) >= 2 {
		id := layers.Dot11InformationElementID(data[0])
		length := int(data[1])

		if len(data) < 2+length {
			break
		}

		element := data[:2+length]
		data = data[2+length:]

		switch {
		case id == layers.Dot11InformationElementIDRSNInfo:
			flags |= AuthWPAVersionWPA2
		case id == layers.Dot11InformationElementIDVendor && length >= len(wpaOUI):
			ie := layers.Dot11InformationElement{}

			if err := ie.DecodeFromBytes(element, gopacket.NilDecodeFeedback); err != nil {
				continue
			}

			if bytes.Equal(ie.OUI, wpaOUI) {
				flags |= AuthWPAVersionWPA
			}
		}
	}

	return flags
}
