// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"fmt"

	"github.com/robgonnella/go-wlanscan/pkg/scanner"
)

const absent = "-"

func formatEssid(essid *string) string {
	switch {
	case essid == nil:
		return absent
	case *essid == "":
		return "<hidden>"
	default:
		return *essid
	}
}

func formatHardwareAddr(n *scanner.WirelessNetwork) string {
	if n.AccessPoint == nil {
		return absent
	}

	return n.AccessPoint.String()
}

func formatChannel(channel *int) string {
	if channel == nil {
		return absent
	}

	return fmt.Sprintf("%d", *channel)
}

func formatFrequency(ghz *float64) string {
	if ghz == nil {
		return absent
	}

	return fmt.Sprintf("%.3f GHz", *ghz)
}

func formatSignal(q *scanner.SignalQuality) string {
	if q == nil {
		return absent
	}

	if dbm, ok := q.LevelDBM(); ok {
		return fmt.Sprintf("%d dBm", dbm)
	}

	return fmt.Sprintf("%d", q.Level)
}

func formatQuality(q *scanner.SignalQuality) string {
	if q == nil {
		return absent
	}

	return fmt.Sprintf("%d", q.Quality)
}

// bitrates are reported in bits per second
func formatBitrate(rate *int32) string {
	if rate == nil {
		return absent
	}

	return fmt.Sprintf("%g Mb/s", float64(*rate)/1e6)
}

func formatMode(mode *scanner.Mode) string {
	if mode == nil {
		return absent
	}

	return mode.String()
}
