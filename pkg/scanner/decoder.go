// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"fmt"

	"github.com/robgonnella/go-wlanscan/pkg/driver"
)

// DefaultMaxNodes bounds how many nodes are decoded from one result chain
const DefaultMaxNodes = 4096

// DecodeNetwork converts a single scan node into an owned WirelessNetwork
func DecodeNetwork(node *driver.ScanNode) *WirelessNetwork {
	cfg := node.Config

	network := &WirelessNetwork{
		ESSID:       DecodeEssid(cfg.Essid[:], cfg.HasEssid),
		Encryption:  DecodeEncryption(cfg.KeyFlags),
		Quality:     DecodeQuality(node.Stats, node.HasStats),
		Mode:        DecodeMode(cfg.Mode, cfg.HasMode),
		AccessPoint: DecodeAccessPoint(node.APAddr, node.HasAPAddr),
		MaxBitrate:  DecodeBitrate(node.MaxBitrate, node.HasMaxBitrate),
		Key:         DecodeKey(cfg.Key[:], cfg.KeySize, cfg.EncodeFlags, cfg.HasKey),
	}

	network.FrequencyGHz, network.Channel = DecodeFrequency(cfg.Freq, cfg.HasFreq)

	if protocol := DecodeText(cfg.Name[:]); protocol != "" {
		network.Protocol = &protocol
	}

	return network
}

// DecodeResultChain walks a result chain from head to its nil terminator
// and decodes every node in order. Chains longer than maxNodes, including
// cyclic ones, are rejected. A non positive maxNodes uses DefaultMaxNodes.
func DecodeResultChain(
	head *driver.ScanNode,
	interfaceName string,
	maxNodes int,
) (*WifiScanResult, error) {
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	result := &WifiScanResult{
		Interface: interfaceName,
		Networks:  []*WirelessNetwork{},
	}

	for node := head; node != nil; node = node.Next {
		if len(result.Networks) == maxNodes {
			return nil, fmt.Errorf(
				"%w: %s: more than %d nodes",
				ErrMalformedResultChain,
				interfaceName,
				maxNodes,
			)
		}

		result.Networks = append(result.Networks, DecodeNetwork(node))
	}

	return result, nil
}
