// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"fmt"
	"net"

	"github.com/jackpal/gateway"
	"github.com/mdlayher/wifi"

	"github.com/robgonnella/go-wlanscan/internal/logger"
	"github.com/robgonnella/go-wlanscan/internal/util"
)

type wifiClient interface {
	Interfaces() ([]*wifi.Interface, error)
	Close() error
}

// UserNetwork implements Network using nl80211 for interface discovery and
// the routing table to find the interface carrying the default route
type UserNetwork struct {
	newClient       func() (wifiClient, error)
	discoverGateway func() (net.IP, error)
	interfaceAddrs  func(name string) ([]net.Addr, error)
	debug           logger.DebugLogger
}

// NewUserNetwork returns a new instance of UserNetwork
func NewUserNetwork() *UserNetwork {
	return &UserNetwork{
		newClient: func() (wifiClient, error) {
			return wifi.New()
		},
		discoverGateway: gateway.DiscoverGateway,
		interfaceAddrs:  interfaceAddrs,
		debug:           logger.NewDebugLogger(),
	}
}

// Interfaces lists the wireless interfaces known to nl80211
func (n *UserNetwork) Interfaces() ([]*WirelessInterface, error) {
	client, err := n.newClient()

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoWirelessInterface, err)
	}

	defer client.Close()

	ifaces, err := client.Interfaces()

	if err != nil {
		return nil, err
	}

	names := []string{}
	result := []*WirelessInterface{}

	for _, iface := range ifaces {
		// p2p devices have no netdev name and cannot be scanned
		if iface.Name == "" || util.SliceIncludes(names, iface.Name) {
			continue
		}

		names = append(names, iface.Name)

		result = append(result, &WirelessInterface{
			Name:         iface.Name,
			Index:        iface.Index,
			HardwareAddr: iface.HardwareAddr,
			PHY:          iface.PHY,
			Type:         iface.Type.String(),
			FrequencyMHz: iface.Frequency,
		})
	}

	n.markDefault(result)

	return result, nil
}

// DefaultInterface returns the wireless interface carrying the default
// route, or the first wireless interface when none does
func (n *UserNetwork) DefaultInterface() (*WirelessInterface, error) {
	ifaces, err := n.Interfaces()

	if err != nil {
		return nil, err
	}

	if len(ifaces) == 0 {
		return nil, ErrNoWirelessInterface
	}

	if iface, ok := util.FindFunc(ifaces, func(i *WirelessInterface) bool {
		return i.Default
	}); ok {
		return iface, nil
	}

	return ifaces[0], nil
}

func (n *UserNetwork) markDefault(ifaces []*WirelessInterface) {
	gw, err := n.discoverGateway()

	if err != nil {
		n.debug.Warn().Err(err).Msg("failed to discover default gateway")
		return
	}

	for _, iface := range ifaces {
		addrs, err := n.interfaceAddrs(iface.Name)

		if err != nil {
			continue
		}

		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && ipnet.Contains(gw) {
				iface.Default = true
				return
			}
		}
	}
}

func interfaceAddrs(name string) ([]net.Addr, error) {
	iface, err := net.InterfaceByName(name)

	if err != nil {
		return nil, err
	}

	return iface.Addrs()
}
