// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"errors"
	"net"
	"testing"

	"github.com/mdlayher/wifi"
	"github.com/stretchr/testify/assert"

	"github.com/robgonnella/go-wlanscan/internal/logger"
)

type fakeClient struct {
	ifaces []*wifi.Interface
	err    error
	closed int
}

func (c *fakeClient) Interfaces() ([]*wifi.Interface, error) {
	return c.ifaces, c.err
}

func (c *fakeClient) Close() error {
	c.closed++
	return nil
}

func newTestNetwork(client *fakeClient, gw net.IP, addrs map[string]string) *UserNetwork {
	return &UserNetwork{
		newClient: func() (wifiClient, error) {
			return client, nil
		},
		discoverGateway: func() (net.IP, error) {
			if gw == nil {
				return nil, errors.New("no gateway")
			}
			return gw, nil
		},
		interfaceAddrs: func(name string) ([]net.Addr, error) {
			cidr, ok := addrs[name]

			if !ok {
				return nil, errors.New("no such interface")
			}

			ip, ipnet, err := net.ParseCIDR(cidr)

			if err != nil {
				return nil, err
			}

			ipnet.IP = ip

			return []net.Addr{ipnet}, nil
		},
		debug: logger.NewDebugLogger(),
	}
}

func TestUserNetwork(t *testing.T) {
	mac, _ := net.ParseMAC("aa:bb:cc:11:22:33")

	ifaces := []*wifi.Interface{
		{Index: 3, Name: "wlan0", HardwareAddr: mac, PHY: 0, Type: wifi.InterfaceTypeStation, Frequency: 2412},
		{Index: 0, Name: "", PHY: 0, Type: wifi.InterfaceTypeP2PDevice},
		{Index: 4, Name: "wlan1", PHY: 1, Type: wifi.InterfaceTypeStation},
		{Index: 4, Name: "wlan1", PHY: 1, Type: wifi.InterfaceTypeStation},
	}

	t.Run("lists named wireless interfaces once", func(st *testing.T) {
		client := &fakeClient{ifaces: ifaces}
		userNet := newTestNetwork(client, nil, nil)

		result, err := userNet.Interfaces()

		assert.NoError(st, err)
		assert.Len(st, result, 2)
		assert.Equal(st, "wlan0", result[0].Name)
		assert.Equal(st, 3, result[0].Index)
		assert.Equal(st, mac, result[0].HardwareAddr)
		assert.Equal(st, 2412, result[0].FrequencyMHz)
		assert.Equal(st, "wlan1", result[1].Name)
		assert.Equal(st, 1, client.closed)
	})

	t.Run("prefers the interface carrying the default route", func(st *testing.T) {
		client := &fakeClient{ifaces: ifaces}
		userNet := newTestNetwork(client, net.ParseIP("192.168.1.1"), map[string]string{
			"wlan0": "10.0.0.5/24",
			"wlan1": "192.168.1.20/24",
		})

		iface, err := userNet.DefaultInterface()

		assert.NoError(st, err)
		assert.Equal(st, "wlan1", iface.Name)
		assert.True(st, iface.Default)
	})

	t.Run("falls back to the first interface", func(st *testing.T) {
		client := &fakeClient{ifaces: ifaces}
		userNet := newTestNetwork(client, nil, nil)

		iface, err := userNet.DefaultInterface()

		assert.NoError(st, err)
		assert.Equal(st, "wlan0", iface.Name)
		assert.False(st, iface.Default)
	})

	t.Run("returns error without wireless interfaces", func(st *testing.T) {
		userNet := newTestNetwork(&fakeClient{}, nil, nil)

		iface, err := userNet.DefaultInterface()

		assert.Nil(st, iface)
		assert.ErrorIs(st, err, ErrNoWirelessInterface)
	})

	t.Run("returns error when nl80211 is unavailable", func(st *testing.T) {
		userNet := newTestNetwork(&fakeClient{}, nil, nil)
		userNet.newClient = func() (wifiClient, error) {
			return nil, errors.New("not supported")
		}

		result, err := userNet.Interfaces()

		assert.Nil(st, result)
		assert.ErrorIs(st, err, ErrNoWirelessInterface)
	})

	t.Run("propagates interface listing errors", func(st *testing.T) {
		cause := errors.New("netlink failure")
		client := &fakeClient{err: cause}
		userNet := newTestNetwork(client, nil, nil)

		_, err := userNet.Interfaces()

		assert.ErrorIs(st, err, cause)
		assert.Equal(st, 1, client.closed)
	})
}
