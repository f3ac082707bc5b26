// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robgonnella/go-wlanscan/pkg/driver"
	"github.com/robgonnella/go-wlanscan/pkg/scanner"
)

func newNode(essid string, keyFlags uint16) *driver.ScanNode {
	n := &driver.ScanNode{}
	n.Config.HasEssid = true
	n.Config.EssidLen = copy(n.Config.Essid[:driver.EssidMaxLen], essid)
	n.Config.KeyFlags = keyFlags
	return n
}

func newChain(count int) *driver.ScanNode {
	var head, tail *driver.ScanNode

	for i := 0; i < count; i++ {
		n := newNode(fmt.Sprintf("net-%d", i), driver.AuthWPAVersionWPA2)

		if head == nil {
			head = n
		} else {
			tail.Next = n
		}

		tail = n
	}

	return head
}

func TestDecodeResultChain(t *testing.T) {
	for _, count := range []int{0, 1, 50} {
		t.Run(fmt.Sprintf("decodes %d nodes in order", count), func(st *testing.T) {
			result, err := scanner.DecodeResultChain(newChain(count), "wlan0", 0)

			assert.NoError(st, err)
			assert.Equal(st, "wlan0", result.Interface)
			assert.NotNil(st, result.Networks)
			assert.Len(st, result.Networks, count)

			for i, n := range result.Networks {
				assert.Equal(st, fmt.Sprintf("net-%d", i), *n.ESSID)
				assert.Equal(st, scanner.EncryptionWPA2, n.Encryption)
			}
		})
	}

	t.Run("accepts a chain exactly at the bound", func(st *testing.T) {
		result, err := scanner.DecodeResultChain(newChain(3), "wlan0", 3)

		assert.NoError(st, err)
		assert.Len(st, result.Networks, 3)
	})

	t.Run("rejects chains longer than the bound", func(st *testing.T) {
		result, err := scanner.DecodeResultChain(newChain(4), "wlan0", 3)

		assert.Nil(st, result)
		assert.ErrorIs(st, err, scanner.ErrMalformedResultChain)
	})

	t.Run("rejects cyclic chains", func(st *testing.T) {
		a := newNode("a", 0)
		b := newNode("b", 0)
		a.Next = b
		b.Next = a

		result, err := scanner.DecodeResultChain(a, "wlan0", 0)

		assert.Nil(st, result)
		assert.ErrorIs(st, err, scanner.ErrMalformedResultChain)
	})

	t.Run("does not modify the chain", func(st *testing.T) {
		head := newChain(2)
		second := head.Next
		before := *head

		_, err := scanner.DecodeResultChain(head, "wlan0", 0)

		assert.NoError(st, err)
		assert.Equal(st, before, *head)
		assert.Same(st, second, head.Next)
	})
}

func TestDecodeNetwork(t *testing.T) {
	t.Run("decodes every field of a node", func(st *testing.T) {
		n := newNode("Home", driver.AuthWPAVersionWPA)
		n.HasAPAddr = true
		n.APAddr.Family = driver.ARPHRDEther
		copy(n.APAddr.Data[:], []byte{0xAA, 0xBB, 0xCC, 0x11, 0x22, 0x33})
		n.HasStats = true
		n.Stats.Quality = driver.Quality{Qual: 50, Level: 200, Noise: 160}
		n.HasMaxBitrate = true
		n.MaxBitrate.Value = 54000000
		n.Config.HasFreq = true
		n.Config.Freq = 2.437e9
		n.Config.HasMode = true
		n.Config.Mode = 3
		copy(n.Config.Name[:], "IEEE 802.11g")

		network := scanner.DecodeNetwork(n)

		assert.Equal(st, "Home", *network.ESSID)
		assert.Equal(st, scanner.EncryptionWPA, network.Encryption)
		assert.Equal(st, "aa:bb:cc:11:22:33", network.AccessPoint.String())
		assert.Equal(st, uint8(50), network.Quality.Quality)
		assert.Equal(st, int32(54000000), *network.MaxBitrate)
		assert.Equal(st, 6, *network.Channel)
		assert.InDelta(st, 2.437, *network.FrequencyGHz, 1e-9)
		assert.Equal(st, scanner.ModeMaster, *network.Mode)
		assert.Equal(st, "IEEE 802.11g", *network.Protocol)
		assert.Nil(st, network.Key)
	})

	t.Run("leaves unreported fields absent", func(st *testing.T) {
		network := scanner.DecodeNetwork(&driver.ScanNode{})

		assert.Nil(st, network.ESSID)
		assert.Equal(st, scanner.EncryptionUnknown, network.Encryption)
		assert.Nil(st, network.Quality)
		assert.Nil(st, network.FrequencyGHz)
		assert.Nil(st, network.Channel)
		assert.Nil(st, network.Mode)
		assert.Nil(st, network.AccessPoint)
		assert.Nil(st, network.MaxBitrate)
		assert.Nil(st, network.Protocol)
		assert.Nil(st, network.Key)
	})
}
