// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package driver

import "fmt"

// Open always fails on platforms without wireless extensions
func (w *WirelessExtensions) Open() (Channel, error) {
	return nil, fmt.Errorf("%w: %w", ErrChannelOpen, ErrUnsupported)
}
