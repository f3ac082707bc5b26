// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"fmt"
	"strings"

	"github.com/robgonnella/go-wlanscan/internal/logger"
	"github.com/robgonnella/go-wlanscan/pkg/driver"
	"github.com/robgonnella/go-wlanscan/pkg/oui"
)

// WifiScanner implements the Scanner interface on top of a driver.Driver
type WifiScanner struct {
	driver     driver.Driver
	maxNodes   int
	vendorRepo oui.VendorRepo
	debug      logger.DebugLogger
}

// NewWifiScanner returns a new instance of WifiScanner backed by the
// wireless extensions driver unless another driver is supplied
func NewWifiScanner(options ...ScannerOption) *WifiScanner {
	scanner := &WifiScanner{
		driver:   driver.NewWirelessExtensions(),
		maxNodes: DefaultMaxNodes,
		debug:    logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(scanner)
	}

	return scanner
}

// Scan performs one synchronous scan session on interfaceName. A control
// channel is opened for the session and released before Scan returns,
// whether or not the scan succeeded. Vendor lookups run after the channel
// has been released.
func (s *WifiScanner) Scan(interfaceName string) (*WifiScanResult, error) {
	if err := validateInterfaceName(interfaceName); err != nil {
		return nil, err
	}

	s.debug.Info().Str("interface", interfaceName).Msg("starting wifi scan")

	result, err := s.scan(interfaceName)

	if err != nil {
		return nil, err
	}

	if s.vendorRepo != nil {
		s.includeVendors(result)
	}

	s.debug.Info().
		Str("interface", interfaceName).
		Int("networks", len(result.Networks)).
		Msg("wifi scan complete")

	return result, nil
}

// scan owns the control channel for the duration of one driver round trip
func (s *WifiScanner) scan(interfaceName string) (*WifiScanResult, error) {
	channel, err := s.driver.Open()

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrChannelOpen, err)
	}

	defer func() {
		if err := channel.Close(); err != nil {
			s.debug.Error().Err(err).Msg("failed to close driver channel")
		}
	}()

	rng, err := channel.QueryRange(interfaceName)

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRangeUnavailable, interfaceName, err)
	}

	if rng == nil {
		rng = &driver.Range{}
	}

	s.debug.Debug().
		Uint8("weVersion", rng.WEVersionCompiled).
		Msg("queried wireless range")

	head, err := channel.Scan(interfaceName, rng.WEVersionCompiled)

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScanRequestFailed, interfaceName, err)
	}

	// the chain belongs to the channel so it must be fully decoded here
	return DecodeResultChain(head, interfaceName, s.maxNodes)
}

// SetDriver sets the driver used to open control channels
func (s *WifiScanner) SetDriver(d driver.Driver) {
	s.driver = d
}

// SetMaxNodes sets the result chain bound, non positive values restore
// the default
func (s *WifiScanner) SetMaxNodes(n int) {
	if n <= 0 {
		n = DefaultMaxNodes
	}

	s.maxNodes = n
}

// IncludeVendorInfo enables access point vendor lookups
func (s *WifiScanner) IncludeVendorInfo(repo oui.VendorRepo) {
	s.vendorRepo = repo
}

func (s *WifiScanner) includeVendors(result *WifiScanResult) {
	for _, n := range result.Networks {
		if n.AccessPoint == nil {
			continue
		}

		vendor, err := s.vendorRepo.Query(n.AccessPoint)

		if err != nil {
			s.debug.Warn().
				Err(err).
				Str("bssid", n.AccessPoint.String()).
				Msg("vendor lookup failed")
			continue
		}

		n.Vendor = vendor.Name
	}
}

func validateInterfaceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidInterface)
	}

	if len(name) > driver.MaxInterfaceNameLen {
		return fmt.Errorf(
			"%w: %q exceeds %d bytes",
			ErrInvalidInterface,
			name,
			driver.MaxInterfaceNameLen,
		)
	}

	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidInterface, name)
	}

	return nil
}
