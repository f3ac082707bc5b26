// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/robgonnella/go-wlanscan/internal/config"
	"github.com/robgonnella/go-wlanscan/internal/core"
	"github.com/robgonnella/go-wlanscan/internal/logger"
	"github.com/robgonnella/go-wlanscan/pkg/driver"
	"github.com/robgonnella/go-wlanscan/pkg/network"
	"github.com/robgonnella/go-wlanscan/pkg/oui"
	"github.com/robgonnella/go-wlanscan/pkg/scanner"
)

// ErrNoInterface is returned when no interface was given and none could be
// discovered
var ErrNoInterface = errors.New("no wireless interface specified")

// Root returns the root command for the go-wlanscan cli
func Root(
	runner core.Runner,
	userNet network.Network,
	vendorRepo oui.VendorRepo,
) (*cobra.Command, error) {
	defaultInterface := ""

	if iface, err := userNet.DefaultInterface(); err == nil {
		defaultInterface = iface.Name
	} else {
		logger.NewDebugLogger().Debug().Err(err).Msg("no default wireless interface")
	}

	cmd := &cobra.Command{
		Use:   "go-wlanscan",
		Short: "Scan for wireless networks!",
		Long:  `CLI to list the wireless networks visible to a WiFi interface`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.DefaultDir()

			if err != nil {
				return err
			}

			conf, err := config.Load(cmd.Flags(), dir)

			if err != nil {
				return err
			}

			if conf.Interface == "" {
				return ErrNoInterface
			}

			wext := driver.NewWirelessExtensions(
				driver.WithScanWait(conf.ScanWait),
			)

			options := []scanner.ScannerOption{scanner.WithDriver(wext)}

			if conf.Vendor {
				options = append(options, scanner.WithVendorInfo(vendorRepo))
			}

			runner.Initialize(
				scanner.NewWifiScanner(options...),
				conf.Interface,
				conf.ESSID,
				conf.MaxResults,
				conf.Quiet,
				conf.JSON,
				conf.OutFile,
			)

			return runner.Run()
		},
	}

	cmd.Flags().StringP("interface", "i", defaultInterface, "set the wireless interface to scan")
	cmd.Flags().Bool("json", false, "output json instead of table text")
	cmd.Flags().Bool("quiet", false, "disable all output except for final results")
	cmd.Flags().Bool("vendor", false, "include access point vendor info")
	cmd.Flags().String("essid", "", "only report networks with this essid")
	cmd.Flags().String("out-file", "", "write results to this file")
	cmd.Flags().Int("max-results", 0, "limit the number of reported networks (0 reports all)")
	cmd.Flags().Duration("scan-wait", driver.DefaultScanWait, "how long to wait for scan results")

	cmd.AddCommand(newVersion())
	cmd.AddCommand(newUpdateVendors(vendorRepo))
	cmd.AddCommand(newInterfaces(userNet))

	return cmd, nil
}
