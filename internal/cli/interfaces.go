// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-wlanscan/pkg/network"
)

func newInterfaces(userNet network.Network) *cobra.Command {
	var printJson bool

	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "Lists wireless interfaces",
		RunE: func(cmd *cobra.Command, args []string) error {
			ifaces, err := userNet.Interfaces()

			if err != nil {
				return err
			}

			if printJson {
				return printInterfacesJSON(cmd, ifaces)
			}

			ifaceTable := table.NewWriter()
			ifaceTable.SetOutputMirror(cmd.OutOrStdout())
			ifaceTable.AppendHeader(table.Row{"NAME", "MAC", "PHY", "TYPE", "FREQUENCY", "DEFAULT"})

			for _, iface := range ifaces {
				ifaceTable.AppendRow(table.Row{
					iface.Name,
					iface.HardwareAddr.String(),
					iface.PHY,
					iface.Type,
					fmt.Sprintf("%d MHz", iface.FrequencyMHz),
					iface.Default,
				})
			}

			ifaceTable.Render()

			return nil
		},
	}

	cmd.Flags().BoolVar(&printJson, "json", false, "output json instead of table text")

	return cmd
}

func printInterfacesJSON(cmd *cobra.Command, ifaces []*network.WirelessInterface) error {
	data := []interface{}{}

	for _, iface := range ifaces {
		data = append(data, struct {
			Name         string `json:"name"`
			MAC          string `json:"mac"`
			PHY          int    `json:"phy"`
			Type         string `json:"type"`
			FrequencyMHz int    `json:"frequencyMHz"`
			Default      bool   `json:"default"`
		}{
			Name:         iface.Name,
			MAC:          iface.HardwareAddr.String(),
			PHY:          iface.PHY,
			Type:         iface.Type,
			FrequencyMHz: iface.FrequencyMHz,
			Default:      iface.Default,
		})
	}

	encoded, err := json.Marshal(data)

	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

	return nil
}
