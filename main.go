// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"github.com/robgonnella/go-wlanscan/internal/cli"
	"github.com/robgonnella/go-wlanscan/internal/core"
	"github.com/robgonnella/go-wlanscan/internal/logger"
	"github.com/robgonnella/go-wlanscan/pkg/network"
	"github.com/robgonnella/go-wlanscan/pkg/oui"
)

func main() {
	log := logger.New()

	userNet := network.NewUserNetwork()

	vendorRepo, err := oui.GetDefaultVendorRepo()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize vendor repo")
	}

	runner := core.New()

	cmd, err := cli.Root(runner, userNet, vendorRepo)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cli")
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command encountered an error")
	}
}
