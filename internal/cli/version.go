// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-wlanscan/internal/info"
	"github.com/robgonnella/go-wlanscan/internal/logger"
)

func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints version",
		Run: func(cmd *cobra.Command, args []string) {
			build := info.GetBuild()

			logger.New().Info().
				Str("commit", build.Commit).
				Bool("dirty", build.Dirty).
				Msgf("go-wlanscan: %s", build.Version)
		},
	}
}
