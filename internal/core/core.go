// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/progress"
	"github.com/jedib0t/go-pretty/table"
	"github.com/rs/zerolog"

	"github.com/robgonnella/go-wlanscan/internal/logger"
	"github.com/robgonnella/go-wlanscan/internal/util"
	"github.com/robgonnella/go-wlanscan/pkg/scanner"
)

// Core implements the Runner interface
type Core struct {
	interfaceName string
	essid         string
	maxResults    int
	quiet         bool
	printJson     bool
	outFile       string
	pw            progress.Writer
	tracker       *progress.Tracker
	scanner       scanner.Scanner
	out           io.Writer
	log           logger.Logger
}

// New returns a new Core writing results to stdout
func New() *Core {
	return &Core{
		out: os.Stdout,
		log: logger.New(),
	}
}

// SetOutput sets where rendered results are written
func (c *Core) SetOutput(w io.Writer) {
	c.out = w
}

// Initialize prepares the runner for a scan of interfaceName
func (c *Core) Initialize(
	coreScanner scanner.Scanner,
	interfaceName string,
	essid string,
	maxResults int,
	quiet bool,
	printJson bool,
	outFile string,
) {
	if quiet {
		logger.SetGlobalLevel(zerolog.Disabled)
	}

	c.scanner = coreScanner
	c.interfaceName = interfaceName
	c.essid = essid
	c.maxResults = maxResults
	c.quiet = quiet
	c.printJson = printJson
	c.outFile = outFile
	c.pw = progressWriter()
	c.tracker = &progress.Tracker{
		Message: fmt.Sprintf("scanning %s", interfaceName),
		Total:   1,
	}
}

// Run scans, filters and renders the visible networks
func (c *Core) Run() error {
	start := time.Now()

	if !c.quiet {
		c.pw.AppendTracker(c.tracker)
		go c.pw.Render()
	}

	result, err := c.scanner.Scan(c.interfaceName)

	if !c.quiet {
		c.stopProgress(err == nil)
	}

	if err != nil {
		return err
	}

	networks := result.Networks

	if c.essid != "" {
		networks = util.FilterSlice(networks, func(n *scanner.WirelessNetwork) bool {
			return n.ESSID != nil && *n.ESSID == c.essid
		})
	}

	report := &scanner.WifiScanResult{
		Interface: result.Interface,
		Networks:  util.TruncateSlice(networks, c.maxResults),
	}

	if err := c.printResults(report); err != nil {
		return err
	}

	c.log.Info().
		Str("duration", time.Since(start).String()).
		Int("networks", len(report.Networks)).
		Msg("go-wlanscan complete")

	return nil
}

func (c *Core) stopProgress(success bool) {
	if success {
		c.tracker.Message = fmt.Sprintf("%s - scan complete", c.interfaceName)
	} else {
		c.tracker.Message = fmt.Sprintf("%s - scan failed", c.interfaceName)
	}

	c.tracker.MarkAsDone()

	c.pw.Stop()

	// let the final frame render before results are printed
	for c.pw.IsRenderInProgress() {
		time.Sleep(time.Millisecond * 10)
	}
}

func (c *Core) printResults(result *scanner.WifiScanResult) error {
	if c.printJson {
		data, err := result.MarshalJSON()

		if err != nil {
			return err
		}

		fmt.Fprintln(c.out, string(data))

		c.writeReport(data)

		return nil
	}

	resultTable := table.NewWriter()
	resultTable.SetOutputMirror(c.out)
	resultTable.AppendHeader(table.Row{
		"ESSID",
		"BSSID",
		"VENDOR",
		"ENCRYPTION",
		"CHANNEL",
		"FREQUENCY",
		"SIGNAL",
		"QUALITY",
		"BITRATE",
		"MODE",
	})

	for _, n := range result.Networks {
		resultTable.AppendRow(table.Row{
			formatEssid(n.ESSID),
			formatHardwareAddr(n),
			n.Vendor,
			n.Encryption.String(),
			formatChannel(n.Channel),
			formatFrequency(n.FrequencyGHz),
			formatSignal(n.Quality),
			formatQuality(n.Quality),
			formatBitrate(n.MaxBitrate),
			formatMode(n.Mode),
		})
	}

	output := resultTable.Render()

	c.writeReport([]byte(output))

	return nil
}

func (c *Core) writeReport(data []byte) {
	if c.outFile == "" {
		return
	}

	if err := os.WriteFile(c.outFile, data, 0644); err != nil {
		c.log.Error().Err(err).Msg("failed to write output report")
	}
}

// helpers
func progressWriter() progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(os.Stderr)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetMessageWidth(32)
	pw.SetNumTrackersExpected(1)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample

	return pw
}
