// SPDX-License-Identifier: GPL-3.0-or-later

package logger_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/robgonnella/go-wlanscan/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

const testString = "scanning wlan0"

func TestLogger(t *testing.T) {
	defer func() {
		logger.SetGlobalLevel(zerolog.DebugLevel)
		logger.Reset()
	}()

	t.Run("sets global log level", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.DebugLevel)
			logger.Reset()
		}()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.ErrorLevel)

		log := logger.New()

		log.Debug().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Info().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Warn().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Error().Msg(testString)
		assert.Contains(st, buf.String(), testString)
	})

	t.Run("sets caller option", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.DebugLevel)
			logger.Reset()
		}()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.InfoLevel)
		logger.SetWithCaller()

		logger.New().Info().Msg(testString)

		output := buf.String()
		assert.Contains(st, output, testString)
		assert.Contains(st, output, "logger_test.go")
	})

	t.Run("sets timestamp option", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.DebugLevel)
			logger.Reset()
		}()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.InfoLevel)
		logger.SetWithTimestamp()

		logger.New().Info().Msg(testString)

		output := buf.String()
		assert.Contains(st, output, testString)
		assert.Contains(st, output, "\"time\":")
	})

	t.Run("updates loggers handed out earlier", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.DebugLevel)
			logger.Reset()
		}()

		log := logger.New()
		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.InfoLevel)

		log.Info().Str("interface", "wlan0").Msg(testString)

		assert.Contains(st, buf.String(), "\"interface\":\"wlan0\"")
	})

	t.Run("sets global log file option", func(st *testing.T) {
		outFileName := filepath.Join(st.TempDir(), "logger_test_out.txt")

		writeFile, err := os.Create(outFileName)

		assert.NoError(st, err)

		defer func() {
			writeFile.Close()
			logger.SetGlobalLevel(zerolog.DebugLevel)
			logger.Reset()
		}()

		logger.SetGlobalLevel(zerolog.DebugLevel)
		logger.SetGlobalLogFile(writeFile)

		logger.New().Info().Msg(testString)

		readFile, err := os.Open(outFileName)

		assert.NoError(st, err)

		defer readFile.Close()

		output, err := io.ReadAll(readFile)

		assert.NoError(st, err)
		assert.Contains(st, string(output), testString)
	})
}
