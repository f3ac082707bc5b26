// SPDX-License-Identifier: GPL-3.0-or-later

package oui_test

import (
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/robgonnella/go-wlanscan/pkg/oui"
	"github.com/stretchr/testify/assert"
)

const registry = `OUI/MA-L                                                    Organization
company_id                                                  Organization
                                                            Address

AA-BB-CC   (hex)		Acme Wireless
AABBCC     (base 16)		Acme Wireless
				1 Main Street
				Springfield  CA  94000
				US

`

func registryServer(st *testing.T, hits *int) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		_, _ = w.Write([]byte(registry))
	}))

	st.Cleanup(server.Close)

	return server
}

func TestOUIVendorRepo(t *testing.T) {
	mac, _ := net.ParseMAC("aa:bb:cc:11:22:33")
	unknownMac, _ := net.ParseMAC("02:00:00:00:00:01")

	t.Run("loads an existing database", func(st *testing.T) {
		ouiTxt := filepath.Join(st.TempDir(), "oui.txt")

		assert.NoError(st, os.WriteFile(ouiTxt, []byte(registry), 0644))

		repo, err := oui.NewOUIVendorRepo(ouiTxt, oui.WithSource("http://127.0.0.1:0/unused"))

		assert.NoError(st, err)

		result, err := repo.Query(mac)

		assert.NoError(st, err)
		assert.Contains(st, result.Name, "Acme Wireless")

		result, err = repo.Query(unknownMac)

		assert.NoError(st, err)
		assert.Equal(st, "unknown", result.Name)
	})

	t.Run("downloads the database on first query", func(st *testing.T) {
		hits := 0
		server := registryServer(st, &hits)
		ouiTxt := filepath.Join(st.TempDir(), "nested", "oui.txt")

		repo, err := oui.NewOUIVendorRepo(ouiTxt, oui.WithSource(server.URL))

		assert.NoError(st, err)
		assert.Equal(st, 0, hits)

		result, err := repo.Query(mac)

		assert.NoError(st, err)
		assert.Contains(st, result.Name, "Acme Wireless")
		assert.FileExists(st, ouiTxt)

		_, err = repo.Query(mac)

		assert.NoError(st, err)
		assert.Equal(st, 1, hits)
	})

	t.Run("updates vendors on demand", func(st *testing.T) {
		hits := 0
		server := registryServer(st, &hits)
		ouiTxt := filepath.Join(st.TempDir(), "oui.txt")

		repo, err := oui.NewOUIVendorRepo(ouiTxt, oui.WithSource(server.URL))

		assert.NoError(st, err)
		assert.NoError(st, repo.UpdateVendors())
		assert.Equal(st, 1, hits)
		assert.FileExists(st, ouiTxt)
	})

	t.Run("does not retry a failed download on later queries", func(st *testing.T) {
		hits := atomic.Int32{}
		fail := atomic.Bool{}
		fail.Store(true)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)

			if fail.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			_, _ = w.Write([]byte(registry))
		}))

		defer server.Close()

		repo, err := oui.NewOUIVendorRepo(
			filepath.Join(st.TempDir(), "oui.txt"),
			oui.WithSource(server.URL),
		)

		assert.NoError(st, err)

		for i := 0; i < 3; i++ {
			result, err := repo.Query(mac)

			assert.Nil(st, result)
			assert.ErrorIs(st, err, oui.ErrDownload)
		}

		assert.Equal(st, int32(1), hits.Load())

		fail.Store(false)

		assert.NoError(st, repo.UpdateVendors())
		assert.Equal(st, int32(2), hits.Load())

		result, err := repo.Query(mac)

		assert.NoError(st, err)
		assert.Contains(st, result.Name, "Acme Wireless")
		assert.Equal(st, int32(2), hits.Load())
	})

	t.Run("reports failed downloads", func(st *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))

		defer server.Close()

		repo, err := oui.NewOUIVendorRepo(
			filepath.Join(st.TempDir(), "oui.txt"),
			oui.WithSource(server.URL),
		)

		assert.NoError(st, err)

		result, err := repo.Query(mac)

		assert.Nil(st, result)
		assert.ErrorIs(st, err, oui.ErrDownload)
	})
}
