// SPDX-License-Identifier: GPL-3.0-or-later

package oui

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	kloui "github.com/klauspost/oui"

	"github.com/robgonnella/go-wlanscan/internal/logger"
)

// DefaultSource is the IEEE registry the static database is fetched from
const DefaultSource = "https://standards-oui.ieee.org/oui/oui.txt"

const downloadTimeout = 2 * time.Minute

// ErrDownload is returned when the vendor registry cannot be fetched
var ErrDownload = errors.New("failed to download vendor database")

// RepoOption configures an OUIVendorRepo
type RepoOption = func(r *OUIVendorRepo)

// WithSource overrides the URL the vendor database is downloaded from
func WithSource(url string) RepoOption {
	return func(r *OUIVendorRepo) {
		r.source = url
	}
}

// OUIVendorRepo implements VendorRepo on top of a static oui.txt file. The
// file is downloaded on first use when it does not exist yet.
type OUIVendorRepo struct {
	ouiTxt  string
	source  string
	client  *resty.Client
	db      kloui.StaticDB
	// loadErr holds a failed lazy download until UpdateVendors is called
	loadErr error
	mux     sync.Mutex
	debug   logger.DebugLogger
}

// NewOUIVendorRepo returns a repo backed by ouiTxt. An existing file is
// loaded immediately.
func NewOUIVendorRepo(ouiTxt string, options ...RepoOption) (*OUIVendorRepo, error) {
	repo := &OUIVendorRepo{
		ouiTxt: ouiTxt,
		source: DefaultSource,
		client: resty.New().SetTimeout(downloadTimeout),
		debug:  logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(repo)
	}

	if _, err := os.Stat(ouiTxt); err == nil {
		if err := repo.loadDatabase(); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// UpdateVendors downloads a fresh copy of the vendor database and reloads it
func (r *OUIVendorRepo) UpdateVendors() error {
	r.mux.Lock()
	defer r.mux.Unlock()

	r.loadErr = r.update()

	return r.loadErr
}

// Query looks up the vendor of mac. Unknown prefixes resolve to "unknown".
// A failed download is not retried until UpdateVendors is called.
func (r *OUIVendorRepo) Query(mac net.HardwareAddr) (*VendorResult, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	if r.db == nil {
		if r.loadErr == nil {
			r.loadErr = r.update()
		}

		if r.loadErr != nil {
			return nil, r.loadErr
		}
	}

	result := &VendorResult{
		Name: "unknown",
	}

	entry, err := r.db.Query(strings.ReplaceAll(mac.String(), ":", "-"))

	if errors.Is(err, kloui.ErrNotFound) {
		return result, nil
	}

	if err != nil {
		return nil, err
	}

	result.Name = entry.Manufacturer

	return result, nil
}

func (r *OUIVendorRepo) update() error {
	dir := filepath.Dir(r.ouiTxt)

	if err := os.MkdirAll(dir, 0751); err != nil {
		return err
	}

	r.debug.Info().Str("source", r.source).Msg("downloading vendor database")

	resp, err := r.client.R().Get(r.source)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrDownload, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: %s", ErrDownload, resp.Status())
	}

	if err := os.WriteFile(r.ouiTxt, resp.Body(), 0644); err != nil {
		return err
	}

	return r.loadDatabase()
}

func (r *OUIVendorRepo) loadDatabase() error {
	db, err := kloui.OpenStaticFile(r.ouiTxt)

	if err != nil {
		return err
	}

	r.db = db

	return nil
}
