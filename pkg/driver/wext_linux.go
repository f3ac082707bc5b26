// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package driver

import (
	"errors"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/robgonnella/go-wlanscan/internal/logger"
)

type iwPoint struct {
	pointer unsafe.Pointer
	length  uint16
	flags   uint16
}

// iwreq is the request block shared by every wireless extensions ioctl
type iwreq struct {
	name [unix.IFNAMSIZ]byte
	data iwPoint
	_    [16 - unsafe.Sizeof(iwPoint{})]byte
}

func newRequest(interfaceName string) (*iwreq, error) {
	if len(interfaceName) == 0 || len(interfaceName) > MaxInterfaceNameLen {
		return nil, fmt.Errorf("%w: %q", ErrInterfaceName, interfaceName)
	}

	req := &iwreq{}
	copy(req.name[:], interfaceName)

	return req, nil
}

// Open acquires a datagram control socket used to issue wireless ioctls
func (w *WirelessExtensions) Open() (Channel, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrChannelOpen, err)
	}

	return &wextChannel{
		fd:           fd,
		scanWait:     w.scanWait,
		pollInterval: w.pollInterval,
		debug:        w.debug,
	}, nil
}

type wextChannel struct {
	fd           int
	closed       bool
	scanWait     time.Duration
	pollInterval time.Duration
	head         *ScanNode
	debug        logger.DebugLogger
}

func (c *wextChannel) ioctl(request uintptr, req *iwreq) error {
	_, _, errno := unix.Syscall(
		unix.SYS_IOCTL,
		uintptr(c.fd),
		request,
		uintptr(unsafe.Pointer(req)),
	)

	if errno != 0 {
		return errno
	}

	return nil
}

// QueryRange reads the driver's capability block for interfaceName
func (c *wextChannel) QueryRange(interfaceName string) (*Range, error) {
	req, err := newRequest(interfaceName)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRangeQuery, err)
	}

	buf := make([]byte, rangeBufferSize)
	req.data.pointer = unsafe.Pointer(&buf[0])
	req.data.length = uint16(len(buf))

	err = c.ioctl(siocgiwrange, req)
	runtime.KeepAlive(buf)

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRangeQuery, interfaceName, err)
	}

	return parseRange(buf[:min(int(req.data.length), len(buf))]), nil
}

// Scan triggers a scan on interfaceName and waits for the results
func (c *wextChannel) Scan(interfaceName string, protocolVersion uint8) (*ScanNode, error) {
	req, err := newRequest(interfaceName)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanRequest, err)
	}

	if err := c.ioctl(siocsiwscan, req); err != nil {
		if !errors.Is(err, unix.EPERM) {
			return nil, fmt.Errorf("%w: %s: %w", ErrScanRequest, interfaceName, err)
		}

		// unprivileged callers may still read results of earlier scans
		c.debug.Warn().
			Str("interface", interfaceName).
			Msg("not permitted to trigger scan, reading cached results")
	}

	stream, err := c.readResults(interfaceName)

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScanRequest, interfaceName, err)
	}

	c.head = ParseEventStream(stream, protocolVersion)

	return c.head, nil
}

func (c *wextChannel) readResults(interfaceName string) ([]byte, error) {
	deadline := time.Now().Add(c.scanWait)
	buf := make([]byte, scanBufferSize)
	wait := initialScanDelay

	for {
		time.Sleep(wait)
		wait = c.pollInterval

		req, err := newRequest(interfaceName)

		if err != nil {
			return nil, err
		}

		req.data.pointer = unsafe.Pointer(&buf[0])
		req.data.length = uint16(len(buf))

		err = c.ioctl(siocgiwscan, req)
		runtime.KeepAlive(buf)

		switch {
		case err == nil:
			return buf[:min(int(req.data.length), len(buf))], nil
		case errors.Is(err, unix.E2BIG):
			if len(buf) >= maxScanBufferSize {
				return nil, err
			}

			size := len(buf) * 2

			if int(req.data.length) > len(buf) {
				size = int(req.data.length)
			}

			c.debug.Debug().
				Int("size", min(size, maxScanBufferSize)).
				Msg("growing scan result buffer")

			buf = make([]byte, min(size, maxScanBufferSize))
			wait = 0
		case errors.Is(err, unix.EAGAIN):
			if time.Now().After(deadline) {
				return nil, ErrScanTimeout
			}
		default:
			return nil, err
		}
	}
}

// Close releases the control socket and invalidates the result chain
func (c *wextChannel) Close() error {
	if c.closed {
		return nil
	}

	c.closed = true
	c.head = nil

	return unix.Close(c.fd)
}
