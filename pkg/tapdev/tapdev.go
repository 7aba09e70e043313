// Package tapdev creates and configures TAP (layer-2) network interfaces.
package tapdev

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"strings"

	"github.com/songgao/water"
)

// Linux IFNAMSIZ minus the trailing NUL.
const maxNameLen = 15

// Config describes the TAP interface to create.
type Config struct {
	Name string
	MTU  uint16
	MAC  net.HardwareAddr
}

func (c Config) validate() error {
	if c.Name == "" {
		return errors.New("interface name must not be empty")
	}
	if len(c.Name) > maxNameLen {
		return fmt.Errorf("interface name %q exceeds %d bytes", c.Name, maxNameLen)
	}
	if c.MTU == 0 {
		return errors.New("MTU must be greater than zero")
	}
	if len(c.MAC) != 6 {
		return fmt.Errorf("MAC address must be 6 bytes, got %d", len(c.MAC))
	}
	return nil
}

// Device is a live TAP interface. Closing it removes the interface from the
// kernel.
type Device struct {
	ifce *water.Interface
	name string
}

// Name returns the interface name the kernel actually assigned.
func (d *Device) Name() string {
	return d.name
}

// Close releases the device. The interface is non-persistent, so the kernel
// tears it down as soon as the file descriptor closes.
func (d *Device) Close() error {
	return d.ifce.Close()
}

// Inspect runs `ip addr show dev <name>` and returns its stdout. A non-zero
// exit (or a missing ip binary) is returned as an error carrying the
// command's stderr.
func Inspect(name string) (string, error) {
	cmd := exec.Command("ip", "addr", "show", "dev", name)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("ip addr show dev %s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
