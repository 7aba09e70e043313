//go:build linux

package tapdev

import (
	"fmt"

	"github.com/songgao/water"
	"github.com/vishvananda/netlink"
)

// Create opens a TAP interface and configures its MAC, MTU and admin state.
// Creation is atomic: if any configuration step fails, the interface is
// closed before the error is returned.
func Create(cfg Config) (*Device, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ifce, err := water.New(water.Config{
		DeviceType: water.TAP,
		PlatformSpecificParams: water.PlatformSpecificParams{
			Name: cfg.Name,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create TAP interface %q: %w", cfg.Name, err)
	}

	if err := configureLink(ifce.Name(), cfg); err != nil {
		ifce.Close()
		return nil, err
	}

	return &Device{ifce: ifce, name: ifce.Name()}, nil
}

func configureLink(name string, cfg Config) error {
	link, err := netlink.LinkByName(name)
	if err != nil {
		return fmt.Errorf("lookup link %q: %w", name, err)
	}
	if err := netlink.LinkSetHardwareAddr(link, cfg.MAC); err != nil {
		return fmt.Errorf("set MAC %s on %q: %w", cfg.MAC, name, err)
	}
	if err := netlink.LinkSetMTU(link, int(cfg.MTU)); err != nil {
		return fmt.Errorf("set MTU %d on %q: %w", cfg.MTU, name, err)
	}
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("bring up link %q: %w", name, err)
	}
	return nil
}
