// Author: webdunesurfer <vkh@gmx.at>
// Licensed under the GNU General Public License v3.0

package main

import (
	"flag"
	"fmt"
	"math"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/webdunesurfer/taphold/pkg/macaddr"
	"github.com/webdunesurfer/taphold/pkg/tapdev"
)

const (
	defaultName = "tap0"
	defaultMTU  = 1500
)

var (
	name      = flag.String("name", defaultName, "TAP interface name")
	mtu       = flag.Uint("mtu", defaultMTU, "TAP interface MTU")
	mac       = flag.String("mac", "", "TAP interface MAC address (e.g. 0a:0b:0c:0d:0e:0f); random if empty")
	noInspect = flag.Bool("no-inspect", false, "Skip the 'ip addr show' dump after creation")
	verbose   = flag.Bool("v", false, "Enable debug logging")
)

type device interface {
	Name() string
	Close() error
}

// createTAP is a hook so tests can stand in a fake device.
var createTAP = func(cfg tapdev.Config) (device, error) {
	return tapdev.Create(cfg)
}

// resolveMAC returns the address to assign and whether it was generated
// rather than supplied on the command line.
func resolveMAC(s string) (net.HardwareAddr, bool, error) {
	if s == "" {
		return macaddr.Random(), true, nil
	}
	hw, err := macaddr.Parse(s)
	return hw, false, err
}

// run creates the interface and holds it open until a signal arrives on
// sigChan. The device is released on every exit path after creation
// succeeds; a creation failure returns the error with nothing to release.
func run(cfg tapdev.Config, inspect bool, sigChan <-chan os.Signal) error {
	log.Info().Msgf("creating TAP interface %s (MTU %d)", cfg.Name, cfg.MTU)

	// 1. Create and configure the interface
	dev, err := createTAP(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			log.Warn().Err(err).Msgf("failed to remove interface %s", dev.Name())
		}
	}()
	log.Info().Msgf("TAP interface %s is up", dev.Name())

	// 2. Show what the host sees
	if inspect {
		out, err := tapdev.Inspect(dev.Name())
		if err != nil {
			log.Warn().Err(err).Msg("interface inspection failed")
		} else {
			fmt.Print(out)
		}
	}

	// 3. Hold the interface open until interrupted
	log.Info().Msg("press Ctrl+C to remove the interface and exit")
	<-sigChan

	// Closing the device drops the interface from the kernel.
	log.Info().Msgf("shutting down, removing %s", dev.Name())
	return nil
}

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *mtu == 0 || *mtu > math.MaxUint16 {
		log.Fatal().Msgf("invalid MTU %d: must be between 1 and %d", *mtu, math.MaxUint16)
	}

	hwaddr, generated, err := resolveMAC(*mac)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid --mac")
	}
	if generated {
		log.Warn().Msgf("no MAC address supplied, generated random address %s", hwaddr)
	} else {
		log.Info().Msgf("using user-supplied MAC address %s", hwaddr)
	}

	cfg := tapdev.Config{Name: *name, MTU: uint16(*mtu), MAC: hwaddr}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if err := run(cfg, !*noInspect, sigChan); err != nil {
		log.Fatal().Err(err).Msg("failed to create TAP interface")
	}
}
