//go:build !linux

package tapdev

import (
	"fmt"
	"runtime"
)

func Create(cfg Config) (*Device, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("TAP interfaces are not supported on %s", runtime.GOOS)
}
