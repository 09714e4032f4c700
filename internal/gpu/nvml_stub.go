//go:build !cuda

package gpu

import (
	"context"

	"hwbench/internal/logging"
)

// Available reports whether NVML support was compiled in.
const Available = false

// Lister is a no-op placeholder for builds without CUDA support.
type Lister struct {
	logger *logging.Logger
}

// NewLister returns a lister that never finds devices.
func NewLister(logger *logging.Logger) *Lister {
	return &Lister{logger: logger}
}

// Inventory reports that NVML was compiled out.
func (l *Lister) Inventory() Inventory {
	return Inventory{
		Devices:      []Device{},
		ErrorMessage: "NVML disabled: rebuild with -tags cuda",
	}
}

// DeviceNames always fails with ErrNVMLUnavailable.
func (l *Lister) DeviceNames(_ context.Context) ([]string, error) {
	l.logger.Debug("gpu.detect.disabled", "Skipping NVML enumeration (built without cuda tag)", nil)
	return nil, ErrNVMLUnavailable
}
