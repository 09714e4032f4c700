//go:build cuda

package gpu

import (
	"context"
	"fmt"

	"hwbench/internal/logging"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Lister enumerates NVIDIA adapters through NVML
type Lister struct {
	nvml   NVMLInterface
	logger *logging.Logger
}

// NewLister creates a lister bound to the system NVML library
func NewLister(logger *logging.Logger) *Lister {
	return &Lister{
		nvml:   NewRealNVML(),
		logger: logger,
	}
}

// NewListerWithNVML creates a lister with a custom NVML implementation (for testing)
func NewListerWithNVML(nvmlInterface NVMLInterface, logger *logging.Logger) *Lister {
	return &Lister{
		nvml:   nvmlInterface,
		logger: logger,
	}
}

// Inventory initialises NVML, enumerates every device and shuts NVML down again.
func (l *Lister) Inventory() Inventory {
	inv := Inventory{Devices: make([]Device, 0)}

	ret := l.nvml.Init()
	if ret != nvml.SUCCESS {
		inv.ErrorMessage = fmt.Sprintf("failed to initialize NVML: %v", nvml.ErrorString(ret))
		l.logger.Debug("gpu.nvml.init.failed", "NVML initialization failed", map[string]interface{}{
			"error": inv.ErrorMessage,
		})
		return inv
	}
	defer l.nvml.Shutdown()

	inv.NVMLOk = true

	if version, ret := l.nvml.SystemGetDriverVersion(); ret == nvml.SUCCESS {
		inv.DriverVersion = version
	}
	if version, ret := l.nvml.SystemGetCudaDriverVersion(); ret == nvml.SUCCESS {
		inv.CUDAVersion = version
	}

	count, ret := l.nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		inv.ErrorMessage = fmt.Sprintf("failed to get device count: %v", nvml.ErrorString(ret))
		l.logger.Warn("gpu.device.count.failed", "Failed to get GPU count", map[string]interface{}{
			"error": inv.ErrorMessage,
		})
		return inv
	}

	for i := 0; i < count; i++ {
		device, ret := l.nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			l.logger.Warn("gpu.device.handle.failed", "Failed to get device handle", map[string]interface{}{
				"index": i,
				"error": nvml.ErrorString(ret),
			})
			continue
		}

		d := Device{Index: i}
		if name, ret := device.GetName(); ret == nvml.SUCCESS {
			d.Name = name
		}
		if uuid, ret := device.GetUUID(); ret == nvml.SUCCESS {
			d.UUID = uuid
		}
		if mem, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
			d.MemoryMB = mem.Total / (1024 * 1024)
		}
		inv.Devices = append(inv.Devices, d)

		l.logger.Debug("gpu.device.detected", "GPU device detected", map[string]interface{}{
			"index":     i,
			"name":      d.Name,
			"memory_mb": d.MemoryMB,
		})
	}

	return inv
}

// DeviceNames returns the names of all enumerated adapters. NVML calls are not
// cancellable; ctx is only checked before starting.
func (l *Lister) DeviceNames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inv := l.Inventory()
	if !inv.NVMLOk {
		return nil, fmt.Errorf("%w: %s", ErrNVMLUnavailable, inv.ErrorMessage)
	}
	if inv.ErrorMessage != "" {
		return nil, fmt.Errorf("failed to enumerate devices: %s", inv.ErrorMessage)
	}
	return inv.Names(), nil
}
