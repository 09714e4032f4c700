//go:build cuda

package gpu

import (
	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Available reports whether NVML support was compiled in.
const Available = true

// DeviceInterface is the subset of nvml.Device used for enumeration
type DeviceInterface interface {
	GetName() (string, nvml.Return)
	GetUUID() (string, nvml.Return)
	GetMemoryInfo() (nvml.Memory, nvml.Return)
}

// NVMLInterface is the subset of the NVML API used for enumeration
type NVMLInterface interface {
	Init() nvml.Return
	Shutdown() nvml.Return
	DeviceGetCount() (int, nvml.Return)
	DeviceGetHandleByIndex(index int) (DeviceInterface, nvml.Return)
	SystemGetDriverVersion() (string, nvml.Return)
	SystemGetCudaDriverVersion() (int, nvml.Return)
}

type deviceWrapper struct {
	device nvml.Device
}

func (w deviceWrapper) GetName() (string, nvml.Return) {
	return w.device.GetName()
}

func (w deviceWrapper) GetUUID() (string, nvml.Return) {
	return w.device.GetUUID()
}

func (w deviceWrapper) GetMemoryInfo() (nvml.Memory, nvml.Return) {
	return w.device.GetMemoryInfo()
}

// RealNVML implements NVMLInterface against libnvidia-ml
type RealNVML struct{}

// NewRealNVML creates a new real NVML instance
func NewRealNVML() NVMLInterface {
	return &RealNVML{}
}

func (r *RealNVML) Init() nvml.Return {
	return nvml.Init()
}

func (r *RealNVML) Shutdown() nvml.Return {
	return nvml.Shutdown()
}

func (r *RealNVML) DeviceGetCount() (int, nvml.Return) {
	return nvml.DeviceGetCount()
}

func (r *RealNVML) DeviceGetHandleByIndex(index int) (DeviceInterface, nvml.Return) {
	device, ret := nvml.DeviceGetHandleByIndex(index)
	if ret != nvml.SUCCESS {
		return nil, ret
	}
	return deviceWrapper{device: device}, ret
}

func (r *RealNVML) SystemGetDriverVersion() (string, nvml.Return) {
	return nvml.SystemGetDriverVersion()
}

func (r *RealNVML) SystemGetCudaDriverVersion() (int, nvml.Return) {
	return nvml.SystemGetCudaDriverVersion()
}
