package gpu

import "errors"

// ErrNVMLUnavailable is returned when the binary was built without the cuda
// tag or the NVML library could not be initialised.
var ErrNVMLUnavailable = errors.New("nvml unavailable")

// Device describes one adapter enumerated through NVML.
type Device struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	UUID     string `json:"uuid"`
	MemoryMB uint64 `json:"memory_mb"`
}

// Inventory is the result of one NVML enumeration.
type Inventory struct {
	DriverVersion string   `json:"driver_version"`
	CUDAVersion   int      `json:"cuda_version"`
	NVMLOk        bool     `json:"nvml_ok"`
	Devices       []Device `json:"devices"`
	ErrorMessage  string   `json:"error_message,omitempty"`
}

// Names returns the non-empty device names in index order.
func (inv Inventory) Names() []string {
	names := make([]string, 0, len(inv.Devices))
	for _, d := range inv.Devices {
		if d.Name != "" {
			names = append(names, d.Name)
		}
	}
	return names
}
