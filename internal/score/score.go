package score

// Baselines divide raw measurements into dimensionless scores.
const (
	SingleThreadBaseline = 5000.0      // operations per second
	MultiThreadBaseline  = 5_000_000.0 // operations per second
	MemoryBaseline       = 100.0       // MB/s for 1024KB blocks
	DiskWriteBaseline    = 100.0       // MB/s
	DiskReadBaseline     = 75.0        // MB/s
	GFLOPSBaseline       = 10.0

	// MemoryReferenceBlock is the block size whose throughput is scored.
	MemoryReferenceBlock = "1024KB"
)

// ThroughputResult is a CPU run measured in operations per second.
type ThroughputResult struct {
	OperationsPerSecond float64 `json:"operations_per_second"`
}

// MemoryResult is one block size of the allocation run.
type MemoryResult struct {
	ThroughputMBs float64 `json:"throughput_mb_s"`
}

// DiskResult is the sequential I/O run.
type DiskResult struct {
	WriteSpeedMBs float64 `json:"write_speed_mb_s"`
	ReadSpeedMBs  float64 `json:"read_speed_mb_s"`
}

// GPUResult carries the matrix-multiply rate. CPUGFLOPS is the CPU
// reference run, used when no GPU figure exists.
type GPUResult struct {
	GPUGFLOPS *float64 `json:"gpu_gflops,omitempty"`
	CPUGFLOPS *float64 `json:"cpu_gflops,omitempty"`
}

// Results is the test_results document produced by the benchmark runners.
// Absent sections score zero.
type Results struct {
	CPUSingleThread *ThroughputResult       `json:"cpu_single_thread,omitempty"`
	CPUMultiThread  *ThroughputResult       `json:"cpu_multi_thread,omitempty"`
	Memory          map[string]MemoryResult `json:"memory,omitempty"`
	DiskIO          *DiskResult             `json:"disk_io,omitempty"`
	GPU             *GPUResult              `json:"gpu,omitempty"`
}

// Weights sum to 1.
type Weights struct {
	CPUSingle float64 `json:"cpu_single"`
	CPUMulti  float64 `json:"cpu_multi"`
	Memory    float64 `json:"memory"`
	DiskWrite float64 `json:"disk_write"`
	DiskRead  float64 `json:"disk_read"`
	GPU       float64 `json:"gpu"`
}

// DefaultWeights favours multi-thread CPU, then memory and GPU.
var DefaultWeights = Weights{
	CPUSingle: 0.15,
	CPUMulti:  0.25,
	Memory:    0.20,
	DiskWrite: 0.10,
	DiskRead:  0.10,
	GPU:       0.20,
}

// Scores is the scores section of a report.
type Scores struct {
	CPUSingleThread float64 `json:"cpu_single_thread"`
	CPUMultiThread  float64 `json:"cpu_multi_thread"`
	Memory          float64 `json:"memory"`
	DiskWrite       float64 `json:"disk_write"`
	DiskRead        float64 `json:"disk_read"`
	GPU             float64 `json:"gpu"`
	Total           float64 `json:"total"`
	Weights         Weights `json:"weights"`
}

// Calculate scores every dimension against its baseline and combines them
// with DefaultWeights.
func Calculate(r Results) Scores {
	return CalculateWeighted(r, DefaultWeights)
}

// CalculateWeighted is Calculate with caller-supplied weights.
func CalculateWeighted(r Results, w Weights) Scores {
	s := Scores{Weights: w}

	if r.CPUSingleThread != nil {
		s.CPUSingleThread = r.CPUSingleThread.OperationsPerSecond / SingleThreadBaseline
	}
	if r.CPUMultiThread != nil {
		s.CPUMultiThread = r.CPUMultiThread.OperationsPerSecond / MultiThreadBaseline
	}
	if m, ok := r.Memory[MemoryReferenceBlock]; ok {
		s.Memory = m.ThroughputMBs / MemoryBaseline
	}
	if r.DiskIO != nil {
		s.DiskWrite = r.DiskIO.WriteSpeedMBs / DiskWriteBaseline
		s.DiskRead = r.DiskIO.ReadSpeedMBs / DiskReadBaseline
	}
	if r.GPU != nil {
		switch {
		case r.GPU.GPUGFLOPS != nil:
			s.GPU = *r.GPU.GPUGFLOPS / GFLOPSBaseline
		case r.GPU.CPUGFLOPS != nil:
			s.GPU = *r.GPU.CPUGFLOPS / GFLOPSBaseline
		}
	}

	s.Total = s.CPUSingleThread*w.CPUSingle +
		s.CPUMultiThread*w.CPUMulti +
		s.Memory*w.Memory +
		s.DiskWrite*w.DiskWrite +
		s.DiskRead*w.DiskRead +
		s.GPU*w.GPU

	return s
}
