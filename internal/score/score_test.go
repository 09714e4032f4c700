package score

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResults = `{
	"cpu_single_thread": {"operations_per_second": 50000, "duration": 5},
	"cpu_multi_thread": {"operations_per_second": 5000000},
	"memory": {"1024KB": {"throughput_mb_s": 5000}, "64KB": {"throughput_mb_s": 9000}},
	"disk_io": {"write_speed_mb_s": 500, "read_speed_mb_s": 600},
	"gpu": {"cpu_gflops": 50, "gpu_gflops": 500}
}`

func TestCalculate(t *testing.T) {
	var r Results
	require.NoError(t, json.Unmarshal([]byte(sampleResults), &r))

	s := Calculate(r)

	assert.InDelta(t, 10.0, s.CPUSingleThread, 1e-9)
	assert.InDelta(t, 1.0, s.CPUMultiThread, 1e-9)
	assert.InDelta(t, 50.0, s.Memory, 1e-9)
	assert.InDelta(t, 5.0, s.DiskWrite, 1e-9)
	assert.InDelta(t, 8.0, s.DiskRead, 1e-9)
	assert.InDelta(t, 50.0, s.GPU, 1e-9)

	// 10*.15 + 1*.25 + 50*.2 + 5*.1 + 8*.1 + 50*.2
	assert.InDelta(t, 23.05, s.Total, 1e-9)
	assert.Equal(t, DefaultWeights, s.Weights)
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(Results{})

	assert.Zero(t, s.CPUSingleThread)
	assert.Zero(t, s.Memory)
	assert.Zero(t, s.GPU)
	assert.Zero(t, s.Total)
}

func TestCalculate_GPUFallsBackToCPUGFLOPS(t *testing.T) {
	cpuOnly := 80.0
	s := Calculate(Results{GPU: &GPUResult{CPUGFLOPS: &cpuOnly}})

	assert.InDelta(t, 8.0, s.GPU, 1e-9)
	assert.InDelta(t, 1.6, s.Total, 1e-9)
}

func TestCalculate_MemoryNeedsReferenceBlock(t *testing.T) {
	s := Calculate(Results{Memory: map[string]MemoryResult{"64KB": {ThroughputMBs: 9000}}})
	assert.Zero(t, s.Memory)
}

func TestDefaultWeights_SumToOne(t *testing.T) {
	w := DefaultWeights
	assert.InDelta(t, 1.0, w.CPUSingle+w.CPUMulti+w.Memory+w.DiskWrite+w.DiskRead+w.GPU, 1e-9)
}

func TestScores_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Calculate(Results{}))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"cpu_single_thread", "cpu_multi_thread", "memory", "disk_write", "disk_read", "gpu", "total", "weights"} {
		assert.Contains(t, decoded, key)
	}
}
