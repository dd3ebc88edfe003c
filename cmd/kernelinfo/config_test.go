package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spike/dsp/kernel"
	"github.com/cwbudde/algo-spike/dsp/quantity"
)

const testConfig = `
unit: ms
sampling_rate: 1 kHz
kernel: {shape: gaussian, size: 10 ms}
tau: 20 ms
trains:
  - {name: a, start: 0, stop: 500, spikes: [12, 80, 311]}
  - {spikes: [15, 90, 290, 480]}
`

func TestLoadConfig_ParsesAllFields(t *testing.T) {
	cfg, err := loadConfig(strings.NewReader(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "ms", cfg.Unit)
	assert.Equal(t, "1 kHz", cfg.SamplingRate)
	assert.Equal(t, "gaussian", cfg.Kernel.Shape)
	assert.Equal(t, "10 ms", cfg.Kernel.Size)
	assert.Nil(t, cfg.Kernel.Normalize)
	assert.Equal(t, "20 ms", cfg.Tau)
	require.Len(t, cfg.Trains, 2)
	assert.Equal(t, []float64{12, 80, 311}, cfg.Trains[0].Spikes)
	require.NotNil(t, cfg.Trains[0].Stop)
	assert.Equal(t, 500.0, *cfg.Trains[0].Stop)
	assert.Nil(t, cfg.Trains[1].Start)
}

func TestLoadConfig_UnknownField_Rejected(t *testing.T) {
	_, err := loadConfig(strings.NewReader("unit: ms\nsampling: 1 kHz\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfigFile_Missing_ReturnsError(t *testing.T) {
	_, err := loadConfigFile("does/not/exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestConfig_Defaults(t *testing.T) {
	var cfg Config

	u, err := cfg.unit()
	require.NoError(t, err)
	assert.True(t, u.Equal(quantity.Second))

	sr, err := cfg.samplingRate()
	require.NoError(t, err)
	assert.Equal(t, 1.0, sr.Value)
	assert.True(t, sr.Unit.Equal(quantity.Kilohertz))

	k, err := cfg.kernel()
	require.NoError(t, err)
	assert.Equal(t, kernel.ShapeGaussian, k.Shape())
	assert.True(t, k.Normalized())
	assert.Equal(t, 1.0, k.Size().Value)

	tau, err := cfg.tau()
	require.NoError(t, err)
	assert.Equal(t, k.Size(), tau)
}

func TestConfig_Unit_NotTime_ReturnsError(t *testing.T) {
	cfg := Config{Unit: "Hz"}
	_, err := cfg.unit()
	assert.Error(t, err)
}

func TestConfig_Kernel_UnknownShape_ReturnsError(t *testing.T) {
	cfg := Config{Kernel: KernelConfig{Shape: "hexagonal"}}
	_, err := cfg.kernel()
	assert.ErrorIs(t, err, kernel.ErrUnknownShape)
}

func TestConfig_Kernel_NormalizeFalse(t *testing.T) {
	off := false
	cfg := Config{Kernel: KernelConfig{Shape: "rect", Size: "5 ms", Normalize: &off}}
	k, err := cfg.kernel()
	require.NoError(t, err)
	assert.Equal(t, kernel.ShapeRectangular, k.Shape())
	assert.False(t, k.Normalized())
	assert.Equal(t, 5.0, k.Size().Value)
}

func TestConfig_Trains_NamesAndIntervals(t *testing.T) {
	cfg, err := loadConfig(strings.NewReader(testConfig))
	require.NoError(t, err)

	names, trains, err := cfg.trains()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "train1"}, names)
	require.Len(t, trains, 2)

	assert.Equal(t, 0.0, trains[0].Start.Value)
	assert.Equal(t, 500.0, trains[0].Stop.Value)
	assert.True(t, trains[0].Times.Unit.Equal(quantity.Millisecond))

	// Without explicit bounds the train spans its first and last spike.
	assert.Equal(t, 15.0, trains[1].Start.Value)
	assert.Equal(t, 480.0, trains[1].Stop.Value)
}

func TestConfig_Trains_SpikeOutsideInterval_ReturnsError(t *testing.T) {
	stop := 100.0
	cfg := Config{Trains: []TrainConfig{{Name: "bad", Stop: &stop, Spikes: []float64{10, 150}}}}
	_, _, err := cfg.trains()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "train bad")
}
