package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spike/dsp/kernel"
	"github.com/cwbudde/algo-spike/dsp/quantity"
	"github.com/cwbudde/algo-spike/dsp/spiketrain"
)

// Config is the input document of the distance and smooth commands.
// Quantities are strings such as "10 ms" or "1 kHz".
type Config struct {
	Unit         string        `yaml:"unit"`
	SamplingRate string        `yaml:"sampling_rate"`
	Kernel       KernelConfig  `yaml:"kernel"`
	Tau          string        `yaml:"tau"`
	Trains       []TrainConfig `yaml:"trains"`
}

// KernelConfig selects a built-in kernel.
type KernelConfig struct {
	Shape     string `yaml:"shape"`
	Size      string `yaml:"size"`
	Normalize *bool  `yaml:"normalize"`
}

// TrainConfig is one spike train. Start and Stop default to the first and
// last spike.
type TrainConfig struct {
	Name   string    `yaml:"name"`
	Start  *float64  `yaml:"start"`
	Stop   *float64  `yaml:"stop"`
	Spikes []float64 `yaml:"spikes"`
}

const (
	defaultUnit         = "s"
	defaultSamplingRate = "1 kHz"
	defaultShape        = "gaussian"
)

// loadConfig decodes a YAML document. Unknown fields are errors.
func loadConfig(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func loadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return loadConfig(bytes.NewReader(data))
}

func (c Config) unit() (quantity.Unit, error) {
	if c.Unit == "" {
		return quantity.ParseUnit(defaultUnit)
	}
	u, err := quantity.ParseUnit(c.Unit)
	if err != nil {
		return quantity.Unit{}, err
	}
	if u.Dim() != 1 {
		return quantity.Unit{}, fmt.Errorf("unit %q is not a time unit", c.Unit)
	}
	return u, nil
}

func (c Config) samplingRate() (quantity.Quantity, error) {
	s := c.SamplingRate
	if s == "" {
		s = defaultSamplingRate
	}
	return quantity.ParseQuantity(s)
}

func (c Config) kernel() (kernel.Kernel, error) {
	name := c.Kernel.Shape
	if name == "" {
		name = defaultShape
	}
	shape, err := kernel.ParseShape(name)
	if err != nil {
		return kernel.Kernel{}, err
	}

	size := kernel.NewGaussian().Size()
	if c.Kernel.Size != "" {
		if size, err = quantity.ParseQuantity(c.Kernel.Size); err != nil {
			return kernel.Kernel{}, err
		}
	}

	normalize := true
	if c.Kernel.Normalize != nil {
		normalize = *c.Kernel.Normalize
	}
	return kernel.New(shape, size, normalize)
}

// tau returns the configured time constant, falling back to the kernel
// size.
func (c Config) tau() (quantity.Quantity, error) {
	if c.Tau != "" {
		return quantity.ParseQuantity(c.Tau)
	}
	k, err := c.kernel()
	if err != nil {
		return quantity.Quantity{}, err
	}
	return k.Size(), nil
}

func (c Config) trains() ([]string, []spiketrain.Train, error) {
	u, err := c.unit()
	if err != nil {
		return nil, nil, err
	}

	names := make([]string, len(c.Trains))
	trains := make([]spiketrain.Train, len(c.Trains))
	for i, tc := range c.Trains {
		names[i] = tc.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("train%d", i)
		}

		times := quantity.NewArray(append([]float64{}, tc.Spikes...), u)
		tr := spiketrain.FromTimes(times)
		if tc.Start != nil {
			tr.Start = quantity.New(*tc.Start, u)
		}
		if tc.Stop != nil {
			tr.Stop = quantity.New(*tc.Stop, u)
		}
		if trains[i], err = spiketrain.New(times, tr.Start, tr.Stop); err != nil {
			return nil, nil, fmt.Errorf("train %s: %w", names[i], err)
		}
	}
	return names, trains, nil
}
