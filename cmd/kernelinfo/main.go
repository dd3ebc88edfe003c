// Command kernelinfo inspects smoothing kernels and applies them to spike
// trains.
//
// Usage:
//
//	kernelinfo list
//	kernelinfo info [shape ...] [--size 10ms] [--rate 1kHz] [--area-fraction 0.99999] [--num-bins n]
//	kernelinfo distance --config trains.yaml [--tau 20ms] [--measure vanrossum|schreiber]
//	kernelinfo smooth --config trains.yaml [--mode same] [--plot rates.png]
//
// The config document lists the trains:
//
//	unit: ms
//	sampling_rate: 1 kHz
//	kernel: {shape: gaussian, size: 10 ms}
//	trains:
//	  - {name: a, start: 0, stop: 500, spikes: [12, 80, 311]}
//	  - {name: b, spikes: [15, 90, 290, 480]}
package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}
