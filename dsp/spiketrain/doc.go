// Package spiketrain holds spike trains and turns them into binned counts.
//
// A [Train] is a sequence of spike times together with the interval
// [Start, Stop] it was recorded on. [Bin] histograms groups of trains on a
// common grid:
//
//	binned, edges, err := spiketrain.Bin(map[int][]spiketrain.Train{0: trains},
//		quantity.Hz(1000))
//
// The grid covers the intersection of all recording intervals unless
// [WithStart] or [WithStop] say otherwise. It has round(duration·rate) bins;
// the right edge belongs to the last bin.
package spiketrain
