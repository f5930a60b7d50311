// Package analysis finds periodicity in run timelines, such as how fast a
// hand was pulsing or how often a swarm refilled.
package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooShort = errors.New("analysis: need at least 4 samples")

// PowerSpectrum returns the magnitude of the first half of the DFT of data
// after removing its mean. Bin i corresponds to i*rate/len(data) Hz.
func PowerSpectrum(data []float64) []float64 {
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(max(len(data), 1))

	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = v - mean
	}

	bins := fft.FFTReal(centred)
	ps := make([]float64, len(bins)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

// Peak is the strongest non-DC component of a series.
type Peak struct {
	Frequency float64
	Power     float64
}

// Period is 1/Frequency, or +Inf for a flat series.
func (p Peak) Period() float64 {
	if p.Frequency <= 0 {
		return math.Inf(1)
	}
	return 1 / p.Frequency
}

// Dominant finds the strongest frequency in data sampled at rate Hz.
func Dominant(data []float64, rate float64) (Peak, error) {
	if len(data) < 4 {
		return Peak{}, ErrTooShort
	}
	ps := PowerSpectrum(data)
	best := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[best] || best == 0 {
			best = i
		}
	}
	if ps[best] < 1e-9 {
		return Peak{}, nil
	}
	return Peak{
		Frequency: float64(best) * rate / float64(len(data)),
		Power:     ps[best],
	}, nil
}

// SampleRate estimates the rate of evenly spaced samples from their first
// and last timestamps.
func SampleRate(times []float64) float64 {
	if len(times) < 2 {
		return 0
	}
	span := times[len(times)-1] - times[0]
	if span <= 0 {
		return 0
	}
	return float64(len(times)-1) / span
}
