// Package osc implements the waveform oscillators of the synthesis engine.
//
// Every oscillator produces one waveform's successive samples through the
// Oscillator interface. Most shapes come in two strategies: a Fast one with
// the phase increment fixed at construction, and an Exact one that re-derives
// the phase from the instantaneous frequency every sample and can therefore
// take a frequency modulation source. An oscillator is consumed exactly once
// and never reset or shared.
package osc

import (
	"errors"
	"math"
)

const twoPi = 2 * math.Pi

// ErrNoiseFrequency indicates a white noise frequency that does not evenly
// divide the samplerate.
var ErrNoiseFrequency = errors.New("osc: samplerate must be evenly divisible by the white noise frequency")

// Oscillator produces successive samples of one waveform. When an oscillator
// serves as a modulation source, the owner pulls exactly one sample per
// sample it produces, in lock-step.
type Oscillator interface {
	Next() float64
}

// waveFn evaluates a periodic waveform at a phase given in radians.
type waveFn func(phase float64) float64

// fraction maps a phase in radians onto [0,1) of its cycle.
func fraction(phase float64) float64 {
	u := phase / twoPi
	return u - math.Floor(u)
}

func sineFn(phase float64) float64 {
	return math.Sin(phase)
}

func squareFn(phase float64) float64 {
	if math.Sin(phase) >= 0 {
		return 1
	}
	return -1
}

func triangleFn(phase float64) float64 {
	u := fraction(phase)
	if u < 0.5 {
		return 4*u - 1
	}
	return 3 - 4*u
}

func sawtoothFn(phase float64) float64 {
	return 2*fraction(phase) - 1
}

// semicircleFn traces a positive half-circle over the first half of the
// cycle and a negative one over the second half.
func semicircleFn(phase float64) float64 {
	u := fraction(phase)
	if u < 0.5 {
		x := 4*u - 1
		return math.Sqrt(1 - x*x)
	}
	x := 4*(u-0.5) - 1
	return -math.Sqrt(1 - x*x)
}

// pointyFn is the inverted-cosine spike: sine-like but with a corner at the
// peaks instead of a round top.
func pointyFn(phase float64) float64 {
	v := 1 - math.Abs(math.Cos(phase))
	if math.Sin(phase) < 0 {
		return -v
	}
	return v
}

func clipPulseWidth(w float64) float64 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}
