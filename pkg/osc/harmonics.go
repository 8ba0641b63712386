package osc

import "math"

// Harmonic is one (multiplier, weight) pair of a harmonic sum. The
// multiplier scales the fundamental frequency and is expected to be >= 1;
// the weight is the partial's relative amplitude.
type Harmonic struct {
	Multiplier float64
	Weight     float64
}

// HarmonicSum sums amplitude-weighted sines at multiples of the fundamental.
// The sum is normalized by the total absolute weight so the output stays
// within [-amplitude, amplitude]. Cost is linear in the number of partials,
// so there is no Fast variant; an optional FM source is supported.
type HarmonicSum struct {
	partials   []Harmonic
	norm       float64
	phase      float64
	frequency  float64
	amplitude  float64
	bias       float64
	samplerate float64
	fm         Oscillator
}

// NewHarmonics returns an oscillator summing the given partials. Multipliers
// need not be integer; the phase accumulator is left unwrapped so
// non-integer partials stay continuous across cycles.
func NewHarmonics(frequency float64, partials []Harmonic, amplitude, phase, bias, samplerate float64, fm Oscillator) *HarmonicSum {
	var norm float64
	for _, h := range partials {
		norm += math.Abs(h.Weight)
	}
	if norm == 0 {
		norm = 1
	}
	return &HarmonicSum{
		partials:   partials,
		norm:       norm,
		phase:      phase * twoPi,
		frequency:  frequency,
		amplitude:  amplitude,
		bias:       bias,
		samplerate: samplerate,
		fm:         fm,
	}
}

// NewSquareH returns a square wave built from numHarmonics odd-harmonic
// sines (1, 3, 5, ...) weighted 1/h. Smoother than the perfect square, and
// costlier.
func NewSquareH(frequency float64, numHarmonics int, amplitude, phase, bias, samplerate float64, fm Oscillator) *HarmonicSum {
	partials := make([]Harmonic, 0, numHarmonics)
	for i := 0; i < numHarmonics; i++ {
		h := float64(i*2 + 1)
		partials = append(partials, Harmonic{Multiplier: h, Weight: 1 / h})
	}
	return NewHarmonics(frequency, partials, amplitude, phase, bias, samplerate, fm)
}

// NewSawtoothH returns a sawtooth built from numHarmonics integer-harmonic
// sines (1, 2, 3, ...) weighted 1/h.
func NewSawtoothH(frequency float64, numHarmonics int, amplitude, phase, bias, samplerate float64, fm Oscillator) *HarmonicSum {
	partials := make([]Harmonic, 0, numHarmonics)
	for i := 1; i <= numHarmonics; i++ {
		h := float64(i)
		partials = append(partials, Harmonic{Multiplier: h, Weight: 1 / h})
	}
	return NewHarmonics(frequency, partials, amplitude, phase, bias, samplerate, fm)
}

// Next reads the FM source if present, advances the phase and sums the
// partials in one bounded loop.
func (o *HarmonicSum) Next() float64 {
	freq := o.frequency
	if o.fm != nil {
		freq += o.fm.Next()
	}
	o.phase += twoPi * freq / o.samplerate
	var sum float64
	for _, h := range o.partials {
		sum += math.Sin(o.phase*h.Multiplier) * h.Weight
	}
	return sum/o.norm*o.amplitude + o.bias
}
