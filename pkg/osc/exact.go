package osc

import "math"

// Exact recomputes the waveform from an accumulated phase every sample:
//
//	phase[n] = phase[n-1] + 2π·(frequency + fm[n])/samplerate
//	value[n] = f(phase[n])·amplitude + bias
//
// The FM source, if any, is read once per output sample before the waveform
// function is evaluated. Frequency modulation has no closed form, so this
// strategy is mandatory whenever an FM source is supplied.
type Exact struct {
	fn         waveFn
	phase      float64
	frequency  float64
	amplitude  float64
	bias       float64
	samplerate float64
	fm         Oscillator
}

func newExact(fn waveFn, frequency, amplitude, phase, bias, samplerate float64, fm Oscillator) *Exact {
	return &Exact{
		fn:         fn,
		phase:      phase * twoPi,
		frequency:  frequency,
		amplitude:  amplitude,
		bias:       bias,
		samplerate: samplerate,
		fm:         fm,
	}
}

// Next perturbs the instantaneous frequency by the FM sample, advances the
// phase and evaluates the waveform. Without an FM source the increment is
// the same expression the Fast strategy precomputes, so both strategies
// yield identical samples.
func (o *Exact) Next() float64 {
	freq := o.frequency
	if o.fm != nil {
		freq += o.fm.Next()
	}
	o.phase = math.Mod(o.phase+twoPi*freq/o.samplerate, twoPi)
	return o.fn(o.phase)*o.amplitude + o.bias
}

// NewSine returns an exact sine oscillator with an optional FM source.
func NewSine(frequency, amplitude, phase, bias, samplerate float64, fm Oscillator) *Exact {
	return newExact(sineFn, frequency, amplitude, phase, bias, samplerate, fm)
}

// NewSquare returns an exact perfect square oscillator with an optional FM source.
func NewSquare(frequency, amplitude, phase, bias, samplerate float64, fm Oscillator) *Exact {
	return newExact(squareFn, frequency, amplitude, phase, bias, samplerate, fm)
}

// NewTriangle returns an exact triangle oscillator with an optional FM source.
func NewTriangle(frequency, amplitude, phase, bias, samplerate float64, fm Oscillator) *Exact {
	return newExact(triangleFn, frequency, amplitude, phase, bias, samplerate, fm)
}

// NewSawtooth returns an exact sawtooth oscillator with an optional FM source.
func NewSawtooth(frequency, amplitude, phase, bias, samplerate float64, fm Oscillator) *Exact {
	return newExact(sawtoothFn, frequency, amplitude, phase, bias, samplerate, fm)
}

// NewSemicircle returns an exact semicircle oscillator with an optional FM source.
func NewSemicircle(frequency, amplitude, phase, bias, samplerate float64, fm Oscillator) *Exact {
	return newExact(semicircleFn, frequency, amplitude, phase, bias, samplerate, fm)
}

// NewPointy returns an exact pointy oscillator with an optional FM source.
func NewPointy(frequency, amplitude, phase, bias, samplerate float64, fm Oscillator) *Exact {
	return newExact(pointyFn, frequency, amplitude, phase, bias, samplerate, fm)
}

// Pulse is the exact pulse oscillator with optional FM and PWM sources.
// A PWM source overrides the static pulse width per sample, clipped to
// [0,1], and composes with FM.
type Pulse struct {
	phase      float64
	frequency  float64
	amplitude  float64
	bias       float64
	samplerate float64
	width      float64
	fm         Oscillator
	pwm        Oscillator
}

// NewPulse returns an exact pulse oscillator. fm and pwm may each be nil.
func NewPulse(frequency, amplitude, phase, bias, pulsewidth, samplerate float64, fm, pwm Oscillator) *Pulse {
	return &Pulse{
		phase:      phase * twoPi,
		frequency:  frequency,
		amplitude:  amplitude,
		bias:       bias,
		samplerate: samplerate,
		width:      pulsewidth,
		fm:         fm,
		pwm:        pwm,
	}
}

// Next reads both modulation sources (one sample each), advances the phase
// and emits the pulse level for the current duty cycle.
func (o *Pulse) Next() float64 {
	freq := o.frequency
	if o.fm != nil {
		freq += o.fm.Next()
	}
	o.phase = math.Mod(o.phase+twoPi*freq/o.samplerate, twoPi)
	width := o.width
	if o.pwm != nil {
		width = clipPulseWidth(o.pwm.Next())
	}
	if fraction(o.phase) < width {
		return o.amplitude + o.bias
	}
	return -o.amplitude + o.bias
}
