package osc

import "math"

// Fast generates a waveform from a phase increment fixed at construction.
// It cannot take a frequency modulation source; with no modulation in play
// it is the default strategy.
type Fast struct {
	fn        waveFn
	phase     float64
	increment float64
	amplitude float64
	bias      float64
}

func newFast(fn waveFn, frequency, amplitude, phase, bias, samplerate float64) *Fast {
	return &Fast{
		fn:        fn,
		phase:     phase * twoPi,
		increment: twoPi * frequency / samplerate,
		amplitude: amplitude,
		bias:      bias,
	}
}

// Next advances the phase by the fixed increment and evaluates the waveform.
func (o *Fast) Next() float64 {
	o.phase = math.Mod(o.phase+o.increment, twoPi)
	return o.fn(o.phase)*o.amplitude + o.bias
}

// NewFastSine returns a fixed-increment sine oscillator.
func NewFastSine(frequency, amplitude, phase, bias, samplerate float64) *Fast {
	return newFast(sineFn, frequency, amplitude, phase, bias, samplerate)
}

// NewFastSquare returns a fixed-increment perfect square oscillator.
func NewFastSquare(frequency, amplitude, phase, bias, samplerate float64) *Fast {
	return newFast(squareFn, frequency, amplitude, phase, bias, samplerate)
}

// NewFastTriangle returns a fixed-increment triangle oscillator.
func NewFastTriangle(frequency, amplitude, phase, bias, samplerate float64) *Fast {
	return newFast(triangleFn, frequency, amplitude, phase, bias, samplerate)
}

// NewFastSawtooth returns a fixed-increment sawtooth oscillator.
func NewFastSawtooth(frequency, amplitude, phase, bias, samplerate float64) *Fast {
	return newFast(sawtoothFn, frequency, amplitude, phase, bias, samplerate)
}

// NewFastSemicircle returns a fixed-increment semicircle oscillator.
func NewFastSemicircle(frequency, amplitude, phase, bias, samplerate float64) *Fast {
	return newFast(semicircleFn, frequency, amplitude, phase, bias, samplerate)
}

// NewFastPointy returns a fixed-increment pointy (inverted cosine) oscillator.
func NewFastPointy(frequency, amplitude, phase, bias, samplerate float64) *Fast {
	return newFast(pointyFn, frequency, amplitude, phase, bias, samplerate)
}

// FastPulse is the fixed-increment pulse oscillator. A pulse width
// modulation source may still be attached; it overrides the static pulse
// width once per sample, clipped to [0,1].
type FastPulse struct {
	phase     float64
	increment float64
	amplitude float64
	bias      float64
	width     float64
	pwm       Oscillator
}

// NewFastPulse returns a fixed-increment pulse oscillator with the given
// duty cycle and optional PWM source (nil for none).
func NewFastPulse(frequency, amplitude, phase, bias, pulsewidth, samplerate float64, pwm Oscillator) *FastPulse {
	return &FastPulse{
		phase:     phase * twoPi,
		increment: twoPi * frequency / samplerate,
		amplitude: amplitude,
		bias:      bias,
		width:     pulsewidth,
		pwm:       pwm,
	}
}

// Next advances the phase, reads the PWM source if present, and emits
// +amplitude inside the duty cycle and -amplitude outside it.
func (o *FastPulse) Next() float64 {
	o.phase = math.Mod(o.phase+o.increment, twoPi)
	width := o.width
	if o.pwm != nil {
		width = clipPulseWidth(o.pwm.Next())
	}
	if fraction(o.phase) < width {
		return o.amplitude + o.bias
	}
	return -o.amplitude + o.bias
}
