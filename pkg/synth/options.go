package synth

import "github.com/oisee/wavesynth/pkg/osc"

// settings carries the per-call waveform parameters. Each waveform applies
// its own amplitude default before the caller's options run.
type settings struct {
	amplitude    float64
	phase        float64
	bias         float64
	pulseWidth   float64
	numHarmonics int
	fm           osc.Oscillator
	pwm          osc.Oscillator
	seed         uint64
	seeded       bool
}

// Option adjusts one waveform parameter of a synthesis call.
type Option func(*settings)

func newSettings(defaultAmplitude float64, opts []Option) settings {
	s := settings{
		amplitude:    defaultAmplitude,
		pulseWidth:   0.1,
		numHarmonics: 16,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithAmplitude sets the amplitude, within [0, 1].
func WithAmplitude(amplitude float64) Option {
	return func(s *settings) { s.amplitude = amplitude }
}

// WithPhase sets the phase offset, as a fraction of one cycle.
func WithPhase(phase float64) Option {
	return func(s *settings) { s.phase = phase }
}

// WithBias sets the DC bias, within [-1, 1].
func WithBias(bias float64) Option {
	return func(s *settings) { s.bias = bias }
}

// WithFM attaches a frequency modulation source. Its output perturbs the
// instantaneous frequency in Hz, one sample per output sample, and forces
// the Exact generation strategy.
func WithFM(src osc.Oscillator) Option {
	return func(s *settings) { s.fm = src }
}

// WithPWM attaches a pulse width modulation source for the pulse waveform.
// Its output overrides the static pulse width per sample, clipped to [0, 1].
func WithPWM(src osc.Oscillator) Option {
	return func(s *settings) { s.pwm = src }
}

// WithPulseWidth sets the pulse duty cycle, within [0, 1]. Ignored when a
// PWM source is attached.
func WithPulseWidth(width float64) Option {
	return func(s *settings) { s.pulseWidth = width }
}

// WithHarmonicCount sets the number of partials for the harmonic-sum square
// and sawtooth waveforms.
func WithHarmonicCount(n int) Option {
	return func(s *settings) { s.numHarmonics = n }
}

// WithSeed seeds the white noise generator for reproducible output.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}
