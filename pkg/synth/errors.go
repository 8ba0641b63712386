package synth

import "errors"

var (
	// ErrSampleWidth indicates an unsupported sample width configuration.
	ErrSampleWidth = errors.New("synth: only sample widths 2 and 4 are supported")
	// ErrAmplitudeRange indicates an amplitude outside [0, 1].
	ErrAmplitudeRange = errors.New("synth: amplitude must be within [0, 1]")
	// ErrBiasRange indicates a bias outside [-1, 1].
	ErrBiasRange = errors.New("synth: bias must be within [-1, 1]")
	// ErrAmplitudeBias indicates amplitude plus absolute bias above 1, which
	// would overflow the integer range at the configured sample width.
	ErrAmplitudeBias = errors.New("synth: amplitude plus absolute bias must not exceed 1")
	// ErrFrequencyRange indicates a frequency above the Nyquist frequency.
	ErrFrequencyRange = errors.New("synth: frequency must not exceed half the samplerate")
	// ErrPulseWidthRange indicates a pulse width outside [0, 1].
	ErrPulseWidthRange = errors.New("synth: pulse width must be within [0, 1]")
	// ErrHarmonicRange indicates a harmonic multiplier below 1.
	ErrHarmonicRange = errors.New("synth: harmonic multipliers must be >= 1")
)
