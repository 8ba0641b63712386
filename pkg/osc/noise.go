package osc

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// WhiteNoise draws a uniformly random value once per cycle and holds it for
// every sample of that cycle. The cycle must tile the samplerate exactly:
// samplerate/frequency has to be an integer, checked at construction so a
// bad frequency fails before the first sample.
type WhiteNoise struct {
	amplitude float64
	bias      float64
	cycleLen  int
	remaining int
	value     float64
	rng       *rand.Rand
}

// NewWhiteNoise returns a white noise oscillator. rng may be nil, in which
// case a time-seeded source is used; pass a seeded source for reproducible
// output.
func NewWhiteNoise(frequency int, amplitude, bias float64, samplerate int, rng *rand.Rand) (*WhiteNoise, error) {
	if frequency < 1 || frequency > samplerate {
		return nil, fmt.Errorf("%w: frequency %d outside [1, %d]", ErrNoiseFrequency, frequency, samplerate)
	}
	if samplerate%frequency != 0 {
		return nil, fmt.Errorf("%w: %d %% %d != 0", ErrNoiseFrequency, samplerate, frequency)
	}
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &WhiteNoise{
		amplitude: amplitude,
		bias:      bias,
		cycleLen:  samplerate / frequency,
		rng:       rng,
	}, nil
}

// Next returns the held value for the current cycle, redrawing it on cycle
// boundaries.
func (o *WhiteNoise) Next() float64 {
	if o.remaining == 0 {
		o.value = o.amplitude * (2*o.rng.Float64() - 1)
		o.remaining = o.cycleLen
	}
	o.remaining--
	return o.value + o.bias
}
