// Package synth exposes the waveform synthesis engine: parameter
// validation, integer quantization scale, Fast/Exact strategy selection,
// and per-waveform finite and streaming entry points.
//
// Every waveform comes as a pair: a bounded-duration call returning a
// finite Sample, and a streaming call returning an infinite Stream of
// blocks. Slicing the finite result at block boundaries yields exactly the
// streamed blocks.
package synth

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/oisee/wavesynth/pkg/osc"
	"github.com/oisee/wavesynth/pkg/params"
)

// WaveSynth generates waveform samples in 16 or 32 bit integer format.
type WaveSynth struct {
	samplerate  int
	samplewidth int
	blocksize   int
	scale       float64
}

// New returns a WaveSynth for the given samplerate (Hz) and sample width
// (bytes). Zero values fall back to the process-wide defaults; widths other
// than 2 or 4 are rejected.
func New(samplerate, samplewidth int) (*WaveSynth, error) {
	if samplerate == 0 {
		samplerate = params.SampleRate()
	}
	if samplewidth == 0 {
		samplewidth = params.SampleWidth()
	}
	if samplewidth != 2 && samplewidth != 4 {
		return nil, fmt.Errorf("%w: got %d", ErrSampleWidth, samplewidth)
	}
	return &WaveSynth{
		samplerate:  samplerate,
		samplewidth: samplewidth,
		blocksize:   params.BlockSize(),
		scale:       float64(int64(1)<<(samplewidth*8-1) - 1),
	}, nil
}

// SampleRate returns the samplerate in Hz.
func (ws *WaveSynth) SampleRate() int {
	return ws.samplerate
}

// SampleWidth returns the sample width in bytes.
func (ws *WaveSynth) SampleWidth() int {
	return ws.samplewidth
}

// Scale returns the integer magnitude of full amplitude at the configured
// sample width: 2^(8·samplewidth-1) - 1.
func (ws *WaveSynth) Scale() int64 {
	return int64(ws.scale)
}

// checkScale validates the per-call parameters and returns the quantization
// scale. Nothing is silently clamped; amplitude plus absolute bias above 1
// is rejected because the quantized peak would overflow the sample width.
func (ws *WaveSynth) checkScale(frequency int, amplitude, bias float64) (float64, error) {
	if frequency > ws.samplerate/2 {
		return 0, fmt.Errorf("%w: %d Hz > %d Hz", ErrFrequencyRange, frequency, ws.samplerate/2)
	}
	return ws.checkLevels(amplitude, bias)
}

func (ws *WaveSynth) checkLevels(amplitude, bias float64) (float64, error) {
	if amplitude < 0 || amplitude > 1 {
		return 0, fmt.Errorf("%w: got %g", ErrAmplitudeRange, amplitude)
	}
	if bias < -1 || bias > 1 {
		return 0, fmt.Errorf("%w: got %g", ErrBiasRange, bias)
	}
	if amplitude+math.Abs(bias) > 1 {
		return 0, fmt.Errorf("%w: %g + |%g|", ErrAmplitudeBias, amplitude, bias)
	}
	return ws.scale, nil
}

// Sine generates a sine wave for the given duration. Optional FM.
func (ws *WaveSynth) Sine(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.sine(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// SineStream streams a sine wave block by block. Optional FM.
func (ws *WaveSynth) SineStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.sine(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// Square generates a perfect square wave [max/-max]. Fast, but less natural
// sounding than SquareH.
func (ws *WaveSynth) Square(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.square(frequency, newSettings(0.75, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// SquareStream streams a perfect square wave block by block.
func (ws *WaveSynth) SquareStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.square(frequency, newSettings(0.75, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// SquareH generates a square wave built from harmonic sines; see
// WithHarmonicCount for the number of partials.
func (ws *WaveSynth) SquareH(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.squareH(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// SquareHStream streams a harmonic square wave block by block.
func (ws *WaveSynth) SquareHStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.squareH(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// Triangle generates a perfect triangle wave. Optional FM.
func (ws *WaveSynth) Triangle(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.triangle(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// TriangleStream streams a perfect triangle wave block by block.
func (ws *WaveSynth) TriangleStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.triangle(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// Sawtooth generates a perfect sawtooth wave. Optional FM.
func (ws *WaveSynth) Sawtooth(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.sawtooth(frequency, newSettings(0.75, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// SawtoothStream streams a perfect sawtooth wave block by block.
func (ws *WaveSynth) SawtoothStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.sawtooth(frequency, newSettings(0.75, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// SawtoothH generates a sawtooth wave built from harmonic sines.
func (ws *WaveSynth) SawtoothH(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.sawtoothH(frequency, newSettings(0.5, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// SawtoothHStream streams a harmonic sawtooth wave block by block.
func (ws *WaveSynth) SawtoothHStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.sawtoothH(frequency, newSettings(0.5, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// Pulse generates a pulse wave with the configured duty cycle. Optional FM
// and/or PWM; a PWM source overrides the duty cycle per sample.
func (ws *WaveSynth) Pulse(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.pulse(frequency, newSettings(0.75, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// PulseStream streams a pulse wave block by block. Optional FM and/or PWM.
func (ws *WaveSynth) PulseStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.pulse(frequency, newSettings(0.75, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// Harmonics generates a waveform from caller-supplied (multiplier, weight)
// partials. Cost is linear in the number of partials.
func (ws *WaveSynth) Harmonics(frequency int, duration float64, partials []osc.Harmonic, opts ...Option) (*Sample, error) {
	o, err := ws.harmonics(frequency, partials, newSettings(0.5, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// HarmonicsStream streams a caller-supplied harmonic waveform block by block.
func (ws *WaveSynth) HarmonicsStream(frequency int, partials []osc.Harmonic, opts ...Option) (*Stream, error) {
	o, err := ws.harmonics(frequency, partials, newSettings(0.5, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// WhiteNoise generates cycle-held white noise. The frequency must evenly
// divide the samplerate; use WithSeed for reproducible output.
func (ws *WaveSynth) WhiteNoise(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.whiteNoise(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// WhiteNoiseStream streams cycle-held white noise block by block.
func (ws *WaveSynth) WhiteNoiseStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.whiteNoise(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// Semicircle generates the half-circle waveform ('W3'). Optional FM.
func (ws *WaveSynth) Semicircle(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.semicircle(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// SemicircleStream streams the half-circle waveform block by block.
func (ws *WaveSynth) SemicircleStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.semicircle(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// Pointy generates the inverted-cosine spike waveform ('W2'). Optional FM.
func (ws *WaveSynth) Pointy(frequency int, duration float64, opts ...Option) (*Sample, error) {
	o, err := ws.pointy(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.materialize(o, duration), nil
}

// PointyStream streams the inverted-cosine spike waveform block by block.
func (ws *WaveSynth) PointyStream(frequency int, opts ...Option) (*Stream, error) {
	o, err := ws.pointy(frequency, newSettings(0.9999, opts))
	if err != nil {
		return nil, err
	}
	return ws.stream(o), nil
}

// Oscillator construction. Exact is selected whenever an FM source is
// supplied, Fast otherwise; a PWM source alone still permits FastPulse.

func (ws *WaveSynth) sine(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	if s.fm != nil {
		return osc.NewSine(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
	}
	return osc.NewFastSine(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate)), nil
}

func (ws *WaveSynth) square(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	if s.fm != nil {
		return osc.NewSquare(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
	}
	return osc.NewFastSquare(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate)), nil
}

func (ws *WaveSynth) triangle(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	if s.fm != nil {
		return osc.NewTriangle(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
	}
	return osc.NewFastTriangle(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate)), nil
}

func (ws *WaveSynth) sawtooth(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	if s.fm != nil {
		return osc.NewSawtooth(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
	}
	return osc.NewFastSawtooth(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate)), nil
}

func (ws *WaveSynth) semicircle(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	if s.fm != nil {
		return osc.NewSemicircle(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
	}
	return osc.NewFastSemicircle(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate)), nil
}

func (ws *WaveSynth) pointy(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	if s.fm != nil {
		return osc.NewPointy(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
	}
	return osc.NewFastPointy(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate)), nil
}

func (ws *WaveSynth) squareH(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	return osc.NewSquareH(float64(frequency), s.numHarmonics, s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
}

func (ws *WaveSynth) sawtoothH(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	return osc.NewSawtoothH(float64(frequency), s.numHarmonics, s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
}

func (ws *WaveSynth) pulse(frequency int, s settings) (osc.Oscillator, error) {
	if s.pulseWidth < 0 || s.pulseWidth > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrPulseWidthRange, s.pulseWidth)
	}
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	if s.fm != nil {
		return osc.NewPulse(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, s.pulseWidth, float64(ws.samplerate), s.fm, s.pwm), nil
	}
	return osc.NewFastPulse(float64(frequency), s.amplitude*scale, s.phase, s.bias*scale, s.pulseWidth, float64(ws.samplerate), s.pwm), nil
}

func (ws *WaveSynth) harmonics(frequency int, partials []osc.Harmonic, s settings) (osc.Oscillator, error) {
	for _, h := range partials {
		if h.Multiplier < 1 {
			return nil, fmt.Errorf("%w: got %g", ErrHarmonicRange, h.Multiplier)
		}
	}
	scale, err := ws.checkScale(frequency, s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	return osc.NewHarmonics(float64(frequency), partials, s.amplitude*scale, s.phase, s.bias*scale, float64(ws.samplerate), s.fm), nil
}

// whiteNoise skips the Nyquist check: the noise cycle must instead tile the
// samplerate exactly, which NewWhiteNoise verifies before the first sample.
func (ws *WaveSynth) whiteNoise(frequency int, s settings) (osc.Oscillator, error) {
	scale, err := ws.checkLevels(s.amplitude, s.bias)
	if err != nil {
		return nil, err
	}
	var rng *rand.Rand
	if s.seeded {
		rng = rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	}
	return osc.NewWhiteNoise(frequency, s.amplitude*scale, s.bias*scale, ws.samplerate, rng)
}
