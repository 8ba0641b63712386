package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/wavesynth/pkg/osc"
)

const (
	testRate = 1000
	// 1.024 s at 1000 Hz is exactly two 512-sample blocks.
	testDuration = 1.024
)

func newTestSynth(t *testing.T) *WaveSynth {
	t.Helper()
	ws, err := New(testRate, 2)
	require.NoError(t, err)
	return ws
}

// zeroFM returns a modulation source that always outputs 0 Hz, forcing the
// Exact strategy without changing the waveform.
func zeroFM() osc.Oscillator {
	return osc.NewLinear(0, 0, 0, 0)
}

func TestNew(t *testing.T) {
	ws, err := New(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 44100, ws.SampleRate())
	assert.Equal(t, 2, ws.SampleWidth())
	assert.Equal(t, int64(32767), ws.Scale())

	wide, err := New(48000, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(2147483647), wide.Scale())

	_, err = New(44100, 3)
	require.ErrorIs(t, err, ErrSampleWidth)
	_, err = New(44100, 1)
	require.ErrorIs(t, err, ErrSampleWidth)
}

func TestParameterValidation(t *testing.T) {
	ws := newTestSynth(t)

	_, err := ws.Sine(440, 1, WithAmplitude(1.5))
	require.ErrorIs(t, err, ErrAmplitudeRange)
	_, err = ws.Sine(440, 1, WithAmplitude(-0.1))
	require.ErrorIs(t, err, ErrAmplitudeRange)

	_, err = ws.Sine(440, 1, WithBias(-2))
	require.ErrorIs(t, err, ErrBiasRange)

	_, err = ws.Sine(440, 1, WithAmplitude(0.9), WithBias(0.5))
	require.ErrorIs(t, err, ErrAmplitudeBias)

	// over Nyquist, on both entry points
	_, err = ws.Sine(501, 1)
	require.ErrorIs(t, err, ErrFrequencyRange)
	_, err = ws.SineStream(501)
	require.ErrorIs(t, err, ErrFrequencyRange)
	_, err = ws.Triangle(501, 1)
	require.ErrorIs(t, err, ErrFrequencyRange)

	_, err = ws.Pulse(100, 1, WithPulseWidth(1.5))
	require.ErrorIs(t, err, ErrPulseWidthRange)

	_, err = ws.Harmonics(100, 1, []osc.Harmonic{{Multiplier: 0.5, Weight: 1}})
	require.ErrorIs(t, err, ErrHarmonicRange)
}

func TestWhiteNoiseFrequencyRules(t *testing.T) {
	ws := newTestSynth(t)

	// noise is exempt from the Nyquist ceiling: frequency == samplerate works
	s, err := ws.WhiteNoise(testRate, 1)
	require.NoError(t, err)
	assert.Equal(t, testRate, s.Len())

	_, err = ws.WhiteNoise(100, 1)
	require.NoError(t, err)

	// a frequency that does not divide the samplerate fails before any sample
	_, err = ws.WhiteNoise(441, 1)
	require.ErrorIs(t, err, osc.ErrNoiseFrequency)
	_, err = ws.WhiteNoiseStream(441)
	require.ErrorIs(t, err, osc.ErrNoiseFrequency)
}

func assertStreamMatchesFinite(t *testing.T, finite *Sample, err1 error, stream *Stream, err2 error) {
	t.Helper()
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, 0, finite.Len()%stream.BlockSize())

	streamed := make([]int64, 0, finite.Len())
	for len(streamed) < finite.Len() {
		streamed = append(streamed, stream.NextBlock()...)
	}
	assert.Equal(t, finite.Frames(), streamed[:finite.Len()])
}

func TestStreamingEqualsFinite(t *testing.T) {
	ws := newTestSynth(t)
	harm := []osc.Harmonic{
		{Multiplier: 1, Weight: 1},
		{Multiplier: 2, Weight: 0.5},
		{Multiplier: 3, Weight: 1.0 / 3},
		{Multiplier: 5.5, Weight: 0.25},
	}

	tests := []struct {
		name   string
		finite func() (*Sample, error)
		stream func() (*Stream, error)
	}{
		{"sine/fast",
			func() (*Sample, error) { return ws.Sine(440, testDuration) },
			func() (*Stream, error) { return ws.SineStream(440) }},
		{"sine/exact",
			func() (*Sample, error) { return ws.Sine(440, testDuration, WithFM(zeroFM())) },
			func() (*Stream, error) { return ws.SineStream(440, WithFM(zeroFM())) }},
		{"square/fast",
			func() (*Sample, error) { return ws.Square(440, testDuration) },
			func() (*Stream, error) { return ws.SquareStream(440) }},
		{"square/exact",
			func() (*Sample, error) { return ws.Square(440, testDuration, WithFM(zeroFM())) },
			func() (*Stream, error) { return ws.SquareStream(440, WithFM(zeroFM())) }},
		{"square_h",
			func() (*Sample, error) { return ws.SquareH(440, testDuration) },
			func() (*Stream, error) { return ws.SquareHStream(440) }},
		{"square_h/fm",
			func() (*Sample, error) { return ws.SquareH(440, testDuration, WithFM(zeroFM())) },
			func() (*Stream, error) { return ws.SquareHStream(440, WithFM(zeroFM())) }},
		{"triangle/fast",
			func() (*Sample, error) { return ws.Triangle(440, testDuration) },
			func() (*Stream, error) { return ws.TriangleStream(440) }},
		{"triangle/exact",
			func() (*Sample, error) { return ws.Triangle(440, testDuration, WithFM(zeroFM())) },
			func() (*Stream, error) { return ws.TriangleStream(440, WithFM(zeroFM())) }},
		{"sawtooth/fast",
			func() (*Sample, error) { return ws.Sawtooth(440, testDuration) },
			func() (*Stream, error) { return ws.SawtoothStream(440) }},
		{"sawtooth/exact",
			func() (*Sample, error) { return ws.Sawtooth(440, testDuration, WithFM(zeroFM())) },
			func() (*Stream, error) { return ws.SawtoothStream(440, WithFM(zeroFM())) }},
		{"sawtooth_h",
			func() (*Sample, error) { return ws.SawtoothH(440, testDuration) },
			func() (*Stream, error) { return ws.SawtoothHStream(440) }},
		{"pulse/fast",
			func() (*Sample, error) { return ws.Pulse(440, testDuration, WithPulseWidth(0.3)) },
			func() (*Stream, error) { return ws.PulseStream(440, WithPulseWidth(0.3)) }},
		{"pulse/pwm",
			func() (*Sample, error) {
				return ws.Pulse(440, testDuration, WithPWM(osc.NewLinear(0, 0.0005, 0, 1)))
			},
			func() (*Stream, error) {
				return ws.PulseStream(440, WithPWM(osc.NewLinear(0, 0.0005, 0, 1)))
			}},
		{"pulse/exact",
			func() (*Sample, error) {
				return ws.Pulse(440, testDuration, WithFM(zeroFM()), WithPWM(osc.NewLinear(0, 0.0005, 0, 1)))
			},
			func() (*Stream, error) {
				return ws.PulseStream(440, WithFM(zeroFM()), WithPWM(osc.NewLinear(0, 0.0005, 0, 1)))
			}},
		{"harmonics",
			func() (*Sample, error) { return ws.Harmonics(100, testDuration, harm) },
			func() (*Stream, error) { return ws.HarmonicsStream(100, harm) }},
		{"white_noise/seeded",
			func() (*Sample, error) { return ws.WhiteNoise(100, testDuration, WithSeed(42)) },
			func() (*Stream, error) { return ws.WhiteNoiseStream(100, WithSeed(42)) }},
		{"semicircle/fast",
			func() (*Sample, error) { return ws.Semicircle(440, testDuration) },
			func() (*Stream, error) { return ws.SemicircleStream(440) }},
		{"semicircle/exact",
			func() (*Sample, error) { return ws.Semicircle(440, testDuration, WithFM(zeroFM())) },
			func() (*Stream, error) { return ws.SemicircleStream(440, WithFM(zeroFM())) }},
		{"pointy/fast",
			func() (*Sample, error) { return ws.Pointy(440, testDuration) },
			func() (*Stream, error) { return ws.PointyStream(440) }},
		{"pointy/exact",
			func() (*Sample, error) { return ws.Pointy(440, testDuration, WithFM(zeroFM())) },
			func() (*Stream, error) { return ws.PointyStream(440, WithFM(zeroFM())) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			finite, err1 := tc.finite()
			stream, err2 := tc.stream()
			assertStreamMatchesFinite(t, finite, err1, stream, err2)
		})
	}
}

func TestQuantizedAmplitudeBounds(t *testing.T) {
	ws := newTestSynth(t)
	scale := float64(ws.Scale())

	full, err := ws.Sine(440, testDuration, WithAmplitude(1))
	require.NoError(t, err)
	for i, f := range full.Frames() {
		require.LessOrEqual(t, math.Abs(float64(f)), scale, "frame %d", i)
	}

	biased, err := ws.Triangle(440, testDuration, WithAmplitude(0.5), WithBias(0.25))
	require.NoError(t, err)
	limit := 0.5*scale + 0.25*scale
	for i, f := range biased.Frames() {
		require.LessOrEqual(t, math.Abs(float64(f)), limit, "frame %d", i)
	}
}

func TestHarmonicFundamentalMatchesSine(t *testing.T) {
	ws := newTestSynth(t)

	sine, err := ws.Sine(50, testDuration, WithAmplitude(0.9))
	require.NoError(t, err)
	squareH, err := ws.SquareH(50, testDuration, WithAmplitude(0.9), WithHarmonicCount(1))
	require.NoError(t, err)
	sawtoothH, err := ws.SawtoothH(50, testDuration, WithAmplitude(0.9), WithHarmonicCount(1))
	require.NoError(t, err)

	// quantization truncates, so the fundamental may differ by one step
	for i := range sine.Frames() {
		require.InDelta(t, sine.Frames()[i], squareH.Frames()[i], 1, "square_h frame %d", i)
		require.InDelta(t, sine.Frames()[i], sawtoothH.Frames()[i], 1, "sawtooth_h frame %d", i)
	}
}

func TestMaterializedLength(t *testing.T) {
	ws := newTestSynth(t)

	tests := []struct {
		duration float64
		want     int
	}{
		{1, 1000},
		{1.024, 1024},
		{0.0106, 11}, // rounds, not truncates
		{0, 0},
	}
	for _, tc := range tests {
		s, err := ws.Sine(100, tc.duration)
		require.NoError(t, err)
		assert.Equal(t, tc.want, s.Len(), "duration %g", tc.duration)
	}

	s, err := ws.Sine(100, 1)
	require.NoError(t, err)
	assert.Equal(t, testRate, s.SampleRate())
	assert.Equal(t, 2, s.SampleWidth())
	assert.InDelta(t, 1.0, s.Duration(), 1e-9)
}

func TestSeededNoiseReproducible(t *testing.T) {
	ws := newTestSynth(t)

	a, err := ws.WhiteNoise(100, 1, WithSeed(7))
	require.NoError(t, err)
	b, err := ws.WhiteNoise(100, 1, WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a.Frames(), b.Frames())

	c, err := ws.WhiteNoise(100, 1, WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Frames(), c.Frames())
}
