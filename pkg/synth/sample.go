package synth

import (
	"math"

	"github.com/oisee/wavesynth/pkg/osc"
)

// Sample is a finite buffer of quantized frames at a fixed samplerate and
// sample width.
type Sample struct {
	frames      []int64
	samplerate  int
	samplewidth int
}

// materialize pulls whole blocks from the oscillator and truncates to
// round(duration·samplerate) frames. Because it consumes the same block
// stream the streaming entry points expose, a finite sample sliced at block
// boundaries equals the streamed blocks sample for sample.
func (ws *WaveSynth) materialize(src osc.Oscillator, duration float64) *Sample {
	n := int(math.Round(duration * float64(ws.samplerate)))
	if n < 0 {
		n = 0
	}
	stream := ws.stream(src)
	frames := make([]int64, 0, n+ws.blocksize)
	for len(frames) < n {
		frames = append(frames, stream.NextBlock()...)
	}
	return &Sample{
		frames:      frames[:n],
		samplerate:  ws.samplerate,
		samplewidth: ws.samplewidth,
	}
}

// Frames returns the quantized frames. The slice is not copied.
func (s *Sample) Frames() []int64 {
	return s.frames
}

// Len returns the number of frames.
func (s *Sample) Len() int {
	return len(s.frames)
}

// SampleRate returns the samplerate in Hz.
func (s *Sample) SampleRate() int {
	return s.samplerate
}

// SampleWidth returns the sample width in bytes.
func (s *Sample) SampleWidth() int {
	return s.samplewidth
}

// Duration returns the sample length in seconds.
func (s *Sample) Duration() float64 {
	return float64(len(s.frames)) / float64(s.samplerate)
}
