package synth

import "github.com/oisee/wavesynth/pkg/osc"

// Stream is the lazy streaming entry point: an infinite, single-pass
// sequence of fixed-size blocks of quantized samples. The caller stops
// consuming to abandon it; there is no other cancellation.
type Stream struct {
	blocks *osc.BlockStream
}

func (ws *WaveSynth) stream(src osc.Oscillator) *Stream {
	return &Stream{blocks: osc.NewBlockStream(src, ws.blocksize)}
}

// BlockSize returns the number of samples per block.
func (s *Stream) BlockSize() int {
	return s.blocks.BlockSize()
}

// NextBlock pulls the next block of samples, quantized to the target
// integer width by truncation. No rounding or dithering is applied.
func (s *Stream) NextBlock() []int64 {
	raw := s.blocks.NextBlock()
	out := make([]int64, len(raw))
	for i, v := range raw {
		out[i] = int64(v)
	}
	return out
}
