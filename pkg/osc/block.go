package osc

// BlockStream chunks an oscillator's infinite per-sample output into
// fixed-size blocks. It is single-pass and not restartable: every call
// consumes blockSize fresh samples from the source.
type BlockStream struct {
	src  Oscillator
	size int
}

// NewBlockStream wraps src into blocks of blockSize samples.
func NewBlockStream(src Oscillator, blockSize int) *BlockStream {
	return &BlockStream{src: src, size: blockSize}
}

// BlockSize returns the number of samples per block.
func (s *BlockStream) BlockSize() int {
	return s.size
}

// NextBlock pulls the next blockSize samples from the source.
func (s *BlockStream) NextBlock() []float64 {
	block := make([]float64, s.size)
	for i := range block {
		block[i] = s.src.Next()
	}
	return block
}
