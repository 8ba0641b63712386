package playback

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/oisee/wavesynth/pkg/synth"
)

// WAVWriter writes quantized frames as mono PCM WAV at 16 or 32 bit.
type WAVWriter struct {
	writer      io.Writer
	samplerate  int
	samplewidth int
}

// NewWAVWriter returns a writer for the given samplerate (Hz) and sample
// width (bytes, 2 or 4).
func NewWAVWriter(w io.Writer, samplerate, samplewidth int) (*WAVWriter, error) {
	if samplewidth != 2 && samplewidth != 4 {
		return nil, fmt.Errorf("%w: got %d", synth.ErrSampleWidth, samplewidth)
	}
	return &WAVWriter{writer: w, samplerate: samplerate, samplewidth: samplewidth}, nil
}

// WriteHeader writes the RIFF/WAVE header for dataSize bytes of PCM data.
func (w *WAVWriter) WriteHeader(dataSize int) error {
	// RIFF header
	if _, err := w.writer.Write([]byte("RIFF")); err != nil {
		return err
	}
	binary.Write(w.writer, binary.LittleEndian, uint32(dataSize+36))
	w.writer.Write([]byte("WAVE"))

	// fmt chunk
	w.writer.Write([]byte("fmt "))
	binary.Write(w.writer, binary.LittleEndian, uint32(16))           // chunk size
	binary.Write(w.writer, binary.LittleEndian, uint16(1))            // PCM format
	binary.Write(w.writer, binary.LittleEndian, uint16(1))            // mono
	binary.Write(w.writer, binary.LittleEndian, uint32(w.samplerate)) // sample rate
	byteRate := w.samplerate * w.samplewidth
	binary.Write(w.writer, binary.LittleEndian, uint32(byteRate))
	binary.Write(w.writer, binary.LittleEndian, uint16(w.samplewidth))   // block align
	binary.Write(w.writer, binary.LittleEndian, uint16(w.samplewidth*8)) // bits per sample

	// data chunk header
	w.writer.Write([]byte("data"))
	return binary.Write(w.writer, binary.LittleEndian, uint32(dataSize))
}

// WriteFrames writes quantized frames as little-endian PCM at the
// configured width.
func (w *WAVWriter) WriteFrames(frames []int64) error {
	for _, f := range frames {
		var err error
		if w.samplewidth == 2 {
			err = binary.Write(w.writer, binary.LittleEndian, int16(f))
		} else {
			err = binary.Write(w.writer, binary.LittleEndian, int32(f))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ExportWAV writes a finite sample as a mono WAV file.
func ExportWAV(s *synth.Sample, w io.Writer) error {
	wavWriter, err := NewWAVWriter(w, s.SampleRate(), s.SampleWidth())
	if err != nil {
		return err
	}
	if err := wavWriter.WriteHeader(s.Len() * s.SampleWidth()); err != nil {
		return err
	}
	return wavWriter.WriteFrames(s.Frames())
}
