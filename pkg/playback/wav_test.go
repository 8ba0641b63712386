package playback

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oisee/wavesynth/pkg/synth"
)

func TestExportWAV16(t *testing.T) {
	ws, err := synth.New(1000, 2)
	require.NoError(t, err)
	sample, err := ws.Sine(100, 0.01)
	require.NoError(t, err)
	require.Equal(t, 10, sample.Len())

	var buf bytes.Buffer
	require.NoError(t, ExportWAV(sample, &buf))

	data := buf.Bytes()
	require.Len(t, data, 44+10*2)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "fmt ", string(data[12:16]))
	assert.Equal(t, "data", string(data[36:40]))

	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[22:24]), "mono")
	assert.Equal(t, uint32(1000), binary.LittleEndian.Uint32(data[24:28]), "samplerate")
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(data[34:36]), "bits per sample")
	assert.Equal(t, uint32(20), binary.LittleEndian.Uint32(data[40:44]), "data size")

	for i, f := range sample.Frames() {
		got := int16(binary.LittleEndian.Uint16(data[44+i*2:]))
		require.Equal(t, int16(f), got, "frame %d", i)
	}
}

func TestExportWAV32(t *testing.T) {
	ws, err := synth.New(1000, 4)
	require.NoError(t, err)
	sample, err := ws.Sawtooth(100, 0.01)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportWAV(sample, &buf))

	data := buf.Bytes()
	require.Len(t, data, 44+10*4)
	assert.Equal(t, uint16(32), binary.LittleEndian.Uint16(data[34:36]), "bits per sample")
	assert.Equal(t, uint32(40), binary.LittleEndian.Uint32(data[40:44]), "data size")

	for i, f := range sample.Frames() {
		got := int32(binary.LittleEndian.Uint32(data[44+i*4:]))
		require.Equal(t, int32(f), got, "frame %d", i)
	}
}

func TestWAVWriterRejectsBadWidth(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewWAVWriter(&buf, 44100, 3)
	require.ErrorIs(t, err, synth.ErrSampleWidth)
}

func TestStreamReaderConversion(t *testing.T) {
	ws, err := synth.New(1000, 2)
	require.NoError(t, err)
	stream, err := ws.SquareStream(100)
	require.NoError(t, err)
	reference, err := ws.SquareStream(100)
	require.NoError(t, err)

	r := &streamReader{stream: stream}
	buf := make([]byte, 512*2)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	want := reference.NextBlock()
	for i, f := range want {
		got := int16(binary.LittleEndian.Uint16(buf[i*2:]))
		require.Equal(t, int16(f), got, "frame %d", i)
	}
}
