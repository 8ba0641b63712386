// Package playback plays synthesized streams through the system audio
// device and exports finite samples as WAV.
package playback

import (
	"encoding/binary"

	"github.com/ebitengine/oto/v3"
	"github.com/golang/glog"

	"github.com/oisee/wavesynth/pkg/synth"
)

// RealtimeOutput plays an infinite synth stream through the default audio
// device until closed.
type RealtimeOutput struct {
	otoCtx    *oto.Context
	otoPlayer *oto.Player
}

// Play opens the default audio device at the stream's samplerate and starts
// playing. samplewidth must match the WaveSynth that produced the stream;
// 32-bit streams are shifted down to the device's 16-bit format.
func Play(stream *synth.Stream, samplerate, samplewidth int) (*RealtimeOutput, error) {
	op := &oto.NewContextOptions{
		SampleRate:   samplerate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}

	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	var shift uint
	if samplewidth == 4 {
		shift = 16
	}

	rt := &RealtimeOutput{otoCtx: otoCtx}
	rt.otoPlayer = otoCtx.NewPlayer(&streamReader{stream: stream, shift: shift})
	rt.otoPlayer.SetBufferSize(samplerate / 10) // 100ms buffer
	rt.otoPlayer.Play()

	glog.Infof("playback: opened audio device at %d Hz", samplerate)
	return rt, nil
}

// Close stops playback and releases the device player.
func (rt *RealtimeOutput) Close() {
	if rt.otoPlayer != nil {
		rt.otoPlayer.Close()
	}
	glog.Info("playback: closed audio device")
}

// streamReader implements io.Reader for oto, pulling blocks from the stream
// as the device drains them.
type streamReader struct {
	stream *synth.Stream
	shift  uint
	block  []int64
	pos    int
}

func (r *streamReader) Read(p []byte) (int, error) {
	n := 0
	for n+2 <= len(p) {
		if r.pos >= len(r.block) {
			r.block = r.stream.NextBlock()
			r.pos = 0
		}
		s := r.block[r.pos] >> r.shift
		r.pos++
		binary.LittleEndian.PutUint16(p[n:], uint16(int16(s)))
		n += 2
	}
	return n, nil
}
