// Package notes maps note names to piano key numbers and equal-temperament
// frequencies, and resolves major seventh chords.
package notes

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrUnknownNote indicates a note name outside the chromatic table.
	ErrUnknownNote = errors.New("notes: unknown note name")
	// ErrUnknownChord indicates a chord root outside the major chord table.
	ErrUnknownChord = errors.New("notes: unknown chord root")
)

// Key identifies a note in a specific octave.
type Key struct {
	Note   string
	Octave int
}

// OctaveNotes lists the twelve chromatic note names of one octave.
var OctaveNotes = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// chromaticIndex is anchored so that C4 resolves to piano key 40.
var chromaticIndex = map[string]int{
	"C": 4, "C#": 5, "D": 6, "D#": 7, "E": 8, "F": 9,
	"F#": 10, "G": 11, "G#": 12, "A": 13, "A#": 14, "B": 15,
}

// noteAlias maps enharmonic spellings to their canonical note name.
var noteAlias = map[string]string{
	"C": "C", "C#": "C#", "C##": "D",
	"D": "D", "D#": "D#",
	"E": "E", "E#": "F",
	"F": "F", "F#": "F#", "F##": "G",
	"G": "G", "G#": "G#", "G##": "A",
	"A": "A", "A#": "A#",
	"B": "B", "B#": "C",
}

// majorChords holds the four tones of each major seventh chord. A one in the
// offsets means the tone lies in the next higher octave.
var majorChords = map[string]struct {
	tones   [4]string
	offsets [4]int
}{
	"C":  {[4]string{"C", "E", "G", "B"}, [4]int{0, 0, 0, 0}},
	"C#": {[4]string{"C#", "E#", "G#", "B#"}, [4]int{0, 0, 0, 1}},
	"D":  {[4]string{"D", "F#", "A", "C"}, [4]int{0, 0, 0, 1}},
	"D#": {[4]string{"D#", "F##", "A#", "C##"}, [4]int{0, 0, 0, 1}},
	"E":  {[4]string{"E", "G#", "B", "D#"}, [4]int{0, 0, 0, 1}},
	"F":  {[4]string{"F", "A", "C", "E"}, [4]int{0, 0, 1, 1}},
	"F#": {[4]string{"F#", "A#", "C#", "E#"}, [4]int{0, 0, 1, 1}},
	"G":  {[4]string{"G", "B", "D", "F#"}, [4]int{0, 0, 1, 1}},
	"G#": {[4]string{"G#", "B#", "D#", "F##"}, [4]int{0, 1, 1, 1}},
	"A":  {[4]string{"A", "C#", "E", "G#"}, [4]int{0, 1, 1, 1}},
	"A#": {[4]string{"A#", "C##", "E#", "G##"}, [4]int{0, 1, 1, 1}},
	"B":  {[4]string{"B", "D#", "F#", "A#"}, [4]int{0, 1, 1, 1}},
}

// KeyNum returns the piano key number for a note in an octave (C4 = 40).
func KeyNum(note string, octave int) (int, error) {
	idx, ok := chromaticIndex[strings.ToUpper(note)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, note)
	}
	return (octave-1)*12 + idx, nil
}

// KeyFreq returns the frequency of a piano key number in standard tuning
// (A4 = key 49 = 440 Hz).
func KeyFreq(keyNumber int) float64 {
	return KeyFreqTuned(keyNumber, 440.0)
}

// KeyFreqTuned returns the equal-temperament frequency of a piano key number
// relative to the given A4 reference frequency.
func KeyFreqTuned(keyNumber int, a4 float64) float64 {
	return math.Pow(2, float64(keyNumber-49)/12) * a4
}

// NoteFreq returns the frequency for a note written with a trailing octave
// digit, like "c#4" or "A4".
func NoteFreq(note string) (float64, error) {
	if len(note) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, note)
	}
	last := note[len(note)-1]
	if last < '0' || last > '9' {
		return 0, fmt.Errorf("%w: %q has no octave digit", ErrUnknownNote, note)
	}
	return NoteFreqOctave(note[:len(note)-1], int(last-'0'))
}

// NoteFreqOctave returns the frequency for a note in the given octave.
func NoteFreqOctave(note string, octave int) (float64, error) {
	key, err := KeyNum(note, octave)
	if err != nil {
		return 0, err
	}
	return KeyFreq(key), nil
}

// MajorChordKeys resolves the four tones of the major seventh chord on the
// given root, mapping enharmonic spellings through the alias table.
func MajorChordKeys(rootnote string, octave int) ([4]Key, error) {
	chord, ok := majorChords[strings.ToUpper(rootnote)]
	if !ok {
		return [4]Key{}, fmt.Errorf("%w: %q", ErrUnknownChord, rootnote)
	}
	var keys [4]Key
	for i, tone := range chord.tones {
		keys[i] = Key{Note: noteAlias[tone], Octave: octave + chord.offsets[i]}
	}
	return keys, nil
}
