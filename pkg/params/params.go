// Package params holds the process-wide default synthesis configuration.
// Defaults can be overridden by an optional wavesynth config file in the
// working directory; engine instances may in turn override them per call.
package params

import "github.com/spf13/viper"

var v = viper.New()

func init() {
	v.SetDefault("samplerate", 44100)
	v.SetDefault("samplewidth", 2)
	v.SetDefault("blocksize", 512)
	v.SetConfigName("wavesynth")
	v.AddConfigPath(".")
	// Missing config file just leaves the defaults in place.
	_ = v.ReadInConfig()
}

// SampleRate returns the default samplerate in Hz.
func SampleRate() int {
	return v.GetInt("samplerate")
}

// SampleWidth returns the default sample width in bytes.
func SampleWidth() int {
	return v.GetInt("samplewidth")
}

// BlockSize returns the default oscillator block size in samples.
func BlockSize() int {
	return v.GetInt("blocksize")
}
