// Package audioio is the audio pipeline between clients and the
// realtime model session: PCM16 chunk handling, sample-rate
// conversion, fixed-size frame chunking for upstream capture, and
// gapless playback scheduling for downstream model audio.
package audioio

import "fmt"

const (
	// CaptureRate is the sample rate the model expects for input audio.
	CaptureRate = 16000

	// PlaybackRate is the sample rate of audio the model streams back.
	PlaybackRate = 24000

	// FrameSamples is the fixed capture frame size. At 16kHz mono this
	// is 128ms of audio per frame, bounding both latency and the
	// memory in flight per frame.
	FrameSamples = 2048
)

// Config holds the audio format for one direction of the pipeline.
type Config struct {
	// SampleRate in Hz.
	SampleRate int `json:"sample_rate"`

	// Channels, 1 for mono.
	Channels int `json:"channels"`

	// FrameSamples is the number of samples per emitted frame.
	FrameSamples int `json:"frame_samples"`
}

// CaptureConfig is the upstream microphone format.
func CaptureConfig() Config {
	return Config{SampleRate: CaptureRate, Channels: 1, FrameSamples: FrameSamples}
}

// PlaybackConfig is the downstream model-audio format.
func PlaybackConfig() Config {
	return Config{SampleRate: PlaybackRate, Channels: 1, FrameSamples: FrameSamples}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %d", c.SampleRate)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("channels must be positive, got %d", c.Channels)
	}
	if c.FrameSamples <= 0 {
		return fmt.Errorf("frame_samples must be positive, got %d", c.FrameSamples)
	}
	return nil
}

// FrameBytes is the byte size of one full frame of PCM16 audio.
func (c Config) FrameBytes() int {
	return c.FrameSamples * c.Channels * 2
}

// FrameDuration is the play time of one full frame in seconds.
func (c Config) FrameDuration() float64 {
	return float64(c.FrameSamples) / float64(c.SampleRate*c.Channels)
}
