package audioio

import "math"

// MockSource generates synthetic capture frames on demand: silence by
// default, or a sine tone. Pull-based, no goroutines, for tests and
// offline runs without a client delivering real audio.
type MockSource struct {
	cfg       Config
	frequency float64
	amplitude float64
	phase     float64
}

// MockSourceOption configures a MockSource.
type MockSourceOption func(*MockSource)

// WithSineWave makes the source emit a tone instead of silence.
func WithSineWave(frequency, amplitude float64) MockSourceOption {
	return func(m *MockSource) {
		m.frequency = frequency
		m.amplitude = amplitude
	}
}

// NewMockSource creates a mock source for the given format.
func NewMockSource(cfg Config, opts ...MockSourceOption) *MockSource {
	m := &MockSource{cfg: cfg, amplitude: 0.5}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the source format.
func (m *MockSource) Config() Config {
	return m.cfg
}

// NextFrame generates one full frame.
func (m *MockSource) NextFrame() Chunk {
	samples := make([]int16, m.cfg.FrameSamples*m.cfg.Channels)
	if m.frequency > 0 {
		for i := 0; i < m.cfg.FrameSamples; i++ {
			v := m.amplitude * math.Sin(2*math.Pi*m.frequency*m.phase/float64(m.cfg.SampleRate))
			s := int16(v * 32767)
			for ch := 0; ch < m.cfg.Channels; ch++ {
				samples[i*m.cfg.Channels+ch] = s
			}
			m.phase++
			if m.phase >= float64(m.cfg.SampleRate) {
				m.phase = 0
			}
		}
	}
	return Chunk{Samples: samples, SampleRate: m.cfg.SampleRate, Channels: m.cfg.Channels}
}
