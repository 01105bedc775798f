package audioio

// Chunk is one run of PCM16 audio samples with its format.
type Chunk struct {
	// Samples are PCM16 values, little-endian on the wire.
	Samples []int16

	// SampleRate of this chunk in Hz.
	SampleRate int

	// Channels in this chunk.
	Channels int
}

// Bytes encodes the samples as little-endian PCM16.
func (c Chunk) Bytes() []byte {
	buf := make([]byte, len(c.Samples)*2)
	for i, s := range c.Samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	return buf
}

// ChunkFromBytes decodes little-endian PCM16 bytes into a chunk.
func ChunkFromBytes(data []byte, sampleRate, channels int) Chunk {
	return Chunk{
		Samples:    BytesToSamples(data),
		SampleRate: sampleRate,
		Channels:   channels,
	}
}

// Duration returns the play time of the chunk in seconds.
func (c Chunk) Duration() float64 {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate*c.Channels)
}

// Float32ToPCM16 converts normalized float samples to PCM16.
// Negative values scale by 0x8000 and positive by 0x7fff so that both
// ends of the range map onto the full int16 span.
func Float32ToPCM16(in []float32) []int16 {
	out := make([]int16, len(in))
	for i, v := range in {
		if v < -1 {
			v = -1
		} else if v > 1 {
			v = 1
		}
		if v < 0 {
			out[i] = int16(v * 0x8000)
		} else {
			out[i] = int16(v * 0x7fff)
		}
	}
	return out
}

// PCM16ToFloat32 converts PCM16 samples to normalized floats.
func PCM16ToFloat32(in []int16) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v) / 32768
	}
	return out
}
