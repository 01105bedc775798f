package audioio

import (
	"io"

	"github.com/smallnest/ringbuffer"
)

// Chunker accumulates arbitrarily sized PCM16 writes and emits
// fixed-size frames. Writers push whatever the client delivered;
// readers always get exactly one full frame, so every outbound media
// chunk has the same size and play time. One frame of latency at most
// is buffered between a write and the matching read.
type Chunker struct {
	cfg Config
	rb  *ringbuffer.RingBuffer
}

// NewChunker creates a chunker for the given format. The internal
// ring holds a few frames so a slow reader does not immediately block
// the writer.
func NewChunker(cfg Config) (*Chunker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rb := ringbuffer.New(cfg.FrameBytes() * 4).SetBlocking(true)
	return &Chunker{cfg: cfg, rb: rb}, nil
}

// Config returns the chunker's audio format.
func (c *Chunker) Config() Config {
	return c.cfg
}

// Write queues raw PCM16 bytes. Blocks when the ring is full.
func (c *Chunker) Write(p []byte) (int, error) {
	return c.rb.Write(p)
}

// WriteSamples queues PCM16 samples.
func (c *Chunker) WriteSamples(samples []int16) error {
	_, err := c.rb.Write(SamplesToBytes(samples))
	return err
}

// ReadFrame blocks until one full frame is buffered, then returns it.
// After CloseWrite it drains what remains, padding the final short
// frame with silence, and then reports io.EOF.
func (c *Chunker) ReadFrame() (Chunk, error) {
	buf := make([]byte, c.cfg.FrameBytes())
	filled := 0
	for filled < len(buf) {
		n, err := c.rb.Read(buf[filled:])
		filled += n
		if err != nil {
			if err == io.EOF && filled > 0 {
				for i := filled; i < len(buf); i++ {
					buf[i] = 0
				}
				return ChunkFromBytes(buf, c.cfg.SampleRate, c.cfg.Channels), nil
			}
			return Chunk{}, err
		}
	}
	return ChunkFromBytes(buf, c.cfg.SampleRate, c.cfg.Channels), nil
}

// CloseWrite marks the input side finished. Blocked and future reads
// drain the remainder and then fail with io.EOF.
func (c *Chunker) CloseWrite() {
	c.rb.CloseWriter()
}

// Reset drops all buffered audio.
func (c *Chunker) Reset() {
	c.rb.Reset()
}
