package audioio

import (
	"testing"
	"time"
)

func playbackChunk(samples int) Chunk {
	return Chunk{Samples: make([]int16, samples), SampleRate: PlaybackRate, Channels: 1}
}

func TestSchedulerSequentialNoOverlap(t *testing.T) {
	clock := time.Unix(100, 0)
	s := NewSchedulerWithClock(func() time.Time { return clock })

	// Bursty arrival: all chunks arrive at the same instant, but each
	// must start exactly where the previous one ends.
	durations := []int{2400, 4800, 1200, 2400}
	var prevEnd time.Time
	for i, n := range durations {
		chunk := playbackChunk(n)
		start := s.Schedule(chunk)
		if i == 0 {
			if !start.Equal(clock) {
				t.Fatalf("first chunk start = %v, want clock %v", start, clock)
			}
		} else if !start.Equal(prevEnd) {
			t.Fatalf("chunk %d start = %v, want previous end %v", i, start, prevEnd)
		}
		prevEnd = start.Add(time.Duration(chunk.Duration() * float64(time.Second)))
		if s.NextPlayTime() != prevEnd {
			t.Fatalf("nextPlayTime = %v, want %v", s.NextPlayTime(), prevEnd)
		}
	}
}

func TestSchedulerCatchesUpToClock(t *testing.T) {
	clock := time.Unix(100, 0)
	s := NewSchedulerWithClock(func() time.Time { return clock })

	s.Schedule(playbackChunk(2400))

	// After a long silence the clock is past the horizon; the next
	// chunk plays now, not at the stale horizon.
	clock = clock.Add(10 * time.Second)
	start := s.Schedule(playbackChunk(2400))
	if !start.Equal(clock) {
		t.Fatalf("start after idle = %v, want current clock %v", start, clock)
	}
}

func TestSchedulerMonotonic(t *testing.T) {
	clock := time.Unix(100, 0)
	s := NewSchedulerWithClock(func() time.Time { return clock })

	var last time.Time
	for i := 0; i < 50; i++ {
		start := s.Schedule(playbackChunk(480))
		if start.Before(last) {
			t.Fatalf("chunk %d start %v before previous start %v", i, start, last)
		}
		last = start
		if i%7 == 0 {
			clock = clock.Add(5 * time.Millisecond)
		}
	}
}

func TestSchedulerReset(t *testing.T) {
	clock := time.Unix(100, 0)
	s := NewSchedulerWithClock(func() time.Time { return clock })

	s.Schedule(playbackChunk(48000))
	s.Reset()
	start := s.Schedule(playbackChunk(2400))
	if !start.Equal(clock) {
		t.Fatalf("start after reset = %v, want clock %v", start, clock)
	}
}
