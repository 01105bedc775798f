package audioio

import (
	"sync"
	"time"
)

// Scheduler assigns play times to decoded audio chunks so playback is
// gapless and strictly sequential under bursty arrival. Each chunk
// starts at max(current clock, end of the previously scheduled chunk),
// so chunks never overlap and never reorder; nextPlayTime never moves
// backwards.
type Scheduler struct {
	mu           sync.Mutex
	now          func() time.Time
	nextPlayTime time.Time
}

// NewScheduler creates a scheduler on the real clock.
func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// NewSchedulerWithClock creates a scheduler on an injected clock.
// Used in tests.
func NewSchedulerWithClock(now func() time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Schedule assigns the chunk its start time and advances the
// scheduling horizon by the chunk's duration.
func (s *Scheduler) Schedule(chunk Chunk) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	if s.nextPlayTime.After(start) {
		start = s.nextPlayTime
	}
	s.nextPlayTime = start.Add(time.Duration(chunk.Duration() * float64(time.Second)))
	return start
}

// NextPlayTime returns the end of the last scheduled chunk.
func (s *Scheduler) NextPlayTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextPlayTime
}

// Reset forgets the horizon, so the next chunk plays immediately.
// Called when playback is interrupted.
func (s *Scheduler) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPlayTime = time.Time{}
}
