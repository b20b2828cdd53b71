package core

import "time"

// FrameClock reports how much time passed between consecutive frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock constructs a FrameClock reading the wall clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Delta returns the milliseconds elapsed since the previous call. The first
// call has no previous frame and returns 0.
func (f *FrameClock) Delta() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	return float64(delta) / float64(time.Millisecond)
}

// Reset forgets the previous frame so the next Delta returns 0.
func (f *FrameClock) Reset() { f.last = time.Time{} }
