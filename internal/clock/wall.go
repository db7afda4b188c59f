package clock

import "time"

// Wall measures song time from a start instant, scaled by a playback rate.
type Wall struct {
	Start time.Time
	Rate  float64
	now   func() time.Time
}

// NewWall starts the song after delay.
func NewWall(delay time.Duration, rate float64) *Wall {
	return &Wall{Start: time.Now().Add(delay), Rate: rate, now: time.Now}
}

func (w *Wall) NowSeconds() float64 {
	now := time.Now
	if nil != w.now {
		now = w.now
	}
	rate := w.Rate
	if rate <= 0 {
		rate = 1
	}
	return now().Sub(w.Start).Seconds() * rate
}
