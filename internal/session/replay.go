package session

import "git.lost.host/meutraa/beats/internal/input"

// Replay drives the session from time zero with presses known ahead of
// time, ticking every frame seconds until the chart is finished and every
// press is used. Presses are judged at their own time rather than on the
// next frame boundary.
func (s *Session) Replay(presses []input.Event, frame float64) (Result, error) {
	if frame <= 0 {
		frame = 1.0 / 240
	}
	end := s.chart.Length() + s.opts.Config.Windows.Miss + s.opts.Keep + frame
	if n := len(presses); n > 0 && presses[n-1].Time > end {
		end = presses[n-1].Time
	}

	i := 0
	for f := 0; ; f++ {
		now := float64(f) * frame
		for ; i < len(presses) && presses[i].Time <= now; i++ {
			if presses[i].Quit {
				return s.Result(), nil
			}
			if err := s.Tick(presses[i].Time, []int{presses[i].Lane}); nil != err {
				return s.Result(), err
			}
		}
		if err := s.Tick(now, nil); nil != err {
			return s.Result(), err
		}
		if (s.Finished() && i == len(presses)) || now > end {
			break
		}
	}
	return s.Result(), nil
}
