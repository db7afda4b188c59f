package score

import "git.lost.host/meutraa/beats/internal/game"

// State is the running score of one attempt.
//
// Score and Drift only grow, Combo grows or drops to zero. DriftDebt is
// raised elsewhere and only read here.
type State struct {
	Score int
	Combo int

	Drift     float64 // Instability accumulated by misses
	DriftDebt float64 // When > 0, miss penalties are multiplied
}

var points = [...]int{
	game.Perfect: 300,
	game.Cool:    200,
	game.Fine:    100,
	game.Sad:     50,
	game.Miss:    0,
}

func Points(j game.Judgement) int {
	if int(j) < len(points) {
		return points[j]
	}
	return 0
}

func BreaksCombo(j game.Judgement) bool {
	return j == game.Sad || j == game.Miss
}

// Apply adds the effect of a single judgement. It must be called exactly
// once per judged note.
func Apply(s *State, j game.Judgement, penaltyPerMiss, debtMultiplier float64) {
	s.Score += Points(j)
	if BreaksCombo(j) {
		s.Combo = 0
	} else {
		s.Combo++
	}
	if j == game.Miss {
		mult := 1.0
		if s.DriftDebt > 0 {
			mult = debtMultiplier
		}
		s.Drift += penaltyPerMiss * mult
	}
}
