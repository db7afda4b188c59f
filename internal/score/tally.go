package score

import (
	"math"

	"git.lost.host/meutraa/beats/internal/game"
)

// Tally collects per judgement counts and hit error statistics for a
// results screen. Offsets are signed seconds, negative is early.
type Tally struct {
	Counts   [len(game.Judgements)]int
	MaxCombo int

	hits int
	mean float64
	m2   float64 // Sum of squared distance from the mean
}

func (t *Tally) Record(j game.Judgement, offset float64, combo int) {
	if int(j) < len(t.Counts) {
		t.Counts[j]++
	}
	if combo > t.MaxCombo {
		t.MaxCombo = combo
	}
	if j == game.Miss {
		return
	}
	t.hits++
	d := offset - t.mean
	t.mean += d / float64(t.hits)
	t.m2 += d * (offset - t.mean)
}

func (t Tally) Total() int {
	n := 0
	for _, c := range t.Counts {
		n += c
	}
	return n
}

// Hits is the number of notes judged better than a miss.
func (t Tally) Hits() int { return t.hits }

func (t Tally) Mean() float64 { return t.mean }

// Stdev is the sample standard deviation of hit offsets.
func (t Tally) Stdev() float64 {
	if t.hits < 2 {
		return 0
	}
	return math.Sqrt(t.m2 / float64(t.hits-1))
}

// Accuracy is the share of the best possible score, 0 with nothing judged.
func (t Tally) Accuracy() float64 {
	total := t.Total()
	if total == 0 {
		return 0
	}
	got := 0
	for j, c := range t.Counts {
		got += c * Points(game.Judgement(j))
	}
	return float64(got) / float64(total*Points(game.Perfect))
}

func (t *Tally) Reset() {
	*t = Tally{}
}
