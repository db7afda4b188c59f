package chart

import (
	"math/rand"

	"git.lost.host/meutraa/beats/internal/game"
)

type GenerateOptions struct {
	ID       string
	Title    string
	BPM      float64
	Start    float64 // Seconds
	End      float64
	Lanes    int
	MinGap   float64 // Candidates closer than this to the last note are skipped
	MaxNotes int     // 0 for no limit
	Approach float64
	Seed     int64
}

// Generate places at most one tap per beat on a random lane. The same
// options always give the same chart.
func Generate(o GenerateOptions) *game.Chart {
	c := &game.Chart{
		ID:                  o.ID,
		Title:               o.Title,
		ApproachTimeSeconds: o.Approach,
		Lanes:               o.Lanes,
		Notes:               []game.ChartNote{},
	}
	if o.BPM <= 0 || o.Lanes <= 0 {
		return c
	}

	rng := rand.New(rand.NewSource(o.Seed))
	beat := 60.0 / o.BPM
	last := o.Start - o.MinGap - 1
	for i := 0; ; i++ {
		t := o.Start + float64(i)*beat
		if t > o.End {
			break
		}
		if o.MaxNotes > 0 && len(c.Notes) >= o.MaxNotes {
			break
		}
		if t-last < o.MinGap {
			continue
		}
		c.Notes = append(c.Notes, game.ChartNote{
			TimeSeconds: t,
			Lane:        rng.Intn(o.Lanes),
			Type:        game.Tap,
		})
		last = t
	}
	return c
}
