package chart

import (
	"sort"

	"git.lost.host/meutraa/beats/internal/game"
)

// ToNoteEvents orders the chart notes by hit time then lane and numbers
// them. Notes equal on both keep their chart order. The chart is not
// modified.
func ToNoteEvents(c *game.Chart) []game.NoteEvent {
	notes := make([]game.ChartNote, len(c.Notes))
	copy(notes, c.Notes)

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].TimeSeconds != notes[j].TimeSeconds {
			return notes[i].TimeSeconds < notes[j].TimeSeconds
		}
		return notes[i].Lane < notes[j].Lane
	})

	events := make([]game.NoteEvent, len(notes))
	for i, n := range notes {
		events[i] = game.NoteEvent{
			HitTimeSeconds: n.TimeSeconds,
			Lane:           n.Lane,
			Seq:            i,
		}
	}
	return events
}
