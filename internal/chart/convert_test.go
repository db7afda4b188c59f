package chart

import (
	"encoding/json"
	"testing"

	"git.lost.host/meutraa/beats/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChart() *game.Chart {
	return &game.Chart{
		ID:                  "demo",
		ApproachTimeSeconds: 1.6,
		Lanes:               4,
		Notes: []game.ChartNote{
			{TimeSeconds: 2.0, Lane: 3},
			{TimeSeconds: 1.0, Lane: 2},
			{TimeSeconds: 2.0, Lane: 0},
			{TimeSeconds: 0.5, Lane: 1},
			{TimeSeconds: 2.0, Lane: 0, Type: game.Tap},
		},
	}
}

func TestToNoteEvents(t *testing.T) {
	c := testChart()
	events := ToNoteEvents(c)

	expected := []game.NoteEvent{
		{HitTimeSeconds: 0.5, Lane: 1, Seq: 0},
		{HitTimeSeconds: 1.0, Lane: 2, Seq: 1},
		{HitTimeSeconds: 2.0, Lane: 0, Seq: 2},
		{HitTimeSeconds: 2.0, Lane: 0, Seq: 3},
		{HitTimeSeconds: 2.0, Lane: 3, Seq: 4},
	}
	assert.Equal(t, expected, events)

	// The chart keeps its own order
	assert.Equal(t, 3, c.Notes[0].Lane)
	assert.Equal(t, 1, c.Notes[3].Lane)
}

func TestToNoteEventsDeterministic(t *testing.T) {
	c := testChart()
	a, err := json.Marshal(ToNoteEvents(c))
	require.NoError(t, err)
	b, err := json.Marshal(ToNoteEvents(c))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestToNoteEventsEmpty(t *testing.T) {
	assert.Empty(t, ToNoteEvents(&game.Chart{Lanes: 4}))
}

func TestGenerate(t *testing.T) {
	o := GenerateOptions{BPM: 120, Start: 1, End: 10, Lanes: 4, MinGap: 0.22, Approach: 1.6, Seed: 7}
	c := Generate(o)
	require.NoError(t, c.Validate())
	// One note per half second beat, inclusive of both ends
	assert.Len(t, c.Notes, 19)
	assert.Equal(t, 1.0, c.Notes[0].TimeSeconds)
	assert.Equal(t, 10.0, c.Notes[18].TimeSeconds)
	assert.Equal(t, c, Generate(o))
}

func TestGenerateMinGapAndCap(t *testing.T) {
	c := Generate(GenerateOptions{BPM: 600, Start: 0, End: 2, Lanes: 2, MinGap: 0.22, Approach: 1, Seed: 1})
	for i := 1; i < len(c.Notes); i++ {
		assert.GreaterOrEqual(t, c.Notes[i].TimeSeconds-c.Notes[i-1].TimeSeconds, 0.22)
	}

	c = Generate(GenerateOptions{BPM: 120, Start: 0, End: 100, Lanes: 4, MaxNotes: 5, Approach: 1})
	assert.Len(t, c.Notes, 5)

	assert.Empty(t, Generate(GenerateOptions{Lanes: 4}).Notes)
}
