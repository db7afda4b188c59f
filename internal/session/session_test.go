package session

import (
	"testing"

	"git.lost.host/meutraa/beats/internal/chart"
	"git.lost.host/meutraa/beats/internal/config"
	"git.lost.host/meutraa/beats/internal/engine"
	"git.lost.host/meutraa/beats/internal/game"
	"git.lost.host/meutraa/beats/internal/input"
	"git.lost.host/meutraa/beats/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *Session {
	c, err := testdata.GetChart()
	require.NoError(t, err)
	cfg := config.Default()
	cfg.ApproachTimeSeconds = c.ApproachTimeSeconds
	cfg.MaxAlivePerLane = 4
	s, err := New(c, Options{Config: cfg, Keep: 2})
	require.NoError(t, err)
	return s
}

func TestNewValidates(t *testing.T) {
	c, err := testdata.GetChart()
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Lanes = 2
	_, err = New(c, Options{Config: cfg})
	assert.ErrorIs(t, err, config.ErrConfig)

	cfg = config.Default()
	cfg.Windows.Perfect = 1
	_, err = New(c, Options{Config: cfg})
	assert.ErrorIs(t, err, config.ErrConfig)

	c.Notes[0].Lane = 9
	_, err = New(c, Options{Config: config.Default()})
	assert.ErrorIs(t, err, game.ErrInvalidChart)
}

func TestTickRejectsRewind(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Tick(1, nil))
	require.NoError(t, s.Tick(1, nil))
	assert.ErrorIs(t, s.Tick(0.5, nil), ErrRewind)
}

func TestTickFrameOrder(t *testing.T) {
	s := newSession(t)
	// The first note (lane 0 at 2.0) is spawned and hit in the same frame
	require.NoError(t, s.Tick(2.0, []int{0, 0, 7, -1}))
	assert.Equal(t, 300, s.Score().Score)
	assert.Equal(t, 1, s.Score().Combo)

	// Nothing else in lane 0 is in range, the extra press changed nothing
	r := s.Result()
	assert.Equal(t, 1, r.Tally.Total())
}

func TestAutoplayIsPerfect(t *testing.T) {
	s := newSession(t)
	presses := input.Autoplay(chart.ToNoteEvents(s.Chart()), 0, 0)
	r, err := s.Replay(presses, 1.0/120)
	require.NoError(t, err)

	n := len(s.Chart().Notes)
	assert.True(t, s.Finished())
	assert.Equal(t, n*300, r.Score.Score)
	assert.Equal(t, n, r.Score.Combo)
	assert.Equal(t, n, r.Tally.Counts[game.Perfect])
	assert.Equal(t, n, r.Tally.MaxCombo)
	assert.Zero(t, r.Score.Drift)
	assert.InDelta(t, 0, r.Tally.Mean(), 1e-9)
	for _, n := range s.Notes() {
		j, ok := n.Judgement()
		assert.True(t, ok)
		assert.Equal(t, game.Perfect, j)
	}
}

func TestReplayWithoutInputMissesEverything(t *testing.T) {
	s := newSession(t)
	s.SetDriftDebt(1)
	var auto int
	s.OnJudge(func(j engine.Judged) {
		if j.Auto {
			auto++
		}
	})
	r, err := s.Replay(nil, 1.0/60)
	require.NoError(t, err)

	n := len(s.Chart().Notes)
	assert.Equal(t, n, auto)
	assert.Equal(t, n, r.Tally.Counts[game.Miss])
	assert.Zero(t, r.Score.Score)
	assert.Equal(t, float64(n)*2, r.Score.Drift)
}

func TestEarlyPressDoesNotConsume(t *testing.T) {
	s := newSession(t)
	// Lane 0 notes at 3.5, 3.75 and 4.0: a press at 3.0 is too early for all
	presses := []input.Event{
		{Time: 2.0, Lane: 0},
		{Time: 3.0, Lane: 0},
		{Time: 3.5, Lane: 0},
	}
	r, err := s.Replay(presses, 1.0/60)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Tally.Counts[game.Perfect])
	assert.Equal(t, 6, r.Tally.Counts[game.Miss])
}

func TestRetry(t *testing.T) {
	s := newSession(t)
	_, err := s.Replay(nil, 1.0/60)
	require.NoError(t, err)

	s.Retry()
	assert.Zero(t, s.Result().Tally.Total())
	assert.Zero(t, s.Score().Drift)
	assert.Empty(t, s.Notes())
	assert.False(t, s.Finished())

	require.NoError(t, s.Tick(0, nil))
	presses := input.Autoplay(chart.ToNoteEvents(s.Chart()), 0, 0)
	r, err := s.Replay(presses, 1.0/60)
	require.NoError(t, err)
	assert.Equal(t, len(s.Chart().Notes)*300, r.Score.Score)
}

func TestReplayQuit(t *testing.T) {
	s := newSession(t)
	r, err := s.Replay([]input.Event{{Time: 2.0, Lane: 0}, {Time: 2.1, Quit: true}}, 1.0/60)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Tally.Total())
	assert.False(t, s.Finished())
}
