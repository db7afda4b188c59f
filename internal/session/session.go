package session

import (
	"errors"
	"fmt"
	"log/slog"

	"git.lost.host/meutraa/beats/internal/chart"
	"git.lost.host/meutraa/beats/internal/config"
	"git.lost.host/meutraa/beats/internal/engine"
	"git.lost.host/meutraa/beats/internal/game"
	"git.lost.host/meutraa/beats/internal/schedule"
	"git.lost.host/meutraa/beats/internal/score"
	"github.com/google/uuid"
)

var ErrRewind = errors.New("time went backwards")

// Options for a session, Keep is how long judged notes stay visible.
type Options struct {
	Config config.EngineConfig
	Keep   float64
	Seed   int64
	Logger *slog.Logger
}

// Result is the outcome of an attempt.
type Result struct {
	Score score.State
	Tally score.Tally
}

// Session plays one chart: it spawns notes on time, judges key presses and
// keeps the frame order of the engine calls fixed.
type Session struct {
	ID uuid.UUID

	chart  *game.Chart
	opts   Options
	core   *engine.Core
	sched  *schedule.Scheduler
	tally  score.Tally
	logger *slog.Logger

	last    float64
	started bool
	onJudge func(engine.Judged)
}

func New(c *game.Chart, opts Options) (*Session, error) {
	if err := opts.Config.Validate(); nil != err {
		return nil, err
	}
	if err := c.Validate(); nil != err {
		return nil, err
	}
	if c.Lanes > opts.Config.Lanes {
		return nil, fmt.Errorf("%w: chart needs %d lanes, engine has %d", config.ErrConfig, c.Lanes, opts.Config.Lanes)
	}
	if nil == opts.Logger {
		opts.Logger = slog.Default()
	}

	s := &Session{
		ID:    uuid.New(),
		chart: c,
		opts:  opts,
		core:  engine.New(opts.Config, opts.Seed),
		sched: schedule.New(chart.ToNoteEvents(c), opts.Config),
	}
	s.logger = opts.Logger.With("session", s.ID.String(), "chart", c.ID)
	s.core.SetLogger(s.logger)
	s.core.OnJudge(s.judged)
	return s, nil
}

func (s *Session) judged(j engine.Judged) {
	s.tally.Record(j.Judgement, j.Offset, j.Score.Combo)
	s.logger.Debug("judged",
		"lane", game.Lane(j.Lane).String(),
		"judgement", j.Judgement.String(),
		"offset", j.Offset,
		"auto", j.Auto,
		"combo", j.Score.Combo,
	)
	if nil != s.onJudge {
		s.onJudge(j)
	}
}

// OnJudge registers a callback for every judged note.
func (s *Session) OnJudge(f func(engine.Judged)) { s.onJudge = f }

// Tick advances the session to now. Each frame spawns due notes, judges
// presses in order, misses overdue notes and then evicts old judged notes.
func (s *Session) Tick(now float64, presses []int) error {
	if s.started && now < s.last {
		return fmt.Errorf("%w: %v after %v", ErrRewind, now, s.last)
	}
	s.started = true
	s.last = now

	s.sched.Tick(s.core, now)
	for _, lane := range presses {
		if lane < 0 || lane >= s.opts.Config.Lanes {
			s.logger.Debug("ignoring press", "lane", lane)
			continue
		}
		s.core.TryJudgeLane(lane, now)
	}
	s.core.UpdateAutoMiss(now)
	s.core.CleanupJudged(now, s.opts.Keep)
	return nil
}

// Finished is true once every chart note was spawned and judged.
func (s *Session) Finished() bool {
	return s.sched.Done() && s.core.AliveCountAll() == 0
}

// Retry starts the chart over.
func (s *Session) Retry() {
	s.core.Reset()
	s.sched.Reset()
	s.tally.Reset()
	s.started = false
	s.last = 0
	s.logger.Info("retry")
}

// SetDriftDebt forwards the drift debt gate to the engine.
func (s *Session) SetDriftDebt(debt float64) { s.core.SetDriftDebt(debt) }

func (s *Session) Notes() []game.LiveNoteView { return s.core.NotesSnapshot() }

func (s *Session) Score() score.State { return s.core.Score() }

func (s *Session) Chart() *game.Chart { return s.chart }

func (s *Session) Result() Result {
	return Result{Score: s.core.Score(), Tally: s.tally}
}
