package engine

import (
	"log/slog"
	"math"

	"git.lost.host/meutraa/beats/internal/config"
	"git.lost.host/meutraa/beats/internal/game"
	"git.lost.host/meutraa/beats/internal/score"
)

// autoMissEpsilon pushes auto-miss judging just past the miss window.
const autoMissEpsilon = 0.0001

// Judged describes a note that was just judged.
type Judged struct {
	Note      Handle
	Lane      int
	Judgement game.Judgement
	Offset    float64 // Seconds from the hit time, negative is early
	Auto      bool    // Judged by UpdateAutoMiss rather than input
	Score     score.State
}

// Core is the timing and scoring state machine for one play session. It
// owns every live note and the score, and must only be used from a single
// goroutine.
type Core struct {
	cfg    config.EngineConfig
	notes  arena
	score  score.State
	seq    int64
	onHit  func(Judged)
	logger *slog.Logger
}

// New returns an empty engine. Sequence numbers start at seed so several
// engines in one process hand out distinct seqs.
func New(cfg config.EngineConfig, seed int64) *Core {
	return &Core{
		cfg:    cfg,
		seq:    seed,
		logger: slog.Default(),
	}
}

func (c *Core) Config() config.EngineConfig { return c.cfg }

// OnJudge sets a callback run once for every note that becomes judged. The
// callback may read from the engine but must not spawn, judge or evict.
func (c *Core) OnJudge(f func(Judged)) { c.onHit = f }

func (c *Core) SetLogger(l *slog.Logger) { c.logger = l }

// Reset drops every note and zeroes the score for a retry.
func (c *Core) Reset() {
	c.notes.clear()
	c.score = score.State{}
	c.logger.Debug("engine reset")
}

func (c *Core) SpawnNote(lane int, hitTimeSeconds float64) Handle {
	n := liveNote{
		seq:              c.seq,
		lane:             lane,
		hitTimeSeconds:   hitTimeSeconds,
		spawnTimeSeconds: hitTimeSeconds - c.cfg.ApproachTimeSeconds,
		approachSeconds:  c.cfg.ApproachTimeSeconds,
	}
	c.seq++
	h := c.notes.add(n)
	c.logger.Debug("spawned note", "seq", n.seq, "lane", lane, "hit", hitTimeSeconds)
	return h
}

func (c *Core) AliveCountAll() int {
	count := 0
	for _, h := range c.notes.order {
		if !c.notes.at(h).judged {
			count++
		}
	}
	return count
}

func (c *Core) AliveCountInLane(lane int) int {
	count := 0
	for _, h := range c.notes.order {
		n := c.notes.at(h)
		if !n.judged && n.lane == lane {
			count++
		}
	}
	return count
}

// FindEarliestLaneNote returns the unjudged note in lane with the lowest
// hit time, the lowest seq on ties. ok is false for an empty lane.
func (c *Core) FindEarliestLaneNote(lane int) (best Handle, ok bool) {
	var bn *liveNote
	for _, h := range c.notes.order {
		n := c.notes.at(h)
		if n.judged || n.lane != lane {
			continue
		}
		if bn == nil ||
			n.hitTimeSeconds < bn.hitTimeSeconds ||
			(n.hitTimeSeconds == bn.hitTimeSeconds && n.seq < bn.seq) {
			best, bn = h, n
		}
	}
	return best, bn != nil
}

// LaneIsHittable reports whether now is inside the miss window of the note.
func (c *Core) LaneIsHittable(h Handle, now float64) bool {
	n, ok := c.notes.get(h)
	if !ok {
		return false
	}
	return math.Abs(now-n.hitTimeSeconds) <= c.cfg.Windows.Miss
}

// Judge judges the note at now. A note is only ever scored once, later
// calls return the stored judgement. Unknown handles are a miss that
// changes nothing.
func (c *Core) Judge(h Handle, now float64) game.Judgement {
	return c.judge(h, now, false)
}

func (c *Core) judge(h Handle, now float64, auto bool) game.Judgement {
	n, ok := c.notes.get(h)
	if !ok {
		return game.Miss
	}
	if n.judged {
		return n.judgement
	}

	offset := now - n.hitTimeSeconds
	j := c.cfg.Windows.Judge(math.Abs(offset))

	n.judged = true
	n.judgement = j
	n.judgedAtSeconds = now

	score.Apply(&c.score, j, c.cfg.DriftPenaltyPerMiss, c.cfg.DriftDebtMultiplier)

	if nil != c.onHit {
		c.onHit(Judged{
			Note:      h,
			Lane:      n.lane,
			Judgement: j,
			Offset:    offset,
			Auto:      auto,
			Score:     c.score,
		})
	}
	return j
}

// TryJudgeLane judges the earliest note of a lane for a key press. Presses
// outside that note's miss window leave every note and the score untouched.
func (c *Core) TryJudgeLane(lane int, now float64) game.Judgement {
	h, ok := c.FindEarliestLaneNote(lane)
	if !ok || !c.LaneIsHittable(h, now) {
		return game.Miss
	}
	return c.Judge(h, now)
}

// UpdateAutoMiss misses every note whose miss window has passed. Call it
// every frame.
func (c *Core) UpdateAutoMiss(now float64) {
	for _, h := range c.notes.order {
		n := c.notes.at(h)
		if n.judged {
			continue
		}
		if now > n.hitTimeSeconds+c.cfg.Windows.Miss {
			c.judge(h, n.hitTimeSeconds+c.cfg.Windows.Miss+autoMissEpsilon, true)
		}
	}
}

// CleanupJudged evicts notes judged more than keepSeconds before now.
func (c *Core) CleanupJudged(now, keepSeconds float64) {
	removed := c.notes.removeIf(func(n *liveNote) bool {
		return n.judged && now-n.judgedAtSeconds > keepSeconds
	})
	if removed > 0 {
		c.logger.Debug("evicted judged notes", "count", removed, "alive", len(c.notes.order))
	}
}

// SetDriftDebt sets the multiplier gate for miss penalties.
func (c *Core) SetDriftDebt(debt float64) { c.score.DriftDebt = debt }

func (c *Core) Score() score.State { return c.score }

// Note returns a copy of a single note.
func (c *Core) Note(h Handle) (game.LiveNoteView, bool) {
	n, ok := c.notes.get(h)
	if !ok {
		return game.LiveNoteView{}, false
	}
	return n.view(), true
}

// Notes returns the live notes, including judged ones not yet evicted.
func (c *Core) Notes() []Handle {
	hs := make([]Handle, len(c.notes.order))
	copy(hs, c.notes.order)
	return hs
}

// NotesSnapshot copies every live note in spawn order for rendering.
func (c *Core) NotesSnapshot() []game.LiveNoteView {
	views := make([]game.LiveNoteView, 0, len(c.notes.order))
	for _, h := range c.notes.order {
		views = append(views, c.notes.at(h).view())
	}
	return views
}
