package schedule

import (
	"git.lost.host/meutraa/beats/internal/config"
	"git.lost.host/meutraa/beats/internal/engine"
	"git.lost.host/meutraa/beats/internal/game"
)

// Spawner is the part of the engine the scheduler drives.
type Spawner interface {
	SpawnNote(lane int, hitTimeSeconds float64) engine.Handle
	AliveCountAll() int
	AliveCountInLane(lane int) int
}

// Scheduler feeds chart notes into the engine as they come within the
// spawn lookahead. Notes held back by the alive caps are spawned on a later
// tick, in chart order per lane.
type Scheduler struct {
	events    []game.NoteEvent
	lookahead float64
	maxAlive  int
	maxLane   int

	spawned []bool
	next    int // First event not yet spawned
	pending int
}

func New(events []game.NoteEvent, cfg config.EngineConfig) *Scheduler {
	s := &Scheduler{
		events:    events,
		lookahead: cfg.SpawnLookaheadSeconds,
		maxAlive:  cfg.MaxAlive,
		maxLane:   cfg.MaxAlivePerLane,
	}
	s.Reset()
	return s
}

func (s *Scheduler) Reset() {
	s.spawned = make([]bool, len(s.events))
	s.next = 0
	s.pending = len(s.events)
}

// Tick spawns every due note the caps allow and returns how many were
// spawned.
func (s *Scheduler) Tick(sp Spawner, now float64) int {
	count := 0
	blocked := map[int]bool{}
	alive := sp.AliveCountAll()

	for i := s.next; i < len(s.events); i++ {
		if s.spawned[i] {
			continue
		}
		e := s.events[i]
		if e.HitTimeSeconds-s.lookahead > now {
			break
		}
		if alive >= s.maxAlive {
			break
		}
		if blocked[e.Lane] || sp.AliveCountInLane(e.Lane) >= s.maxLane {
			blocked[e.Lane] = true
			continue
		}
		sp.SpawnNote(e.Lane, e.HitTimeSeconds)
		s.spawned[i] = true
		s.pending--
		alive++
		count++
	}

	for s.next < len(s.events) && s.spawned[s.next] {
		s.next++
	}
	return count
}

func (s *Scheduler) Pending() int { return s.pending }

func (s *Scheduler) Done() bool { return s.pending == 0 }
