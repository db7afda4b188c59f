package engine

import "git.lost.host/meutraa/beats/internal/game"

// Handle addresses a note in the arena. A handle goes stale once its note
// is evicted or the engine is reset, even if the slot is reused. The zero
// Handle never refers to a note.
type Handle struct {
	index uint32
	gen   uint32
}

type liveNote struct {
	seq              int64
	lane             int
	hitTimeSeconds   float64
	spawnTimeSeconds float64
	approachSeconds  float64

	judged          bool
	judgement       game.Judgement
	judgedAtSeconds float64
}

func (n *liveNote) view() game.LiveNoteView {
	v := game.LiveNoteView{
		Seq:              n.seq,
		Lane:             n.lane,
		HitTimeSeconds:   n.hitTimeSeconds,
		SpawnTimeSeconds: n.spawnTimeSeconds,
		ApproachSeconds:  n.approachSeconds,
	}
	if n.judged {
		v = v.WithJudgement(n.judgement, n.judgedAtSeconds)
	}
	return v
}

type slot struct {
	note liveNote
	gen  uint32
	used bool
}

// arena stores notes in reusable slots. order holds the live handles in
// spawn order.
type arena struct {
	slots []slot
	free  []uint32
	order []Handle
}

func (a *arena) add(n liveNote) Handle {
	var i uint32
	if l := len(a.free); l > 0 {
		i = a.free[l-1]
		a.free = a.free[:l-1]
	} else {
		a.slots = append(a.slots, slot{gen: 1})
		i = uint32(len(a.slots) - 1)
	}
	s := &a.slots[i]
	s.note = n
	s.used = true
	h := Handle{index: i, gen: s.gen}
	a.order = append(a.order, h)
	return h
}

func (a *arena) get(h Handle) (*liveNote, bool) {
	if int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.used || s.gen != h.gen {
		return nil, false
	}
	return &s.note, true
}

// at is get for handles taken from order, which are always live.
func (a *arena) at(h Handle) *liveNote {
	return &a.slots[h.index].note
}

func (a *arena) release(i uint32) {
	s := &a.slots[i]
	s.used = false
	s.gen++
	s.note = liveNote{}
	a.free = append(a.free, i)
}

// removeIf drops matching notes and keeps the rest in order.
func (a *arena) removeIf(match func(n *liveNote) bool) int {
	kept := a.order[:0]
	removed := 0
	for _, h := range a.order {
		if match(a.at(h)) {
			a.release(h.index)
			removed++
			continue
		}
		kept = append(kept, h)
	}
	a.order = kept
	return removed
}

func (a *arena) clear() {
	for _, h := range a.order {
		a.release(h.index)
	}
	a.order = a.order[:0]
}
