package game

// NoteEvent is a chart note in engine form. Seq orders notes that share a
// hit time.
type NoteEvent struct {
	HitTimeSeconds float64
	Lane           int
	Seq            int
}

// LiveNoteView is a read-only copy of a live note handed to renderers. Its
// judgement is only reachable through Judgement, which also reports whether
// the note was judged at all.
type LiveNoteView struct {
	Seq              int64
	Lane             int
	HitTimeSeconds   float64
	SpawnTimeSeconds float64 // HitTimeSeconds - ApproachSeconds
	ApproachSeconds  float64

	JudgedAtSeconds float64

	judged    bool
	judgement Judgement
}

func (n LiveNoteView) Judged() bool { return n.judged }

// Judgement returns the tier of a judged note. ok is false while the note
// is still waiting to be hit.
func (n LiveNoteView) Judgement() (j Judgement, ok bool) {
	return n.judgement, n.judged
}

// WithJudgement returns a copy of n judged as j at the given time.
func (n LiveNoteView) WithJudgement(j Judgement, atSeconds float64) LiveNoteView {
	n.judged = true
	n.judgement = j
	n.JudgedAtSeconds = atSeconds
	return n
}
