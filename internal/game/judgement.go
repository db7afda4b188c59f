package game

import (
	"errors"
	"fmt"
)

// Judgement is the accuracy tier given to a note, best first.
type Judgement uint8

const (
	Perfect Judgement = iota
	Cool
	Fine
	Sad
	Miss
)

// Judgements lists every tier in order of decreasing accuracy.
var Judgements = [...]Judgement{Perfect, Cool, Fine, Sad, Miss}

var judgementNames = [...]string{"PERFECT", "COOL", "FINE", "SAD", "MISS"}

func (j Judgement) String() string {
	if int(j) < len(judgementNames) {
		return judgementNames[j]
	}
	return fmt.Sprintf("Judgement(%d)", uint8(j))
}

var ErrWindows = errors.New("invalid hit windows")

// HitWindows are absolute distances from the hit time, in seconds.
//
// perfect <= good <= safe <= sad <= miss
type HitWindows struct {
	Perfect float64
	Good    float64
	Safe    float64
	Sad     float64
	Miss    float64
}

func (w HitWindows) Validate() error {
	ws := [...]float64{w.Perfect, w.Good, w.Safe, w.Sad, w.Miss}
	for i, v := range ws {
		if v < 0 {
			return fmt.Errorf("%w: %v window is negative (%v)", ErrWindows, Judgements[i], v)
		}
		if i > 0 && v < ws[i-1] {
			return fmt.Errorf("%w: %v window %v is narrower than %v window %v",
				ErrWindows, Judgements[i], v, Judgements[i-1], ws[i-1])
		}
	}
	return nil
}

// Judge converts an absolute offset into a tier. Anything past the sad
// window is a miss, callers gate on the miss window before asking.
func (w HitWindows) Judge(dt float64) Judgement {
	switch {
	case dt <= w.Perfect:
		return Perfect
	case dt <= w.Good:
		return Cool
	case dt <= w.Safe:
		return Fine
	case dt <= w.Sad:
		return Sad
	}
	return Miss
}
