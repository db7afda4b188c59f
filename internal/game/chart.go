package game

import (
	"errors"
	"fmt"
)

var ErrInvalidChart = errors.New("invalid chart")

type NoteType uint8

const (
	Tap NoteType = iota
	// Hold and Flick are reserved, the engine only judges taps.
	Hold
	Flick
)

var noteTypeNames = [...]string{"tap", "hold", "flick"}

func (t NoteType) String() string {
	if int(t) < len(noteTypeNames) {
		return noteTypeNames[t]
	}
	return fmt.Sprintf("NoteType(%d)", uint8(t))
}

// ParseNoteType is the inverse of String.
func ParseNoteType(s string) (NoteType, bool) {
	for i, n := range noteTypeNames {
		if n == s {
			return NoteType(i), true
		}
	}
	return Tap, false
}

type ChartNote struct {
	TimeSeconds float64 // Absolute hit time
	Lane        int     // 0-based
	Type        NoteType
}

type Chart struct {
	ID     string
	Title  string
	Artist string
	// Relative to the chart file
	AudioPath string
	// How long a note is visible before its hit time
	ApproachTimeSeconds float64
	Lanes               int
	Notes               []ChartNote
}

func (c *Chart) Validate() error {
	if c.Lanes <= 0 {
		return fmt.Errorf("%w: %v lanes", ErrInvalidChart, c.Lanes)
	}
	if c.ApproachTimeSeconds <= 0 {
		return fmt.Errorf("%w: approach time %v", ErrInvalidChart, c.ApproachTimeSeconds)
	}
	for i, n := range c.Notes {
		if n.TimeSeconds < 0 {
			return fmt.Errorf("%w: note %d at negative time %v", ErrInvalidChart, i, n.TimeSeconds)
		}
		if n.Lane < 0 || n.Lane >= c.Lanes {
			return fmt.Errorf("%w: note %d in lane %d, chart has %d", ErrInvalidChart, i, n.Lane, c.Lanes)
		}
		if n.Type != Tap {
			return fmt.Errorf("%w: note %d is a %v note, only taps are supported", ErrInvalidChart, i, n.Type)
		}
	}
	return nil
}

// Length is the hit time of the last note.
func (c *Chart) Length() float64 {
	end := 0.0
	for _, n := range c.Notes {
		if n.TimeSeconds > end {
			end = n.TimeSeconds
		}
	}
	return end
}
