package config

import (
	"errors"
	"fmt"
	"strings"

	"git.lost.host/meutraa/beats/internal/game"
)

var ErrConfig = errors.New("invalid engine config")

// EngineConfig is fixed for the lifetime of an engine.
type EngineConfig struct {
	Lanes               int
	ApproachTimeSeconds float64

	// Scheduling hints, the engine itself does not enforce them
	SpawnLookaheadSeconds float64
	MinNoteGapSeconds     float64
	MaxAlive              int
	MaxAlivePerLane       int

	Windows game.HitWindows

	DriftPenaltyPerMiss float64
	DriftDebtMultiplier float64
}

const (
	Normal = "normal"
	Hard   = "hard"
)

var difficulties = map[string]game.HitWindows{
	Normal: {Perfect: 0.08, Good: 0.18, Safe: 0.26, Sad: 0.33, Miss: 0.40},
	Hard:   {Perfect: 0.04, Good: 0.08, Safe: 0.12, Sad: 0.16, Miss: 0.20},
}

func Difficulties() []string {
	return []string{Normal, Hard}
}

func WindowsFor(difficulty string) (game.HitWindows, error) {
	w, ok := difficulties[strings.ToLower(difficulty)]
	if !ok {
		return game.HitWindows{}, fmt.Errorf("%w: unknown difficulty %q", ErrConfig, difficulty)
	}
	return w, nil
}

func Default() EngineConfig {
	return EngineConfig{
		Lanes:                 4,
		ApproachTimeSeconds:   2.8,
		SpawnLookaheadSeconds: 8.0,
		MinNoteGapSeconds:     0.22,
		MaxAlive:              8,
		MaxAlivePerLane:       1,
		Windows:               difficulties[Normal],
		DriftPenaltyPerMiss:   1.0,
		DriftDebtMultiplier:   2.0,
	}
}

func (c EngineConfig) Validate() error {
	switch {
	case c.Lanes <= 0:
		return fmt.Errorf("%w: lanes must be positive, got %v", ErrConfig, c.Lanes)
	case c.ApproachTimeSeconds <= 0:
		return fmt.Errorf("%w: approach time must be positive, got %v", ErrConfig, c.ApproachTimeSeconds)
	case c.SpawnLookaheadSeconds < 0:
		return fmt.Errorf("%w: negative spawn lookahead %v", ErrConfig, c.SpawnLookaheadSeconds)
	case c.MinNoteGapSeconds < 0:
		return fmt.Errorf("%w: negative note gap %v", ErrConfig, c.MinNoteGapSeconds)
	case c.MaxAlive <= 0 || c.MaxAlivePerLane <= 0:
		return fmt.Errorf("%w: alive caps must be positive, got %v and %v per lane", ErrConfig, c.MaxAlive, c.MaxAlivePerLane)
	case c.DriftPenaltyPerMiss < 0:
		return fmt.Errorf("%w: negative drift penalty %v", ErrConfig, c.DriftPenaltyPerMiss)
	case c.DriftDebtMultiplier < 0:
		return fmt.Errorf("%w: negative drift debt multiplier %v", ErrConfig, c.DriftDebtMultiplier)
	}
	if err := c.Windows.Validate(); nil != err {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return nil
}
