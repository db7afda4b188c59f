package config

import (
	"strconv"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Flags are the session options shared by every command.
type Flags struct {
	Lanes           *int
	Approach        *float64
	Lookahead       *float64
	MinGap          *float64
	MaxAlive        *int
	MaxAlivePerLane *int
	Difficulty      *string
	DriftPenalty    *float64
	DriftMultiplier *float64

	Keep        *float64
	Keys        *string
	FramePeriod *time.Duration
	Delay       *time.Duration
	Debug       *bool

	approachSet bool
}

func Register(app *kingpin.Application) *Flags {
	d := Default()
	f := &Flags{}
	f.Lanes = app.Flag("lanes", "Lane count, charts override this").Default(itoa(d.Lanes)).Short('l').Int()
	f.Approach = app.Flag("approach", "Seconds a note is visible before its hit time").
		Default(ftoa(d.ApproachTimeSeconds)).Short('a').
		Action(func(*kingpin.ParseContext) error { f.approachSet = true; return nil }).Float64()
	f.Lookahead = app.Flag("lookahead", "Seconds before its hit time a note is spawned").Default(ftoa(d.SpawnLookaheadSeconds)).Float64()
	f.MinGap = app.Flag("min-gap", "Minimum seconds between generated notes").Default(ftoa(d.MinNoteGapSeconds)).Float64()
	f.MaxAlive = app.Flag("max-alive", "Unjudged notes allowed at once").Default(itoa(d.MaxAlive)).Int()
	f.MaxAlivePerLane = app.Flag("max-alive-lane", "Unjudged notes allowed per lane").Default(itoa(d.MaxAlivePerLane)).Int()
	f.Difficulty = app.Flag("difficulty", "Hit window preset").Default(Normal).Short('D').Enum(Difficulties()...)
	f.DriftPenalty = app.Flag("drift-penalty", "Drift added per miss").Default(ftoa(d.DriftPenaltyPerMiss)).Float64()
	f.DriftMultiplier = app.Flag("drift-multiplier", "Miss penalty multiplier while in drift debt").Default(ftoa(d.DriftDebtMultiplier)).Float64()
	f.Keep = app.Flag("keep", "Seconds judged notes stay visible").Default("2.0").Float64()
	f.Keys = app.Flag("keys", "Keys for each lane, left to right").Default("wasd").Short('k').String()
	f.FramePeriod = app.Flag("frame-period", "Simulation frame period").Default("4ms").Short('p').Duration()
	f.Delay = app.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	f.Debug = app.Flag("debug", "Debug logging").Bool()
	return f
}

// EngineConfig builds the engine options. Lanes and approach time come from
// the chart unless the approach was given on the command line.
func (f *Flags) EngineConfig(lanes int, approach float64) (EngineConfig, error) {
	w, err := WindowsFor(*f.Difficulty)
	if nil != err {
		return EngineConfig{}, err
	}
	c := EngineConfig{
		Lanes:                 *f.Lanes,
		ApproachTimeSeconds:   *f.Approach,
		SpawnLookaheadSeconds: *f.Lookahead,
		MinNoteGapSeconds:     *f.MinGap,
		MaxAlive:              *f.MaxAlive,
		MaxAlivePerLane:       *f.MaxAlivePerLane,
		Windows:               w,
		DriftPenaltyPerMiss:   *f.DriftPenalty,
		DriftDebtMultiplier:   *f.DriftMultiplier,
	}
	if lanes > 0 {
		c.Lanes = lanes
	}
	if approach > 0 && !f.approachSet {
		c.ApproachTimeSeconds = approach
	}
	return c, c.Validate()
}

// KeyLane returns the lane bound to r, or -1.
func KeyLane(r rune, keys string) int {
	for i, c := range []rune(keys) {
		if r == c {
			return i
		}
	}
	return -1
}

func itoa(i int) string { return strconv.Itoa(i) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
