package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 4, c.Lanes)
	assert.Equal(t, 0.40, c.Windows.Miss)
	assert.Equal(t, 2.0, c.DriftDebtMultiplier)
}

func TestValidate(t *testing.T) {
	broken := map[string]func(c *EngineConfig){
		"lanes":      func(c *EngineConfig) { c.Lanes = 0 },
		"approach":   func(c *EngineConfig) { c.ApproachTimeSeconds = -1 },
		"lookahead":  func(c *EngineConfig) { c.SpawnLookaheadSeconds = -1 },
		"gap":        func(c *EngineConfig) { c.MinNoteGapSeconds = -0.1 },
		"alive":      func(c *EngineConfig) { c.MaxAlive = 0 },
		"lane alive": func(c *EngineConfig) { c.MaxAlivePerLane = 0 },
		"penalty":    func(c *EngineConfig) { c.DriftPenaltyPerMiss = -1 },
		"multiplier": func(c *EngineConfig) { c.DriftDebtMultiplier = -1 },
		"windows":    func(c *EngineConfig) { c.Windows.Sad = 0.5 },
	}
	for name, mutate := range broken {
		c := Default()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), ErrConfig, name)
	}
}

func TestSofteningMultiplierIsValid(t *testing.T) {
	c := Default()
	c.DriftDebtMultiplier = 0.5
	assert.NoError(t, c.Validate())
	c.DriftDebtMultiplier = 0
	assert.NoError(t, c.Validate())
}

func TestWindowsFor(t *testing.T) {
	w, err := WindowsFor("HARD")
	require.NoError(t, err)
	assert.Equal(t, 0.20, w.Miss)

	_, err = WindowsFor("nightmare")
	assert.ErrorIs(t, err, ErrConfig)
}

func TestFlags(t *testing.T) {
	app := kingpin.New("test", "")
	f := Register(app)
	_, err := app.Parse([]string{"--difficulty", "hard", "--drift-multiplier", "3"})
	require.NoError(t, err)

	c, err := f.EngineConfig(6, 1.6)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Lanes)
	assert.Equal(t, 1.6, c.ApproachTimeSeconds)
	assert.Equal(t, 0.04, c.Windows.Perfect)
	assert.Equal(t, 3.0, c.DriftDebtMultiplier)
}

func TestFlagsApproachOverridesChart(t *testing.T) {
	app := kingpin.New("test", "")
	f := Register(app)
	_, err := app.Parse([]string{"--approach", "1.2"})
	require.NoError(t, err)

	c, err := f.EngineConfig(0, 1.6)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Lanes)
	assert.Equal(t, 1.2, c.ApproachTimeSeconds)
}

func TestKeyLane(t *testing.T) {
	assert.Equal(t, 0, KeyLane('w', "wasd"))
	assert.Equal(t, 3, KeyLane('d', "wasd"))
	assert.Equal(t, -1, KeyLane('x', "wasd"))
}
