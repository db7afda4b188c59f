package theme

import (
	"fmt"

	"git.lost.host/meutraa/beats/internal/game"
)

type DefaultTheme struct {
	// Plain disables ANSI colors, for output that is not a terminal
	Plain bool
}

type color struct {
	R, G, B uint8
}

func (t *DefaultTheme) RenderJudgement(j game.Judgement) string {
	name := fmt.Sprintf("%7s", j.String())
	if t.Plain {
		return name
	}
	c, ok := judgementColors[j]
	if !ok {
		c = white
	}
	return paint(c, name)
}

func (t *DefaultTheme) RenderLane(lane int) string {
	name := fmt.Sprintf("%-7s", game.Lane(lane).String())
	if t.Plain {
		return name
	}
	if lane < 0 {
		return paint(white, name)
	}
	return paint(laneColors[lane%len(laneColors)], name)
}

func paint(c color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

var (
	white           = color{255, 255, 255}
	judgementColors = map[game.Judgement]color{
		game.Perfect: {236, 195, 0},   // yellow
		game.Cool:    {173, 236, 236}, // light blue
		game.Fine:    {0, 236, 128},   // green
		game.Sad:     {106, 0, 236},   // purple
		game.Miss:    {236, 30, 0},    // red
	}
	laneColors = [...]color{
		{236, 30, 0},
		{0, 118, 236},
		{0, 236, 128},
		{236, 128, 0},
		{236, 0, 106},
		{110, 147, 89},
	}
)
