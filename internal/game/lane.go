package game

import "strconv"

// Lane names for the four lane layout.
type Lane int

const (
	Up Lane = iota
	Left
	Down
	Right
)

var laneNames = [...]string{"UP", "LEFT", "DOWN", "RIGHT"}

func (l Lane) String() string {
	if l >= 0 && int(l) < len(laneNames) {
		return laneNames[l]
	}
	return "lane " + strconv.Itoa(int(l))
}

// Clock is a playback time source, seconds since song start.
type Clock interface {
	NowSeconds() float64
}
