package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/beats/internal/game"
)

var ErrScript = errors.New("invalid input script")

// Event is a key press on a lane at a song time in seconds.
type Event struct {
	Time float64
	Lane int
	Quit bool
}

// ReadScript reads presses written one per line as "time lane". Blank
// lines and lines starting with # are skipped. The result is sorted by
// time, presses at the same time keep their order.
func ReadScript(r io.Reader) ([]Event, error) {
	events := []Event{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected \"time lane\", got %q", ErrScript, line, l)
		}
		t, err := strconv.ParseFloat(fields[0], 64)
		if nil != err || t < 0 {
			return nil, fmt.Errorf("%w: line %d: bad time %q", ErrScript, line, fields[0])
		}
		lane, err := strconv.Atoi(fields[1])
		if nil != err {
			return nil, fmt.Errorf("%w: line %d: bad lane %q", ErrScript, line, fields[1])
		}
		events = append(events, Event{Time: t, Lane: lane})
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Time < events[j].Time })
	return events, nil
}

// WriteScript is the inverse of ReadScript.
func WriteScript(w io.Writer, events []Event) error {
	bw := bufio.NewWriter(w)
	for _, e := range events {
		if _, err := fmt.Fprintf(bw, "%s %d\n", strconv.FormatFloat(e.Time, 'f', -1, 64), e.Lane); nil != err {
			return err
		}
	}
	return bw.Flush()
}

// Autoplay presses every note at its hit time, moved by a uniform random
// offset in [-jitter, jitter].
func Autoplay(notes []game.NoteEvent, jitter float64, seed int64) []Event {
	rng := rand.New(rand.NewSource(seed))
	events := make([]Event, 0, len(notes))
	for _, n := range notes {
		t := n.HitTimeSeconds
		if jitter > 0 {
			t += (rng.Float64()*2 - 1) * jitter
		}
		if t < 0 {
			t = 0
		}
		events = append(events, Event{Time: t, Lane: n.Lane})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Time < events[j].Time })
	return events
}
