package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"git.lost.host/meutraa/beats/internal/game"
)

const (
	defaultApproach = 1.6
	defaultLanes    = 4
)

type DefaultParser struct{}

type chartFile struct {
	ID       string     `json:"id"`
	Title    string     `json:"title,omitempty"`
	Artist   string     `json:"artist,omitempty"`
	Audio    string     `json:"audio,omitempty"`
	Approach *float64   `json:"approachSeconds,omitempty"`
	Lanes    *int       `json:"lanes,omitempty"`
	Notes    []noteFile `json:"notes"`
}

type noteFile struct {
	T    float64 `json:"t"`
	Lane int     `json:"lane"`
	Type string  `json:"type,omitempty"`
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	chart, err := p.Decode(f)
	if nil != err {
		return nil, fmt.Errorf("unable to parse %v: %w", file, err)
	}
	return chart, nil
}

func (p *DefaultParser) Decode(r io.Reader) (*game.Chart, error) {
	var cf chartFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cf); nil != err {
		return nil, err
	}

	chart := &game.Chart{
		ID:                  cf.ID,
		Title:               cf.Title,
		Artist:              cf.Artist,
		AudioPath:           cf.Audio,
		ApproachTimeSeconds: defaultApproach,
		Lanes:               defaultLanes,
		Notes:               make([]game.ChartNote, 0, len(cf.Notes)),
	}
	if nil != cf.Approach {
		chart.ApproachTimeSeconds = *cf.Approach
	}
	if nil != cf.Lanes {
		chart.Lanes = *cf.Lanes
	}

	for i, n := range cf.Notes {
		nt := game.Tap
		if n.Type != "" {
			var ok bool
			if nt, ok = game.ParseNoteType(n.Type); !ok {
				return nil, fmt.Errorf("%w: note %d has unknown type %q", game.ErrInvalidChart, i, n.Type)
			}
		}
		chart.Notes = append(chart.Notes, game.ChartNote{
			TimeSeconds: n.T,
			Lane:        n.Lane,
			Type:        nt,
		})
	}

	if err := chart.Validate(); nil != err {
		return nil, err
	}
	return chart, nil
}

func (p *DefaultParser) Encode(w io.Writer, chart *game.Chart) error {
	approach, lanes := chart.ApproachTimeSeconds, chart.Lanes
	cf := chartFile{
		ID:       chart.ID,
		Title:    chart.Title,
		Artist:   chart.Artist,
		Audio:    chart.AudioPath,
		Approach: &approach,
		Lanes:    &lanes,
		Notes:    make([]noteFile, len(chart.Notes)),
	}
	for i, n := range chart.Notes {
		cf.Notes[i] = noteFile{T: n.TimeSeconds, Lane: n.Lane}
		if n.Type != game.Tap {
			cf.Notes[i].Type = n.Type.String()
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&cf)
}
