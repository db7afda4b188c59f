package parser

import (
	"io"

	"git.lost.host/meutraa/beats/internal/game"
)

type Parser interface {
	Parse(file string) (*game.Chart, error)
	Decode(r io.Reader) (*game.Chart, error)
	Encode(w io.Writer, chart *game.Chart) error
}
