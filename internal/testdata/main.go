package testdata

import (
	"strings"

	"git.lost.host/meutraa/beats/internal/game"
	"git.lost.host/meutraa/beats/internal/parser"
)

// Demo is a short four lane chart with a chord and a same lane stream.
const Demo = `{
  "id": "demo",
  "title": "Demo",
  "artist": "Nobody",
  "audio": "music/demo.ogg",
  "approachSeconds": 1.6,
  "lanes": 4,
  "notes": [
    { "t": 2.0, "lane": 0 },
    { "t": 2.5, "lane": 1 },
    { "t": 3.0, "lane": 2 },
    { "t": 3.0, "lane": 3 },
    { "t": 3.5, "lane": 0 },
    { "t": 3.75, "lane": 0 },
    { "t": 4.0, "lane": 0 },
    { "t": 5.0, "lane": 3 }
  ]
}`

func GetChart() (*game.Chart, error) {
	var p parser.DefaultParser
	return p.Decode(strings.NewReader(Demo))
}
