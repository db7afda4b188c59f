package theme

import "git.lost.host/meutraa/beats/internal/game"

type Theme interface {
	RenderJudgement(j game.Judgement) string
	RenderLane(lane int) string
}
