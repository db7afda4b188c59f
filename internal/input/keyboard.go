package input

import (
	"log/slog"

	"git.lost.host/meutraa/beats/internal/config"
	"git.lost.host/meutraa/beats/internal/game"
	"github.com/eiannone/keyboard"
)

// Keyboard turns terminal key presses into lane events stamped with the
// song clock.
type Keyboard struct {
	Keys  string
	Clock game.Clock
}

// Listen puts the terminal in raw mode and sends presses to events until Esc
// is pressed or reading fails. The returned function restores the terminal.
func (k *Keyboard) Listen(events chan<- Event) (func() error, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}

	go func() {
		for key := range keys {
			now := k.Clock.NowSeconds()
			if nil != key.Err {
				slog.Error("unable to read keyboard input", "err", key.Err)
				events <- Event{Time: now, Quit: true}
				return
			}
			if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
				events <- Event{Time: now, Quit: true}
				return
			}
			lane := config.KeyLane(key.Rune, k.Keys)
			if lane < 0 {
				slog.Debug("not a lane key", "rune", string(key.Rune))
				continue
			}
			events <- Event{Time: now, Lane: lane}
		}
	}()

	return keyboard.Close, nil
}
