package operator

import (
	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/markusressel/pid2go/internal/tuning"
	"github.com/markusressel/pid2go/internal/ui"
	"unicode"
)

var keyCodeEvents = map[keys.KeyCode]tuning.Event{
	keys.F1:     {Kind: tuning.EventManual},
	keys.F2:     {Kind: tuning.EventAutomatic},
	keys.F4:     tuning.Step(-10),
	keys.PgDown: tuning.Step(-10),
	keys.F5:     tuning.Step(-1),
	keys.Down:   tuning.Step(-1),
	keys.F6:     tuning.Step(-0.1),
	keys.Left:   tuning.Step(-0.1),
	keys.F7:     tuning.Step(0.1),
	keys.Right:  tuning.Step(0.1),
	keys.F8:     tuning.Step(1),
	keys.Up:     tuning.Step(1),
	keys.F9:     tuning.Step(10),
	keys.PgUp:   tuning.Step(10),
	keys.F11:    {Kind: tuning.EventSelectNext},
	keys.F12:    {Kind: tuning.EventExport},
	keys.CtrlC:  {Kind: tuning.EventStop},
}

var runeEvents = map[rune]tuning.Event{
	'm': {Kind: tuning.EventManual},
	'a': {Kind: tuning.EventAutomatic},
	's': {Kind: tuning.EventSelectNext},
	't': {Kind: tuning.EventExport},
	'q': {Kind: tuning.EventStop},
}

// KeyEvent maps a key press to an operator event
func KeyEvent(key keys.Key) (tuning.Event, bool) {
	if key.Code == keys.RuneKey {
		if len(key.Runes) != 1 {
			return tuning.Event{}, false
		}
		event, ok := runeEvents[unicode.ToLower(key.Runes[0])]
		return event, ok
	}

	event, ok := keyCodeEvents[key.Code]
	return event, ok
}

// ListenKeyboard forwards key presses of the terminal to the given source
// until a stop event was sent. Blocks until then.
func ListenKeyboard(source *ChannelSource) error {
	return keyboard.Listen(func(key keys.Key) (stop bool, err error) {
		event, ok := KeyEvent(key)
		if !ok {
			return false, nil
		}
		if !source.Send(event) {
			ui.Warning("Dropped operator event '%s', queue is full", event)
		}
		return event.Kind == tuning.EventStop, nil
	})
}
