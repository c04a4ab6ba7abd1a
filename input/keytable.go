package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to steering bindings and system intents
type KeyTable struct {
	Runes   map[rune]Binding
	Special map[tcell.Key]Binding
	System  map[tcell.Key]IntentType
	RuneSys map[rune]IntentType
}

// DefaultKeyTable binds A/D to player 1 and the arrow keys to player 2; P or Space pauses
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Binding{
			'a': {0, TurnLeft},
			'A': {0, TurnLeft},
			'd': {0, TurnRight},
			'D': {0, TurnRight},
		},
		Special: map[tcell.Key]Binding{
			tcell.KeyLeft:  {1, TurnLeft},
			tcell.KeyRight: {1, TurnRight},
		},
		System: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
		},
		RuneSys: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
			'p': IntentPause,
			'P': IntentPause,
			' ': IntentPause,
		},
	}
}

// Lookup classifies a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (IntentType, Binding) {
	if intent, ok := kt.System[ev.Key()]; ok {
		return intent, Binding{}
	}
	if ev.Key() == tcell.KeyRune {
		if b, ok := kt.Runes[ev.Rune()]; ok {
			return IntentSteer, b
		}
		return kt.RuneSys[ev.Rune()], Binding{}
	}
	if b, ok := kt.Special[ev.Key()]; ok {
		return IntentSteer, b
	}
	return IntentNone, Binding{}
}
