// Package input turns raw key and gamepad state into per-player steering and system intents
package input

// IntentType discriminates non-steering actions
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentQuit
	IntentSteer
	IntentPause
)

// TurnDir is the side a binding steers toward
type TurnDir int8

const (
	TurnLeft  TurnDir = -1
	TurnRight TurnDir = 1
)

// Binding ties a key to one player's turn direction
type Binding struct {
	Player int
	Dir    TurnDir
}
