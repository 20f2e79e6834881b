package game

import "errors"

var (
	// ErrInvalidConfig is returned by NewGame for unusable setup parameters.
	ErrInvalidConfig = errors.New("invalid game config")
	// ErrPlayerNotActive is returned when a turn is requested for an unknown or eliminated player.
	ErrPlayerNotActive = errors.New("player not active")
	// ErrGameOver is returned when a turn is requested after a winner was declared.
	ErrGameOver = errors.New("game is over")
	// ErrInvalidRoll is returned for dice values outside the die's faces.
	ErrInvalidRoll = errors.New("invalid dice roll")
)
