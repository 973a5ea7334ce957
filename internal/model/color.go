package model

// Color is the colour of a wheel pocket and of a bet.
type Color string

const (
	Red   Color = "RED"
	Black Color = "BLACK"
	Green Color = "GREEN"
)

func (c Color) String() string { return string(c) }
