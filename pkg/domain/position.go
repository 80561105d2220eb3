package domain

import "fmt"

// Position is a cursor location on the grid.
// Coordinates may be negative or past the grid edge until checked with Grid.Contains.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Origin is the top-left cell, where every walk starts.
var Origin = Position{}

// Add returns the position moved by the given row and column deltas.
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
