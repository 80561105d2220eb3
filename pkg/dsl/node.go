package dsl

import "github.com/aretw0/gridwalk/pkg/domain"

// Token is a single grid cell under construction.
type Token struct {
	heading domain.Heading
	turn    bool
	payload string
}

// Cell is a cell that keeps the current heading.
func Cell(payload string) Token {
	return Token{payload: payload}
}

// Right is a cell that turns the walk right.
func Right(payload string) Token { return Turn(domain.Right, payload) }

// Down is a cell that turns the walk down.
func Down(payload string) Token { return Turn(domain.Down, payload) }

// Left is a cell that turns the walk left.
func Left(payload string) Token { return Turn(domain.Left, payload) }

// Up is a cell that turns the walk up.
func Up(payload string) Token { return Turn(domain.Up, payload) }

// Turn is a cell that sets the heading to h.
func Turn(h domain.Heading, payload string) Token {
	return Token{heading: h, turn: true, payload: payload}
}

// String renders the raw token as it appears in a grid.
func (t Token) String() string {
	if !t.turn {
		return t.payload
	}
	return string(t.heading.Glyph()) + t.payload
}
