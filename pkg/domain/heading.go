package domain

import (
	"fmt"
	"strings"
)

// Heading is the current direction of travel.
// The zero value is Right, the heading every walk starts with.
type Heading int

const (
	Right Heading = iota
	Down
	Left
	Up
)

// Glyphs recognised in the leading position of a token.
const (
	GlyphRight byte = '>'
	GlyphLeft  byte = '<'
	GlyphUp    byte = '^'
	GlyphDown  byte = 'v'
)

var headingNames = [...]string{
	Right: "right",
	Down:  "down",
	Left:  "left",
	Up:    "up",
}

func (h Heading) String() string {
	if h < Right || h > Up {
		return fmt.Sprintf("heading(%d)", int(h))
	}
	return headingNames[h]
}

// Glyph returns the character that selects this heading.
func (h Heading) Glyph() byte {
	switch h {
	case Down:
		return GlyphDown
	case Left:
		return GlyphLeft
	case Up:
		return GlyphUp
	default:
		return GlyphRight
	}
}

// ParseHeading resolves a heading from its name ("up", "Down"...) or its glyph.
func ParseHeading(s string) (Heading, error) {
	trimmed := strings.TrimSpace(s)
	name := strings.ToLower(trimmed)
	for h, n := range headingNames {
		if n == name {
			return Heading(h), nil
		}
	}
	if len(trimmed) == 1 {
		if h, ok := DirectionFor(trimmed); ok {
			return h, nil
		}
	}
	return Right, fmt.Errorf("unknown heading %q", s)
}

func (h Heading) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Heading) UnmarshalText(text []byte) error {
	parsed, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// DirectionFor reports the heading selected by the token's leading glyph.
// Only token[0] is inspected; ok is false when it is not a glyph, meaning
// the current heading is kept.
func DirectionFor(token string) (h Heading, ok bool) {
	if token == "" {
		return Right, false
	}
	switch token[0] {
	case GlyphRight:
		return Right, true
	case GlyphLeft:
		return Left, true
	case GlyphUp:
		return Up, true
	case GlyphDown:
		return Down, true
	}
	return Right, false
}

// Delta returns the per-step row and column change for a heading.
func Delta(h Heading) (dr, dc int) {
	switch h {
	case Left:
		return 0, -1
	case Down:
		return 1, 0
	case Up:
		return -1, 0
	default:
		return 0, 1
	}
}

// StripGlyph removes a leading glyph from the token. A glyph-only token yields "".
func StripGlyph(token string) string {
	if _, ok := DirectionFor(token); ok {
		return token[1:]
	}
	return token
}
