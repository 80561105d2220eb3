package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/aretw0/gridwalk/pkg/domain"
)

// CommentPrefix starts a comment line in the text grid format.
const CommentPrefix = "#"

// Parser converts the plain-text grid format into a Grid.
//
// The format is one row per line with whitespace-separated tokens. Blank
// lines and lines starting with '#' are ignored:
//
//	# exits at 4
//	HI  1    v2   >3   4
//	v9  <10  >11  ^12  13
//	14  ^15  16   17   <18
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// ParseRows splits the text into rows of tokens without validating shape.
func (p *Parser) ParseRows(data []byte) ([][]string, error) {
	var rows [][]string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	return rows, nil
}

// Parse decodes the text into a rectangular Grid.
func (p *Parser) Parse(data []byte) (domain.Grid, error) {
	rows, err := p.ParseRows(data)
	if err != nil {
		return domain.Grid{}, err
	}
	grid, err := domain.NewGrid(rows)
	if err != nil {
		return domain.Grid{}, fmt.Errorf("failed to parse grid: %w", err)
	}
	return grid, nil
}

// Format renders a grid back into the text format, padding columns for readability.
func (p *Parser) Format(grid domain.Grid) []byte {
	cells := grid.Cells()
	widths := make([]int, grid.Cols())
	for _, row := range cells {
		for c, tok := range row {
			if len(tok) > widths[c] {
				widths[c] = len(tok)
			}
		}
	}

	var buf bytes.Buffer
	for _, row := range cells {
		for c, tok := range row {
			if c == len(row)-1 {
				buf.WriteString(tok)
				break
			}
			fmt.Fprintf(&buf, "%-*s ", widths[c], tok)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
