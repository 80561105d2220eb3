/*
Package gridwalk walks a grid of string tokens, steering by directional glyphs.

A walk starts at the top-left cell heading right. Each visited cell emits its
payload (the token minus a leading '>', '<', '^' or 'v'); a leading glyph also
changes the heading. The walk ends when the cursor leaves the grid, or when it
reaches a cell it already visited, in which case "LOOP" is appended.

# Two Faces, One Engine

The same transition rule is exposed in two call shapes that always agree:

  - Walker: a small stateful object that can be stepped cell by cell.
  - Traverse / TraverseMatrix: stateless functions returning the whole walk.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/gridwalk"
	)

	func main() {
		out, err := gridwalk.TraverseMatrix([][]string{
			{"HI", "1", "2", "3", "v4"},
			{">9", "10", "11", "v12", "13"},
			{"^14", "15", "16", "17", "<18"},
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
		// HI, 1, 2, 3, 4, 13, 18, 17, 16, 15, 14, 9, 10, 11, 12, LOOP
	}

For observability, build an Engine with New and pass WithLogger or
WithLifecycleHooks; Engine.NewWalker and Engine.Solve use those settings.
*/
package gridwalk
