/*
Package domain contains the core models of the gridwalk traversal.

It defines the immutable Grid, the Position and Heading values that make up
the cursor, the glyph rules that map a token's leading character to a heading,
and the State record threaded through the engine's transition function.
This package is kept pure and free of I/O, following the same hexagonal
layout as the rest of the module.

# Key Entities

  - Grid: a rectangular, read-only table of string tokens.
  - Position: a (row, col) value; comparable and usable as a map key.
  - Heading: one of Up, Down, Left, Right. Walks always start heading Right.
  - State: the runtime snapshot of a walk (cursor, visited set, output, status).
  - Fixture: a named grid, optionally paired with its expected output.
*/
package domain
