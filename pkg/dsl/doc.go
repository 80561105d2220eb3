/*
Package dsl provides a fluent Go API for constructing gridwalk grids.

It is useful in tests and for generating grids programmatically, where writing
raw token strings (and remembering which glyph points where) is error prone.

Example usage:

	grid, err := dsl.New().
		Row(dsl.Cell("HI"), dsl.Cell("1"), dsl.Down("2")).
		Row(dsl.Cell("x"), dsl.Up("3"), dsl.Left("4")).
		Build()

	// grid is equivalent to:
	// [["HI", "1", "v2"], ["x", "^3", "<4"]]

Named builders can be collected into a memory loader:

	loader, err := dsl.Loader(
		dsl.New().Named("tiny").Expect("a").Row(dsl.Cell("a")),
	)
*/
package dsl
