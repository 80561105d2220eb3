package domain

// Fixture is a named grid, as served by a GridLoader.
type Fixture struct {
	Name string
	Grid Grid

	// Expect is the joined output the walk should produce. Empty means unchecked.
	Expect string
}
