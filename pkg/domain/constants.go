package domain

const (
	// LoopSentinel is appended to the output when the walk revisits a cell.
	LoopSentinel = "LOOP"

	// Separator joins the emitted payloads into the externally visible result.
	Separator = ", "
)
