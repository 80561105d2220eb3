package domain

// StateDiff represents the changes between two consecutive walk states.
// It is designed to be serialized as one NDJSON line per step.
type StateDiff struct {
	Step     int       `json:"step"`
	Position *Position `json:"position,omitempty"`
	Heading  *Heading  `json:"heading,omitempty"`
	Status   *Status   `json:"status,omitempty"`

	// Emitted holds output entries appended since the old state.
	Emitted []string `json:"emitted,omitempty"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, it returns a diff representing the entire newState.
// Returns nil when nothing changed.
func Diff(oldState, newState *State) *StateDiff {
	if newState == nil {
		return nil
	}

	diff := &StateDiff{Step: newState.Steps}

	if oldState == nil || oldState.Position != newState.Position {
		p := newState.Position
		diff.Position = &p
	}
	if oldState == nil || oldState.Heading != newState.Heading {
		h := newState.Heading
		diff.Heading = &h
	}
	if oldState == nil || oldState.Status != newState.Status {
		st := newState.Status
		diff.Status = &st
	}

	start := 0
	if oldState != nil {
		start = len(oldState.Output)
	}
	if start < len(newState.Output) {
		diff.Emitted = append([]string(nil), newState.Output[start:]...)
	}

	if diff.Position == nil && diff.Heading == nil && diff.Status == nil && len(diff.Emitted) == 0 {
		return nil
	}
	return diff
}
