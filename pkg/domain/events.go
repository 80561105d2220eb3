package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStep      EventType = "step"
	EventTerminate EventType = "terminate"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StepEvent is emitted after a cell has been read and the cursor advanced.
type StepEvent struct {
	EventBase
	Position Position `json:"position"`
	Token    string   `json:"token"`
	Payload  string   `json:"payload"`
	From     Heading  `json:"from"`
	To       Heading  `json:"to"`
}

// Turned reports whether the cell's glyph changed the heading.
func (e *StepEvent) Turned() bool {
	return e.From != e.To
}

// TerminateEvent is emitted once, when the walk exits the grid or loops.
type TerminateEvent struct {
	EventBase
	Position Position `json:"position"`
	Status   Status   `json:"status"`
	Steps    int      `json:"steps"`
	Emitted  int      `json:"emitted"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStep      func(context.Context, *StepEvent)
	OnTerminate func(context.Context, *TerminateEvent)
}
