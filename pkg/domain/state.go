package domain

import "strings"

// Status defines where a walk is in its lifecycle.
type Status string

const (
	StatusActive Status = "active" // Cursor is inside the grid on an unvisited cell
	StatusExited Status = "exited" // Cursor left the grid bounds
	StatusLooped Status = "looped" // Cursor reached an already visited cell
)

// State represents the current snapshot of a walk.
// Each walk owns its State exclusively; nothing in it is shared across runs.
type State struct {
	// Position is the cell the cursor will read on the next step.
	Position Position `json:"position"`

	// Heading is the direction the cursor advances in.
	Heading Heading `json:"heading"`

	// Visited holds every position already emitted.
	Visited map[Position]struct{} `json:"-"`

	// Path lists visited positions in emission order.
	Path []Position `json:"path"`

	// Output is the ordered sequence of emitted payloads, including a trailing
	// LoopSentinel when the walk ended in a loop.
	Output []string `json:"output"`

	Status Status `json:"status"`

	// Steps counts transitions applied, the terminating one included.
	Steps int `json:"steps"`
}

// NewState creates the initial state: origin, heading Right, nothing visited.
func NewState() *State {
	return &State{
		Position: Origin,
		Heading:  Right,
		Visited:  make(map[Position]struct{}),
		Path:     []Position{},
		Output:   []string{},
		Status:   StatusActive,
	}
}

// Clone returns a deep copy that can be mutated without affecting s.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	next := *s
	next.Visited = make(map[Position]struct{}, len(s.Visited))
	for p := range s.Visited {
		next.Visited[p] = struct{}{}
	}
	next.Path = make([]Position, len(s.Path))
	copy(next.Path, s.Path)
	next.Output = make([]string, len(s.Output))
	copy(next.Output, s.Output)
	return &next
}

// Terminated reports whether the walk has reached a bounds exit or a loop.
func (s *State) Terminated() bool {
	return s.Status == StatusExited || s.Status == StatusLooped
}

// HasVisited reports whether p was already emitted.
func (s *State) HasVisited(p Position) bool {
	_, ok := s.Visited[p]
	return ok
}

// Payloads returns the emitted payloads without the loop sentinel.
func (s *State) Payloads() []string {
	if s.Status == StatusLooped && len(s.Output) > 0 {
		return s.Output[:len(s.Output)-1]
	}
	return s.Output
}

// Result joins the output with Separator, the walk's only external artifact.
func (s *State) Result() string {
	return Join(s.Output)
}

// Join joins an output sequence with Separator.
func Join(output []string) string {
	return strings.Join(output, Separator)
}
