package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/aretw0/gridwalk/pkg/domain"
)

// JSONHandler implements OutputHandler for structured JSON-Lines output.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON output.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

// Output emits the result as a single JSON line.
func (h *JSONHandler) Output(ctx context.Context, res Result) error {
	return h.Encoder.Encode(res)
}

// TraceRecord is one NDJSON line of a traced walk.
type TraceRecord struct {
	Grid string `json:"grid"`
	*domain.StateDiff
}

// TraceHandler is a JSONHandler that also emits every state diff.
type TraceHandler struct {
	*JSONHandler
}

// NewTraceHandler creates a JSON handler that streams per-step diffs before each result.
func NewTraceHandler(w io.Writer) *TraceHandler {
	return &TraceHandler{JSONHandler: NewJSONHandler(w)}
}

// Trace emits a state diff as a single JSON line.
func (h *TraceHandler) Trace(ctx context.Context, name string, diff *domain.StateDiff) error {
	return h.Encoder.Encode(TraceRecord{Grid: name, StateDiff: diff})
}
