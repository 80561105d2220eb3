package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextHandler prints one joined result per line.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer

	// ShowNames prefixes each line with the grid name.
	ShowNames bool
	// ShowMismatch appends the expected value to lines that miss it.
	ShowMismatch bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithNames prefixes every line with the grid name and flags mismatches.
func WithNames() TextHandlerOption {
	return func(h *TextHandler) {
		h.ShowNames = true
		h.ShowMismatch = true
	}
}

// NewTextHandler creates a handler for standard text output.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, res Result) error {
	line := res.Result
	if h.ShowNames {
		line = fmt.Sprintf("%s: %s", res.Name, line)
	}
	if h.ShowMismatch && !res.Match {
		line = fmt.Sprintf("%s (expected: %s)", line, res.Expect)
	}

	if h.Renderer != nil {
		if rendered, err := h.Renderer(line); err == nil {
			line = strings.TrimSpace(rendered)
		}
	}

	_, err := fmt.Fprintln(h.Writer, line)
	return err
}
