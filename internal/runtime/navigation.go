package runtime

import (
	"context"
	"fmt"

	"github.com/aretw0/gridwalk/pkg/domain"
)

// transition is the single step rule shared by Step, Advance and Run:
// bounds check, loop check, mark visited, emit payload, turn, advance.
func (e *Engine) transition(ctx context.Context, grid domain.Grid, s *domain.State) error {
	s.Steps++

	if !grid.Contains(s.Position) {
		s.Status = domain.StatusExited
		e.emitTerminate(ctx, s)
		return nil
	}

	if s.HasVisited(s.Position) {
		s.Output = append(s.Output, domain.LoopSentinel)
		s.Status = domain.StatusLooped
		e.emitTerminate(ctx, s)
		return nil
	}

	if s.Visited == nil {
		s.Visited = make(map[domain.Position]struct{})
	}
	s.Visited[s.Position] = struct{}{}
	s.Path = append(s.Path, s.Position)

	token, err := grid.At(s.Position)
	if err != nil {
		// Unreachable after the bounds check above.
		return fmt.Errorf("read cell %s: %w", s.Position, err)
	}

	payload := domain.StripGlyph(token)
	s.Output = append(s.Output, payload)

	from := s.Heading
	if h, ok := domain.DirectionFor(token); ok {
		s.Heading = h
	}

	at := s.Position
	dr, dc := domain.Delta(s.Heading)
	s.Position = s.Position.Add(dr, dc)

	e.emitStep(ctx, at, token, payload, from, s.Heading)
	return nil
}

func (e *Engine) emitStep(ctx context.Context, at domain.Position, token, payload string, from, to domain.Heading) {
	e.logger.Debug("cell visited", "position", at.String(), "token", token, "heading", to.String())

	if e.hooks.OnStep == nil {
		return
	}
	e.hooks.OnStep(ctx, &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventStep},
		Position:  at,
		Token:     token,
		Payload:   payload,
		From:      from,
		To:        to,
	})
}

func (e *Engine) emitTerminate(ctx context.Context, s *domain.State) {
	e.logger.Debug("walk terminated", "status", string(s.Status), "position", s.Position.String(), "steps", s.Steps)

	if e.hooks.OnTerminate == nil {
		return
	}
	e.hooks.OnTerminate(ctx, &domain.TerminateEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventTerminate},
		Position:  s.Position,
		Status:    s.Status,
		Steps:     s.Steps,
		Emitted:   len(s.Payloads()),
	})
}
