package chat

import (
	"context"

	"github.com/Gk2403-techi/greenscape/internal/plan"
)

type Request struct {
	Message      string            `json:"message"`
	CurrentState plan.ProjectState `json:"current_state"`
}

type Response struct {
	Reply     string       `json:"reply"`
	ReplyHTML string       `json:"reply_html"`
	Updated   bool         `json:"updated"`
	NewPlan   *plan.Result `json:"new_plan"`
}

type Service struct {
	parser   *Parser
	engine   *plan.Engine
	renderer *Renderer
}

func NewService(parser *Parser, engine *plan.Engine, renderer *Renderer) *Service {
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Service{parser: parser, engine: engine, renderer: renderer}
}

// Respond parses the message, applies any changes to a copy of the current
// state and recomputes the plan. The plan is recomputed even when nothing
// changed.
func (s *Service) Respond(ctx context.Context, req Request) Response {
	changes, reply := s.parser.Parse(ctx, req.Message, req.CurrentState)
	next := req.CurrentState.Apply(changes)

	return Response{
		Reply:     reply,
		ReplyHTML: s.renderer.HTML(reply),
		Updated:   !changes.Empty(),
		NewPlan:   s.engine.Compute(ctx, next),
	}
}
