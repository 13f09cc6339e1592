package httpserver

import (
	"strings"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/arunmm8335/war-of-the-pixel/internal/event"
)

// celFilter wraps a compiled CEL program evaluated against event
// fields. When disabled, Eval always returns true.
type celFilter struct {
	prog    cel.Program
	enabled bool
}

func newCELFilter(expr string) (celFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return celFilter{enabled: false}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("x", cel.IntType),
		cel.Variable("y", cel.IntType),
		cel.Variable("color", cel.StringType),
		cel.Variable("source", cel.StringType),
		// HUMAN, AI_AGENT, or UNKNOWN regardless of agent name suffix
		cel.Variable("kind", cel.StringType),
		cel.Variable("message", cel.StringType),
		cel.Variable("ts_ms", cel.IntType),
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return celFilter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return celFilter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return celFilter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return celFilter{}, err
	}
	return celFilter{prog: prog, enabled: true}, nil
}

// Eval evaluates the expression against an event. Evaluation errors
// count as no match.
func (f celFilter) Eval(ev event.Event) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"x":       int64(ev.X),
		"y":       int64(ev.Y),
		"color":   ev.Color,
		"source":  ev.Source,
		"kind":    event.ClassifySource(ev.Source).String(),
		"message": ev.Message,
		"ts_ms":   ev.Timestamp,
		"now_ms":  time.Now().UnixMilli(),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
