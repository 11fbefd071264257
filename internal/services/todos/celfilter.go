package todosvc

import (
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/rzbill/todo/internal/todo"
)

// celFilter wraps a compiled CEL program evaluated per item during List.
// When disabled, Eval always returns true.
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
		cel.Variable("id", cel.IntType),
		cel.Variable("title", cel.StringType),
		cel.Variable("completed", cel.BoolType),
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

// Eval evaluates the compiled expression against one item. Items whose
// evaluation errors or yields a non-bool are excluded.
func (f celFilter) Eval(item todo.Item) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"id":        int64(item.ID),
		"title":     item.Title,
		"completed": item.Completed,
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
