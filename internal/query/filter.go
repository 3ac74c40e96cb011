// Package query compiles the boolean filters accepted by `ls`.
//
// Filters are expr-lang expressions over the fields id, text and completed:
//
//	!completed && text contains "milk"
//	id > 3
package query

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
)

type env struct {
	ID        int    `expr:"id"`
	Text      string `expr:"text"`
	Completed bool   `expr:"completed"`
}

// Filter is a compiled expression. The zero Filter matches everything.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses source. Blank source yields a match-all filter.
func Compile(source string) (*Filter, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return &Filter{}, nil
	}
	program, err := expr.Compile(source, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", source, err)
	}
	return &Filter{source: source, program: program}, nil
}

func (f *Filter) String() string { return f.source }

// Match evaluates the filter against one todo.
func (f *Filter) Match(t model.Todo) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, env{ID: t.ID, Text: t.Text, Completed: t.Completed})
	if err != nil {
		return false, fmt.Errorf("eval filter %q: %w", f.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply keeps the todos that match, preserving order.
func (f *Filter) Apply(todos []model.Todo) ([]model.Todo, error) {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		ok, err := f.Match(t)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}
