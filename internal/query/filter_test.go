package query_test

import (
	"testing"

	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
	"github.com/johnsonav1992/remix-v3-experimental/internal/query"
)

var todos = []model.Todo{
	{ID: 1, Text: "buy milk", Completed: true},
	{ID: 2, Text: "walk dog"},
	{ID: 3, Text: "buy bread"},
	{ID: 4, Text: "call mom", Completed: true},
}

func ids(ts []model.Todo) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []int
	}{
		{"blank matches all", "   ", []int{1, 2, 3, 4}},
		{"completed", "completed", []int{1, 4}},
		{"pending", "!completed", []int{2, 3}},
		{"text contains", `text contains "buy"`, []int{1, 3}},
		{"combined", `!completed && text startsWith "buy"`, []int{3}},
		{"by id", "id >= 3", []int{3, 4}},
		{"none", "id > 100", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := query.Compile(tt.source)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got, err := f.Apply(todos)
			if err != nil {
				t.Fatalf("apply: %v", err)
			}
			gotIDs := ids(got)
			if len(gotIDs) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, gotIDs)
			}
			for i := range gotIDs {
				if gotIDs[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, gotIDs)
					break
				}
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"syntax", "completed &&"},
		{"unknown field", "priority > 1"},
		{"not boolean", "id + 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := query.Compile(tt.source); err == nil {
				t.Errorf("expected compile error for %q", tt.source)
			}
		})
	}
}

func TestNilFilterMatches(t *testing.T) {
	var f *query.Filter
	ok, err := f.Match(todos[0])
	if err != nil || !ok {
		t.Errorf("expected nil filter to match, got %v %v", ok, err)
	}
}
