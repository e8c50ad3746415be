package snippet

import (
	"reflect"
	"testing"
)

func abc() []Entry {
	return []Entry{{"a", "1"}, {"b", "2"}, {"c", "3"}}
}

func TestIndex(t *testing.T) {
	entries := []Entry{{"x", "a"}, {"y", "b"}, {"x", "c"}}

	if got := Index(entries, "x"); got != 0 {
		t.Errorf("Index(x) = %d, want 0", got)
	}
	if got := Index(entries, "y"); got != 1 {
		t.Errorf("Index(y) = %d, want 1", got)
	}
	if got := Index(entries, "z"); got != -1 {
		t.Errorf("Index(z) = %d, want -1", got)
	}
	if got := Index(nil, "x"); got != -1 {
		t.Errorf("Index(nil) = %d, want -1", got)
	}
}

func TestFilter(t *testing.T) {
	entries := []Entry{{"git-log", "1"}, {"docker", "2"}, {"git-push", "3"}, {"Git", "4"}}

	got := Filter(entries, "git")
	want := []Entry{{"git-log", "1"}, {"git-push", "3"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(git) = %v, want %v", got, want)
	}

	if got := Filter(entries, "nothing"); len(got) != 0 {
		t.Errorf("Filter(nothing) = %v, want empty", got)
	}
}

func TestValues(t *testing.T) {
	entries := []Entry{{"x", "a"}, {"y", "b"}, {"x", "c"}}

	got := Values(entries, "x")
	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Values(x) = %v, want %v", got, want)
	}
	if got := Values(entries, "xx"); got != nil {
		t.Errorf("Values(xx) = %v, want nil", got)
	}
}

func TestSwapRemove(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []Entry
	}{
		{"first", 0, []Entry{{"c", "3"}, {"b", "2"}}},
		{"middle", 1, []Entry{{"a", "1"}, {"c", "3"}}},
		{"last", 2, []Entry{{"a", "1"}, {"b", "2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SwapRemove(abc(), tt.index)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SwapRemove(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestOrderedRemove(t *testing.T) {
	got := OrderedRemove(abc(), 0)
	want := []Entry{{"b", "2"}, {"c", "3"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OrderedRemove(0) = %v, want %v", got, want)
	}
}
