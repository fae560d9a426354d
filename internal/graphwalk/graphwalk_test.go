package graphwalk_test

import (
	"reflect"
	"testing"

	"github.com/forgeql/graphforge/internal/graphwalk"
)

func walk(starts []string, edges map[string][]string) (done []string, cycles [][]string) {
	graphwalk.Walk(graphwalk.Config[string]{
		Starts: starts,
		Next:   func(k string) []string { return edges[k] },
		OnCycle: func(path []string, closing string) {
			cycle := append(append([]string(nil), path...), closing)
			cycles = append(cycles, cycle)
		},
		OnDone: func(k string) { done = append(done, k) },
	})
	return done, cycles
}

func TestWalk_PostorderCompletion(t *testing.T) {
	done, cycles := walk([]string{"a"}, map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
	})
	if len(cycles) != 0 {
		t.Fatalf("unexpected cycles: %v", cycles)
	}
	want := []string{"c", "b", "a"}
	if !reflect.DeepEqual(done, want) {
		t.Fatalf("want %v, got %v", want, done)
	}
}

func TestWalk_EachNodeCompletesOnce(t *testing.T) {
	done, _ := walk([]string{"a", "b", "c"}, map[string][]string{
		"a": {"c"},
		"b": {"c"},
	})
	seen := map[string]int{}
	for _, k := range done {
		seen[k]++
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("node %q completed %d times", k, n)
		}
	}
	if len(done) != 3 {
		t.Fatalf("want 3 completions, got %v", done)
	}
}

func TestWalk_SelfLoop(t *testing.T) {
	done, cycles := walk([]string{"a"}, map[string][]string{
		"a": {"a"},
	})
	if len(cycles) != 1 {
		t.Fatalf("want 1 cycle, got %v", cycles)
	}
	if want := []string{"a", "a"}; !reflect.DeepEqual(cycles[0], want) {
		t.Fatalf("want cycle %v, got %v", want, cycles[0])
	}
	if want := []string{"a"}; !reflect.DeepEqual(done, want) {
		t.Fatalf("node on cycle must still complete, got %v", done)
	}
}

func TestWalk_TwoNodeCycle(t *testing.T) {
	_, cycles := walk([]string{"foo"}, map[string][]string{
		"foo": {"bar"},
		"bar": {"foo"},
	})
	if len(cycles) != 1 {
		t.Fatalf("want 1 cycle, got %v", cycles)
	}
	// path runs from the cycle entry to the closing node, then back to entry
	want := []string{"foo", "bar", "bar"}
	if !reflect.DeepEqual(cycles[0], want) {
		t.Fatalf("want %v, got %v", want, cycles[0])
	}
}

func TestWalk_CycleBelowEntryPoint(t *testing.T) {
	done, cycles := walk([]string{"root"}, map[string][]string{
		"root": {"a"},
		"a":    {"b"},
		"b":    {"a"},
	})
	if len(cycles) != 1 {
		t.Fatalf("want 1 cycle, got %v", cycles)
	}
	// only the on-stack segment from the cycle entry is reported
	if want := []string{"a", "b", "b"}; !reflect.DeepEqual(cycles[0], want) {
		t.Fatalf("want %v, got %v", want, cycles[0])
	}
	if want := []string{"b", "a", "root"}; !reflect.DeepEqual(done, want) {
		t.Fatalf("want %v, got %v", want, done)
	}
}

func TestWalk_BackEdgeReportedOncePerEdge(t *testing.T) {
	_, cycles := walk([]string{"a", "b"}, map[string][]string{
		"a": {"b"},
		"b": {"a"},
	})
	// b finishes during a's walk, so starting from b again reports nothing
	if len(cycles) != 1 {
		t.Fatalf("want 1 cycle, got %v", cycles)
	}
}
