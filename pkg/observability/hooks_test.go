package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopObserverDoesNotPanic(t *testing.T) {
	o := NoopObserver{}
	o.OnLoadStart("graph.gfa")
	o.OnLoadProgress("graph.gfa", 100)
	o.OnLoadComplete("graph.gfa", 100, time.Second, nil)
	o.OnValidate(10, time.Millisecond, nil)
	o.OnTransform("compact", "3 chains", time.Millisecond, errors.New("x"))
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopObserver); !ok {
		t.Error("OrNoop(nil) should return NoopObserver")
	}
	f := Funcs{}
	if _, ok := OrNoop(f).(Funcs); !ok {
		t.Error("OrNoop(f) should return f")
	}
}

func TestFuncs(t *testing.T) {
	var events []string
	f := Funcs{
		LoadStart:    func(string) { events = append(events, "start") },
		LoadComplete: func(string, int, time.Duration, error) { events = append(events, "complete") },
		Transform:    func(name, _ string, _ time.Duration, _ error) { events = append(events, name) },
	}

	f.OnLoadStart("x")
	f.OnLoadProgress("x", 1) // nil callback is skipped
	f.OnLoadComplete("x", 1, 0, nil)
	f.OnValidate(1, 0, nil) // nil callback is skipped
	f.OnTransform("multiply", "", 0, nil)

	want := []string{"start", "complete", "multiply"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}
