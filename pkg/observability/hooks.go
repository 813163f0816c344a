// Package observability provides the progress observer used by the graph
// store and its algorithms.
//
// The library never logs. Instead, long-running operations (bulk loads,
// validation sweeps, graph rewrites) report events to an [Observer] that the
// caller injects through graph.Options. When no observer is given the store
// uses [NoopObserver], whose methods do nothing.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - One observer interface covering load, validate and transform events
//   - A no-op default implementation
//   - [Funcs], an adapter that turns individual callbacks into an Observer
//
// # Usage
//
//	obs := observability.Funcs{
//	    LoadComplete: func(src string, lines int, d time.Duration, err error) {
//	        logger.Info("loaded", "source", src, "lines", lines, "took", d)
//	    },
//	}
//	g, err := graph.Parse(text, graph.Options{Observer: obs})
package observability

import "time"

// DefaultProgressInterval is the number of lines between OnLoadProgress
// events during a bulk load.
const DefaultProgressInterval = 100_000

// =============================================================================
// Observer
// =============================================================================

// Observer receives events from graph loading, validation and rewriting.
// Implementations must be cheap; they are called synchronously.
type Observer interface {
	// Load events
	OnLoadStart(source string)
	OnLoadProgress(source string, lines int)
	OnLoadComplete(source string, lines int, duration time.Duration, err error)

	// OnValidate reports the outcome of a validation sweep.
	OnValidate(records int, duration time.Duration, err error)

	// OnTransform reports a graph rewrite such as compaction or repeat
	// multiplication. detail is a short human-readable summary.
	OnTransform(name, detail string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopObserver is a no-op implementation of Observer.
type NoopObserver struct{}

func (NoopObserver) OnLoadStart(string)                               {}
func (NoopObserver) OnLoadProgress(string, int)                       {}
func (NoopObserver) OnLoadComplete(string, int, time.Duration, error) {}
func (NoopObserver) OnValidate(int, time.Duration, error)             {}
func (NoopObserver) OnTransform(string, string, time.Duration, error) {}

// OrNoop returns o, or NoopObserver when o is nil.
func OrNoop(o Observer) Observer {
	if o == nil {
		return NoopObserver{}
	}
	return o
}

// =============================================================================
// Callback Adapter
// =============================================================================

// Funcs adapts optional callbacks to the Observer interface. Nil fields are
// skipped.
type Funcs struct {
	LoadStart    func(source string)
	LoadProgress func(source string, lines int)
	LoadComplete func(source string, lines int, duration time.Duration, err error)
	Validate     func(records int, duration time.Duration, err error)
	Transform    func(name, detail string, duration time.Duration, err error)
}

func (f Funcs) OnLoadStart(source string) {
	if f.LoadStart != nil {
		f.LoadStart(source)
	}
}

func (f Funcs) OnLoadProgress(source string, lines int) {
	if f.LoadProgress != nil {
		f.LoadProgress(source, lines)
	}
}

func (f Funcs) OnLoadComplete(source string, lines int, d time.Duration, err error) {
	if f.LoadComplete != nil {
		f.LoadComplete(source, lines, d, err)
	}
}

func (f Funcs) OnValidate(records int, d time.Duration, err error) {
	if f.Validate != nil {
		f.Validate(records, d, err)
	}
}

func (f Funcs) OnTransform(name, detail string, d time.Duration, err error) {
	if f.Transform != nil {
		f.Transform(name, detail, d, err)
	}
}

var (
	_ Observer = NoopObserver{}
	_ Observer = Funcs{}
)
