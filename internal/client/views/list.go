// Package views implements the client's list views over remote
// collections. Every view shares one contract: fetch on demand, fall back
// to a fixed sample collection when the backend fails (or when the session
// is a demo session), and filter purely in memory.
package views

import (
	"context"
	"strings"
	"sync"

	"github.com/clausecraft/clausecraft-cli/internal/logging"
)

// Source tags where a loaded collection came from, so callers can tell
// real data from canned data instead of silently hiding backend failures.
type Source string

const (
	// SourceLive is data fetched from the backend.
	SourceLive Source = "live"
	// SourceDemo is the view's sample collection, served intentionally
	// because the session is a demo session.
	SourceDemo Source = "demo"
	// SourceFallback is the view's sample collection, served because the
	// backend failed. Cause carries the failure.
	SourceFallback Source = "fallback"
)

// State is the view's load state. The only transitions are
// idle → loading → loaded/loaded-with-fallback, and loaded(-with-fallback)
// → loading on retry.
type State string

const (
	StateIdle           State = "idle"
	StateLoading        State = "loading"
	StateLoaded         State = "loaded"
	StateLoadedFallback State = "loaded-with-fallback"
)

// LoadResult reports the outcome of a single Load call.
type LoadResult struct {
	Source Source
	// Cause is the backend failure behind a SourceFallback load.
	Cause error
	// Stale is true when a newer Load superseded this one; the result
	// was discarded and the view state untouched.
	Stale bool
}

// Fetcher retrieves the view's collection from the backend.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Predicate checks one record against the current value of a categorical
// filter. It must treat its zero/"all" value as match-everything.
type Predicate[T any] func(item T, value string) bool

type filter[T any] struct {
	pred  Predicate[T]
	value string
}

// List is a generic remote list view: a loaded collection, a search
// string, categorical filters, and a load state. The fallback collection
// may be empty; some views ship no sample data and that is a legal
// configuration, not an error.
type List[T any] struct {
	name     string
	fetch    Fetcher[T]
	fallback []T
	nameFn   func(T) string
	demoFn   func() bool
	log      logging.Logger

	mu      sync.Mutex
	gen     uint64
	items   []T
	source  Source
	cause   error
	state   State
	search  string
	order   []string
	filters map[string]*filter[T]
}

// NewList builds a list view.
//
//	name      — view name, for logging only
//	fetch     — backend fetcher
//	fallback  — fixed sample collection (may be empty)
//	nameFn    — yields the display name used for search matching
//	demoFn    — reports whether the session is in demo mode; may be nil
func NewList[T any](name string, fetch Fetcher[T], fallback []T, nameFn func(T) string, demoFn func() bool, log logging.Logger) *List[T] {
	return &List[T]{
		name:     name,
		fetch:    fetch,
		fallback: fallback,
		nameFn:   nameFn,
		demoFn:   demoFn,
		log:      log,
		state:    StateIdle,
		filters:  make(map[string]*filter[T]),
	}
}

// RegisterFilter adds a categorical filter under the given name. The
// filter starts inactive (empty value).
func (l *List[T]) RegisterFilter(name string, pred Predicate[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.filters[name]; !ok {
		l.order = append(l.order, name)
	}
	l.filters[name] = &filter[T]{pred: pred}
}

// SetFilter sets the current value of a registered filter. Unknown names
// are ignored.
func (l *List[T]) SetFilter(name, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.filters[name]; ok {
		f.value = value
	}
}

// SetSearch updates the search string.
func (l *List[T]) SetSearch(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.search = s
}

// State returns the current load state.
func (l *List[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Source returns where the current collection came from.
func (l *List[T]) Source() Source {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source
}

// Cause returns the backend failure behind a fallback load, if any.
func (l *List[T]) Cause() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cause
}

// Items returns a copy of the loaded collection, unfiltered.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the size of the loaded collection.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Load fetches the collection, or serves the sample set in demo mode or
// on backend failure. Each call starts a new generation; a call whose
// generation has been superseded by the time it completes discards its
// result and reports Stale, so a slow response never overwrites newer
// state.
func (l *List[T]) Load(ctx context.Context) LoadResult {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.state = StateLoading
	demo := l.demoFn != nil && l.demoFn()
	l.mu.Unlock()

	var (
		items  []T
		source Source
		cause  error
	)

	switch {
	case demo:
		items = append([]T(nil), l.fallback...)
		source = SourceDemo
	default:
		fetched, err := l.fetch(ctx)
		if err != nil {
			l.log.Warn(ctx, "fetch failed, serving sample data", "view", l.name, "err", err)
			items = append([]T(nil), l.fallback...)
			source = SourceFallback
			cause = err
		} else {
			items = fetched
			source = SourceLive
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return LoadResult{Source: source, Cause: cause, Stale: true}
	}

	l.items = items
	l.source = source
	l.cause = cause
	if source == SourceFallback {
		l.state = StateLoadedFallback
	} else {
		l.state = StateLoaded
	}
	return LoadResult{Source: source, Cause: cause}
}

// Visible returns the records passing the search string and every active
// categorical filter, in collection order. It never mutates the loaded
// collection; the independent predicates commute.
func (l *List[T]) Visible() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]T, 0, len(l.items))
	needle := strings.ToLower(l.search)
	for _, item := range l.items {
		if needle != "" && !strings.Contains(strings.ToLower(l.nameFn(item)), needle) {
			continue
		}
		ok := true
		for _, name := range l.order {
			f := l.filters[name]
			if f.value != "" && !f.pred(item, f.value) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

// Prepend inserts a record at the head of the loaded collection. Used for
// optimistic local state after an upload; the record is reconciled away
// by the next full Load.
func (l *List[T]) Prepend(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]T{item}, l.items...)
}

// RemoveWhere deletes records matching pred from the loaded collection and
// reports how many were removed.
func (l *List[T]) RemoveWhere(pred func(T) bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0]
	removed := 0
	for _, item := range l.items {
		if pred(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	return removed
}
