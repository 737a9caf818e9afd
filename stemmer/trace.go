package stemmer

import "fmt"

// EventKind discriminates trace events emitted during a search.
type EventKind int

const (
	EventEnter   EventKind = iota // search entered a word at some depth
	EventMatch                    // a suffix passed its guards and was stripped
	EventBlock                    // a structurally matching suffix was rejected by a guard
	EventResolve                  // a stripped base resolved to a lemma
	EventExhaust                  // a branch ran out of suffixes or depth
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventMatch:
		return "match"
	case EventBlock:
		return "block"
	case EventResolve:
		return "resolve"
	case EventExhaust:
		return "exhaust"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a single step in a stemming search, reported to a Tracer.
type Event struct {
	Kind     EventKind
	Word     string   // word under consideration at this step
	Depth    int      // remaining depth budget
	Category Category // suffix layer, CategoryNone for enter/exhaust
	Suffix   string   // suffix surface, "" for enter/exhaust
	Lemma    string   // resolved lemma, "" unless Kind is EventResolve
	Repair   Repair   // repair used, meaningful only for EventResolve
}

// Tracer receives search events. Implementations must be safe for
// concurrent use if the owning Engine is shared across goroutines.
// A nil Tracer disables tracing at no cost.
type Tracer interface {
	Trace(Event)
}

// trace reports ev to the configured tracer, if any.
func (e *Engine) trace(ev Event) {
	if e.tracer != nil {
		e.tracer.Trace(ev)
	}
}
