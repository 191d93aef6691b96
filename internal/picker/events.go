package picker

import "time"

// EventKind distinguishes picker notifications.
type EventKind int

const (
	// EventDatesChanged follows every selection mutation.
	EventDatesChanged EventKind = iota
	// EventCleared follows an explicit Clear.
	EventCleared
)

func (k EventKind) String() string {
	if k == EventCleared {
		return "cleared"
	}
	return "dates-changed"
}

// Event carries the full ordered selection after a mutation.
type Event struct {
	Kind  EventKind
	Dates []time.Time
}

// Listener receives picker events synchronously.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (p *Picker) Subscribe(l Listener) (unsubscribe func()) {
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, subscription{id: id, fn: l})
	return func() {
		for i, s := range p.listeners {
			if s.id == id {
				p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

func (p *Picker) emit(kind EventKind) {
	ev := Event{Kind: kind, Dates: p.engine.Dates()}
	for _, s := range p.listeners {
		s.fn(ev)
	}
}
