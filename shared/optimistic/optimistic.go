package optimistic

// State is the lifecycle of a single optimistic mutation.
// Begin moves the tracker to StatePending; exactly one of Commit or
// Rollback then moves it to its terminal state.
type State int

const (
	StateIdle State = iota
	StatePending
	StateCommitted
	StateRolledBack
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled_back"
	default:
		return "idle"
	}
}

// Tracker holds a value through an optimistic update: the next value is
// visible immediately, and the previous value is restored on rollback.
type Tracker[T any] struct {
	previous T
	next     T
	state    State
}

// Begin starts an optimistic update from current to next.
func Begin[T any](current, next T) *Tracker[T] {
	return &Tracker[T]{
		previous: current,
		next:     next,
		state:    StatePending,
	}
}

// Value returns the currently visible value: the optimistic next value
// while pending or committed, the previous value after a rollback.
func (t *Tracker[T]) Value() T {
	if t.state == StateRolledBack {
		return t.previous
	}

	return t.next
}

// Commit marks the durable write as applied.
func (t *Tracker[T]) Commit() {
	if t.state == StatePending {
		t.state = StateCommitted
	}
}

// Rollback restores the previous value after a failed durable write.
func (t *Tracker[T]) Rollback() {
	if t.state == StatePending {
		t.state = StateRolledBack
	}
}

func (t *Tracker[T]) State() State {
	return t.state
}

func (t *Tracker[T]) Pending() bool {
	return t.state == StatePending
}
