package statemachine

import "fmt"

// Table is an immutable set of allowed transitions between states of type S.
// Build it once and share it; start a Machine per run.
type Table[S comparable] struct {
	edges map[S]map[S]struct{}
}

// NewTable creates an empty transition table.
func NewTable[S comparable]() *Table[S] {
	return &Table[S]{edges: make(map[S]map[S]struct{})}
}

// Allow adds transitions from one state to each of the targets. Intended for
// construction only; a Table must not be modified once machines use it.
func (t *Table[S]) Allow(from S, to ...S) *Table[S] {
	out, ok := t.edges[from]
	if !ok {
		out = make(map[S]struct{}, len(to))
		t.edges[from] = out
	}
	for _, s := range to {
		out[s] = struct{}{}
	}
	return t
}

// Can reports whether from -> to is allowed.
func (t *Table[S]) Can(from, to S) bool {
	_, ok := t.edges[from][to]
	return ok
}

// Terminal reports whether s has no outgoing transitions.
func (t *Table[S]) Terminal(s S) bool {
	return len(t.edges[s]) == 0
}

// Start returns a machine positioned at initial.
func (t *Table[S]) Start(initial S) *Machine[S] {
	return &Machine[S]{table: t, current: initial, path: []S{initial}}
}

// Machine tracks one run through a Table. It is not safe for concurrent use.
type Machine[S comparable] struct {
	table   *Table[S]
	current S
	path    []S
}

func (m *Machine[S]) Current() S { return m.current }

// Path returns the visited states, initial state first.
func (m *Machine[S]) Path() []S {
	return append([]S(nil), m.path...)
}

// Done reports whether the current state is terminal.
func (m *Machine[S]) Done() bool {
	return m.table.Terminal(m.current)
}

// Fire moves to the next state or returns ErrNoTransition, leaving the machine unchanged.
func (m *Machine[S]) Fire(to S) error {
	if !m.table.Can(m.current, to) {
		return fmt.Errorf("%w: %v -> %v", ErrNoTransition, m.current, to)
	}
	m.current = to
	m.path = append(m.path, to)
	return nil
}
