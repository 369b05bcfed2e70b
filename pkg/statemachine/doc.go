// Package statemachine provides a small typed finite-state machine.
//
// A Table lists the allowed transitions and is shared read-only; each run gets
// its own Machine from Table.Start:
//
//	var flow = statemachine.NewTable[State]().
//	    Allow(Resolving, Redirecting, Fixed).
//	    Allow(Fixed, Rendering)
//
//	m := flow.Start(Resolving)
//	if err := m.Fire(Fixed); err != nil {
//	    // errors.Is(err, statemachine.ErrNoTransition)
//	}
//
// Fire rejects transitions the table does not allow and leaves the machine
// where it was. Path records every state visited.
package statemachine
