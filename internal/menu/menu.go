// Package menu holds the open/closed state of the mobile navigation menu.
package menu

import "sync"

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Trigger is a user action the menu reacts to.
type Trigger int

const (
	Toggle Trigger = iota
	ActivateLink
	ActivateResume
)

// Next returns the state after trigger is applied to current. Toggle flips
// the state; activating a link or the resume action always closes.
func Next(current State, trigger Trigger) State {
	switch trigger {
	case Toggle:
		if current == Open {
			return Closed
		}
		return Open
	case ActivateLink, ActivateResume:
		return Closed
	}
	return current
}

// Machine is one mounted menu. The zero value is closed.
type Machine struct {
	mu    sync.Mutex
	state State
}

func (m *Machine) Fire(trigger Trigger) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Next(m.state, trigger)
	return m.state
}

func (m *Machine) Toggle() State         { return m.Fire(Toggle) }
func (m *Machine) ActivateLink() State   { return m.Fire(ActivateLink) }
func (m *Machine) ActivateResume() State { return m.Fire(ActivateResume) }

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) IsOpen() bool {
	return m.State() == Open
}
