package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard vetoes a transition when it returns false.
type Guard[S, E ~string] func(ctx context.Context, from S, event E, data any) bool

// Action runs a side effect before the state changes. A non-nil error aborts
// the transition and leaves the machine in its current state.
type Action[S, E ~string] func(ctx context.Context, from, to S, event E, data any) error

type transition[S, E ~string] struct {
	to      S
	guards  []Guard[S, E]
	actions []Action[S, E]
}

// Machine is a finite state machine over string-typed states and events.
// Several transitions may share a source state and event; the first one whose
// guards all pass is taken, so registration order sets priority.
// Machine is safe for concurrent use.
type Machine[S, E ~string] struct {
	mu          sync.RWMutex
	initial     S
	current     S
	transitions map[S]map[E][]transition[S, E]
}

// New builds a machine in the initial state and applies the options.
func New[S, E ~string](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	if initial == "" {
		return nil, ErrEmptyState
	}
	m := &Machine[S, E]{
		initial:     initial,
		current:     initial,
		transitions: make(map[S]map[E][]transition[S, E]),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on error. Use it for machines whose
// transitions are fixed at compile time.
func MustNew[S, E ~string](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("statemachine: %v", err))
	}
	return m
}

// Current returns the state the machine is in.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// AddTransition registers a transition from -> to on event.
func (m *Machine[S, E]) AddTransition(from, to S, event E, guards []Guard[S, E], actions []Action[S, E]) error {
	if from == "" || to == "" {
		return ErrEmptyState
	}
	if event == "" {
		return ErrEmptyEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[from]
	if !ok {
		byEvent = make(map[E][]transition[S, E])
		m.transitions[from] = byEvent
	}
	byEvent[event] = append(byEvent[event], transition[S, E]{to: to, guards: guards, actions: actions})
	return nil
}

// Fire moves the machine along the first transition for event whose guards
// pass, running its actions first.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return &NoTransitionError{State: string(m.current), Event: string(event)}
	}

	t, ok := m.pick(ctx, candidates, event, data)
	if !ok {
		return &RejectedError{State: string(m.current), Event: string(event)}
	}

	for _, action := range t.actions {
		if err := action(ctx, m.current, t.to, event, data); err != nil {
			return fmt.Errorf("%w: %s -> %s: %w", ErrActionFailed, m.current, t.to, err)
		}
	}

	m.current = t.to
	return nil
}

// CanFire reports whether Fire would find a transition for event.
// Actions are not run.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.pick(ctx, m.transitions[m.current][event], event, data)
	return ok
}

// Reset returns the machine to its initial state.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

func (m *Machine[S, E]) pick(ctx context.Context, candidates []transition[S, E], event E, data any) (transition[S, E], bool) {
	for _, t := range candidates {
		passed := true
		for _, guard := range t.guards {
			if !guard(ctx, m.current, event, data) {
				passed = false
				break
			}
		}
		if passed {
			return t, true
		}
	}
	return transition[S, E]{}, false
}
