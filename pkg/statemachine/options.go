package statemachine

// Option configures a machine during construction.
type Option[S, E ~string] func(*Machine[S, E]) error

// TransitionOption attaches guards or actions to a single transition.
type TransitionOption[S, E ~string] func(*transitionConfig[S, E])

type transitionConfig[S, E ~string] struct {
	guards  []Guard[S, E]
	actions []Action[S, E]
}

// WithTransition registers from -> to on event.
func WithTransition[S, E ~string](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		cfg := &transitionConfig[S, E]{}
		for _, opt := range opts {
			opt(cfg)
		}
		return m.AddTransition(from, to, event, cfg.guards, cfg.actions)
	}
}

// WithGuard adds a guard to the transition. Nil guards are ignored.
func WithGuard[S, E ~string](g Guard[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if g != nil {
			cfg.guards = append(cfg.guards, g)
		}
	}
}

// WithAction adds an action to the transition. Nil actions are ignored.
func WithAction[S, E ~string](a Action[S, E]) TransitionOption[S, E] {
	return func(cfg *transitionConfig[S, E]) {
		if a != nil {
			cfg.actions = append(cfg.actions, a)
		}
	}
}
