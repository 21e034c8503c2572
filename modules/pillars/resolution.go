package pillars

import (
	"context"
	"fmt"

	"github.com/wizardwayz/portal/pkg/pillar"
	"github.com/wizardwayz/portal/pkg/statemachine"
)

// State is the resolution state of a pillar page.
type State string

const (
	StateUnresolved State = "unresolved"
	StateFound      State = "found"
	StateNotFound   State = "not_found"
)

type event string

const eventResolve event = "resolve"

// Resolution is the outcome of resolving one requested slug.
type Resolution struct {
	Slug   string
	State  State
	Pillar pillar.Pillar
	// Outbound is the external destination of the redirect pillar, if any.
	Outbound string
}

// Redirects reports whether the resolved pillar sends the visitor elsewhere.
func (r Resolution) Redirects() bool {
	return r.State == StateFound && r.Outbound != ""
}

// Resolver moves a page from unresolved to found or not_found with a single
// registry lookup. A fresh machine is used per request; the transition table
// is shared.
type Resolver struct {
	registry *pillar.Registry
	table    []statemachine.Option[State, event]
}

func NewResolver(registry *pillar.Registry) *Resolver {
	r := &Resolver{registry: registry}
	r.table = []statemachine.Option[State, event]{
		statemachine.WithTransition(StateUnresolved, StateFound, eventResolve,
			statemachine.WithGuard[State, event](r.known),
			statemachine.WithAction[State, event](r.bind),
		),
		statemachine.WithTransition[State, event](StateUnresolved, StateNotFound, eventResolve),
	}
	return r
}

// Resolve matches slug exactly against the registry.
func (r *Resolver) Resolve(ctx context.Context, slug string) (Resolution, error) {
	m, err := statemachine.New(StateUnresolved, r.table...)
	if err != nil {
		return Resolution{}, fmt.Errorf("build resolver: %w", err)
	}

	res := &Resolution{Slug: slug, State: StateUnresolved}
	if err := m.Fire(ctx, eventResolve, res); err != nil {
		return Resolution{}, fmt.Errorf("resolve %q: %w", slug, err)
	}
	res.State = m.Current()
	return *res, nil
}

func (r *Resolver) known(_ context.Context, _ State, _ event, data any) bool {
	res, ok := data.(*Resolution)
	if !ok {
		return false
	}
	_, err := r.registry.ResolveSlug(res.Slug)
	return err == nil
}

func (r *Resolver) bind(_ context.Context, _, _ State, _ event, data any) error {
	res, ok := data.(*Resolution)
	if !ok {
		return fmt.Errorf("unexpected resolution payload %T", data)
	}
	p, err := r.registry.ResolveSlug(res.Slug)
	if err != nil {
		return err
	}
	res.Pillar = p
	res.Outbound, _ = r.registry.Outbound(p.Name)
	return nil
}
