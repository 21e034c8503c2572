// Package statemachine implements a small finite state machine over
// string-typed states and events.
//
// Transitions are registered with functional options and may carry guards,
// which decide whether the transition applies, and actions, which run before
// the state changes:
//
//	type state string
//	type event string
//
//	m := statemachine.MustNew[state, event]("unresolved",
//		statemachine.WithTransition[state, event]("unresolved", "found", "resolve",
//			statemachine.WithGuard[state, event](matches),
//		),
//		statemachine.WithTransition[state, event]("unresolved", "not_found", "resolve"),
//	)
//	_ = m.Fire(ctx, "resolve", slug)
//
// When several transitions share a source state and event the first one whose
// guards pass wins, so a guarded transition followed by an unguarded fallback
// models a branch.
//
// Fire reports a missing transition with *NoTransitionError and a vetoed one
// with *RejectedError; IsNoTransition and IsRejected test for them.
package statemachine
