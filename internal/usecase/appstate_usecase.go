// Package usecase contains the application-specific business rules.
package usecase

import "agriproxy/internal/domain/state"

// AppStateUsecase defines the interface for the reducer-driven application
// data store. Dispatch is the only mutation path and runs each action to
// completion before the next one is applied.
type AppStateUsecase interface {
	// Dispatch applies the action through the reducer and publishes the
	// new snapshot to subscribers.
	Dispatch(action state.Action)

	// Snapshot returns the current immutable state value.
	Snapshot() state.AppState

	// Subscribe registers a listener invoked with every new snapshot.
	// The returned function removes the listener.
	Subscribe(fn func(state.AppState)) (unsubscribe func())
}
