// Package impl contains the application-specific business rules implementations.
package impl

import (
	"log/slog"
	"sync"

	"agriproxy/internal/domain/state"
	"agriproxy/internal/usecase"
)

// appStateService implements the AppStateUsecase interface. It owns the
// current snapshot; the reducer itself stays pure.
type appStateService struct {
	logger *slog.Logger

	mu          sync.RWMutex
	current     state.AppState
	subscribers map[int]func(state.AppState)
	nextSubID   int
}

// NewAppStateService is the constructor for appStateService. The store
// starts from the seeded demo state.
func NewAppStateService(logger *slog.Logger) usecase.AppStateUsecase {
	return &appStateService{
		logger:      logger,
		current:     state.Seed(),
		subscribers: make(map[int]func(state.AppState)),
	}
}

// Dispatch applies the action run-to-completion: the reducer runs and the
// snapshot swaps under the lock, so concurrent dispatches serialize and
// no subscriber ever observes a half-applied action.
func (srv *appStateService) Dispatch(action state.Action) {
	srv.mu.Lock()
	srv.current = state.Reduce(srv.current, action)
	next := srv.current

	listeners := make([]func(state.AppState), 0, len(srv.subscribers))
	for _, fn := range srv.subscribers {
		listeners = append(listeners, fn)
	}
	srv.mu.Unlock()

	srv.logger.Debug("Dispatched action", slog.String("action", actionName(action)))

	for _, fn := range listeners {
		fn(next)
	}
}

// Snapshot returns the current immutable state value.
func (srv *appStateService) Snapshot() state.AppState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current
}

// Subscribe registers a listener for every new snapshot.
func (srv *appStateService) Subscribe(fn func(state.AppState)) func() {
	srv.mu.Lock()
	id := srv.nextSubID
	srv.nextSubID++
	srv.subscribers[id] = fn
	srv.mu.Unlock()

	return func() {
		srv.mu.Lock()
		delete(srv.subscribers, id)
		srv.mu.Unlock()
	}
}

func actionName(action state.Action) string {
	switch action.(type) {
	case state.SetLoading:
		return "setLoading"
	case state.SetError:
		return "setError"
	case state.SetUser:
		return "setUser"
	case state.AddToCart:
		return "addToCart"
	case state.RemoveFromCart:
		return "removeFromCart"
	case state.ToggleFavorite:
		return "toggleFavorite"
	case state.UpdateUser:
		return "updateUser"
	case state.AddSoilTest:
		return "addSoilTest"
	case state.UpdateSoilTest:
		return "updateSoilTest"
	case state.AddPlantDisease:
		return "addPlantDisease"
	case state.UpdatePlantDisease:
		return "updatePlantDisease"
	case state.MarkNotificationRead:
		return "markNotificationRead"
	default:
		return "unknown"
	}
}
