package impl

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"agriproxy/internal/domain/entity"
	"agriproxy/internal/domain/state"
	"agriproxy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func createTestAppStateService(t *testing.T) usecase.AppStateUsecase {
	t.Helper()

	return NewAppStateService(testLogger())
}

func TestAppStateService_StartsFromSeed(t *testing.T) {
	store := createTestAppStateService(t)

	snapshot := store.Snapshot()
	assert.Nil(t, snapshot.User)
	assert.NotEmpty(t, snapshot.Products)
	assert.Empty(t, snapshot.Cart)
	assert.False(t, snapshot.Loading)
}

func TestAppStateService_Dispatch_CartScenario(t *testing.T) {
	store := createTestAppStateService(t)

	product := store.Snapshot().Products[0]
	other := store.Snapshot().Products[1]

	store.Dispatch(state.AddToCart{Product: product})
	store.Dispatch(state.AddToCart{Product: product})
	store.Dispatch(state.AddToCart{Product: other})

	snapshot := store.Snapshot()
	require.Equal(t, 2, snapshot.CartCount())
	assert.Equal(t, 2, snapshot.Cart[0].Quantity)
	assert.Equal(t, 2*product.Price+other.Price, snapshot.CartTotal())

	store.Dispatch(state.RemoveFromCart{ProductID: product.ID})

	snapshot = store.Snapshot()
	require.Equal(t, 1, snapshot.CartCount())
	assert.Equal(t, other.ID, snapshot.Cart[0].ID)
}

func TestAppStateService_Snapshot_NotMutatedByLaterDispatch(t *testing.T) {
	store := createTestAppStateService(t)

	product := store.Snapshot().Products[0]
	store.Dispatch(state.AddToCart{Product: product})

	before := store.Snapshot()
	require.Equal(t, 1, before.Cart[0].Quantity)

	store.Dispatch(state.AddToCart{Product: product})
	store.Dispatch(state.ToggleFavorite{ProductID: product.ID})

	// The previously observed snapshot keeps its values.
	assert.Equal(t, 1, before.Cart[0].Quantity)
	assert.False(t, before.IsFavorite(product.ID))

	after := store.Snapshot()
	assert.Equal(t, 2, after.Cart[0].Quantity)
	assert.True(t, after.IsFavorite(product.ID))
}

func TestAppStateService_Subscribe_NotifiesWithNewSnapshot(t *testing.T) {
	store := createTestAppStateService(t)

	var received []state.AppState
	unsubscribe := store.Subscribe(func(s state.AppState) {
		received = append(received, s)
	})
	defer unsubscribe()

	store.Dispatch(state.SetError{Message: "boom"})
	store.Dispatch(state.SetError{Message: ""})

	require.Len(t, received, 2)
	assert.Equal(t, "boom", received[0].Error)
	assert.Equal(t, "", received[1].Error)
}

func TestAppStateService_Unsubscribe_StopsNotifications(t *testing.T) {
	store := createTestAppStateService(t)

	count := 0
	unsubscribe := store.Subscribe(func(state.AppState) { count++ })

	store.Dispatch(state.SetLoading{Loading: true})
	unsubscribe()
	store.Dispatch(state.SetLoading{Loading: false})

	assert.Equal(t, 1, count)
}

func TestAppStateService_ConcurrentDispatches(t *testing.T) {
	store := createTestAppStateService(t)
	product := store.Snapshot().Products[0]

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(state.AddToCart{Product: product})
		}()
	}
	wg.Wait()

	snapshot := store.Snapshot()
	require.Equal(t, 1, snapshot.CartCount())
	assert.Equal(t, 50, snapshot.Cart[0].Quantity)
}

func TestAppStateService_MarkNotificationRead(t *testing.T) {
	store := createTestAppStateService(t)

	unreadBefore := store.Snapshot().UnreadCount()
	require.Positive(t, unreadBefore)

	var unread *entity.Notification
	for _, n := range store.Snapshot().Notifications {
		if !n.Read {
			found := n
			unread = &found

			break
		}
	}
	require.NotNil(t, unread)

	store.Dispatch(state.MarkNotificationRead{ID: unread.ID})
	assert.Equal(t, unreadBefore-1, store.Snapshot().UnreadCount())

	// Marking the same notification again changes nothing.
	store.Dispatch(state.MarkNotificationRead{ID: unread.ID})
	assert.Equal(t, unreadBefore-1, store.Snapshot().UnreadCount())
}
