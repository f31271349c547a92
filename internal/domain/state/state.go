// Package state holds the application data model and its pure reducer.
// Every in-session domain collection lives in AppState, and the only way to
// produce a new state is to apply one of the closed set of actions through
// Reduce. The reducer never mutates its input: untouched collections are
// shared, touched collections are rebuilt, so a previously observed state
// is never changed underneath a reader.
package state

import (
	"maps"

	"agriproxy/internal/domain/entity"
)

// AppState is one immutable snapshot of all in-session domain collections.
type AppState struct {
	User          *entity.User          // Session identity mirror; nil while anonymous.
	Crops         []entity.Crop         // Planted field records, seeded at store creation.
	Products      []entity.Product      // Catalog reference data, seeded at store creation.
	Cart          []entity.CartItem     // At most one entry per product id.
	Favorites     map[int64]struct{}    // Set of favorited product ids.
	Notifications []entity.Notification // Most recent first.
	SoilTests     []entity.SoilTest     // Most recent first.
	PlantDiseases []entity.PlantDisease // Most recent first.
	Loading       bool                  // Coarse request-lifecycle flag.
	Error         string                // Last surfaced error message; empty means none.
}

// Action is one member of the closed set of state mutations.
type Action interface {
	isAction()
}

// SetLoading toggles the coarse request-lifecycle loading flag.
type SetLoading struct {
	Loading bool
}

// SetError sets or clears (empty message) the coarse error message.
type SetError struct {
	Message string
}

// SetUser replaces the session identity mirror. A nil user clears it.
type SetUser struct {
	User *entity.User
}

// AddToCart inserts the product with quantity 1, or increments the
// quantity of the existing entry with the same product id.
type AddToCart struct {
	Product entity.Product
}

// RemoveFromCart deletes the cart entry with the given product id.
// Absent id is a no-op, not an error.
type RemoveFromCart struct {
	ProductID int64
}

// ToggleFavorite removes the id from the favorite set if present,
// inserts it if absent.
type ToggleFavorite struct {
	ProductID int64
}

// UpdateUser shallow-merges the patch into the current user.
// A no-op while anonymous.
type UpdateUser struct {
	Patch entity.UserPatch
}

// AddSoilTest prepends the test; the list stays most-recent-first.
type AddSoilTest struct {
	Test entity.SoilTest
}

// UpdateSoilTest replaces the test whose id matches; no-op if absent.
type UpdateSoilTest struct {
	Test entity.SoilTest
}

// AddPlantDisease prepends the record; the list stays most-recent-first.
type AddPlantDisease struct {
	Record entity.PlantDisease
}

// UpdatePlantDisease replaces the record whose id matches; no-op if absent.
type UpdatePlantDisease struct {
	Record entity.PlantDisease
}

// MarkNotificationRead sets read on the matching notification.
// Absent or already-read ids are no-ops; read never reverts to false.
type MarkNotificationRead struct {
	ID int64
}

func (SetLoading) isAction()           {}
func (SetError) isAction()             {}
func (SetUser) isAction()              {}
func (AddToCart) isAction()            {}
func (RemoveFromCart) isAction()       {}
func (ToggleFavorite) isAction()       {}
func (UpdateUser) isAction()           {}
func (AddSoilTest) isAction()          {}
func (UpdateSoilTest) isAction()       {}
func (AddPlantDisease) isAction()      {}
func (UpdatePlantDisease) isAction()   {}
func (MarkNotificationRead) isAction() {}

// Reduce applies a single action to a state and returns the resulting state.
// It is a pure data transform over already-validated input and cannot fail;
// an unknown action returns the state unchanged.
func Reduce(s AppState, action Action) AppState {
	switch a := action.(type) {
	case SetLoading:
		s.Loading = a.Loading

	case SetError:
		s.Error = a.Message

	case SetUser:
		s.User = a.User

	case AddToCart:
		s.Cart = addToCart(s.Cart, a.Product)

	case RemoveFromCart:
		s.Cart = removeFromCart(s.Cart, a.ProductID)

	case ToggleFavorite:
		favorites := maps.Clone(s.Favorites)
		if favorites == nil {
			favorites = make(map[int64]struct{})
		}
		if _, ok := favorites[a.ProductID]; ok {
			delete(favorites, a.ProductID)
		} else {
			favorites[a.ProductID] = struct{}{}
		}
		s.Favorites = favorites

	case UpdateUser:
		if s.User != nil {
			merged := s.User.Merge(a.Patch)
			s.User = &merged
		}

	case AddSoilTest:
		s.SoilTests = prepend(s.SoilTests, a.Test)

	case UpdateSoilTest:
		s.SoilTests = replaceByID(s.SoilTests, a.Test, func(t entity.SoilTest) int64 { return t.ID })

	case AddPlantDisease:
		s.PlantDiseases = prepend(s.PlantDiseases, a.Record)

	case UpdatePlantDisease:
		s.PlantDiseases = replaceByID(s.PlantDiseases, a.Record, func(d entity.PlantDisease) int64 { return d.ID })

	case MarkNotificationRead:
		s.Notifications = markRead(s.Notifications, a.ID)
	}

	return s
}

func addToCart(cart []entity.CartItem, product entity.Product) []entity.CartItem {
	for i, item := range cart {
		if item.ID == product.ID {
			next := make([]entity.CartItem, len(cart))
			copy(next, cart)
			next[i].Quantity++

			return next
		}
	}

	next := make([]entity.CartItem, len(cart), len(cart)+1)
	copy(next, cart)

	return append(next, entity.CartItem{Product: product, Quantity: 1})
}

func removeFromCart(cart []entity.CartItem, productID int64) []entity.CartItem {
	idx := -1
	for i, item := range cart {
		if item.ID == productID {
			idx = i

			break
		}
	}
	if idx < 0 {
		return cart
	}

	next := make([]entity.CartItem, 0, len(cart)-1)
	next = append(next, cart[:idx]...)

	return append(next, cart[idx+1:]...)
}

func prepend[T any](list []T, item T) []T {
	next := make([]T, 0, len(list)+1)
	next = append(next, item)

	return append(next, list...)
}

// replaceByID swaps out the element whose id matches. When no element
// matches, the original slice is returned untouched.
func replaceByID[T any](list []T, item T, id func(T) int64) []T {
	idx := -1
	for i, existing := range list {
		if id(existing) == id(item) {
			idx = i

			break
		}
	}
	if idx < 0 {
		return list
	}

	next := make([]T, len(list))
	copy(next, list)
	next[idx] = item

	return next
}

func markRead(notifications []entity.Notification, id int64) []entity.Notification {
	idx := -1
	for i, n := range notifications {
		if n.ID == id && !n.Read {
			idx = i

			break
		}
	}
	if idx < 0 {
		return notifications
	}

	next := make([]entity.Notification, len(notifications))
	copy(next, notifications)
	next[idx].Read = true

	return next
}

// CartTotal returns the sum of all cart line totals in whole rupees.
func (s AppState) CartTotal() int64 {
	var total int64
	for _, item := range s.Cart {
		total += item.Subtotal()
	}

	return total
}

// CartCount returns the number of distinct products in the cart.
func (s AppState) CartCount() int {
	return len(s.Cart)
}

// IsFavorite reports whether the product id is in the favorite set.
func (s AppState) IsFavorite(productID int64) bool {
	_, ok := s.Favorites[productID]

	return ok
}

// UnreadCount returns the number of unread notifications.
func (s AppState) UnreadCount() int {
	count := 0
	for _, n := range s.Notifications {
		if !n.Read {
			count++
		}
	}

	return count
}
