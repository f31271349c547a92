package state

import (
	"testing"

	"agriproxy/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id int64, price int64) entity.Product {
	return entity.Product{
		ID:       id,
		Name:     "Neem Oil",
		Category: "Biopesticides",
		Price:    price,
		Rating:   4.8,
		InStock:  true,
	}
}

func TestReduce_AddToCart_AccumulatesQuantity(t *testing.T) {
	s := AppState{}
	product := testProduct(1, 100)

	for range 5 {
		s = Reduce(s, AddToCart{Product: product})
	}

	require.Len(t, s.Cart, 1)
	assert.Equal(t, 5, s.Cart[0].Quantity)
	assert.Equal(t, int64(500), s.CartTotal())
}

func TestReduce_AddToCart_DistinctProducts(t *testing.T) {
	s := AppState{}

	s = Reduce(s, AddToCart{Product: testProduct(1, 100)})
	s = Reduce(s, AddToCart{Product: testProduct(2, 250)})
	s = Reduce(s, AddToCart{Product: testProduct(1, 100)})

	require.Len(t, s.Cart, 2)
	assert.Equal(t, 2, s.Cart[0].Quantity)
	assert.Equal(t, 1, s.Cart[1].Quantity)
	assert.Equal(t, int64(450), s.CartTotal())
}

func TestReduce_RemoveFromCart_Idempotent(t *testing.T) {
	s := AppState{}
	s = Reduce(s, AddToCart{Product: testProduct(1, 100)})

	s = Reduce(s, RemoveFromCart{ProductID: 1})
	assert.Empty(t, s.Cart)

	// Second removal of the same id is a no-op, not an error.
	s = Reduce(s, RemoveFromCart{ProductID: 1})
	assert.Empty(t, s.Cart)
}

func TestReduce_ToggleFavorite_Involution(t *testing.T) {
	s := AppState{}

	s = Reduce(s, ToggleFavorite{ProductID: 3})
	assert.True(t, s.IsFavorite(3))

	s = Reduce(s, ToggleFavorite{ProductID: 3})
	assert.False(t, s.IsFavorite(3))
	assert.Empty(t, s.Favorites)
}

func TestReduce_ToggleFavorite_SetSemantics(t *testing.T) {
	s := AppState{}

	s = Reduce(s, ToggleFavorite{ProductID: 1})
	s = Reduce(s, ToggleFavorite{ProductID: 2})
	s = Reduce(s, ToggleFavorite{ProductID: 1})
	s = Reduce(s, ToggleFavorite{ProductID: 1})

	assert.Len(t, s.Favorites, 2)
	assert.True(t, s.IsFavorite(1))
	assert.True(t, s.IsFavorite(2))
}

func TestReduce_UpdateUser_ShallowMerge(t *testing.T) {
	s := AppState{User: &entity.User{ID: "u1", Name: "Rajesh Kumar", Phone: "9000000000"}}

	name := "Rajesh K."
	s = Reduce(s, UpdateUser{Patch: entity.UserPatch{Name: &name}})

	assert.Equal(t, "Rajesh K.", s.User.Name)
	assert.Equal(t, "9000000000", s.User.Phone, "untouched fields survive the merge")
}

func TestReduce_UpdateUser_NoopWhileAnonymous(t *testing.T) {
	s := AppState{}

	name := "anyone"
	s = Reduce(s, UpdateUser{Patch: entity.UserPatch{Name: &name}})

	assert.Nil(t, s.User)
}

func TestReduce_AddSoilTest_Prepends(t *testing.T) {
	s := Seed()
	test := entity.SoilTest{ID: 99, Date: "2025-02-01", Status: entity.SoilTestProcessing}

	s = Reduce(s, AddSoilTest{Test: test})

	require.NotEmpty(t, s.SoilTests)
	assert.Equal(t, int64(99), s.SoilTests[0].ID, "newest entry must be first")
}

func TestReduce_UpdateSoilTest_ReplacesByID(t *testing.T) {
	s := Seed()
	ph := 7.1
	updated := entity.SoilTest{
		ID:              2,
		Date:            "2025-01-15",
		Status:          entity.SoilTestCompleted,
		PH:              &ph,
		Nitrogen:        entity.NutrientHigh,
		Phosphorus:      entity.NutrientMedium,
		Potassium:       entity.NutrientMedium,
		Recommendations: []string{"Maintain current pH level"},
	}

	s = Reduce(s, UpdateSoilTest{Test: updated})

	var found *entity.SoilTest
	for i := range s.SoilTests {
		if s.SoilTests[i].ID == 2 {
			found = &s.SoilTests[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, entity.SoilTestCompleted, found.Status)
	assert.Equal(t, updated, *found, "replace-by-id, not merge")
}

func TestReduce_UpdateSoilTest_UnknownIDLeavesListUnchanged(t *testing.T) {
	s := Seed()
	before := s.SoilTests

	s = Reduce(s, UpdateSoilTest{Test: entity.SoilTest{ID: 404, Status: entity.SoilTestFailed}})

	assert.Equal(t, before, s.SoilTests)
}

func TestReduce_UpdatePlantDisease_UnknownIDLeavesListUnchanged(t *testing.T) {
	s := Seed()
	before := s.PlantDiseases

	s = Reduce(s, UpdatePlantDisease{Record: entity.PlantDisease{ID: 404, Status: entity.DiseaseTreated}})

	assert.Equal(t, before, s.PlantDiseases)
}

func TestReduce_MarkNotificationRead_Monotonic(t *testing.T) {
	s := Seed()

	s = Reduce(s, MarkNotificationRead{ID: 1})
	assert.True(t, s.Notifications[0].Read)

	// Further calls never flip the flag back.
	s = Reduce(s, MarkNotificationRead{ID: 1})
	assert.True(t, s.Notifications[0].Read)

	// Absent id is a no-op.
	before := s.Notifications
	s = Reduce(s, MarkNotificationRead{ID: 404})
	assert.Equal(t, before, s.Notifications)
}

func TestReduce_DoesNotMutatePriorSnapshot(t *testing.T) {
	s0 := AppState{}
	s0 = Reduce(s0, AddToCart{Product: testProduct(1, 100)})

	s1 := Reduce(s0, AddToCart{Product: testProduct(1, 100)})

	assert.Equal(t, 1, s0.Cart[0].Quantity, "earlier snapshot must stay intact")
	assert.Equal(t, 2, s1.Cart[0].Quantity)

	s2 := Reduce(s1, ToggleFavorite{ProductID: 1})
	assert.False(t, s1.IsFavorite(1))
	assert.True(t, s2.IsFavorite(1))
}

func TestReduce_SetLoadingAndError(t *testing.T) {
	s := AppState{}

	s = Reduce(s, SetLoading{Loading: true})
	assert.True(t, s.Loading)

	s = Reduce(s, SetError{Message: "catalog fetch failed"})
	assert.Equal(t, "catalog fetch failed", s.Error)

	s = Reduce(s, SetError{})
	assert.Empty(t, s.Error)

	s = Reduce(s, SetLoading{Loading: false})
	assert.False(t, s.Loading)
}

func TestSeed_Shape(t *testing.T) {
	s := Seed()

	assert.Len(t, s.Crops, 2)
	assert.Len(t, s.Products, 6)
	assert.Len(t, s.Notifications, 3)
	assert.Len(t, s.SoilTests, 2)
	assert.Len(t, s.PlantDiseases, 2)
	assert.Empty(t, s.Cart)
	assert.Equal(t, 2, s.UnreadCount())
}

func TestSeed_CropRecords(t *testing.T) {
	s := Seed()

	assert.Equal(t, "Wheat", s.Crops[0].Name)
	assert.Equal(t, entity.CropGrowing, s.Crops[0].Status)
	assert.Equal(t, 60, s.Crops[0].Progress)
	assert.Equal(t, "Rice", s.Crops[1].Name)
	assert.Equal(t, entity.CropHarvestReady, s.Crops[1].Status)

	// Crops are seeded reference data; no action touches them.
	next := Reduce(s, AddToCart{Product: testProduct(1, 100)})
	assert.Equal(t, s.Crops, next.Crops)
}
