package postgres

import (
	"context"
	"testing"
	"time"

	"locator/internal/domain/entity"
	"locator/internal/domain/geo"
	"locator/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeIDs(stores []*entity.Store) []string {
	ids := make([]string, 0, len(stores))
	for _, s := range stores {
		ids = append(ids, s.StoreID)
	}

	return ids
}

func TestStoreRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	store := newTestStore("S1", 40.0, -75.0)
	store.Phone = "555-0100"
	store.Hours.Mon = "08:00-22:00"
	seedStore(t, db, store, "pharmacy", "atm")

	found, err := repo.FindByStoreID(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Store S1", found.Name)
	assert.Equal(t, entity.StoreTypeRegular, found.StoreType)
	assert.Equal(t, entity.StoreStatusActive, found.Status)
	assert.Equal(t, "555-0100", found.Phone)
	assert.Equal(t, "08:00-22:00", found.Hours.Mon)
	assert.Equal(t, entity.HoursClosed, found.Hours.Sun)
	assert.Equal(t, []string{"atm", "pharmacy"}, found.Services)
	assert.InDelta(t, 40.0, found.Location.Latitude, 1e-9)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestStoreRepository_FindByStoreID_NotFound(t *testing.T) {
	repo := NewStoreRepository(newTestDB(t))

	store, err := repo.FindByStoreID(context.Background(), "missing")
	assert.Nil(t, store)
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestStore("S1", 1, 1)))
	err := repo.Create(ctx, newTestStore("S1", 2, 2))
	assert.ErrorIs(t, err, repository.ErrDuplicateStore)
}

func TestStoreRepository_FindActiveWithin(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	inside := newTestStore("IN", 40.01, -75.01)
	seedStore(t, db, inside, "pharmacy", "atm")

	outlet := newTestStore("OUTLET", 40.02, -75.02)
	outlet.StoreType = entity.StoreTypeOutlet
	seedStore(t, db, outlet, "pharmacy")

	inactive := newTestStore("INACTIVE", 40.0, -75.0)
	inactive.Status = entity.StoreStatusInactive
	seedStore(t, db, inactive, "pharmacy", "atm")

	seedStore(t, db, newTestStore("FAR", 45.0, -75.0), "pharmacy", "atm")

	box := geo.CalculateBoundingBox(40.0, -75.0, 10)

	testCases := []struct {
		name     string
		query    *repository.StoreSearchQuery
		expected []string
	}{
		{
			name:     "box and status only",
			query:    &repository.StoreSearchQuery{Box: box},
			expected: []string{"IN", "OUTLET"},
		},
		{
			name:     "services are conjunctive",
			query:    &repository.StoreSearchQuery{Box: box, Services: []string{"pharmacy", "atm"}},
			expected: []string{"IN"},
		},
		{
			name:     "duplicate services count once",
			query:    &repository.StoreSearchQuery{Box: box, Services: []string{"pharmacy", "pharmacy"}},
			expected: []string{"IN", "OUTLET"},
		},
		{
			name:     "unknown service matches nothing",
			query:    &repository.StoreSearchQuery{Box: box, Services: []string{"car_wash"}},
			expected: []string{},
		},
		{
			name: "store types are disjunctive",
			query: &repository.StoreSearchQuery{
				Box:        box,
				StoreTypes: []entity.StoreType{entity.StoreTypeOutlet, entity.StoreTypeFlagship},
			},
			expected: []string{"OUTLET"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stores, err := repo.FindActiveWithin(ctx, tc.query)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.expected, storeIDs(stores))
		})
	}
}

func TestStoreRepository_FindActiveWithin_Antimeridian(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	seedStore(t, db, newTestStore("EAST", 0, 179.95))
	seedStore(t, db, newTestStore("WEST", 0, -179.95))
	seedStore(t, db, newTestStore("MIDDLE", 0, 0))

	stores, err := repo.FindActiveWithin(ctx, &repository.StoreSearchQuery{
		Box: geo.CalculateBoundingBox(0, 179.99, 20),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"EAST", "WEST"}, storeIDs(stores))
}

func TestStoreRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	seedStore(t, db, newTestStore("S1", 40, -75), "pharmacy")

	name := "Renamed"
	status := entity.StoreStatusTemporarilyClosed
	require.NoError(t, repo.Update(ctx, "S1", &entity.StoreUpdate{
		Name:   &name,
		Status: &status,
		Hours:  map[time.Weekday]string{time.Tuesday: "09:00-17:00"},
	}))

	found, err := repo.FindByStoreID(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name)
	assert.Equal(t, entity.StoreStatusTemporarilyClosed, found.Status)
	assert.Equal(t, "09:00-17:00", found.Hours.Tue)
	assert.Equal(t, entity.HoursClosed, found.Hours.Mon)
	assert.Equal(t, "Springfield", found.Address.City)
	assert.Equal(t, []string{"pharmacy"}, found.Services)
}

func TestStoreRepository_Update_NotFound(t *testing.T) {
	repo := NewStoreRepository(newTestDB(t))

	name := "x"
	err := repo.Update(context.Background(), "missing", &entity.StoreUpdate{Name: &name})
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestStoreRepository_ReplaceServices(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	tagRepo := NewServiceTagRepository(db)
	ctx := context.Background()

	seedStore(t, db, newTestStore("S1", 40, -75), "pharmacy", "atm")

	bakery, err := tagRepo.FindOrCreateByName(ctx, "bakery")
	require.NoError(t, err)
	require.NoError(t, repo.ReplaceServices(ctx, "S1", []*entity.ServiceTag{bakery, bakery}))

	found, err := repo.FindByStoreID(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"bakery"}, found.Services)

	require.NoError(t, repo.ReplaceServices(ctx, "S1", nil))
	found, err = repo.FindByStoreID(ctx, "S1")
	require.NoError(t, err)
	assert.Empty(t, found.Services)
	assert.NotNil(t, found.Services)
}

func TestStoreRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	for _, id := range []string{"C", "A", "B"} {
		seedStore(t, db, newTestStore(id, 1, 1))
	}

	stores, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []string{"B", "C"}, storeIDs(stores))

	stores, total, err = repo.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, stores)
}
