package impl

import (
	"context"
	"testing"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	mockRepo "locator/internal/mocks/repository"
	mockUsecase "locator/internal/mocks/usecase"
	"locator/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceFixtures struct {
	service   usecase.StoreUsecase
	txManager *mockRepo.MockTransactionManager
	storeRepo *mockRepo.MockStoreRepository
	txStore   *mockRepo.MockStoreRepository
	tagRepo   *mockRepo.MockServiceTagRepository
	geocode   *mockUsecase.MockGeocodeUsecase
}

func createTestStoreService(t *testing.T) storeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	txStore := mockRepo.NewMockStoreRepository(t)
	tagRepo := mockRepo.NewMockServiceTagRepository(t)
	geocode := mockUsecase.NewMockGeocodeUsecase(t)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()
	factory.EXPECT().StoreRepo().Return(txStore).Maybe()
	factory.EXPECT().ServiceTagRepo().Return(tagRepo).Maybe()

	srv := NewStoreService(StoreServiceParams{
		TxManager: txManager,
		StoreRepo: storeRepo,
		Geocode:   geocode,
		Logger:    newDiscardLogger(),
	})

	return storeServiceFixtures{
		service:   srv,
		txManager: txManager,
		storeRepo: storeRepo,
		txStore:   txStore,
		tagRepo:   tagRepo,
		geocode:   geocode,
	}
}

func TestStoreService_CreateStore_WithCoordinates(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	pharmacy := &entity.ServiceTag{ID: uuid.New(), Name: "pharmacy"}

	fx.txStore.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Store")).
		Run(func(_ context.Context, store *entity.Store) {
			assert.Equal(t, "S0100", store.StoreID)
			assert.Equal(t, entity.StoreTypeOutlet, store.StoreType)
			assert.Equal(t, "09:00-21:00", store.Hours.Mon)
			assert.Equal(t, entity.HoursClosed, store.Hours.Sun)
			assert.Equal(t, []string{"pharmacy"}, store.Services)
		}).
		Return(nil)
	fx.tagRepo.EXPECT().FindOrCreateByName(ctx, "pharmacy").Return(pharmacy, nil)
	fx.txStore.EXPECT().ReplaceServices(ctx, "S0100", []*entity.ServiceTag{pharmacy}).Return(nil)

	view, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		StoreID:   " S0100 ",
		Name:      "Downtown Outlet",
		StoreType: entity.StoreTypeOutlet,
		Latitude:  ptr(40.0),
		Longitude: ptr(-75.0),
		Services:  []string{"pharmacy", " pharmacy "},
		Hours:     map[time.Weekday]string{time.Monday: "09:00-21:00", time.Sunday: "Closed"},
	})

	require.NoError(t, err)
	assert.Equal(t, "S0100", view.StoreID)
	assert.Equal(t, entity.DefaultCountry, view.AddressCountry)
	assert.Equal(t, entity.StoreStatusActive, view.Status)
	fx.geocode.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestStoreService_CreateStore_GeocodesCompleteAddress(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	address := entity.Address{Street: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701"}

	fx.geocode.EXPECT().
		Resolve(ctx, "1 Main St, Springfield, IL, 62701, USA").
		Return(entity.Coordinates{Latitude: 39.78, Longitude: -89.65}, true)
	fx.txStore.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.txStore.EXPECT().ReplaceServices(ctx, "S0101", []*entity.ServiceTag{}).Return(nil)

	view, err := fx.service.CreateStore(ctx, &usecase.CreateStoreInput{
		StoreID: "S0101",
		Name:    "Springfield",
		Address: address,
	})

	require.NoError(t, err)
	assert.InDelta(t, 39.78, view.Latitude, 1e-9)
	assert.InDelta(t, -89.65, view.Longitude, 1e-9)
}

func TestStoreService_CreateStore_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.CreateStoreInput
		setup   func(fx storeServiceFixtures)
		wantErr error
	}{
		{
			name:    "missing name",
			input:   &usecase.CreateStoreInput{StoreID: "S1"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "incomplete address",
			input:   &usecase.CreateStoreInput{StoreID: "S1", Name: "n", Address: entity.Address{City: "Springfield"}},
			wantErr: domainerrors.ErrIncompleteAddress,
		},
		{
			name: "coordinates out of range",
			input: &usecase.CreateStoreInput{
				StoreID: "S1", Name: "n", Latitude: ptr(95.0), Longitude: ptr(0.0),
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "geocoding fails",
			input: &usecase.CreateStoreInput{
				StoreID: "S1", Name: "n",
				Address: entity.Address{Street: "x", City: "y", State: "z", PostalCode: "0"},
			},
			setup: func(fx storeServiceFixtures) {
				fx.geocode.EXPECT().Resolve(mock.Anything, mock.Anything).Return(entity.Coordinates{}, false)
			},
			wantErr: domainerrors.ErrLocationUnresolvable,
		},
		{
			name: "invalid store type",
			input: &usecase.CreateStoreInput{
				StoreID: "S1", Name: "n", Latitude: ptr(1.0), Longitude: ptr(1.0), StoreType: "kiosk",
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "invalid hours",
			input: &usecase.CreateStoreInput{
				StoreID: "S1", Name: "n", Latitude: ptr(1.0), Longitude: ptr(1.0),
				Hours: map[time.Weekday]string{time.Friday: "25:00-26:00"},
			},
			wantErr: domainerrors.ErrInvalidHours,
		},
		{
			name: "duplicate store",
			input: &usecase.CreateStoreInput{
				StoreID: "S1", Name: "n", Latitude: ptr(1.0), Longitude: ptr(1.0),
			},
			setup: func(fx storeServiceFixtures) {
				fx.txStore.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateStore)
			},
			wantErr: domainerrors.ErrStoreAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStoreService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			view, err := fx.service.CreateStore(context.Background(), tt.input)

			assert.Nil(t, view)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStoreService_GetStore(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	store := entity.NewStore("S0001", "One", entity.Coordinates{Latitude: 1, Longitude: 2})

	fx.storeRepo.EXPECT().FindByStoreID(ctx, "S0001").Return(store, nil)
	fx.storeRepo.EXPECT().FindByStoreID(ctx, "S9999").Return(nil, repository.ErrStoreNotFound)

	view, err := fx.service.GetStore(ctx, "S0001")
	require.NoError(t, err)
	assert.Equal(t, "One", view.Name)
	assert.Equal(t, []string{}, view.Services)

	_, err = fx.service.GetStore(ctx, "S9999")
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_ListStores(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	stores := []*entity.Store{
		entity.NewStore("S0021", "a", entity.Coordinates{}),
		entity.NewStore("S0022", "b", entity.Coordinates{}),
	}

	fx.storeRepo.EXPECT().List(ctx, 20, 20).Return(stores, int64(42), nil)

	list, err := fx.service.ListStores(ctx, &usecase.ListStoresInput{Page: 2})

	require.NoError(t, err)
	assert.Len(t, list.Stores, 2)
	assert.Equal(t, int64(42), list.Total)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 20, list.PageSize)
	assert.Equal(t, 3, list.TotalPages)

	_, err = fx.service.ListStores(ctx, &usecase.ListStoresInput{Page: 1, PageSize: 101})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_UpdateStore(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()
	updated := entity.NewStore("S0001", "Renamed", entity.Coordinates{Latitude: 1, Longitude: 2})
	updated.Services = []string{"optical"}
	optical := &entity.ServiceTag{ID: uuid.New(), Name: "optical"}

	fx.txStore.EXPECT().
		Update(ctx, "S0001", mock.AnythingOfType("*entity.StoreUpdate")).
		Run(func(_ context.Context, _ string, update *entity.StoreUpdate) {
			assert.Equal(t, "Renamed", *update.Name)
			assert.Nil(t, update.Phone)
			assert.Equal(t, map[time.Weekday]string{time.Tuesday: entity.HoursClosed}, update.Hours)
		}).
		Return(nil)
	fx.tagRepo.EXPECT().FindOrCreateByName(ctx, "optical").Return(optical, nil)
	fx.txStore.EXPECT().ReplaceServices(ctx, "S0001", []*entity.ServiceTag{optical}).Return(nil)
	fx.txStore.EXPECT().FindByStoreID(ctx, "S0001").Return(updated, nil)

	view, err := fx.service.UpdateStore(ctx, "S0001", &usecase.UpdateStoreInput{
		Name:     ptr(" Renamed "),
		Services: &[]string{"optical", "optical"},
		Hours:    map[time.Weekday]string{time.Tuesday: "CLOSED"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", view.Name)
	assert.Equal(t, []string{"optical"}, view.Services)
}

func TestStoreService_UpdateStore_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		fx := createTestStoreService(t)
		fx.txStore.EXPECT().Update(mock.Anything, "S9999", mock.Anything).Return(repository.ErrStoreNotFound)

		_, err := fx.service.UpdateStore(context.Background(), "S9999", &usecase.UpdateStoreInput{Phone: ptr("555")})

		assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		fx := createTestStoreService(t)

		_, err := fx.service.UpdateStore(context.Background(), "S0001", &usecase.UpdateStoreInput{Name: ptr("  ")})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("invalid status", func(t *testing.T) {
		fx := createTestStoreService(t)
		status := entity.StoreStatus("demolished")

		_, err := fx.service.UpdateStore(context.Background(), "S0001", &usecase.UpdateStoreInput{Status: &status})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestStoreService_DeactivateStore(t *testing.T) {
	fx := createTestStoreService(t)
	ctx := context.Background()

	fx.storeRepo.EXPECT().
		Update(ctx, "S0001", mock.MatchedBy(func(u *entity.StoreUpdate) bool {
			return u.Status != nil && *u.Status == entity.StoreStatusInactive && u.Name == nil
		})).
		Return(nil)
	fx.storeRepo.EXPECT().Update(ctx, "S9999", mock.Anything).Return(repository.ErrStoreNotFound)
	fx.storeRepo.EXPECT().Update(ctx, "S5000", mock.Anything).Return(errors.New("db down"))

	require.NoError(t, fx.service.DeactivateStore(ctx, "S0001"))
	assert.ErrorIs(t, fx.service.DeactivateStore(ctx, "S9999"), domainerrors.ErrStoreNotFound)
	assert.EqualError(t, fx.service.DeactivateStore(ctx, "S5000"), "db down")
}
