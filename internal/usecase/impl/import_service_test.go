package impl

import (
	"context"
	"strings"
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

type importServiceFixtures struct {
	service   usecase.ImportUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	storeRepo *mockRepo.MockStoreRepository
	tagRepo   *mockRepo.MockServiceTagRepository
	geocode   *mockUsecase.MockGeocodeUsecase
}

// createTestImportService wires a transaction manager whose Execute and Nested run the
// callback against the same mock factory.
func createTestImportService(t *testing.T) importServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	tagRepo := mockRepo.NewMockServiceTagRepository(t)
	geocode := mockUsecase.NewMockGeocodeUsecase(t)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()
	factory.EXPECT().
		Nested(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()
	factory.EXPECT().StoreRepo().Return(storeRepo).Maybe()
	factory.EXPECT().ServiceTagRepo().Return(tagRepo).Maybe()

	srv := NewImportService(ImportServiceParams{
		TxManager: txManager,
		Geocode:   geocode,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return importServiceFixtures{
		service:   srv,
		txManager: txManager,
		factory:   factory,
		storeRepo: storeRepo,
		tagRepo:   tagRepo,
		geocode:   geocode,
	}
}

func csvInput(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestImportService_Import_MixedRows(t *testing.T) {
	fx := createTestImportService(t)
	pharmacy := &entity.ServiceTag{ID: uuid.New(), Name: "pharmacy"}
	optical := &entity.ServiceTag{ID: uuid.New(), Name: "optical"}
	driveThru := &entity.ServiceTag{ID: uuid.New(), Name: "drive_thru"}
	geocoded := entity.Coordinates{Latitude: 39.7817, Longitude: -89.6501}

	fx.tagRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.ServiceTag{pharmacy}, nil)

	// Row 2: existing store, partial update.
	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, "S0001").Return(&entity.Store{StoreID: "S0001"}, nil)
	fx.storeRepo.EXPECT().
		Update(mock.Anything, "S0001", mock.AnythingOfType("*entity.StoreUpdate")).
		Run(func(_ context.Context, _ string, update *entity.StoreUpdate) {
			require.NotNil(t, update.Name)
			assert.Equal(t, "Updated Name", *update.Name)
			assert.Nil(t, update.Location)
			assert.Nil(t, update.StoreType)
			assert.Equal(t, map[time.Weekday]string{time.Monday: "09:00-17:00"}, update.Hours)
		}).
		Return(nil)
	fx.tagRepo.EXPECT().FindOrCreateByName(mock.Anything, "optical").Return(optical, nil).Once()
	fx.storeRepo.EXPECT().ReplaceServices(mock.Anything, "S0001", []*entity.ServiceTag{pharmacy, optical}).Return(nil)

	// Row 3: new store, coordinates from the address.
	fx.geocode.EXPECT().Resolve(mock.Anything, "1 Main St, Springfield, IL, 62701").Return(geocoded, true)
	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, "S0002").Return(nil, repository.ErrStoreNotFound)
	fx.storeRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Store")).
		Run(func(_ context.Context, store *entity.Store) {
			assert.Equal(t, "S0002", store.StoreID)
			assert.Equal(t, "New Store", store.Name)
			assert.Equal(t, entity.StoreTypeFlagship, store.StoreType)
			assert.Equal(t, entity.StoreStatusActive, store.Status)
			assert.Equal(t, geocoded, store.Location)
			assert.Equal(t, "Springfield", store.Address.City)
			assert.Equal(t, entity.DefaultCountry, store.Address.Country)
			assert.Equal(t, entity.HoursClosed, store.Hours.Mon)
		}).
		Return(nil)
	fx.tagRepo.EXPECT().FindOrCreateByName(mock.Anything, "drive_thru").Return(driveThru, nil).Once()
	fx.storeRepo.EXPECT().ReplaceServices(mock.Anything, "S0002", []*entity.ServiceTag{pharmacy, driveThru}).Return(nil)

	report, err := fx.service.Import(context.Background(), csvInput(
		"store_id,name,store_type,latitude,longitude,address_street,address_city,address_state,address_postal_code,services,hours_mon",
		"S0001,Updated Name,,,,,,,,pharmacy|optical,09:00-17:00",
		"S0002,New Store,Flagship,,,1 Main St,Springfield,IL,62701,pharmacy|drive_thru,",
		"S0003,,,,,,,,,,",
		"S0004,Bad Hours,,40,-75,,,,,,9am-5pm",
		"S0005,Bad Latitude,,91,-75,,,,,,",
	))

	require.NoError(t, err)
	assert.Equal(t, 5, report.TotalRows)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 3, report.Failed)
	assert.Equal(t, []usecase.ImportRowResult{
		{RowNumber: 2, StoreID: "S0001", Status: usecase.ImportStatusUpdated},
		{RowNumber: 3, StoreID: "S0002", Status: usecase.ImportStatusCreated},
		{RowNumber: 4, StoreID: "S0003", Status: usecase.ImportStatusFailed, Error: "name is required"},
		{RowNumber: 5, StoreID: "S0004", Status: usecase.ImportStatusFailed, Error: "invalid hours for mon: 9am-5pm"},
		{RowNumber: 6, StoreID: "S0005", Status: usecase.ImportStatusFailed, Error: "latitude out of range: 91"},
	}, report.Results)
}

func TestImportService_Import_FailedRowDoesNotAffectLaterRows(t *testing.T) {
	fx := createTestImportService(t)

	fx.tagRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.ServiceTag{}, nil)

	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, "S0001").Return(nil, repository.ErrStoreNotFound)
	fx.storeRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.Store) bool { return s.StoreID == "S0001" })).
		Return(errors.New("check constraint violated"))

	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, "S0002").Return(nil, repository.ErrStoreNotFound)
	fx.storeRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(s *entity.Store) bool { return s.StoreID == "S0002" })).
		Return(nil)

	report, err := fx.service.Import(context.Background(), csvInput(
		"store_id,name,latitude,longitude",
		"S0001,Broken,40.1,-75.1",
		"S0002,Fine,40.2,-75.2",
	))

	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalRows)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, usecase.ImportStatusFailed, report.Results[0].Status)
	assert.Equal(t, "check constraint violated", report.Results[0].Error)
	assert.Equal(t, usecase.ImportStatusCreated, report.Results[1].Status)
}

func TestImportService_Import_NewStoreWithoutCoordinates(t *testing.T) {
	fx := createTestImportService(t)

	fx.tagRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.ServiceTag{}, nil)
	fx.geocode.EXPECT().Resolve(mock.Anything, "Nowhere").Return(entity.Coordinates{}, false)
	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, "S0001").Return(nil, repository.ErrStoreNotFound)
	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, "S0002").Return(nil, repository.ErrStoreNotFound)

	report, err := fx.service.Import(context.Background(), csvInput(
		"store_id,name,address_city",
		"S0001,Unresolved,Nowhere",
		"S0002,No Address,",
	))

	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	for _, result := range report.Results {
		assert.Equal(t, usecase.ImportStatusFailed, result.Status)
		assert.Equal(t, "could not determine coordinates", result.Error)
	}
	fx.storeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportService_Import_ReusesTagsCreatedByEarlierRows(t *testing.T) {
	fx := createTestImportService(t)
	curbside := &entity.ServiceTag{ID: uuid.New(), Name: "curbside"}

	fx.tagRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.ServiceTag{}, nil)
	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, mock.Anything).Return(&entity.Store{}, nil)
	fx.storeRepo.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.tagRepo.EXPECT().FindOrCreateByName(mock.Anything, "curbside").Return(curbside, nil).Once()
	fx.storeRepo.EXPECT().ReplaceServices(mock.Anything, mock.Anything, []*entity.ServiceTag{curbside}).Return(nil).Times(2)

	report, err := fx.service.Import(context.Background(), csvInput(
		"store_id,name,services",
		"S0001,One,curbside",
		"S0002,Two,curbside|curbside",
	))

	require.NoError(t, err)
	assert.Equal(t, 2, report.Updated)
}

func TestImportService_Import_DiscardsTagsFromFailedRows(t *testing.T) {
	fx := createTestImportService(t)
	curbside := &entity.ServiceTag{ID: uuid.New(), Name: "curbside"}

	fx.tagRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.ServiceTag{}, nil)
	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, mock.Anything).Return(&entity.Store{}, nil)
	fx.storeRepo.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.tagRepo.EXPECT().FindOrCreateByName(mock.Anything, "curbside").Return(curbside, nil).Times(2)
	fx.storeRepo.EXPECT().ReplaceServices(mock.Anything, "S0001", mock.Anything).Return(repository.ErrStoreNotFound).Once()
	fx.storeRepo.EXPECT().ReplaceServices(mock.Anything, "S0002", mock.Anything).Return(nil).Once()

	report, err := fx.service.Import(context.Background(), csvInput(
		"store_id,name,services",
		"S0001,One,curbside",
		"S0002,Two,curbside",
	))

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "store not found", report.Results[0].Error)
	assert.Equal(t, 1, report.Updated)
}

func TestImportService_Import_EmptyServicesLeaveTagsUntouched(t *testing.T) {
	fx := createTestImportService(t)

	fx.tagRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.ServiceTag{}, nil)
	fx.storeRepo.EXPECT().FindByStoreID(mock.Anything, "S0001").Return(&entity.Store{}, nil)
	fx.storeRepo.EXPECT().
		Update(mock.Anything, "S0001", mock.MatchedBy(func(u *entity.StoreUpdate) bool { return u.Services == nil })).
		Return(nil)

	report, err := fx.service.Import(context.Background(), csvInput(
		"\ufeffStore_ID, Name ,services",
		"S0001,One,",
	))

	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	fx.storeRepo.AssertNotCalled(t, "ReplaceServices", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportService_Import_HeaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		details string
	}{
		{
			name:    "empty file",
			input:   "",
			wantErr: domainerrors.ErrInvalidCSVFile,
			details: "file is empty",
		},
		{
			name:    "missing name column",
			input:   "store_id,latitude,longitude\nS0001,40,-75\n",
			wantErr: domainerrors.ErrInvalidCSVHeader,
			details: "missing required columns: name",
		},
		{
			name:    "missing both columns",
			input:   "id,title\n",
			wantErr: domainerrors.ErrInvalidCSVHeader,
			details: "missing required columns: store_id, name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestImportService(t)

			report, err := fx.service.Import(context.Background(), strings.NewReader(tt.input))

			assert.Nil(t, report)
			require.ErrorIs(t, err, tt.wantErr)

			appErr, ok := errors.AsType[domainerrors.AppError](err)
			require.True(t, ok)
			assert.Equal(t, tt.details, appErr.Details())
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestImportService_Import_TransactionError(t *testing.T) {
	fx := createTestImportService(t)

	fx.tagRepo.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("db down"))

	report, err := fx.service.Import(context.Background(), csvInput("store_id,name", "S0001,One"))

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to preload service tags")
}

func TestParseImportRow(t *testing.T) {
	columns := indexColumns([]string{"store_id", "name", "status", "longitude", "latitude", "hours_sun", "phone"})

	tests := []struct {
		name    string
		record  []string
		wantErr string
		check   func(t *testing.T, parsed *parsedRow)
	}{
		{
			name:   "valid row",
			record: []string{"S0001", "Store", "Temporarily_Closed", "-75.5", "40.5", "CLOSED", " 555-0100 "},
			check: func(t *testing.T, parsed *parsedRow) {
				require.NotNil(t, parsed.update.Status)
				assert.Equal(t, entity.StoreStatusTemporarilyClosed, *parsed.update.Status)
				assert.Equal(t, &entity.Coordinates{Latitude: 40.5, Longitude: -75.5}, parsed.update.Location)
				assert.Equal(t, entity.HoursClosed, parsed.update.Hours[time.Sunday])
				assert.Equal(t, "555-0100", *parsed.update.Phone)
				assert.False(t, parsed.hasAddress)
			},
		},
		{
			name:   "only one coordinate",
			record: []string{"S0001", "Store", "", "", "40.5", "", ""},
			check: func(t *testing.T, parsed *parsedRow) {
				assert.Nil(t, parsed.update.Location)
			},
		},
		{
			name:    "short record",
			record:  []string{"S0001"},
			wantErr: "name is required",
		},
		{
			name:    "long store id",
			record:  []string{strings.Repeat("x", 51), "Store"},
			wantErr: "store_id exceeds 50 characters",
		},
		{
			name:    "invalid status",
			record:  []string{"S0001", "Store", "closed"},
			wantErr: "invalid status: closed",
		},
		{
			name:    "non-numeric longitude",
			record:  []string{"S0001", "Store", "", "west", "40"},
			wantErr: "invalid longitude: west",
		},
		{
			name:    "NaN latitude",
			record:  []string{"S0001", "Store", "", "-75", "NaN"},
			wantErr: "latitude out of range: NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseImportRow(newCSVRow(columns, tt.record))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, parsed)
		})
	}
}
