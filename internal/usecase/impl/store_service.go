package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "locator/internal/delivery/context"
	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/errors"
	"locator/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// storeService implements usecase.StoreUsecase.
type storeService struct {
	txManager repository.TransactionManager
	storeRepo repository.StoreRepository
	geocode   usecase.GeocodeUsecase
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StoreRepo repository.StoreRepository
	Geocode   usecase.GeocodeUsecase
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		txManager: params.TxManager,
		storeRepo: params.StoreRepo,
		geocode:   params.Geocode,
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore persists a new store. Without explicit coordinates the complete address is geocoded.
func (srv *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*usecase.StoreView, error) {
	storeID := strings.TrimSpace(input.StoreID)
	name := strings.TrimSpace(input.Name)
	if storeID == "" || name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("store_id and name are required")
	}

	address := input.Address
	if strings.TrimSpace(address.Country) == "" {
		address.Country = entity.DefaultCountry
	}

	location, err := srv.resolveLocation(ctx, input.Latitude, input.Longitude, address)
	if err != nil {
		return nil, err
	}

	store := entity.NewStore(storeID, name, location)
	store.Address = address
	store.Phone = input.Phone

	if input.StoreType != "" {
		if !input.StoreType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid store_type: " + string(input.StoreType))
		}
		store.StoreType = input.StoreType
	}
	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid status: " + string(input.Status))
		}
		store.Status = input.Status
	}

	if err := validateHoursMap(input.Hours); err != nil {
		return nil, err
	}
	for day, hours := range input.Hours {
		store.Hours.Set(day, normalizeHours(strings.TrimSpace(hours)))
	}
	store.Services = entity.NormalizeServiceNames(input.Services)

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.StoreRepo().Create(ctx, store); err != nil {
			if errors.Is(err, repository.ErrDuplicateStore) {
				return domainerrors.ErrStoreAlreadyExists.WithDetails("store_id " + storeID + " already exists")
			}

			return err
		}

		return replaceServices(ctx, f, storeID, store.Services)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Store created", slog.String("store_id", storeID))
	view := usecase.NewStoreView(store)

	return &view, nil
}

// GetStore returns a single store by its identifier.
func (srv *storeService) GetStore(ctx context.Context, storeID string) (*usecase.StoreView, error) {
	store, err := srv.storeRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to get store")
	}

	view := usecase.NewStoreView(store)

	return &view, nil
}

// ListStores returns one page of stores ordered by store ID.
func (srv *storeService) ListStores(ctx context.Context, input *usecase.ListStoresInput) (*usecase.StoreList, error) {
	page, pageSize := input.Page, input.PageSize
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 || pageSize < 1 || pageSize > maxPageSize {
		return nil, domainerrors.ErrValidationFailed.WithDetails("page must be >= 1 and page_size between 1 and 100")
	}

	stores, total, err := srv.storeRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	views := make([]usecase.StoreView, 0, len(stores))
	for _, store := range stores {
		views = append(views, usecase.NewStoreView(store))
	}

	return &usecase.StoreList{
		Stores:     views,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}, nil
}

// UpdateStore applies a partial update and returns the stored result.
func (srv *storeService) UpdateStore(ctx context.Context, storeID string, input *usecase.UpdateStoreInput) (*usecase.StoreView, error) {
	update := &entity.StoreUpdate{
		Phone:    input.Phone,
		Status:   input.Status,
		Services: input.Services,
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
		}
		update.Name = &name
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid status: " + string(*input.Status))
	}
	if err := validateHoursMap(input.Hours); err != nil {
		return nil, err
	}
	if len(input.Hours) > 0 {
		update.Hours = make(map[time.Weekday]string, len(input.Hours))
		for day, hours := range input.Hours {
			update.Hours[day] = normalizeHours(strings.TrimSpace(hours))
		}
	}

	var updated *entity.Store
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		storeRepo := f.StoreRepo()

		if err := storeRepo.Update(ctx, storeID, update); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound
			}

			return err
		}

		if update.Services != nil {
			if err := replaceServices(ctx, f, storeID, entity.NormalizeServiceNames(*update.Services)); err != nil {
				return err
			}
		}

		var err error
		updated, err = storeRepo.FindByStoreID(ctx, storeID)

		return err
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Store updated", slog.String("store_id", storeID))
	view := usecase.NewStoreView(updated)

	return &view, nil
}

// DeactivateStore soft-deletes a store by marking it inactive.
func (srv *storeService) DeactivateStore(ctx context.Context, storeID string) error {
	inactive := entity.StoreStatusInactive

	if err := srv.storeRepo.Update(ctx, storeID, &entity.StoreUpdate{Status: &inactive}); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return err
	}

	srv.log(ctx).Info("Store deactivated", slog.String("store_id", storeID))

	return nil
}

func (srv *storeService) resolveLocation(ctx context.Context, lat, lon *float64, address entity.Address) (entity.Coordinates, error) {
	if lat != nil && lon != nil {
		coords := entity.Coordinates{Latitude: *lat, Longitude: *lon}
		if !coords.Valid() {
			return entity.Coordinates{}, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
		}

		return coords, nil
	}

	if !address.IsComplete() {
		return entity.Coordinates{}, domainerrors.ErrIncompleteAddress
	}

	query := address.GeocodeQuery()
	coords, ok := srv.geocode.Resolve(ctx, query)
	if !ok {
		return entity.Coordinates{}, domainerrors.ErrLocationUnresolvable.WithDetails("could not geocode address: " + query)
	}

	return coords, nil
}

func replaceServices(ctx context.Context, f repository.RepositoryFactory, storeID string, names []string) error {
	tagRepo := f.ServiceTagRepo()

	tags := make([]*entity.ServiceTag, 0, len(names))
	for _, name := range names {
		tag, err := tagRepo.FindOrCreateByName(ctx, name)
		if err != nil {
			return errors.Wrapf(err, "failed to resolve service %q", name)
		}
		tags = append(tags, tag)
	}

	return f.StoreRepo().ReplaceServices(ctx, storeID, tags)
}

func validateHoursMap(hours map[time.Weekday]string) error {
	for day, value := range hours {
		if err := entity.ValidateHours(value); err != nil {
			return domainerrors.ErrInvalidHours.WithDetails(day.String() + ": " + value)
		}
	}

	return nil
}
