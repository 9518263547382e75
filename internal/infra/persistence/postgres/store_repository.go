// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// FindByStoreID retrieves a store by its external identifier. Reads go to the primary
// so that an update followed by a lookup observes its own write.
func (repo *storeRepository) FindByStoreID(ctx context.Context, storeID string) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("store_id = ?", storeID).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by store ID")
	}

	services, err := repo.loadServiceNames(ctx, []string{storeM.StoreID})
	if err != nil {
		return nil, err
	}

	return toStoreDomain(&storeM, services[storeM.StoreID]), nil
}

// FindActiveWithin runs the coarse bounding-box query. Longitude bounds crossing the
// antimeridian are split into two ranges; service filters are conjunctive and store
// type filters disjunctive.
func (repo *storeRepository) FindActiveWithin(ctx context.Context, query *repository.StoreSearchQuery) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	tx := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("stores.status = ?", string(entity.StoreStatusActive)).
		Where("stores.latitude BETWEEN ? AND ?", query.Box.MinLat, query.Box.MaxLat)

	if ranges := query.Box.LongitudeRanges(); !(len(ranges) == 1 && ranges[0].Min <= -180 && ranges[0].Max >= 180) {
		lonCond := repo.db.Where("stores.longitude BETWEEN ? AND ?", ranges[0].Min, ranges[0].Max)
		for _, r := range ranges[1:] {
			lonCond = lonCond.Or("stores.longitude BETWEEN ? AND ?", r.Min, r.Max)
		}
		tx = tx.Where(lonCond)
	}

	if len(query.StoreTypes) > 0 {
		types := make([]string, 0, len(query.StoreTypes))
		for _, t := range query.StoreTypes {
			types = append(types, string(t))
		}
		tx = tx.Where("stores.store_type IN ?", types)
	}

	if services := entity.NormalizeServiceNames(query.Services); len(services) > 0 {
		withAllServices := repo.db.Model(&model.StoreServiceModel{}).
			Select("store_services.store_id").
			Joins("JOIN service_tags ON service_tags.id = store_services.service_tag_id").
			Where("service_tags.name IN ?", services).
			Group("store_services.store_id").
			Having("COUNT(DISTINCT service_tags.name) = ?", len(services))
		tx = tx.Where("stores.store_id IN (?)", withAllServices)
	}

	if err := tx.Order("stores.store_id").Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query stores within bounding box")
	}

	return repo.toStoresWithServices(ctx, storeModels)
}

// List returns a page of stores ordered by store ID together with the total count.
func (repo *storeRepository) List(ctx context.Context, offset, limit int) ([]*entity.Store, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.StoreModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count stores")
	}

	var storeModels []*model.StoreModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("store_id").
		Offset(offset).
		Limit(limit).
		Find(&storeModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list stores")
	}

	stores, err := repo.toStoresWithServices(ctx, storeModels)
	if err != nil {
		return nil, 0, err
	}

	return stores, total, nil
}

// Create persists a new store row.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStore
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid store data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// Update writes only the columns set on update.
func (repo *storeRepository) Update(ctx context.Context, storeID string, update *entity.StoreUpdate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("store_id = ?", storeID).
		Updates(storeUpdateColumns(update))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// ReplaceServices rewrites the join rows of a store.
func (repo *storeRepository) ReplaceServices(ctx context.Context, storeID string, tags []*entity.ServiceTag) error {
	if err := repo.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.StoreServiceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear store services")
	}

	if len(tags) == 0 {
		return nil
	}

	links := make([]*model.StoreServiceModel, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag.ID.String()]; ok {
			continue
		}
		seen[tag.ID.String()] = struct{}{}
		links = append(links, &model.StoreServiceModel{StoreID: storeID, ServiceTagID: tag.ID})
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&links).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link store services")
	}

	return nil
}

func (repo *storeRepository) toStoresWithServices(ctx context.Context, storeModels []*model.StoreModel) ([]*entity.Store, error) {
	stores := make([]*entity.Store, 0, len(storeModels))
	if len(storeModels) == 0 {
		return stores, nil
	}

	ids := make([]string, 0, len(storeModels))
	for _, storeM := range storeModels {
		ids = append(ids, storeM.StoreID)
	}

	services, err := repo.loadServiceNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM, services[storeM.StoreID]))
	}

	return stores, nil
}

// loadServiceNames returns tag names per store ID, alphabetically ordered.
func (repo *storeRepository) loadServiceNames(ctx context.Context, storeIDs []string) (map[string][]string, error) {
	var rows []struct {
		StoreID string
		Name    string
	}

	if err := repo.db.WithContext(ctx).
		Table("store_services").
		Select("store_services.store_id, service_tags.name").
		Joins("JOIN service_tags ON service_tags.id = store_services.service_tag_id").
		Where("store_services.store_id IN ?", storeIDs).
		Order("service_tags.name").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load store services")
	}

	services := make(map[string][]string, len(storeIDs))
	for _, row := range rows {
		services[row.StoreID] = append(services[row.StoreID], row.Name)
	}

	return services, nil
}

// --- Mapper Functions ---

// storeUpdateColumns translates a partial update into a column map.
func storeUpdateColumns(update *entity.StoreUpdate) map[string]any {
	columns := map[string]any{"updated_at": time.Now()}

	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.StoreType != nil {
		columns["store_type"] = string(*update.StoreType)
	}
	if update.Status != nil {
		columns["status"] = string(*update.Status)
	}
	if update.Location != nil {
		columns["latitude"] = update.Location.Latitude
		columns["longitude"] = update.Location.Longitude
	}
	if update.Street != nil {
		columns["address_street"] = *update.Street
	}
	if update.City != nil {
		columns["address_city"] = *update.City
	}
	if update.State != nil {
		columns["address_state"] = *update.State
	}
	if update.PostalCode != nil {
		columns["address_postal_code"] = *update.PostalCode
	}
	if update.Country != nil {
		columns["address_country"] = *update.Country
	}
	if update.Phone != nil {
		columns["phone"] = *update.Phone
	}
	for _, entry := range entity.WeekdayKeys {
		if hours, ok := update.Hours[entry.Day]; ok {
			columns["hours_"+entry.Key] = hours
		}
	}

	return columns
}

func toStoreDomain(data *model.StoreModel, services []string) *entity.Store {
	if data == nil {
		return nil
	}
	if services == nil {
		services = []string{}
	}

	return &entity.Store{
		StoreID:   data.StoreID,
		Name:      data.Name,
		StoreType: entity.StoreType(data.StoreType),
		Status:    entity.StoreStatus(data.Status),
		Location: entity.Coordinates{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		Address: entity.Address{
			Street:     data.AddressStreet,
			City:       data.AddressCity,
			State:      data.AddressState,
			PostalCode: data.AddressPostalCode,
			Country:    data.AddressCountry,
		},
		Phone: data.Phone,
		Hours: entity.WeeklyHours{
			Mon: data.HoursMon,
			Tue: data.HoursTue,
			Wed: data.HoursWed,
			Thu: data.HoursThu,
			Fri: data.HoursFri,
			Sat: data.HoursSat,
			Sun: data.HoursSun,
		},
		Services:  services,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		StoreID:           data.StoreID,
		Name:              data.Name,
		StoreType:         string(data.StoreType),
		Status:            string(data.Status),
		Latitude:          data.Location.Latitude,
		Longitude:         data.Location.Longitude,
		AddressStreet:     data.Address.Street,
		AddressCity:       data.Address.City,
		AddressState:      data.Address.State,
		AddressPostalCode: data.Address.PostalCode,
		AddressCountry:    data.Address.Country,
		Phone:             data.Phone,
		HoursMon:          data.Hours.Mon,
		HoursTue:          data.Hours.Tue,
		HoursWed:          data.Hours.Wed,
		HoursThu:          data.Hours.Thu,
		HoursFri:          data.Hours.Fri,
		HoursSat:          data.Hours.Sat,
		HoursSun:          data.Hours.Sun,
	}
}
