package postgres

import (
	"context"
	"testing"

	"locator/internal/domain/entity"
	"locator/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedStore(t *testing.T, db *gorm.DB, store *entity.Store, services ...string) {
	t.Helper()

	ctx := context.Background()
	storeRepo := NewStoreRepository(db)
	tagRepo := NewServiceTagRepository(db)

	require.NoError(t, storeRepo.Create(ctx, store))

	tags := make([]*entity.ServiceTag, 0, len(services))
	for _, name := range services {
		tag, err := tagRepo.FindOrCreateByName(ctx, name)
		require.NoError(t, err)
		tags = append(tags, tag)
	}
	require.NoError(t, storeRepo.ReplaceServices(ctx, store.StoreID, tags))
}

func newTestStore(storeID string, lat, lon float64) *entity.Store {
	store := entity.NewStore(storeID, "Store "+storeID, entity.Coordinates{Latitude: lat, Longitude: lon})
	store.Address = entity.Address{
		Street:     "1 Main St",
		City:       "Springfield",
		State:      "IL",
		PostalCode: "62701",
		Country:    entity.DefaultCountry,
	}

	return store
}
