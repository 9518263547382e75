package postgres

import (
	"context"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/domain/repository"
	"locator/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type serviceTagRepository struct {
	db *gorm.DB
}

// NewServiceTagRepository is the constructor for serviceTagRepository.
func NewServiceTagRepository(db *gorm.DB) repository.ServiceTagRepository {
	return &serviceTagRepository{
		db: db,
	}
}

func (repo *serviceTagRepository) FindAll(ctx context.Context) ([]*entity.ServiceTag, error) {
	var tagModels []*model.ServiceTagModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list service tags")
	}

	tags := make([]*entity.ServiceTag, 0, len(tagModels))
	for _, tagM := range tagModels {
		tags = append(tags, toServiceTagDomain(tagM))
	}

	return tags, nil
}

// FindOrCreateByName inserts with ON CONFLICT (name) DO NOTHING and reads the winner back,
// so concurrent creators of the same name converge on one row.
func (repo *serviceTagRepository) FindOrCreateByName(ctx context.Context, name string) (*entity.ServiceTag, error) {
	candidate := &model.ServiceTagModel{ID: uuid.New(), Name: name}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(candidate).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create service tag")
	}

	var stored model.ServiceTagModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load service tag")
	}

	return toServiceTagDomain(&stored), nil
}

func toServiceTagDomain(data *model.ServiceTagModel) *entity.ServiceTag {
	return &entity.ServiceTag{
		ID:   data.ID,
		Name: data.Name,
	}
}
