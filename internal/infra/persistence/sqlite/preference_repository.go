package sqlite

import (
	"context"

	"agriproxy/internal/domain/entity"
	"agriproxy/internal/domain/repository"
	"agriproxy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// preferenceRepository implements the domain.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

// SaveLanguage persists the selected interface language.
func (repo *preferenceRepository) SaveLanguage(ctx context.Context, language entity.Language) error {
	row := model.KVModel{Key: model.KeySelectedLanguage, Value: language.String()}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrap(err, "failed to persist language")
	}

	return nil
}

// LoadLanguage retrieves the persisted language. A stored value that is
// no longer a supported language reads as not found so the caller falls
// back to the default.
func (repo *preferenceRepository) LoadLanguage(ctx context.Context) (entity.Language, error) {
	var row model.KVModel
	err := repo.db.WithContext(ctx).
		Where("key = ?", model.KeySelectedLanguage).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrPreferenceNotFound
		}

		return "", errors.WithStack(err)
	}

	language := entity.Language(row.Value)
	if !language.IsValid() {
		return "", repository.ErrPreferenceNotFound
	}

	return language, nil
}
