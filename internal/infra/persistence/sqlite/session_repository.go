package sqlite

import (
	"context"
	"encoding/json"

	"agriproxy/internal/domain/entity"
	"agriproxy/internal/domain/repository"
	"agriproxy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Save persists the token and the cached user in one transaction so a
// crash cannot leave the store with one key and not the other.
func (repo *sessionRepository) Save(ctx context.Context, session *repository.PersistedSession) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return errors.Wrap(err, "failed to encode user")
	}

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows := []model.KVModel{
			{Key: model.KeyAuthToken, Value: session.Token},
			{Key: model.KeyUser, Value: string(userJSON)},
		}
		for _, row := range rows {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to persist session")
	}

	return nil
}

// Load retrieves the persisted session. Both keys must be present; a
// half-written store reads as no session at all.
func (repo *sessionRepository) Load(ctx context.Context) (*repository.PersistedSession, error) {
	token, err := repo.loadValue(ctx, model.KeyAuthToken)
	if err != nil {
		return nil, err
	}
	userJSON, err := repo.loadValue(ctx, model.KeyUser)
	if err != nil {
		return nil, err
	}

	var user entity.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached user")
	}

	return &repository.PersistedSession{Token: token, User: user}, nil
}

// Clear removes both session keys. Clearing an absent session succeeds.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("key IN ?", []string{model.KeyAuthToken, model.KeyUser}).
		Delete(&model.KVModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

func (repo *sessionRepository) loadValue(ctx context.Context, key string) (string, error) {
	var row model.KVModel
	err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrSessionNotFound
		}

		return "", errors.WithStack(err)
	}

	return row.Value, nil
}
