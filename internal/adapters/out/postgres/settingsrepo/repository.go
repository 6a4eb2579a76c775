package settingsrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/dberrs"
	"fulfillment/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetOrCreate loads the singleton. Defaults are inserted only when the row is
// missing; a concurrent insert of the same row is ignored.
func (r *GormSettingsRepository) GetOrCreate(ctx context.Context, now time.Time) (*settings.SystemSettings, error) {
	return r.getOrCreate(ctx, now, false)
}

// GetOrCreateForUpdate is GetOrCreate holding the row lock on postgres.
func (r *GormSettingsRepository) GetOrCreateForUpdate(ctx context.Context, now time.Time) (*settings.SystemSettings, error) {
	return r.getOrCreate(ctx, now, true)
}

func (r *GormSettingsRepository) getOrCreate(ctx context.Context, now time.Time, lock bool) (*settings.SystemSettings, error) {
	dto, err := r.find(ctx, lock)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := fromDomain(settings.DefaultSettings(now))
		if err = r.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
			Create(&defaults).Error; err != nil {
			return nil, dberrs.Classify(err)
		}
		dto, err = r.find(ctx, lock)
	}
	if err != nil {
		return nil, dberrs.Classify(err)
	}
	return toDomain(dto)
}

func (r *GormSettingsRepository) find(ctx context.Context, lock bool) (SettingsDTO, error) {
	q := r.db.WithContext(ctx)
	if lock && r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto SettingsDTO
	err := q.First(&dto, "id = ?", settings.SingletonID).Error
	return dto, err
}

// Save overwrites the singleton row.
func (r *GormSettingsRepository) Save(ctx context.Context, s *settings.SystemSettings) error {
	dto := fromDomain(s)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(&dto).Error
	return dberrs.Classify(err)
}
