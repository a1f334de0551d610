package persistent

import (
	"context"
	"errors"
	"time"

	"affiliate-blog/pkg/models"
	"affiliate-blog/services/content/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	GetOrCreate(ctx context.Context) (*entity.SiteSettings, error)
	Update(ctx context.Context, settings *entity.SiteSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// GetOrCreate inserts the default row keyed on the fixed singleton id,
// ignoring a conflict with a concurrent first reader, then reads it back.
func (r *settingsRepository) GetOrCreate(ctx context.Context) (*entity.SiteSettings, error) {
	db := r.db.WithContext(ctx)

	var settingsModel models.SiteSettings
	err := db.Where("id = ?", models.SiteSettingsID).First(&settingsModel).Error
	if err == nil {
		return ToSettingsEntity(&settingsModel), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := entity.DefaultSiteSettings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(ToSettingsModel(&defaults)).Error; err != nil {
		return nil, err
	}

	if err := db.Where("id = ?", models.SiteSettingsID).First(&settingsModel).Error; err != nil {
		return nil, err
	}
	return ToSettingsEntity(&settingsModel), nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.SiteSettings) error {
	settingsModel := ToSettingsModel(settings)
	settingsModel.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Model(&models.SiteSettings{ID: models.SiteSettingsID}).
		Select("*").Omit("id", "created_at").
		Updates(settingsModel).Error
	if err != nil {
		return err
	}

	settings.UpdatedAt = settingsModel.UpdatedAt
	return nil
}
