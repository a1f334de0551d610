package usecase

import (
	"context"

	"affiliate-blog/services/content/internal/entity"
	"affiliate-blog/services/content/internal/repo/persistent"
)

type SettingsUseCase interface {
	GetSettings(ctx context.Context) (*entity.SiteSettings, error)
	UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.SiteSettings, error)
}

type settingsUseCase struct {
	settingsRepo persistent.SettingsRepository
}

func NewSettingsUseCase(settingsRepo persistent.SettingsRepository) SettingsUseCase {
	return &settingsUseCase{settingsRepo: settingsRepo}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context) (*entity.SiteSettings, error) {
	return uc.settingsRepo.GetOrCreate(ctx)
}

func (uc *settingsUseCase) UpdateSettings(ctx context.Context, patch entity.SettingsPatch) (*entity.SiteSettings, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	patch.Apply(settings)
	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
