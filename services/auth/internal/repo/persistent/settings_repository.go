package persistent

import (
	"context"
	"errors"

	"pilates-club/pkg/models"
	"pilates-club/services/auth/internal/entity"
	"pilates-club/services/auth/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// GetLatest returns the newest settings row, or the defaults when the
	// table is empty.
	GetLatest(ctx context.Context) (*entity.Settings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetLatest(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&settingsModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := models.DefaultSettings()
		return &entity.Settings{
			AutoApproveSignup:       defaults.AutoApproveSignup,
			DefaultExpirationMonths: defaults.DefaultExpirationMonths,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	settings := ToSettingsEntity(&settingsModel)
	if settings.DefaultExpirationMonths <= 0 {
		settings.DefaultExpirationMonths = models.DefaultExpirationMonths
	}
	return settings, nil
}
