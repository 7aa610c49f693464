package persistent

import (
	"context"
	"errors"

	"pilates-club/pkg/models"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	// GetLatest returns the newest settings row, or the defaults when the
	// table is empty.
	GetLatest(ctx context.Context) (*entity.Settings, error)
	// Save updates the newest row or inserts the first one.
	Save(ctx context.Context, settings *entity.Settings) (*entity.Settings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func defaultSettings() *entity.Settings {
	defaults := models.DefaultSettings()
	return &entity.Settings{
		AutoApproveSignup:       defaults.AutoApproveSignup,
		DefaultExpirationMonths: defaults.DefaultExpirationMonths,
	}
}

func (r *settingsRepository) GetLatest(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&settingsModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultSettings(), nil
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

func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	var saved model.SettingsModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order("created_at DESC").
			First(&saved).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			saved = model.SettingsModel{
				AutoApproveSignup:       settings.AutoApproveSignup,
				DefaultExpirationMonths: settings.DefaultExpirationMonths,
			}
			return tx.Create(&saved).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&saved).Updates(map[string]interface{}{
			"auto_approve_signup":       settings.AutoApproveSignup,
			"default_expiration_months": settings.DefaultExpirationMonths,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return ToSettingsEntity(&saved), nil
}
