package usecase

import (
	"context"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/repo/persistent"
)

type SettingsUseCase interface {
	GetApprovalSettings(ctx context.Context) (*entity.ApprovalSettings, error)
	UpdateApprovalSettings(ctx context.Context, settings entity.Settings) (*entity.ApprovalSettings, error)
}

type settingsUseCase struct {
	settingsRepo persistent.SettingsRepository
	memberRepo   persistent.MemberRepository
	logger       *logger.Logger
}

func NewSettingsUseCase(
	settingsRepo persistent.SettingsRepository,
	memberRepo persistent.MemberRepository,
	logger *logger.Logger,
) SettingsUseCase {
	return &settingsUseCase{
		settingsRepo: settingsRepo,
		memberRepo:   memberRepo,
		logger:       logger,
	}
}

func (uc *settingsUseCase) GetApprovalSettings(ctx context.Context) (*entity.ApprovalSettings, error) {
	settings, err := uc.settingsRepo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	return uc.withPendingCount(ctx, settings)
}

func (uc *settingsUseCase) UpdateApprovalSettings(ctx context.Context, settings entity.Settings) (*entity.ApprovalSettings, error) {
	if settings.DefaultExpirationMonths < entity.MinExpirationMonths || settings.DefaultExpirationMonths > entity.MaxExpirationMonths {
		return nil, ErrInvalidMonths
	}

	saved, err := uc.settingsRepo.Save(ctx, &settings)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Approval settings saved: auto_approve=%t default_months=%d",
		saved.AutoApproveSignup, saved.DefaultExpirationMonths)
	return uc.withPendingCount(ctx, saved)
}

func (uc *settingsUseCase) withPendingCount(ctx context.Context, settings *entity.Settings) (*entity.ApprovalSettings, error) {
	pending, err := uc.memberRepo.CountByStatus(ctx, entity.StatusPending)
	if err != nil {
		return nil, err
	}
	return &entity.ApprovalSettings{
		Settings:     *settings,
		PendingCount: pending,
	}, nil
}
