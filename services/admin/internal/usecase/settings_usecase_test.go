package usecase

import (
	"context"
	"testing"

	"pilates-club/pkg/logger"
	"pilates-club/services/admin/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetApprovalSettings(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	memberRepo := new(MockMemberRepository)
	uc := NewSettingsUseCase(settingsRepo, memberRepo, logger.New())

	settingsRepo.On("GetLatest", mock.Anything).Return(&entity.Settings{DefaultExpirationMonths: 3}, nil)
	memberRepo.On("CountByStatus", mock.Anything, entity.StatusPending).Return(int64(7), nil)

	settings, err := uc.GetApprovalSettings(context.Background())

	require.NoError(t, err)
	assert.False(t, settings.AutoApproveSignup)
	assert.Equal(t, 3, settings.DefaultExpirationMonths)
	assert.Equal(t, int64(7), settings.PendingCount)
}

func TestUpdateApprovalSettings(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	memberRepo := new(MockMemberRepository)
	uc := NewSettingsUseCase(settingsRepo, memberRepo, logger.New())

	input := entity.Settings{AutoApproveSignup: true, DefaultExpirationMonths: 12}
	settingsRepo.On("Save", mock.Anything, &input).Return(&entity.Settings{ID: "s1", AutoApproveSignup: true, DefaultExpirationMonths: 12}, nil)
	memberRepo.On("CountByStatus", mock.Anything, entity.StatusPending).Return(int64(0), nil)

	settings, err := uc.UpdateApprovalSettings(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, settings.AutoApproveSignup)
	assert.Equal(t, "s1", settings.ID)
}

func TestUpdateApprovalSettings_MonthsRange(t *testing.T) {
	settingsRepo := new(MockSettingsRepository)
	uc := NewSettingsUseCase(settingsRepo, new(MockMemberRepository), logger.New())

	for _, months := range []int{0, -1, 121} {
		_, err := uc.UpdateApprovalSettings(context.Background(), entity.Settings{DefaultExpirationMonths: months})
		assert.ErrorIs(t, err, ErrInvalidMonths, "months=%d", months)
	}
	settingsRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
