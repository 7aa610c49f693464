package persistent

import (
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/model"
)

func ToMemberEntity(m *model.MemberModel) *entity.Member {
	if m == nil {
		return nil
	}

	return &entity.Member{
		ID:           m.ID,
		Name:         m.Name,
		Nickname:     m.Nickname,
		BirthDate:    m.BirthDate,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Status:       entity.MemberStatus(m.Status),
		Role:         entity.MemberRole(m.Role),
		CreatedAt:    m.CreatedAt,
		ExpiredAt:    m.ExpiredAt,
		CouponCode:   m.CouponCode,
	}
}

func ToMemberModel(e *entity.Member) *model.MemberModel {
	if e == nil {
		return nil
	}

	return &model.MemberModel{
		ID:           e.ID,
		Name:         e.Name,
		Nickname:     e.Nickname,
		BirthDate:    e.BirthDate,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		Status:       string(e.Status),
		Role:         string(e.Role),
		CreatedAt:    e.CreatedAt,
		ExpiredAt:    e.ExpiredAt,
		CouponCode:   e.CouponCode,
	}
}

func ToMemberEntities(models []model.MemberModel) []*entity.Member {
	members := make([]*entity.Member, len(models))
	for i := range models {
		members[i] = ToMemberEntity(&models[i])
	}
	return members
}

func ToContentEntity(m *model.ContentModel) *entity.Content {
	if m == nil {
		return nil
	}

	return &entity.Content{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		YoutubeURL:        m.YoutubeURL,
		VideoKey:          m.VideoKey,
		Visible:           m.Visible,
		Category:          m.Category,
		Duration:          m.Duration,
		FormattedDuration: m.FormattedDuration,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToContentModel(e *entity.Content) *model.ContentModel {
	if e == nil {
		return nil
	}

	return &model.ContentModel{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		YoutubeURL:        e.YoutubeURL,
		VideoKey:          e.VideoKey,
		Visible:           e.Visible,
		Category:          e.Category,
		Duration:          e.Duration,
		FormattedDuration: e.FormattedDuration,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToContentEntities(models []model.ContentModel) []*entity.Content {
	contents := make([]*entity.Content, len(models))
	for i := range models {
		contents[i] = ToContentEntity(&models[i])
	}
	return contents
}

func ToCouponEntity(m *model.CouponModel) *entity.Coupon {
	if m == nil {
		return nil
	}

	return &entity.Coupon{
		ID:             m.ID,
		Code:           m.Code,
		DurationMonths: m.DurationMonths,
		ExpiresAt:      m.ExpiresAt,
		IsUsed:         m.IsUsed,
		UsedBy:         m.UsedBy,
		UsedAt:         m.UsedAt,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
	}
}

func ToCouponModel(e *entity.Coupon) *model.CouponModel {
	if e == nil {
		return nil
	}

	return &model.CouponModel{
		ID:             e.ID,
		Code:           e.Code,
		DurationMonths: e.DurationMonths,
		ExpiresAt:      e.ExpiresAt,
		IsUsed:         e.IsUsed,
		UsedBy:         e.UsedBy,
		UsedAt:         e.UsedAt,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
	}
}

func ToSettingsEntity(m *model.SettingsModel) *entity.Settings {
	if m == nil {
		return nil
	}

	return &entity.Settings{
		ID:                      m.ID,
		AutoApproveSignup:       m.AutoApproveSignup,
		DefaultExpirationMonths: m.DefaultExpirationMonths,
		UpdatedAt:               m.UpdatedAt,
	}
}
