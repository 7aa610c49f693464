package persistent

import (
	"pilates-club/services/auth/internal/entity"
	"pilates-club/services/auth/internal/model"
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
	}
}

func ToSettingsEntity(m *model.SettingsModel) *entity.Settings {
	if m == nil {
		return nil
	}

	return &entity.Settings{
		AutoApproveSignup:       m.AutoApproveSignup,
		DefaultExpirationMonths: m.DefaultExpirationMonths,
	}
}
