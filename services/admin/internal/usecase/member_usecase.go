package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pilates-club/pkg/logger"
	"pilates-club/pkg/pinpad"
	"pilates-club/services/admin/internal/entity"
	"pilates-club/services/admin/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

type MemberUseCase interface {
	ListMembers(ctx context.Context, filter entity.MemberFilter) (*entity.MemberPage, error)
	PendingCount(ctx context.Context) (int64, error)
	CreateMember(ctx context.Context, input entity.NewMember) (*entity.Member, error)
	UpdateStatus(ctx context.Context, id string, status entity.MemberStatus) (*entity.Member, error)
	BulkUpdateStatus(ctx context.Context, ids []string, status entity.MemberStatus) (int64, error)
	UpdateExpiration(ctx context.Context, id string, change entity.ExpirationChange) (*entity.Member, error)
	Approve(ctx context.Context, id string) (*entity.Member, error)
	Reject(ctx context.Context, id string) (*entity.Member, error)
	// ExpireOverdue moves active members past their expiration to expired.
	ExpireOverdue(ctx context.Context) (int64, error)
}

type memberUseCase struct {
	memberRepo   persistent.MemberRepository
	settingsRepo persistent.SettingsRepository
	logger       *logger.Logger
	now          func() time.Time
}

func NewMemberUseCase(
	memberRepo persistent.MemberRepository,
	settingsRepo persistent.SettingsRepository,
	logger *logger.Logger,
) MemberUseCase {
	return &memberUseCase{
		memberRepo:   memberRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
		now:          time.Now,
	}
}

func (uc *memberUseCase) ListMembers(ctx context.Context, filter entity.MemberFilter) (*entity.MemberPage, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	page, pageSize, offset := normalizePage(filter.Page, filter.PageSize)
	members, total, err := uc.memberRepo.List(ctx, filter.Status, offset, pageSize)
	if err != nil {
		return nil, err
	}

	return &entity.MemberPage{
		Items:      members,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (uc *memberUseCase) PendingCount(ctx context.Context) (int64, error) {
	return uc.memberRepo.CountByStatus(ctx, entity.StatusPending)
}

func (uc *memberUseCase) CreateMember(ctx context.Context, input entity.NewMember) (*entity.Member, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.PIN == "" {
		return nil, ErrMemberFieldsRequired
	}
	if !pinpad.Valid(input.PIN) {
		return nil, ErrInvalidPIN
	}

	exists, err := uc.memberRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		nickname = name
	}

	member := &entity.Member{
		Name:         name,
		Nickname:     nickname,
		BirthDate:    input.BirthDate,
		Email:        email,
		PasswordHash: string(hash),
		Status:       entity.StatusActive,
		Role:         entity.RoleUser,
		ExpiredAt:    input.ExpiredAt,
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, persistent.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	uc.logger.Info("Admin added member %s", member.ID)
	return member, nil
}

// defaultExpiration is what an approval stamps on a pending member.
func (uc *memberUseCase) defaultExpiration(ctx context.Context) (*time.Time, error) {
	settings, err := uc.settingsRepo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}
	expiredAt := uc.now().AddDate(0, settings.DefaultExpirationMonths, 0)
	return &expiredAt, nil
}

func (uc *memberUseCase) getMember(ctx context.Context, id string) (*entity.Member, error) {
	member, err := uc.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (uc *memberUseCase) UpdateStatus(ctx context.Context, id string, status entity.MemberStatus) (*entity.Member, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	member, err := uc.getMember(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.transition(ctx, member, status)
}

// transition moves member to status; pending members being activated also
// get the default expiration.
func (uc *memberUseCase) transition(ctx context.Context, member *entity.Member, status entity.MemberStatus) (*entity.Member, error) {
	var expiredAt *time.Time
	if member.Status == entity.StatusPending && status == entity.StatusActive {
		var err error
		if expiredAt, err = uc.defaultExpiration(ctx); err != nil {
			return nil, err
		}
	}

	if err := uc.memberRepo.UpdateStatus(ctx, member.ID, status, expiredAt); err != nil {
		return nil, err
	}

	uc.logger.Info("Member %s status %s -> %s", member.ID, member.Status, status)

	member.Status = status
	if expiredAt != nil {
		member.ExpiredAt = expiredAt
	}
	return member, nil
}

func (uc *memberUseCase) BulkUpdateStatus(ctx context.Context, ids []string, status entity.MemberStatus) (int64, error) {
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}
	if len(ids) == 0 {
		return 0, ErrNoMembersSelected
	}

	var pendingExpiredAt *time.Time
	if status == entity.StatusActive {
		var err error
		if pendingExpiredAt, err = uc.defaultExpiration(ctx); err != nil {
			return 0, err
		}
	}

	affected, err := uc.memberRepo.BulkUpdateStatus(ctx, ids, status, pendingExpiredAt)
	if err != nil {
		return 0, err
	}

	uc.logger.Info("Bulk status change to %s: %d of %d members updated", status, affected, len(ids))
	return affected, nil
}

func (uc *memberUseCase) UpdateExpiration(ctx context.Context, id string, change entity.ExpirationChange) (*entity.Member, error) {
	var expiredAt time.Time
	switch {
	case change.ExpiredAt != nil:
		expiredAt = *change.ExpiredAt
	case change.Months != 0:
		if change.Months < entity.MinExpirationMonths || change.Months > entity.MaxExpirationMonths {
			return nil, ErrInvalidMonths
		}
		expiredAt = uc.now().AddDate(0, change.Months, 0)
	default:
		return nil, ErrExpirationRequired
	}

	member, err := uc.getMember(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.memberRepo.UpdateExpiration(ctx, id, &expiredAt); err != nil {
		return nil, err
	}

	member.ExpiredAt = &expiredAt
	return member, nil
}

func (uc *memberUseCase) Approve(ctx context.Context, id string) (*entity.Member, error) {
	member, err := uc.getMember(ctx, id)
	if err != nil {
		return nil, err
	}
	if member.Status != entity.StatusPending {
		return nil, ErrNotPending
	}
	return uc.transition(ctx, member, entity.StatusActive)
}

func (uc *memberUseCase) Reject(ctx context.Context, id string) (*entity.Member, error) {
	member, err := uc.getMember(ctx, id)
	if err != nil {
		return nil, err
	}
	if member.Status != entity.StatusPending {
		return nil, ErrNotPending
	}
	return uc.transition(ctx, member, entity.StatusCancelled)
}

func (uc *memberUseCase) ExpireOverdue(ctx context.Context) (int64, error) {
	return uc.memberRepo.ExpireOverdue(ctx, uc.now())
}
