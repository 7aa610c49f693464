package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pilates-club/pkg/jwt"
	"pilates-club/pkg/logger"
	"pilates-club/pkg/middleware"
	"pilates-club/pkg/pinpad"
	"pilates-club/services/auth/internal/entity"
	"pilates-club/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Login(ctx context.Context, email, pin string) (*entity.Session, error)
	Register(ctx context.Context, reg entity.Registration) (*entity.RegistrationResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetMember(ctx context.Context, memberID string) (*entity.Member, error)
}

// SessionRevoker invalidates a token before it expires.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type authUseCase struct {
	memberRepo   persistent.MemberRepository
	couponRepo   persistent.CouponRepository
	settingsRepo persistent.SettingsRepository
	jwtService   *jwt.Service
	sessions     SessionRevoker
	adminEmails  []string
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuthUseCase(
	memberRepo persistent.MemberRepository,
	couponRepo persistent.CouponRepository,
	settingsRepo persistent.SettingsRepository,
	jwtService *jwt.Service,
	sessions SessionRevoker,
	adminEmails []string,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		memberRepo:   memberRepo,
		couponRepo:   couponRepo,
		settingsRepo: settingsRepo,
		jwtService:   jwtService,
		sessions:     sessions,
		adminEmails:  adminEmails,
		logger:       logger,
		now:          time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isBcryptHash(hash string) bool {
	_, err := bcrypt.Cost([]byte(hash))
	return err == nil
}

func (uc *authUseCase) Login(ctx context.Context, email, pin string) (*entity.Session, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !pinpad.Valid(pin) {
		return nil, ErrInvalidPIN
	}

	member, err := uc.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		uc.logger.Error("Failed to load member %s: %v", email, err)
		return nil, fmt.Errorf("failed to load member: %w", err)
	}

	if !uc.pinMatches(ctx, member, pin) {
		return nil, ErrPINMismatch
	}

	switch member.Status {
	case entity.StatusActive:
	case entity.StatusPending:
		member, err = uc.approveOnLogin(ctx, member)
		if err != nil {
			return nil, err
		}
	default:
		return nil, &InactiveError{Status: member.Status}
	}

	token, err := uc.jwtService.GenerateToken(member.ID, member.Email, member.Name, string(member.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	claims, err := uc.jwtService.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	uc.logger.Info("Member %s logged in", member.ID)

	return &entity.Session{
		Member:    member,
		Token:     token,
		IsAdmin:   middleware.IsAdmin(string(member.Role), member.Email, uc.adminEmails),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// pinMatches accepts bcrypt hashes and legacy plaintext PINs. A matching
// plaintext PIN is replaced by its hash.
func (uc *authUseCase) pinMatches(ctx context.Context, member *entity.Member, pin string) bool {
	if isBcryptHash(member.PasswordHash) {
		return bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(pin)) == nil
	}

	if member.PasswordHash != pin {
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Warn("Failed to hash legacy PIN for member %s: %v", member.ID, err)
		return true
	}
	if err := uc.memberRepo.UpdatePasswordHash(ctx, member.ID, string(hash)); err != nil {
		uc.logger.Warn("Failed to upgrade legacy PIN for member %s: %v", member.ID, err)
	}
	return true
}

func (uc *authUseCase) approveOnLogin(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	settings, err := uc.settingsRepo.GetLatest(ctx)
	if err != nil {
		uc.logger.Error("Failed to load settings: %v", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if !settings.AutoApproveSignup {
		return nil, ErrPendingApproval
	}

	if err := uc.memberRepo.Activate(ctx, member.ID); err != nil {
		uc.logger.Error("Failed to auto-approve member %s: %v", member.ID, err)
		return nil, fmt.Errorf("failed to activate member: %w", err)
	}

	refreshed, err := uc.memberRepo.GetByID(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload member: %w", err)
	}

	uc.logger.Info("Member %s auto-approved on login", member.ID)
	return refreshed, nil
}

func (uc *authUseCase) Register(ctx context.Context, reg entity.Registration) (*entity.RegistrationResult, error) {
	name := strings.TrimSpace(reg.Name)
	email := normalizeEmail(reg.Email)
	couponCode := strings.TrimSpace(reg.CouponCode)

	if name == "" || email == "" || reg.PIN == "" {
		return nil, ErrRegistrationFieldsRequired
	}
	if !pinpad.Valid(reg.PIN) {
		return nil, ErrInvalidPIN
	}
	if reg.PIN != reg.PINConfirm {
		return nil, ErrPINConfirmMismatch
	}

	exists, err := uc.memberRepo.EmailExists(ctx, email)
	if err != nil {
		uc.logger.Error("Failed to check email %s: %v", email, err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	settings, err := uc.settingsRepo.GetLatest(ctx)
	if err != nil {
		uc.logger.Error("Failed to load settings: %v", err)
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	now := uc.now()
	months := settings.DefaultExpirationMonths

	if couponCode != "" {
		coupon, err := uc.couponRepo.GetUnusedByCode(ctx, couponCode)
		if err != nil {
			if errors.Is(err, persistent.ErrNotFound) {
				return nil, ErrInvalidCoupon
			}
			return nil, fmt.Errorf("failed to load coupon: %w", err)
		}
		if coupon.ExpiresAt.Before(now) {
			return nil, ErrCouponExpired
		}
		months = coupon.DurationMonths
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.PIN), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash PIN: %v", err)
		return nil, fmt.Errorf("failed to process registration")
	}

	nickname := strings.TrimSpace(reg.Nickname)
	if nickname == "" {
		nickname = name
	}

	status := entity.StatusPending
	if settings.AutoApproveSignup {
		status = entity.StatusActive
	}

	expiredAt := now.AddDate(0, months, 0)
	member := &entity.Member{
		Name:         name,
		Nickname:     nickname,
		BirthDate:    reg.BirthDate,
		Email:        email,
		PasswordHash: string(hash),
		Status:       status,
		Role:         entity.RoleUser,
		CreatedAt:    now,
		ExpiredAt:    &expiredAt,
	}
	if couponCode != "" {
		member.CouponCode = &couponCode
	}

	if err := uc.memberRepo.Register(ctx, member, couponCode, now); err != nil {
		switch {
		case errors.Is(err, persistent.ErrDuplicateEmail):
			return nil, ErrEmailTaken
		case errors.Is(err, persistent.ErrCouponUnavailable):
			return nil, ErrInvalidCoupon
		}
		uc.logger.Error("Failed to register member %s: %v", email, err)
		return nil, fmt.Errorf("failed to register member: %w", err)
	}

	uc.logger.Info("Member %s registered with status %s", member.ID, member.Status)

	return &entity.RegistrationResult{
		Member:       member,
		AutoApproved: settings.AutoApproveSignup,
	}, nil
}

func (uc *authUseCase) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if uc.sessions == nil {
		return nil
	}
	if err := uc.sessions.Revoke(ctx, tokenID, expiresAt); err != nil {
		uc.logger.Warn("Failed to revoke session %s: %v", tokenID, err)
		return err
	}
	return nil
}

func (uc *authUseCase) GetMember(ctx context.Context, memberID string) (*entity.Member, error) {
	member, err := uc.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}
