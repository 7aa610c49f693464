package persistent

import (
	"context"
	"os"
	"testing"
	"time"

	"pilates-club/pkg/config"
	"pilates-club/pkg/database"
	"pilates-club/pkg/models"
	"pilates-club/services/auth/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testDB connects to TEST_DB_* and resets the schema, or skips the test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set")
	}

	cfg := &config.Config{
		DBDriver:   "postgres",
		DBHost:     host,
		DBPort:     envOr("TEST_DB_PORT", "5432"),
		DBUser:     envOr("TEST_DB_USER", "postgres"),
		DBPassword: envOr("TEST_DB_PASSWORD", "postgres"),
		DBName:     envOr("TEST_DB_NAME", "pilates_club_test"),
		DBSSLMode:  "disable",
	}

	db, err := database.New(cfg)
	if err != nil {
		t.Skipf("test database unreachable: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		t.Skip("test database unreachable")
	}

	require.NoError(t, db.AutoMigrate(&models.Member{}, &models.Coupon{}, &models.SystemSettings{}))
	for _, table := range []string{"coupons", "members", "system_settings"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRegistrant(email string) *entity.Member {
	return &entity.Member{
		Name:         "Kim",
		Nickname:     "Kim",
		Email:        email,
		PasswordHash: "hash",
		Status:       entity.StatusPending,
		Role:         entity.RoleUser,
	}
}

func seedCoupon(t *testing.T, db *gorm.DB, code string, expiresAt time.Time, used bool) *models.Coupon {
	t.Helper()
	coupon := &models.Coupon{Code: code, DurationMonths: 3, ExpiresAt: expiresAt}
	require.NoError(t, db.Create(coupon).Error)
	if used {
		require.NoError(t, db.Model(coupon).Update("is_used", true).Error)
	}
	return coupon
}

func countMembers(t *testing.T, db *gorm.DB, email string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Member{}).Where("email = ?", email).Count(&n).Error)
	return n
}

func TestMemberRepository_RegisterRedeemsCoupon(t *testing.T) {
	db := testDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	coupon := seedCoupon(t, db, "WELCOME3", now.AddDate(0, 1, 0), false)

	member := newRegistrant("kim@example.com")
	require.NoError(t, repo.Register(ctx, member, "WELCOME3", now))
	assert.NotEmpty(t, member.ID)

	var stored models.Coupon
	require.NoError(t, db.Where("id = ?", coupon.ID).First(&stored).Error)
	assert.True(t, stored.IsUsed)
	require.NotNil(t, stored.UsedBy)
	assert.Equal(t, member.ID, *stored.UsedBy)
	require.NotNil(t, stored.UsedAt)
	assert.Equal(t, int64(1), countMembers(t, db, "kim@example.com"))
}

func TestMemberRepository_RegisterUsedCouponRollsBack(t *testing.T) {
	db := testDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	// A coupon already claimed by a concurrent registration.
	seedCoupon(t, db, "CLAIMED", now.AddDate(0, 1, 0), true)
	seedCoupon(t, db, "LAPSED", now.AddDate(0, 0, -1), false)

	err := repo.Register(ctx, newRegistrant("late@example.com"), "CLAIMED", now)
	assert.ErrorIs(t, err, ErrCouponUnavailable)
	assert.Equal(t, int64(0), countMembers(t, db, "late@example.com"))

	err = repo.Register(ctx, newRegistrant("lapsed@example.com"), "LAPSED", now)
	assert.ErrorIs(t, err, ErrCouponUnavailable)
	assert.Equal(t, int64(0), countMembers(t, db, "lapsed@example.com"))
}

func TestMemberRepository_RegisterCouponOnlyOnce(t *testing.T) {
	db := testDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seedCoupon(t, db, "ONCE", now.AddDate(0, 1, 0), false)

	require.NoError(t, repo.Register(ctx, newRegistrant("first@example.com"), "ONCE", now))
	err := repo.Register(ctx, newRegistrant("second@example.com"), "ONCE", now)

	assert.ErrorIs(t, err, ErrCouponUnavailable)
	assert.Equal(t, int64(0), countMembers(t, db, "second@example.com"))
}

func TestMemberRepository_RegisterDuplicateEmail(t *testing.T) {
	db := testDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Register(ctx, newRegistrant("kim@example.com"), "", time.Now()))
	err := repo.Register(ctx, newRegistrant("kim@example.com"), "", time.Now())

	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCouponRepository_GetUnusedByCode(t *testing.T) {
	db := testDB(t)
	repo := NewCouponRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seedCoupon(t, db, "OPEN", now.AddDate(0, 1, 0), false)
	seedCoupon(t, db, "SPENT", now.AddDate(0, 1, 0), true)

	coupon, err := repo.GetUnusedByCode(ctx, "OPEN")
	require.NoError(t, err)
	assert.Equal(t, 3, coupon.DurationMonths)

	_, err = repo.GetUnusedByCode(ctx, "SPENT")
	assert.ErrorIs(t, err, ErrNotFound)
}
