package persistent

import (
	"context"
	"os"
	"testing"
	"time"

	"pilates-club/pkg/config"
	"pilates-club/pkg/database"
	"pilates-club/pkg/models"
	"pilates-club/services/catalog/internal/entity"

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

	require.NoError(t, db.AutoMigrate(&models.Content{}, &models.WatchLog{}))
	for _, table := range []string{"watch_logs", "contents"} {
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

// seedContent inserts a content row. visible is applied after insert so
// the column default cannot override false.
func seedContent(t *testing.T, db *gorm.DB, key, category string, visible bool, createdAt time.Time) *models.Content {
	t.Helper()
	content := &models.Content{
		Title:      "Class " + key,
		YoutubeURL: "https://youtu.be/dQw4w9WgXcQ",
		VideoKey:   key,
		CreatedAt:  createdAt,
	}
	if category != "" {
		content.Category = &category
	}
	require.NoError(t, db.Create(content).Error)
	require.NoError(t, db.Model(content).UpdateColumn("visible", visible).Error)
	return content
}

func TestCatalogRepository_ListVisibleFiltersHidden(t *testing.T) {
	db := testDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	seedContent(t, db, "older", "Mat", true, base)
	seedContent(t, db, "newer", "Reformer", true, base.Add(10*time.Minute))
	seedContent(t, db, "hidden", "Mat", false, base.Add(20*time.Minute))

	newest, err := repo.ListVisible(ctx, false, "")
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, "newer", newest[0].VideoKey)
	assert.Equal(t, "older", newest[1].VideoKey)

	oldest, err := repo.ListVisible(ctx, true, "")
	require.NoError(t, err)
	require.Len(t, oldest, 2)
	assert.Equal(t, "older", oldest[0].VideoKey)

	mat, err := repo.ListVisible(ctx, false, "Mat")
	require.NoError(t, err)
	require.Len(t, mat, 1)
	assert.Equal(t, "older", mat[0].VideoKey)
}

func TestCatalogRepository_CategoriesIgnoreHidden(t *testing.T) {
	db := testDB(t)
	repo := NewCatalogRepository(db)
	now := time.Now().UTC()

	seedContent(t, db, "a", "Reformer", true, now)
	seedContent(t, db, "b", "Mat", true, now)
	seedContent(t, db, "c", "Mat", true, now)
	seedContent(t, db, "d", "Secret", false, now)
	seedContent(t, db, "e", "", true, now)

	categories, err := repo.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Mat", "Reformer"}, categories)
}

func TestCatalogRepository_GetVisibleByKey(t *testing.T) {
	db := testDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	seedContent(t, db, "open", "", true, now)
	seedContent(t, db, "draft", "", false, now)

	content, err := repo.GetVisibleByKey(ctx, "open")
	require.NoError(t, err)
	assert.Equal(t, "Class open", content.Title)

	_, err = repo.GetVisibleByKey(ctx, "draft")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetVisibleByKey(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepository_DurationAndWatchLog(t *testing.T) {
	db := testDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	content := seedContent(t, db, "core", "", true, time.Now().UTC())

	require.NoError(t, repo.UpdateDuration(ctx, content.ID, "PT3M33S", "3:33"))
	got, err := repo.GetVisibleByKey(ctx, "core")
	require.NoError(t, err)
	require.NotNil(t, got.FormattedDuration)
	assert.Equal(t, "3:33", *got.FormattedDuration)

	require.NoError(t, repo.CreateWatchLog(ctx, &entity.WatchLog{MemberID: "member-1", ContentID: content.ID, WatchedAt: time.Now()}))
	var n int64
	require.NoError(t, db.Model(&models.WatchLog{}).Where("content_id = ?", content.ID).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}
