package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"pilates-club/pkg/config"
	"pilates-club/pkg/database"
	"pilates-club/pkg/logger"
	"pilates-club/pkg/models"
	"pilates-club/pkg/pinpad"
	"pilates-club/pkg/videokey"
	"pilates-club/pkg/youtube"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sampleContent struct {
	title    string
	url      string
	category string
}

var sampleContents = []sampleContent{
	{"Morning Mat Flow", "https://www.youtube.com/watch?v=K56Z12XNQ5c", "Mat"},
	{"Core Basics for Beginners", "https://youtu.be/lCg_gh_fppI", "Mat"},
	{"Reformer Footwork", "https://www.youtube.com/watch?v=9CXp9FQ8Dv4", "Reformer"},
	{"Stretch and Release", "https://www.youtube.com/embed/2MoGxae-zyo", ""},
}

func main() {
	var (
		adminPIN   string
		adminName  string
		couponCode string
	)
	flag.StringVar(&adminPIN, "admin-pin", "000000", "6-digit PIN for the seeded admin member")
	flag.StringVar(&adminName, "admin-name", "Administrator", "display name for the seeded admin member")
	flag.StringVar(&couponCode, "coupon", "WELCOME3", "code of the sample coupon")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	if !pinpad.Valid(adminPIN) {
		log.Error("admin PIN must be exactly 6 digits")
		panic("invalid admin PIN")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Redis is optional here; durations are only looked up once.
	yt := youtube.NewClient(cfg.YouTube, nil)

	if err := seedDatabase(db, cfg, yt, adminName, adminPIN, couponCode, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, cfg *config.Config, yt *youtube.Client, adminName, adminPIN, couponCode string, log *logger.Logger) error {
	if len(cfg.AdminEmails) == 0 {
		return errors.New("ADMIN_EMAILS is empty")
	}

	adminID, err := seedAdmin(db, strings.ToLower(cfg.AdminEmails[0]), adminName, adminPIN, log)
	if err != nil {
		return err
	}

	if err := seedSettings(db, log); err != nil {
		return err
	}

	for _, sample := range sampleContents {
		if err := seedContent(db, yt, sample, log); err != nil {
			log.Error("Failed to create content %q: %v", sample.title, err)
		}
	}

	return seedCoupon(db, couponCode, adminID, log)
}

func seedAdmin(db *gorm.DB, email, name, pin string, log *logger.Logger) (string, error) {
	var existing models.Member
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Info("Admin %s already exists, skipping", email)
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}

	admin := &models.Member{
		Name:         name,
		Nickname:     name,
		Email:        email,
		PasswordHash: string(hash),
		Status:       models.StatusActive,
		Role:         models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return "", fmt.Errorf("failed to create admin: %w", err)
	}

	log.Info("Created admin: %s", email)
	return admin.ID, nil
}

func seedSettings(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&models.SystemSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Settings already exist, skipping")
		return nil
	}

	settings := models.DefaultSettings()
	if err := db.Create(&settings).Error; err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	log.Info("Created default settings (%d month expiration)", settings.DefaultExpirationMonths)
	return nil
}

func seedContent(db *gorm.DB, yt *youtube.Client, sample sampleContent, log *logger.Logger) error {
	var count int64
	if err := db.Model(&models.Content{}).Where("youtube_url = ?", sample.url).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Content %q already exists, skipping", sample.title)
		return nil
	}

	content := &models.Content{
		Title:      sample.title,
		YoutubeURL: sample.url,
		VideoKey:   videokey.Generate(),
		Visible:    true,
	}
	if sample.category != "" {
		category := sample.category
		content.Category = &category
	}

	if yt.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		details, err := yt.GetVideoDetails(ctx, youtube.ExtractID(sample.url))
		cancel()
		if err != nil {
			log.Warn("Failed to fetch duration for %q: %v", sample.title, err)
		} else if details != nil {
			content.Duration = &details.Duration
			content.FormattedDuration = &details.FormattedDuration
		}
	}

	if err := db.Create(content).Error; err != nil {
		return err
	}

	log.Info("Created content %q with key %s", content.Title, content.VideoKey)
	return nil
}

func seedCoupon(db *gorm.DB, code, adminID string, log *logger.Logger) error {
	var count int64
	if err := db.Model(&models.Coupon{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Coupon %s already exists, skipping", code)
		return nil
	}

	coupon := &models.Coupon{
		Code:           code,
		DurationMonths: 3,
		ExpiresAt:      time.Now().AddDate(0, 3, 0),
		CreatedBy:      &adminID,
	}
	if err := db.Create(coupon).Error; err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}

	log.Info("Created coupon %s", code)
	return nil
}
