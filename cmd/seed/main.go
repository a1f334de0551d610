package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"affiliate-blog/pkg/config"
	"affiliate-blog/pkg/database"
	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const samplePostSlug = "welcome-to-the-blog"

type options struct {
	adminEmail    string
	adminPassword string
	samplePost    bool
	cost          int
}

func main() {
	var samplePost bool
	flag.BoolVar(&samplePost, "sample-post", false, "Create a published sample post")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.Open(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	if cfg.DBDriver == database.DriverSQLite {
		if err := models.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate sqlite database: %v", err)
			panic(err)
		}
	}

	opts := options{
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		samplePost:    samplePost,
		cost:          bcrypt.DefaultCost,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedDatabase(ctx, db, opts, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

// seedDatabase is idempotent: an existing admin keeps its password and a
// second run never duplicates the sample post.
func seedDatabase(ctx context.Context, db *gorm.DB, opts options, log *logger.Logger) error {
	db = db.WithContext(ctx)

	if err := seedAdmin(db, opts, log); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	if opts.samplePost {
		if err := seedSamplePost(db, log); err != nil {
			return fmt.Errorf("failed to seed sample post: %w", err)
		}
	}

	return nil
}

func seedAdmin(db *gorm.DB, opts options, log *logger.Logger) error {
	email := strings.ToLower(strings.TrimSpace(opts.adminEmail))
	if email == "" || opts.adminPassword == "" {
		return errors.New("admin email and password are required")
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		if existing.Role != models.RoleAdmin || !existing.IsActive {
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"role":      models.RoleAdmin,
				"is_active": true,
			}).Error; err != nil {
				return err
			}
			log.Info("Promoted %s to admin", email)
			return nil
		}
		log.Info("Admin %s already exists, skipping", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.adminPassword), opts.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.User{
		Email:    email,
		Name:     "Admin",
		Password: string(hash),
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Info("Created admin %s", email)
	return nil
}

func seedSamplePost(db *gorm.DB, log *logger.Logger) error {
	var count int64
	if err := db.Model(&models.Post{}).Where("slug = ?", samplePostSlug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Sample post already exists, skipping")
		return nil
	}

	readingTime := 1
	post := &models.Post{
		Title:          "Welcome to the Blog",
		Slug:           samplePostSlug,
		Excerpt:        "A first post so the public site has something to render.",
		Content:        "<h2>Welcome</h2><p>Edit or delete this post from the admin dashboard.</p>",
		Status:         "PUBLISHED",
		SEOTitle:       "Welcome to the Blog",
		SEODescription: "A first post so the public site has something to render.",
		FocusKeyword:   "welcome",
		ReadingTime:    &readingTime,
	}
	if err := db.Create(post).Error; err != nil {
		return err
	}

	log.Info("Created sample post %s", post.ID)
	return nil
}
