package main

import (
	"context"
	"fmt"
	"testing"

	"affiliate-blog/pkg/database"
	"affiliate-blog/pkg/logger"
	"affiliate-blog/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.NewSQLiteDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func TestSeedDatabase_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	opts := options{adminEmail: " Admin@Example.com ", adminPassword: "admin123", samplePost: true, cost: bcrypt.MinCost}

	require.NoError(t, seedDatabase(context.Background(), db, opts, logger.NewNop()))
	require.NoError(t, seedDatabase(context.Background(), db, opts, logger.NewNop()))

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@example.com", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte("admin123")))

	var posts int64
	db.Model(&models.Post{}).Count(&posts)
	assert.Equal(t, int64(1), posts)
}

func TestSeedDatabase_PromotesExistingUser(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{Email: "boss@example.com", Password: "x", Role: models.RoleUser, IsActive: true}).Error)

	opts := options{adminEmail: "boss@example.com", adminPassword: "ignored", cost: bcrypt.MinCost}
	require.NoError(t, seedDatabase(context.Background(), db, opts, logger.NewNop()))

	var user models.User
	require.NoError(t, db.Where("email = ?", "boss@example.com").First(&user).Error)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "x", user.Password)
}

func TestSeedDatabase_RequiresCredentials(t *testing.T) {
	db := setupTestDB(t)

	err := seedDatabase(context.Background(), db, options{adminEmail: "", cost: bcrypt.MinCost}, logger.NewNop())
	assert.Error(t, err)
}
