package persistent

import (
	"errors"
	"strings"

	"affiliate-blog/services/content/internal/entity"

	"gorm.io/gorm"
)

// ErrDuplicateSlug is returned when a write collides with the unique index
// on posts.slug.
var ErrDuplicateSlug = errors.New("slug already exists")

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrNotFound
	}
	return err
}
