package models

import "gorm.io/gorm"

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Post{},
		&ProductReview{},
		&FeaturedProduct{},
		&SiteSettings{},
	}
}

// AutoMigrate creates the schema for sqlite development databases and tests.
// Postgres deployments use the goose migrations under migrations/.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
