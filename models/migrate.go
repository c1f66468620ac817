package models

import "gorm.io/gorm"

// Migrate runs the database migrations
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Customer{}, &Contact{}, &Deal{}, &Task{})
}
