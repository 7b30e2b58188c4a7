package repository

import (
	"fmt"
	"log"

	"main/model"

	"gorm.io/gorm"
)

// SetupSchema creates the users and notes tables together with their
// unique and foreign key constraints. Called once at process start.
func SetupSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Println("Successfully created schema")
	return nil
}
