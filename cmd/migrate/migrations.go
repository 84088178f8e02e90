package main

import (
	"gorm.io/gorm"

	"github.com/onebluedot/site/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.Project{},
		&models.HomepageSettings{},
		&models.AdminUser{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := enablePgcrypto(db); err != nil {
		return err
	}
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't handle
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		addProjectCategoryIndex,
		restrictSettingsToSingleRow,
	}

	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}

	return nil
}

// enablePgcrypto provides gen_random_uuid for admin user ids
func enablePgcrypto(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

func addProjectCategoryIndex(db *gorm.DB) error {
	return db.Exec(`CREATE INDEX IF NOT EXISTS idx_projects_category ON projects(category)`).Error
}

// restrictSettingsToSingleRow keeps homepage_settings a singleton
func restrictSettingsToSingleRow(db *gorm.DB) error {
	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'homepage_settings_singleton') THEN
				ALTER TABLE homepage_settings ADD CONSTRAINT homepage_settings_singleton CHECK (id = 1);
			END IF;
		END
		$$`).Error
}
