package database

import "devconnect/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// User must stay listed so the profiles foreign key resolves to it.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	}
}
