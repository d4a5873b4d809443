package repository

import "gorm.io/gorm"

// Migrate creates the three logical stores: users (with the provider
// registered-service set), catalog, and bookings (with decline records).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&providerServiceModel{},
		&serviceCategoryModel{},
		&serviceSubcategoryModel{},
		&bookingModel{},
		&bookingDeclineModel{},
	)
}
