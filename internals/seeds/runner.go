package seeds

import (
	"gorm.io/gorm"

	serviceSeed "dentalcare_backend/internals/seeds/services"
	settingSeed "dentalcare_backend/internals/seeds/settings"
)

// RunAllSeeds inserts the default clinic data. Every seed is insert-if-absent,
// so running this on each startup never duplicates rows or overwrites values
// an admin has already changed.
func RunAllSeeds(db *gorm.DB) error {
	if err := settingSeed.SeedDefaultSettings(db); err != nil {
		return err
	}
	return serviceSeed.SeedDefaultServices(db)
}
