package initializers

import (
	"log"

	"github.com/promovia/promovia-api/models"
)

func SyncDatabase() {
	err := DB.AutoMigrate(
		&models.Admin{},
		&models.Brand{},
		&models.Project{},
		&models.ProjectPromoCode{},
		&models.Promoter{},
		&models.PromoterProject{},
		&models.Vendor{},
		&models.City{},
		&models.Area{},
		&models.Activity{},
		&models.ActivityLocation{},
		&models.CapturedOrder{},
	)
	if err != nil {
		log.Fatalf("Failed to sync database: %v", err)
	}
	log.Println("Database synced successfully.")
}
