package boot

import (
	"crs/src/db"
	"crs/src/models"
	"log"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Movie{},
		&models.Showtime{},
		&models.Seat{},
		&models.Reservation{},
		&models.Payment{},
		&models.Admin{},
		&models.AdminReference{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
