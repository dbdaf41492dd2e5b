package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schooladmin/internal/config"
	"schooladmin/internal/model"
)

func InitDB() *gorm.DB {
	dsn := "host=" + config.DBHost + " user=" + config.DBUser + " password=" + config.DBPassword + " dbname=" + config.DBName + " port=" + config.DBPort + " sslmode=disable"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to the database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to auto-migrate the database:", err)
	}

	return db
}

// Migrate creates the per-entity tables. No cross-table constraints: roll
// numbers and employee ids are plain columns, exactly as loose as the
// documents they replaced.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Student{},
		&model.Parent{},
		&model.Teacher{},
		&model.Principal{},
		&model.Superuser{},
		&model.Mark{},
		&model.Attendance{},
	)
}
