package config

import (
	"fmt"
	"time"

	"github.com/ChristelOko/BarometreHED-sub001/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB initialise la connexion à la base de données
func InitDB(config Config) error {
	dsn := config.GetDBConnString()

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// Paramètres du pool de connexions
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := migrateDB(); err != nil {
		return err
	}

	return nil
}

// migrateDB migre le schéma de toutes les tables
func migrateDB() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Feeling{},
		&models.ScanRecord{},
		&models.GuidanceTemplate{},
		&models.Reminder{},
	)
	if err != nil {
		return fmt.Errorf("échec de la migration de la base: %v", err)
	}
	return nil
}
