package postgres

import (
	"log"

	"github.com/kbf-dev/galerie-commerce-service/internal/config"
	"github.com/kbf-dev/galerie-commerce-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.CommerceConfig) *gorm.DB {
	dsn := cfg.CommerceDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v\n", err.Error())
	}
	sqlDB.SetMaxIdleConns(cfg.CommerceDB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.CommerceDB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.CommerceDB.ConnMaxLifetime)

	db.AutoMigrate(&models.UserModel{}, &models.MerchantModel{}, &models.ProductModel{}, &models.TransactionModel{})

	return db
}
