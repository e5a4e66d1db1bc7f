package postgres

import (
	"fmt"

	"cryptomine/api/internal/config"
	"cryptomine/api/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(config *config.Config) *gorm.DB {
	dbConfig := config.Postgres
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s", dbConfig.Host, dbConfig.User, dbConfig.Password, dbConfig.Db_name, dbConfig.Port, dbConfig.Ssl_mode)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("Gorm error: " + err.Error())
	}

	if err := migrate(db); err != nil {
		panic("Auto migrate error: " + err.Error())
	}

	return db
}

// InitTest opens a private in-memory sqlite database with the same
// schema, so repository and service tests run without a postgres.
func InitTest() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("Gorm error: " + err.Error())
	}

	// a single connection keeps every query on the same in-memory db
	sqlDB, err := db.DB()
	if err != nil {
		panic("Gorm error: " + err.Error())
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		panic("Auto migrate error: " + err.Error())
	}

	return db
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Users{},
		&domain.Balances{},
		&domain.MiningSessions{},
		&domain.Transactions{},
		&domain.WalletAddresses{},
		&domain.Events{},
	)
}

func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&domain.Users{}, &domain.Balances{}, &domain.MiningSessions{}, &domain.Transactions{}, &domain.WalletAddresses{}, &domain.Events{})
}
