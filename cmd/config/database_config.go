package config

import (
	"Groeneweide-Backend/internal/utils"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DSN renders the connection string for the configured driver.
func DSN(cfg *utils.Config) (string, error) {
	db := cfg.Database
	switch db.Driver {
	case "postgres", "":
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			db.Host, db.User, db.Password, db.Name, db.Port, db.SSLMode, db.TimeZone,
		), nil
	case "mysql":
		// clientFoundRows makes RowsAffected count matched rows, so an update
		// that writes identical values is not reported as unchanged.
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
			db.User, db.Password, db.Host, db.Port, db.Name,
		), nil
	}
	return "", fmt.Errorf("unsupported database driver %q", db.Driver)
}

func ConnectDB(cfg *utils.Config) (*gorm.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	if cfg.Database.Driver == "mysql" {
		dialector = mysql.Open(dsn)
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
