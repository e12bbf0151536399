package db

import (
	"fmt"
	"time"

	"gramsetu-backend/internal/config"
	"gramsetu-backend/internal/domain/application"
	"gramsetu-backend/internal/domain/repayment"
	"gramsetu-backend/internal/domain/user"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects per the configured driver and migrates the schema.
// The sqlite default keeps everything in process memory.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case config.DriverMySQL:
		db, err = gorm.Open(mysql.Open(cfg.MySQLDSN()), gcfg)
	case config.DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.SQLiteDSN), gcfg)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == config.DriverMySQL {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(30)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
		if err := sqlDB.Ping(); err != nil {
			return nil, err
		}
	}

	if err := db.AutoMigrate(
		&user.User{},
		&application.Application{},
		&repayment.Schedule{},
		&repayment.Payment{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
