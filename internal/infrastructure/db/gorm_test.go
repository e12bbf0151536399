package db

import (
	"testing"

	"gramsetu-backend/internal/config"
	"gramsetu-backend/internal/domain/application"
)

func TestOpen_SQLiteMemoryAndMigrate(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLiteDSN: ":memory:"}
	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !db.Migrator().HasTable(&application.Application{}) {
		t.Fatal("loan_applications table not migrated")
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	if _, err := Open(&config.Config{DBDriver: "oracle"}); err == nil {
		t.Fatal("want error for unknown driver")
	}
}
