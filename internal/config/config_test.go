package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	c := Load()
	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q", c.AppPort)
	}
	if c.DBDriver != DriverSQLite {
		t.Fatalf("DBDriver = %q, want sqlite default", c.DBDriver)
	}
	if c.SQLiteDSN == "" {
		t.Fatal("SQLiteDSN empty")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidate_MySQLDriver(t *testing.T) {
	c := Load()
	c.DBDriver = DriverMySQL
	if err := c.Validate(); err != nil {
		t.Fatalf("mysql defaults invalid: %v", err)
	}

	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil {
		t.Fatal("want error for bad MYSQL_PORT")
	}

	c = Load()
	c.DBDriver = DriverMySQL
	c.MySQLHost = ""
	if err := c.Validate(); err == nil {
		t.Fatal("want error for missing MYSQL_HOST")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	c := Load()
	c.DBDriver = "postgres"
	if err := c.Validate(); err == nil {
		t.Fatal("want error for unknown driver")
	}
}

func TestMySQLDSN_Shape(t *testing.T) {
	c := Load()
	dsn := c.MySQLDSN()
	want := "gramsetu:gramsetu@tcp(mysql:3306)/gramsetu?multiStatements=true&parseTime=true&charset=utf8mb4,utf8"
	if dsn != want {
		t.Fatalf("dsn = %q", dsn)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", DriverMySQL)
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")
	t.Setenv("DEFAULT_RATE_PCT", "2.5")

	c := Load()
	if c.AppPort != "9090" || c.DBDriver != DriverMySQL || c.RedisAddr != "localhost:6379" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.IdempTTLSecs != 60 || c.DefaultRatePct != 2.5 {
		t.Fatalf("numeric overrides not applied: %+v", c)
	}
}
