package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	AppPort string

	// sqlite keeps all records in process memory for the demo lifetime;
	// mysql is the opt-in for deployments that want durable storage.
	DBDriver  string
	SQLiteDSN string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	// empty RedisAddr disables the idempotency middleware
	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	GeminiAPIKey string
	GeminiModel  string

	// portfolio default rate is tracked outside this system
	DefaultRatePct float64
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func atoi(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func atof(k string, d float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort: getenv("APP_PORT", "8080"),

		DBDriver:  getenv("DB_DRIVER", DriverSQLite),
		SQLiteDSN: getenv("SQLITE_DSN", "file::memory:?cache=shared"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "gramsetu"),
		MySQLUser: getenv("MYSQL_USER", "gramsetu"),
		MySQLPass: getenv("MYSQL_PASS", "gramsetu"),

		RedisAddr:    getenv("REDIS_ADDR", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		IdempTTLSecs: atoi("IDEMPOTENCY_TTL_SECONDS", 300),

		GeminiAPIKey: getenv("GEMINI_API_KEY", ""),
		GeminiModel:  getenv("GEMINI_MODEL", ""),

		DefaultRatePct: atof("DEFAULT_RATE_PCT", 0),
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	switch c.DBDriver {
	case DriverSQLite:
		if c.SQLiteDSN == "" {
			return errors.New("missing SQLITE_DSN")
		}
	case DriverMySQL:
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
