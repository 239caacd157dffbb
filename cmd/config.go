package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"orderservice/internal/adapters/out/postgres"
	"orderservice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Config holds the process settings read from the environment.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	ProfitReportSchedule string
	SeedCatalog          bool
}

// LoadConfig resolves every key from, in order of precedence, the process
// environment, envFile and the built-in default. A missing envFile is not an
// error. A key set to an empty value in the environment stays empty, which
// is how PROFIT_REPORT_SCHEDULE disables the report.
func LoadConfig(envFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "orders")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("PROFIT_REPORT_SCHEDULE", jobs.DefaultProfitReportSchedule)
	v.SetDefault("SEED_CATALOG", true)

	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		fileValues := make(map[string]any, len(values))
		for key, value := range values {
			fileValues[key] = value
		}
		if err := v.MergeConfigMap(fileValues); err != nil {
			return Config{}, fmt.Errorf("failed to merge %s: %w", envFile, err)
		}
	}

	maxOpen, err := nonNegativeInt(v, "DB_MAX_OPEN_CONNS")
	if err != nil {
		return Config{}, err
	}
	maxIdle, err := nonNegativeInt(v, "DB_MAX_IDLE_CONNS")
	if err != nil {
		return Config{}, err
	}
	seed, err := cast.ToBoolE(stringValue(v, "SEED_CATALOG"))
	if err != nil {
		return Config{}, fmt.Errorf("SEED_CATALOG must be a boolean, got %q", v.GetString("SEED_CATALOG"))
	}

	return Config{
		HTTPPort:             stringValue(v, "HTTP_PORT"),
		DBHost:               stringValue(v, "DB_HOST"),
		DBPort:               stringValue(v, "DB_PORT"),
		DBUser:               stringValue(v, "DB_USER"),
		DBPassword:           v.GetString("DB_PASSWORD"),
		DBName:               stringValue(v, "DB_NAME"),
		DBSslMode:            stringValue(v, "DB_SSLMODE"),
		DBMaxOpenConns:       maxOpen,
		DBMaxIdleConns:       maxIdle,
		ProfitReportSchedule: stringValue(v, "PROFIT_REPORT_SCHEDULE"),
		SeedCatalog:          seed,
	}, nil
}

// Connection returns the database settings for the postgres adapter.
func (c Config) Connection() postgres.ConnectionConfig {
	return postgres.ConnectionConfig{
		Host:         c.DBHost,
		Port:         c.DBPort,
		User:         c.DBUser,
		Password:     c.DBPassword,
		DBName:       c.DBName,
		SSLMode:      c.DBSslMode,
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
	}
}

func stringValue(v *viper.Viper, key string) string {
	return strings.TrimSpace(v.GetString(key))
}

// nonNegativeInt reads key strictly; viper's GetInt maps malformed input to 0.
func nonNegativeInt(v *viper.Viper, key string) (int, error) {
	value, err := cast.ToIntE(stringValue(v, key))
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, v.GetString(key))
	}
	return value, nil
}
