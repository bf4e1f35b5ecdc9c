package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/payroll"
)

const (
	RemoteSheets   = "sheets"
	RemotePostgres = "postgres"
)

type Config struct {
	App     AppConfig
	Remote  RemoteConfig
	Finance FinanceConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	// RefreshInterval is the background remote re-sync period; zero
	// disables the job.
	RefreshInterval time.Duration
}

// RemoteConfig selects and configures the remote store backend. Exactly
// one backend is active; there is no in-memory demo fallback, a missing
// or broken remote configuration is fatal at startup.
type RemoteConfig struct {
	Kind      string
	SheetsURL string
	Token     string
	Database  DatabaseConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// FinanceConfig holds the business parameters that are configuration,
// not data: the opening cash balance, the payroll recap policy, and the
// weekly rest days.
type FinanceConfig struct {
	InitialBalance decimal.Decimal
	WagePolicy     payroll.Policy
	// RestDays uses ISO weekday numbers, 1 = Monday through 7 = Sunday.
	RestDays []int
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments where the variables
	// come from the process environment.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	refreshInterval, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}

	config.App = AppConfig{
		Port:            appPort,
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RefreshInterval: refreshInterval,
	}

	// Remote store configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Remote = RemoteConfig{
		Kind:      getEnv("REMOTE_KIND", RemoteSheets),
		SheetsURL: getEnv("SHEETS_URL", ""),
		Token:     getEnv("SHEETS_TOKEN", ""),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "sipilpro"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
	}

	// Finance configuration
	initialBalance, err := decimal.NewFromString(getEnv("INITIAL_BALANCE", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid INITIAL_BALANCE: %w", err)
	}

	restDays, err := getEnvIntSlice("REST_DAYS", []int{7})
	if err != nil {
		return nil, fmt.Errorf("invalid REST_DAYS: %w", err)
	}

	config.Finance = FinanceConfig{
		InitialBalance: initialBalance,
		WagePolicy:     payroll.Policy(getEnv("WAGE_POLICY", string(payroll.PolicyRederive))),
		RestDays:       restDays,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Remote.Kind {
	case RemoteSheets:
		if c.Remote.SheetsURL == "" {
			return fmt.Errorf("SHEETS_URL is required")
		}
	case RemotePostgres:
		if c.Remote.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("REMOTE_KIND must be %q or %q", RemoteSheets, RemotePostgres)
	}

	switch c.Finance.WagePolicy {
	case payroll.PolicySnapshot, payroll.PolicyRederive:
	default:
		return fmt.Errorf("WAGE_POLICY must be %q or %q", payroll.PolicySnapshot, payroll.PolicyRederive)
	}

	for _, d := range c.Finance.RestDays {
		if d < 1 || d > 7 {
			return fmt.Errorf("REST_DAYS entries must be between 1 and 7")
		}
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Remote.Database.User,
		c.Remote.Database.Password,
		c.Remote.Database.Host,
		c.Remote.Database.Port,
		c.Remote.Database.Name,
		c.Remote.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntSlice(env string, fallback []int) ([]int, error) {
	value := getEnv(env, "")
	if value == "" {
		return fallback, nil
	}
	parts := strings.Split(value, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}
