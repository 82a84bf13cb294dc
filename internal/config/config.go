package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Mongo      MongoConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Admin      AdminConfig
	Chat       ChatConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// MongoConfig is only read when the attendance ledger is stored in MongoDB.
type MongoConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

const (
	StorePostgres = "postgres"
	StoreMongoDB  = "mongodb"
)

// AttendanceConfig controls where the ledger lives and which zone defines "today".
type AttendanceConfig struct {
	Store    string
	Timezone string
}

// AdminConfig optionally bootstraps an HR admin account at startup.
type AdminConfig struct {
	BootstrapID       string
	BootstrapPassword string
}

type ChatConfig struct {
	LogRetention time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	} else if err != nil {
		slog.Info("No .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_system"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Mongo = MongoConfig{
		URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGO_DB_NAME", "hr_system"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Attendance = AttendanceConfig{
		Store:    strings.ToLower(getEnv("ATTENDANCE_STORE", StorePostgres)),
		Timezone: getEnv("ATTENDANCE_TIMEZONE", "UTC"),
	}

	config.Admin = AdminConfig{
		BootstrapID:       getEnv("ADMIN_BOOTSTRAP_ID", ""),
		BootstrapPassword: getEnv("ADMIN_BOOTSTRAP_PASSWORD", ""),
	}

	retention, err := time.ParseDuration(getEnv("CHAT_LOG_RETENTION", "2160h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHAT_LOG_RETENTION: %w", err)
	}
	config.Chat = ChatConfig{LogRetention: retention}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	switch c.Attendance.Store {
	case StorePostgres:
	case StoreMongoDB:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required when ATTENDANCE_STORE=mongodb")
		}
	default:
		return fmt.Errorf("unsupported ATTENDANCE_STORE: %q", c.Attendance.Store)
	}
	if _, err := time.LoadLocation(c.Attendance.Timezone); err != nil {
		return fmt.Errorf("invalid ATTENDANCE_TIMEZONE: %w", err)
	}
	if (c.Admin.BootstrapID == "") != (c.Admin.BootstrapPassword == "") {
		return fmt.Errorf("ADMIN_BOOTSTRAP_ID and ADMIN_BOOTSTRAP_PASSWORD must be set together")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the zone the attendance date key is computed in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Attendance.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
