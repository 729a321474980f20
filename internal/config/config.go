package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	RemoteAPI RemoteAPIConfig
	Checkout  CheckoutConfig
	Scheduler SchedulerConfig
	CORS      CORSConfig
	Console   ConsoleConfig
	Map       MapConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration for the local tables
// (pending checkouts, list preferences, scheduler logs)
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// RemoteAPIConfig holds the memorial-park API connection settings
type RemoteAPIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	ActorHeader string

	// ServiceToken authenticates background calls (checkout polling, reconciliation)
	ServiceToken string
}

// CheckoutConfig holds checkout status polling settings
type CheckoutConfig struct {
	PollInterval time.Duration
	PollMax      time.Duration
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	ReconcileCronExpression string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// ConsoleConfig holds values the console shows or enforces
type ConsoleConfig struct {
	CompanyName       string
	RootAdminUsername string
	RootAdminEmail    string
}

// MapConfig holds directional guide settings
type MapConfig struct {
	OriginLat      float64
	OriginLng      float64
	GridSize       int
	OverlayOpacity float64
	AnimationStep  time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "memorial_console"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		RemoteAPI: RemoteAPIConfig{
			BaseURL:      getEnv("REMOTE_API_BASE_URL", "http://localhost:5000/api"),
			Timeout:      time.Duration(getEnvAsInt("REMOTE_API_TIMEOUT_SECONDS", 30)) * time.Second,
			ActorHeader:  getEnv("REMOTE_API_ACTOR_HEADER", "X-Actor"),
			ServiceToken: getEnv("REMOTE_API_SERVICE_TOKEN", ""),
		},
		Checkout: CheckoutConfig{
			PollInterval: time.Duration(getEnvAsInt("CHECKOUT_POLL_INTERVAL_SECONDS", 5)) * time.Second,
			PollMax:      time.Duration(getEnvAsInt("CHECKOUT_POLL_MAX_SECONDS", 180)) * time.Second,
		},
		Scheduler: SchedulerConfig{
			ReconcileCronExpression: getEnv("RECONCILE_CRON_EXPRESSION", "0 */2 * * * *"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000"),
		},
		Console: ConsoleConfig{
			CompanyName:       getEnv("COMPANY_NAME", "Memorial Park"),
			RootAdminUsername: getEnv("ROOT_ADMIN_USERNAME", "admin"),
			RootAdminEmail:    getEnv("ROOT_ADMIN_EMAIL", "admin@memorialpark.com"),
		},
		Map: MapConfig{
			OriginLat:      getEnvAsFloat("MAP_ORIGIN_LAT", 14.6760),
			OriginLng:      getEnvAsFloat("MAP_ORIGIN_LNG", 121.0437),
			GridSize:       getEnvAsInt("MAP_GRID_SIZE", 20),
			OverlayOpacity: getEnvAsFloat("MAP_OVERLAY_OPACITY", 0.85),
			AnimationStep:  time.Duration(getEnvAsInt("MAP_ANIMATION_STEP_MS", 800)) * time.Millisecond,
		},
	}

	if config.Map.GridSize <= 0 {
		return nil, fmt.Errorf("MAP_GRID_SIZE must be positive, got %d", config.Map.GridSize)
	}
	if config.Checkout.PollInterval <= 0 || config.Checkout.PollMax < config.Checkout.PollInterval {
		return nil, fmt.Errorf("invalid checkout polling window: interval %s, max %s", config.Checkout.PollInterval, config.Checkout.PollMax)
	}

	return config, nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
