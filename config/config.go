// Package config reads the service settings from the environment, after
// loading a .env file when one is present.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/junaidrashid-git/orderdesk/payments"
)

type Config struct {
	Env  string
	Port string

	DB DB

	JWTSecret   string
	AdminAPIKey string
	CORSOrigins []string

	SearchDebounce time.Duration
	SessionTTL     time.Duration
	OrderTimeout   time.Duration

	UploadsDir      string
	PublicBaseURL   string
	BackupDir       string
	BackupRetention time.Duration
	BackupHour      int

	Payments payments.Config
}

// DB selects and addresses the database. Driver is postgres, mysql or sqlite.
type DB struct {
	Driver   string
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Params   string // mysql DSN parameters
	Path     string // sqlite file
	Seed     bool
}

// Load reads .env (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	driver := strings.ToLower(getEnv("DB_DRIVER", "postgres"))

	return Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DB: DB{
			Driver:   driver,
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     getEnv("DB_PORT", defaultDBPort(driver)),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "orderdesk"),
			Params:   getEnv("DB_PARAMS", "charset=utf8mb4&parseTime=True&loc=Local"),
			Path:     getEnv("SQLITE_PATH", "orderdesk.db"),
			Seed:     getBool("SEED_DATA", true),
		},

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		CORSOrigins: getList("CORS_ORIGINS", []string{"*"}),

		SearchDebounce: getDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		OrderTimeout:   getDuration("ORDER_TIMEOUT", 10*time.Second),

		UploadsDir:      getEnv("UPLOADS_DIR", "./uploads"),
		PublicBaseURL:   strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		BackupDir:       getEnv("BACKUP_DIR", "./backup/uploads"),
		BackupRetention: getDuration("BACKUP_RETENTION", 4*24*time.Hour),
		BackupHour:      getInt("BACKUP_HOUR", 2),

		Payments: paymentsFromEnv(),
	}
}

func paymentsFromEnv() payments.Config {
	storeID, _ := strconv.Atoi(os.Getenv("TELR_STORE_ID"))
	mode := strings.ToLower(os.Getenv("TELR_MODE"))

	return payments.Config{
		StoreID:       storeID,
		AuthKey:       os.Getenv("TELR_AUTH_KEY"),
		APIURL:        os.Getenv("TELR_API_URL"),
		Sandbox:       mode == "sandbox" || mode == "dev",
		Currency:      getEnv("TELR_CURRENCY", "INR"),
		WebhookSecret: os.Getenv("TELR_WEBHOOK_SECRET"),
		ReturnURLs: payments.ReturnURLs{
			Authorised: os.Getenv("TELR_SUCCESS_URL"),
			Declined:   os.Getenv("TELR_FAILURE_URL"),
			Cancelled:  os.Getenv("TELR_CANCEL_URL"),
		},
		Timeout: getDuration("TELR_TIMEOUT", 15*time.Second),
	}
}

func (c Config) Production() bool {
	return c.Env == "production"
}

func defaultDBPort(driver string) string {
	if driver == "mysql" {
		return "3306"
	}
	return "5432"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
