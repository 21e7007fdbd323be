package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Env         string `mapstructure:"ENV"`
	Port        string `mapstructure:"PORT"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	DBDriver    string `mapstructure:"DB_DRIVER"`
	PostgresURL string `mapstructure:"POSTGRES_URL"`
	SQLitePath  string `mapstructure:"SQLITE_PATH"`

	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`
	BcryptCost  int    `mapstructure:"BCRYPT_COST"`
	AdminEmail  string `mapstructure:"ADMIN_EMAIL"`

	AppTimezone           string `mapstructure:"APP_TIMEZONE"`
	PresenceWindowMinutes int    `mapstructure:"PRESENCE_WINDOW_MINUTES"`

	AIProvider     string  `mapstructure:"AI_PROVIDER"`
	OpenAIAPIKey   string  `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel    string  `mapstructure:"OPENAI_MODEL"`
	OpenAITTSModel string  `mapstructure:"OPENAI_TTS_MODEL"`
	GeminiAPIKey   string  `mapstructure:"GEMINI_API_KEY"`
	GeminiModel    string  `mapstructure:"GEMINI_MODEL"`
	AIMaxTokens    int     `mapstructure:"AI_MAX_TOKENS"`
	AITemperature  float32 `mapstructure:"AI_TEMPERATURE"`

	RedisURL    string `mapstructure:"REDIS_URL"`
	KafkaBroker string `mapstructure:"KAFKA_BROKER"`
	KafkaTopic  string `mapstructure:"KAFKA_TOPIC"`

	KafkaUsername string `mapstructure:"KAFKA_USERNAME"`
	KafkaPassword string `mapstructure:"KAFKA_PASSWORD"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

var defaults = map[string]any{
	"ENV":                     "development",
	"PORT":                    "8080",
	"CORS_ORIGINS":            "*",
	"DB_DRIVER":               "postgres",
	"SQLITE_PATH":             "kindred.db",
	"JWT_TTL_HOURS":           168,
	"BCRYPT_COST":             12,
	"APP_TIMEZONE":            "UTC",
	"PRESENCE_WINDOW_MINUTES": 5,
	"AI_PROVIDER":             "openai",
	"OPENAI_MODEL":            "gpt-4o-mini",
	"OPENAI_TTS_MODEL":        "tts-1",
	"GEMINI_MODEL":            "gemini-1.5-flash",
	"AI_MAX_TOKENS":           500,
	"AI_TEMPERATURE":          0.7,
	"KAFKA_TOPIC":             "emotion-alerts",
	"SMTP_PORT":               587,
	"LOG_LEVEL":               "info",
	"LOG_FORMAT":              "json",
}

// Load reads an optional .env file, then environment variables, into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// Unmarshal only sees keys viper knows about, so every field is bound explicitly.
	for _, key := range []string{
		"POSTGRES_URL", "JWT_SECRET", "ADMIN_EMAIL", "OPENAI_API_KEY", "GEMINI_API_KEY",
		"REDIS_URL", "KAFKA_BROKER", "KAFKA_USERNAME", "KAFKA_PASSWORD", "SMTP_HOST", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM",
	} {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on settings the server cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.DBDriver {
	case "postgres":
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required when DB_DRIVER=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when DB_DRIVER=sqlite")
		}
	default:
		return errors.New("DB_DRIVER must be postgres or sqlite")
	}
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin == "" || origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}
	return nil
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTLHours) * time.Hour
}

func (c *Config) PresenceWindow() time.Duration {
	return time.Duration(c.PresenceWindowMinutes) * time.Minute
}
