package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string   `mapstructure:"server_port"`
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`

	DBDriver   string `mapstructure:"db_driver"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSSLMode  string `mapstructure:"db_sslmode"`

	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// AI provider. An empty key leaves every generative feature on its fallback path.
	AIAPIKey      string        `mapstructure:"openrouter_api_key"`
	AIBaseURL     string        `mapstructure:"openrouter_base_url"`
	AIModel       string        `mapstructure:"openrouter_model"`
	AIReferer     string        `mapstructure:"openrouter_referer"`
	AITitle       string        `mapstructure:"openrouter_title"`
	AITimeout     time.Duration `mapstructure:"ai_timeout"`
	AIMaxTokens   int           `mapstructure:"ai_max_tokens"`
	AITemperature float64       `mapstructure:"ai_temperature"`

	ExerciseCacheTTL   time.Duration `mapstructure:"exercise_cache_ttl"`
	ExerciseAssignment string        `mapstructure:"exercise_assignment"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	AssignmentDedupe = "dedupe"
	AssignmentAppend = "append"
)

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.CORSAllowOrigins = splitList(strings.Join(cfg.CORSAllowOrigins, ","))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", "8080")
	v.SetDefault("cors_allow_origins", []string{"*"})

	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "project_assistant")
	v.SetDefault("db_sslmode", "disable")

	v.SetDefault("jwt_secret", "secret")
	v.SetDefault("jwt_ttl", 72*time.Hour)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("openrouter_api_key", "")
	v.SetDefault("openrouter_base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter_model", "openai/gpt-3.5-turbo")
	v.SetDefault("openrouter_referer", "http://localhost:8080")
	v.SetDefault("openrouter_title", "Smart Project Assistant")
	v.SetDefault("ai_timeout", 45*time.Second)
	v.SetDefault("ai_max_tokens", 2500)
	v.SetDefault("ai_temperature", 0.7)

	v.SetDefault("exercise_cache_ttl", 7*24*time.Hour)
	v.SetDefault("exercise_assignment", AssignmentDedupe)
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.ServerPort)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %q", c.ServerPort)
	}
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.ExerciseAssignment {
	case AssignmentDedupe, AssignmentAppend:
	default:
		return fmt.Errorf("unsupported EXERCISE_ASSIGNMENT %q", c.ExerciseAssignment)
	}
	if c.AITemperature < 0 || c.AITemperature > 2 {
		return fmt.Errorf("AI_TEMPERATURE must be between 0 and 2, got %v", c.AITemperature)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	return nil
}

// DSN builds the connection string for the configured driver. For sqlite DBName is the file path
// (or a file: URI).
func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return c.DBName
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// AIEnabled reports whether an AI provider key is present.
func (c *Config) AIEnabled() bool {
	return strings.TrimSpace(c.AIAPIKey) != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
