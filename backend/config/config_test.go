package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 45*time.Second, cfg.AITimeout)
	assert.Equal(t, 2500, cfg.AIMaxTokens)
	assert.Equal(t, 7*24*time.Hour, cfg.ExerciseCacheTTL)
	assert.Equal(t, AssignmentDedupe, cfg.ExerciseAssignment)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.AIEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "assistant.db")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("EXERCISE_ASSIGNMENT", "append")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "assistant.db", cfg.DSN())
	assert.True(t, cfg.AIEnabled())
	assert.Equal(t, 5*time.Second, cfg.AITimeout)
	assert.Equal(t, AssignmentAppend, cfg.ExerciseAssignment)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
}

func TestValidate(t *testing.T) {
	base := Config{
		ServerPort:         "8080",
		DBDriver:           DriverPostgres,
		JWTSecret:          "secret",
		ExerciseAssignment: AssignmentDedupe,
	}
	require.NoError(t, base.Validate())

	badPort := base
	badPort.ServerPort = "99999"
	assert.Error(t, badPort.Validate())

	badDriver := base
	badDriver.DBDriver = "mysql"
	assert.Error(t, badDriver.Validate())

	badPolicy := base
	badPolicy.ExerciseAssignment = "sometimes"
	assert.Error(t, badPolicy.Validate())

	coldTemp := base
	coldTemp.AITemperature = 0
	assert.NoError(t, coldTemp.Validate())
	coldTemp.AITemperature = -0.5
	assert.Error(t, coldTemp.Validate())
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{
		DBDriver:   DriverPostgres,
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "u",
		DBPassword: "p",
		DBName:     "n",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.DSN())
}
