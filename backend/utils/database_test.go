package utils

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"projectassistant/backend/config"
)

type captureWriter struct {
	mu    sync.Mutex
	lines []string
}

func (w *captureWriter) Printf(format string, args ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

type widget struct {
	ID   uint
	Name string
}

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	w := &captureWriter{}
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: newGormLogger(w, gormlogger.Warn)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&widget{}))

	var found widget
	err = db.First(&found, 42).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, w.lines)

	// real failures are still reported
	err = db.Table("missing_table").First(&found).Error
	assert.Error(t, err)
	assert.NotEmpty(t, w.lines)
}

func TestInitDBSQLite(t *testing.T) {
	db, err := InitDB(&config.Config{DBDriver: config.DriverSQLite, DBName: ":memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
