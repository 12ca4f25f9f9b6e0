package config

import (
	"fmt"
	"strings"
	"time"

	charmLog "github.com/charmbracelet/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	model "activity-tracker.com/activity-tracker/internal/models"
)

// sqliteOptions makes write transactions take the database lock up front and
// wait for it instead of failing with "database is locked".
var sqliteOptions = []string{
	"_busy_timeout=5000",
	"_txlock=immediate",
}

// sqliteDSN appends the connection options the caller has not set itself.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, opt := range sqliteOptions {
		key, _, _ := strings.Cut(opt, "=")
		if strings.Contains(dsn, key+"=") {
			continue
		}
		dsn += sep + opt
		sep = "&"
	}
	return dsn
}

func inMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// NewDatabaseClient opens the SQLite store. Timestamps written by gorm are UTC
// so due-date range comparisons stay consistent.
func NewDatabaseClient(dsn string, logger *charmLog.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
	if logger != nil {
		gormCfg.Logger = gormlogger.New(logger, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	} else {
		gormCfg.Logger = gormlogger.Discard
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(dsn)), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("db open failed: %w", err)
	}

	if !inMemory(dsn) {
		if err := db.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
