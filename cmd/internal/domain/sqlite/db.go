package sqlite

import (
	"time"

	"codcoz/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	glog "github.com/labstack/gommon/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Init opens the ledger database at path and migrates it. Pass ":memory:"
// for a throwaway database.
func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newLogger(glog.New("gorm")),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.MenuRecord{})
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// newLogger reports slow queries and failures. A lookup that finds no row is
// an expected answer and is not logged.
func newLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
