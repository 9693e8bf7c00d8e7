package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"zilswap-indexer/config"
	"zilswap-indexer/models"
)

var (
	// ErrDuplicateEvent signals a natural-key collision on insert. Not a
	// failure: the event is already in the ledger and the write was a
	// no-op. Expected under at-least-once delivery.
	ErrDuplicateEvent = errors.New("duplicate event")

	// ErrStorageUnavailable wraps backing-store faults. Retry belongs to
	// the caller, nothing is retried here.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

type DBClient struct {
	DB *gorm.DB
}

func NewMysqlClient(cfg config.MysqlConfig) (*DBClient, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.UserName, cfg.PassWord, cfg.Host, cfg.Port, cfg.Database)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &DBClient{DB: db}, nil
}

func NewSqliteClient(cfg config.SqliteConfig) (*DBClient, error) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(cfg.Dir, "zilswap.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return &DBClient{DB: db}, nil
}

// NewClient wraps an already opened gorm handle. Used by tests and tools
// that manage the connection themselves.
func NewClient(db *gorm.DB) *DBClient {
	return &DBClient{DB: db}
}

// AutoMigrate ensures the two ledger tables and their indexes exist.
func (db *DBClient) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Swap{},
		&models.LiquidityChange{},
	)
}

// storageErr maps a gorm error to the ledger taxonomy. Unique-key
// conflicts become ErrDuplicateEvent, everything else surfaces as a
// storage fault wrapping the cause.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEvent
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}
