package store

import (
	"fmt"
	"time"

	"github.com/remindo/remindo/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store persists reminders. The underlying *gorm.DB is safe for concurrent
// use, so armed firings may share a Store with the main command path.
type Store struct {
	db *gorm.DB
}

// Open creates the backing database connection and ensures the reminders
// table exists. When databaseURL is provided PostgreSQL is used, otherwise
// the SQLite file at sqlitePath. Opening is idempotent across restarts.
func Open(databaseURL, sqlitePath string) (*Store, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if databaseURL != "" {
		db, err = gorm.Open(postgres.Open(databaseURL), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open(sqlitePath), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("open reminder store: %w", err)
	}

	if err := db.AutoMigrate(&model.Reminder{}); err != nil {
		return nil, fmt.Errorf("migrate reminder store: %w", err)
	}

	return &Store{db: db}, nil
}

// Insert stores a new reminder and returns its storage-assigned id. The
// trigger instant is canonicalised to an RFC 3339 UTC string.
func (s *Store) Insert(message string, trigger time.Time, advice *string) (uint, error) {
	reminder := &model.Reminder{
		Message:     message,
		TriggerTime: trigger.UTC().Format(time.RFC3339),
		AIAdvice:    advice,
	}
	if err := s.db.Create(reminder).Error; err != nil {
		return 0, fmt.Errorf("insert reminder: %w", err)
	}
	return reminder.ID, nil
}

// ListAll returns every stored reminder ascending by trigger time. An empty
// store yields an empty slice, not an error.
func (s *Store) ListAll() ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := s.db.Order("trigger_time asc").Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// Delete removes the reminder with the given id. Deleting an id that is no
// longer present is a no-op.
func (s *Store) Delete(id uint) error {
	if err := s.db.Delete(&model.Reminder{}, id).Error; err != nil {
		return fmt.Errorf("delete reminder %d: %w", id, err)
	}
	return nil
}
