package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/ports"
)

// SQLiteRepository implements ports.StateRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StateRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the wcamp logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("WCAMP_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access (TUI and remind daemon may
	// hold the database at the same time)
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&SelectionModel{}, &ContactModel{}, &ScheduleEntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SelectedEvent implements ports.SelectionStore
func (r *SQLiteRepository) SelectedEvent(ctx context.Context) (int, error) {
	var row SelectionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("key = ?", singletonKey).First(&row).Error
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrNoEventSelected
		}
		return 0, err
	}
	return row.EventID, nil
}

// SelectEvent implements ports.SelectionStore
func (r *SQLiteRepository) SelectEvent(ctx context.Context, eventID int) error {
	row := SelectionModel{Key: singletonKey, EventID: eventID}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"event_id", "updated_at"}),
		}).Create(&row).Error
	}, 3)
}

// ClearSelection implements ports.SelectionStore
func (r *SQLiteRepository) ClearSelection(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("key = ?", singletonKey).Delete(&SelectionModel{}).Error
	}, 3)
}

// Contact implements ports.ContactStore
func (r *SQLiteRepository) Contact(ctx context.Context) (*domain.ContactCard, error) {
	var row ContactModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("key = ?", singletonKey).First(&row).Error
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoContactCard
		}
		return nil, err
	}

	card := contactModelToDomain(row)
	return &card, nil
}

// SaveContact implements ports.ContactStore
func (r *SQLiteRepository) SaveContact(ctx context.Context, card domain.ContactCard) error {
	row := domainToContactModel(card)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "email", "company", "website_url", "phone", "updated_at",
			}),
		}).Create(&row).Error
	}, 3)
}

// DeleteContact implements ports.ContactStore
func (r *SQLiteRepository) DeleteContact(ctx context.Context) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("key = ?", singletonKey).Delete(&ContactModel{}).Error
	}, 3)
}

// Entries implements ports.ScheduleStore
func (r *SQLiteRepository) Entries(ctx context.Context, eventID int) ([]domain.ScheduleEntry, error) {
	var rows []ScheduleEntryModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("event_id = ?", eventID).
			Order("created_at ASC").
			Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entryModelToDomain(row))
	}
	return entries, nil
}

// AddEntry implements ports.ScheduleStore
func (r *SQLiteRepository) AddEntry(ctx context.Context, entry domain.ScheduleEntry) error {
	row := domainToEntryModel(entry)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "event_id"}, {Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "start_local", "reminder_id", "remind_at", "notified_at", "updated_at",
			}),
		}).Create(&row).Error
	}, 3)
}

// RemoveEntry implements ports.ScheduleStore
func (r *SQLiteRepository) RemoveEntry(ctx context.Context, eventID, sessionID int) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("event_id = ? AND session_id = ?", eventID, sessionID).
			Delete(&ScheduleEntryModel{}).Error
	}, 3)
}

// ClearEntries implements ports.ScheduleStore
func (r *SQLiteRepository) ClearEntries(ctx context.Context, eventID int) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("event_id = ?", eventID).
			Delete(&ScheduleEntryModel{}).Error
	}, 3)
}

// DueEntries implements ports.ScheduleStore
func (r *SQLiteRepository) DueEntries(ctx context.Context, now int64) ([]domain.ScheduleEntry, error) {
	var rows []ScheduleEntryModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("remind_at > 0 AND remind_at <= ? AND notified_at IS NULL", now).
			Order("remind_at ASC").
			Find(&rows).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, entryModelToDomain(row))
	}
	return entries, nil
}

// MarkNotified implements ports.ScheduleStore
func (r *SQLiteRepository) MarkNotified(ctx context.Context, eventID, sessionID int, at int64) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Model(&ScheduleEntryModel{}).
			Where("event_id = ? AND session_id = ?", eventID, sessionID).
			Update("notified_at", at).Error
	}, 3)
}

// withRetry retries an operation on SQLite busy/locked errors
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
