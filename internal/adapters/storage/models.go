package storage

import "time"

// SelectionModel is the GORM model for the selected event. A single row
// with a fixed key keeps the table honest about being a singleton.
type SelectionModel struct {
	CreatedAt time.Time
	EventID   int    `gorm:"not null"`
	Key       string `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SelectionModel) TableName() string { return "selected_event" }

// ContactModel is the GORM model for the contact card (singleton row).
type ContactModel struct {
	Company    string `gorm:"default:''"`
	CreatedAt  time.Time
	Email      string `gorm:"not null"`
	FullName   string `gorm:"not null"`
	Key        string `gorm:"primaryKey"`
	Phone      string `gorm:"default:''"`
	UpdatedAt  time.Time
	WebsiteURL string `gorm:"default:''"`
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string { return "contact_card" }

// ScheduleEntryModel is the GORM model for personal schedule entries.
type ScheduleEntryModel struct {
	CreatedAt  time.Time
	EventID    int    `gorm:"primaryKey;autoIncrement:false"`
	NotifiedAt *int64 `gorm:"default:null"`
	ReminderID string `gorm:"default:''"`
	RemindAt   int64  `gorm:"not null;default:0;index:idx_remind_at"`
	SessionID  int    `gorm:"primaryKey;autoIncrement:false"`
	StartLocal string `gorm:"default:''"`
	Title      string `gorm:"default:''"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ScheduleEntryModel) TableName() string { return "schedule_entries" }

// singletonKey is the fixed primary key for single-row tables
const singletonKey = "current"
