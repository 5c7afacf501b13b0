package storage

import (
	"time"

	"wcamp/internal/domain"
)

// entryModelToDomain converts a ScheduleEntryModel (GORM) to a
// domain.ScheduleEntry
func entryModelToDomain(m ScheduleEntryModel) domain.ScheduleEntry {
	var notifiedAt *time.Time
	if m.NotifiedAt != nil {
		t := time.Unix(*m.NotifiedAt, 0).UTC()
		notifiedAt = &t
	}

	var remindAt time.Time
	if m.RemindAt > 0 {
		remindAt = time.Unix(m.RemindAt, 0).UTC()
	}

	return domain.ScheduleEntry{
		AddedAt:    m.CreatedAt,
		EventID:    m.EventID,
		NotifiedAt: notifiedAt,
		ReminderID: m.ReminderID,
		RemindAt:   remindAt,
		SessionID:  m.SessionID,
		StartLocal: m.StartLocal,
		Title:      m.Title,
	}
}

// domainToEntryModel converts a domain.ScheduleEntry to its GORM model
func domainToEntryModel(e domain.ScheduleEntry) ScheduleEntryModel {
	var remindAt int64
	if !e.RemindAt.IsZero() {
		remindAt = e.RemindAt.Unix()
	}

	var notifiedAt *int64
	if e.NotifiedAt != nil {
		v := e.NotifiedAt.Unix()
		notifiedAt = &v
	}

	return ScheduleEntryModel{
		EventID:    e.EventID,
		NotifiedAt: notifiedAt,
		ReminderID: e.ReminderID,
		RemindAt:   remindAt,
		SessionID:  e.SessionID,
		StartLocal: e.StartLocal,
		Title:      e.Title,
	}
}

// contactModelToDomain converts a ContactModel to a domain.ContactCard
func contactModelToDomain(m ContactModel) domain.ContactCard {
	return domain.ContactCard{
		Company:    m.Company,
		Email:      m.Email,
		FullName:   m.FullName,
		Phone:      m.Phone,
		WebsiteURL: m.WebsiteURL,
	}
}

// domainToContactModel converts a domain.ContactCard to its GORM model
func domainToContactModel(c domain.ContactCard) ContactModel {
	return ContactModel{
		Company:    c.Company,
		Email:      c.Email,
		FullName:   c.FullName,
		Key:        singletonKey,
		Phone:      c.Phone,
		WebsiteURL: c.WebsiteURL,
	}
}
