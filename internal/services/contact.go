package services

import (
	"context"

	qrcode "github.com/skip2/go-qrcode"

	"wcamp/internal/domain"
	"wcamp/internal/logging"
	"wcamp/internal/ports"
)

// ContactService manages the user's contact card and its shareable
// renditions.
type ContactService struct {
	store ports.ContactStore
}

// NewContactService creates a new ContactService
func NewContactService(store ports.ContactStore) *ContactService {
	return &ContactService{store: store}
}

// Save validates and stores the card, replacing any previous one.
func (s *ContactService) Save(ctx context.Context, card domain.ContactCard) error {
	if err := card.Validate(); err != nil {
		return err
	}
	if err := s.store.SaveContact(ctx, card); err != nil {
		logging.Logger.Error("Failed to save contact card", "error", err)
		return err
	}
	logging.Logger.Info("Contact card saved")
	return nil
}

// Get returns the saved card, or domain.ErrNoContactCard.
func (s *ContactService) Get(ctx context.Context) (*domain.ContactCard, error) {
	return s.store.Contact(ctx)
}

// Delete removes the saved card.
func (s *ContactService) Delete(ctx context.Context) error {
	return s.store.DeleteContact(ctx)
}

// VCard returns the saved card as a vCard 3.0 document.
func (s *ContactService) VCard(ctx context.Context) (string, error) {
	card, err := s.store.Contact(ctx)
	if err != nil {
		return "", err
	}
	return card.VCard(), nil
}

// QR renders the saved card's vCard as a terminal QR code, the payload
// phone contact scanners expect.
func (s *ContactService) QR(ctx context.Context) (string, error) {
	vcard, err := s.VCard(ctx)
	if err != nil {
		return "", err
	}
	code, err := qrcode.New(vcard, qrcode.Medium)
	if err != nil {
		logging.Logger.Error("Failed to encode contact QR", "error", err)
		return "", err
	}
	return code.ToSmallString(false), nil
}
