package domain

import "strings"

// ContactCard is the user's own contact details for the connect screen.
type ContactCard struct {
	FullName   string
	Email      string
	Company    string
	WebsiteURL string
	Phone      string
}

// Validate checks the required contact fields.
func (c ContactCard) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return ErrMissingField("contact", "full name")
	}
	if strings.TrimSpace(c.Email) == "" {
		return ErrMissingField("contact", "email")
	}
	return nil
}

// VCard renders the card as a vCard 3.0 payload: CRLF line endings,
// escaped backslash/comma/semicolon/newline, optional fields omitted when
// empty, bare website URLs prefixed with https://.
func (c ContactCard) VCard() string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
	}

	if c.FullName != "" {
		lines = append(lines,
			"FN:"+escapeVCardValue(c.FullName),
			"N:"+escapeVCardValue(c.FullName)+";;;;",
		)
	}
	if c.Email != "" {
		lines = append(lines, "EMAIL:"+escapeVCardValue(c.Email))
	}
	if c.Phone != "" {
		lines = append(lines, "TEL:"+escapeVCardValue(c.Phone))
	}
	if c.Company != "" {
		lines = append(lines, "ORG:"+escapeVCardValue(c.Company))
	}
	if c.WebsiteURL != "" {
		url := c.WebsiteURL
		if !strings.HasPrefix(url, "http") {
			url = "https://" + url
		}
		lines = append(lines, "URL;TYPE=HOME:"+escapeVCardValue(url))
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n")
}

// escapeVCardValue escapes special characters per RFC 2426.
func escapeVCardValue(value string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		",", "\\,",
		";", "\\;",
		"\n", "\\n",
		"\r", "",
	)
	return r.Replace(value)
}
