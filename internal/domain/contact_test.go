package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVCard_FullCard(t *testing.T) {
	card := ContactCard{
		FullName:   "Ada Lovelace",
		Email:      "ada@example.org",
		Company:    "Analytical Engines",
		WebsiteURL: "example.org",
		Phone:      "+44 20 1234",
	}

	lines := strings.Split(card.VCard(), "\r\n")
	require.Equal(t, []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ada Lovelace",
		"N:Ada Lovelace;;;;",
		"EMAIL:ada@example.org",
		"TEL:+44 20 1234",
		"ORG:Analytical Engines",
		"URL;TYPE=HOME:https://example.org",
		"END:VCARD",
	}, lines)
}

func TestVCard_OptionalFieldsOmitted(t *testing.T) {
	card := ContactCard{FullName: "Ada", Email: "ada@example.org"}
	vcard := card.VCard()

	assert.NotContains(t, vcard, "TEL:")
	assert.NotContains(t, vcard, "ORG:")
	assert.NotContains(t, vcard, "URL")
}

func TestVCard_ExplicitSchemeKept(t *testing.T) {
	card := ContactCard{
		FullName:   "Ada",
		Email:      "a@b.c",
		WebsiteURL: "http://example.org",
	}
	assert.Contains(t, card.VCard(), "URL;TYPE=HOME:http://example.org")
}

func TestVCard_Escaping(t *testing.T) {
	card := ContactCard{
		FullName: `Lovelace, Ada; "The\First"`,
		Email:    "ada@example.org",
		Company:  "Engines\nLtd",
	}
	vcard := card.VCard()

	assert.Contains(t, vcard, `FN:Lovelace\, Ada\; "The\\First"`)
	assert.Contains(t, vcard, `ORG:Engines\nLtd`)
}

func TestVCard_UsesCRLF(t *testing.T) {
	card := ContactCard{FullName: "Ada", Email: "a@b.c"}
	vcard := card.VCard()

	assert.Contains(t, vcard, "\r\n")
	assert.False(t, strings.HasSuffix(vcard, "\r\n"), "no trailing line break")
	assert.True(t, strings.HasSuffix(vcard, "END:VCARD"))
}

func TestContactCard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		card    ContactCard
		wantErr bool
	}{
		{"complete", ContactCard{FullName: "Ada", Email: "a@b.c"}, false},
		{"missing name", ContactCard{Email: "a@b.c"}, true},
		{"missing email", ContactCard{FullName: "Ada"}, true},
		{"whitespace name", ContactCard{FullName: "  ", Email: "a@b.c"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
