package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceNumberFor(t *testing.T) {
	t.Run("Uppercased UUID prefix", func(t *testing.T) {
		assert.Equal(t, "RNT-ABC12345", InvoiceNumberFor("abc12345-6789-4def-0123-456789abcdef"))
	})

	t.Run("Short ID used whole", func(t *testing.T) {
		assert.Equal(t, "RNT-X1", InvoiceNumberFor("x1"))
	})

	t.Run("Deterministic", func(t *testing.T) {
		id := "deadbeef-0000-4000-8000-000000000000"
		assert.Equal(t, InvoiceNumberFor(id), InvoiceNumberFor(id))
	})
}

func TestInvoiceContactFor(t *testing.T) {
	t.Run("Full profile", func(t *testing.T) {
		c := InvoiceContactFor(&Profile{
			ID:          "u1",
			FullName:    "Alice Smith",
			PhoneNumber: "555-0100",
			Location:    "Springfield",
		})
		assert.Equal(t, "u1", c.ID)
		assert.Equal(t, "Alice Smith", c.Name)
		assert.Equal(t, "555-0100", c.Contact)
		assert.Equal(t, "Springfield", c.Location)
	})

	t.Run("Empty fields fall back", func(t *testing.T) {
		c := InvoiceContactFor(&Profile{ID: "u2"})
		assert.Equal(t, ContactUnknownName, c.Name)
		assert.Equal(t, ContactNotProvided, c.Contact)
		assert.Equal(t, ContactNotProvided, c.Location)
	})

	t.Run("Missing profile", func(t *testing.T) {
		c := InvoiceContactFor(nil)
		assert.Empty(t, c.ID)
		assert.Equal(t, ContactUnknownName, c.Name)
		assert.Equal(t, ContactNotProvided, c.Contact)
	})
}

func TestProfile_Summarize(t *testing.T) {
	rating := 4.5

	t.Run("Complete profile", func(t *testing.T) {
		p := &Profile{ID: "u1", FullName: "Bob", AvatarURL: "https://cdn.example.com/bob.png"}
		s := p.Summarize(&rating)
		assert.Equal(t, "Bob", s.Name)
		assert.Equal(t, "https://cdn.example.com/bob.png", s.Avatar)
		assert.Equal(t, &rating, s.Rating)
	})

	t.Run("Empty fields get display defaults", func(t *testing.T) {
		p := &Profile{ID: "u2"}
		s := p.Summarize(nil)
		assert.Equal(t, UnknownUserName, s.Name)
		assert.Equal(t, PlaceholderAvatar, s.Avatar)
		assert.Nil(t, s.Rating)
	})
}
