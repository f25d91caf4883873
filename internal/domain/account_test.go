package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() Document {
	return Document{
		"name":         "John Doe",
		"email":        "john.doe@example.com",
		"address":      "123 Elm Street",
		"phone_number": "555-1234",
		"date_joined":  "2023-01-01",
	}
}

func TestNewAccountFromDocument(t *testing.T) {
	now := time.Date(2025, time.April, 1, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	t.Run("valid document", func(t *testing.T) {
		account, err := NewAccountFromDocument(validDocument(), now)
		require.NoError(t, err)

		assert.Zero(t, account.ID, "ID is assigned by the store")
		assert.Equal(t, "John Doe", account.Name)
		assert.Equal(t, "john.doe@example.com", account.Email)
		assert.Equal(t, "123 Elm Street", account.Address)
		require.NotNil(t, account.PhoneNumber)
		assert.Equal(t, "555-1234", *account.PhoneNumber)
		assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), account.DateJoined)
	})

	t.Run("date_joined defaults to today in UTC", func(t *testing.T) {
		doc := validDocument()
		delete(doc, "date_joined")

		account, err := NewAccountFromDocument(doc, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), account.DateJoined)
	})

	t.Run("id in document is ignored", func(t *testing.T) {
		doc := validDocument()
		doc["id"] = float64(42)

		account, err := NewAccountFromDocument(doc, now)
		require.NoError(t, err)
		assert.Zero(t, account.ID)
	})

	t.Run("phone number is optional", func(t *testing.T) {
		doc := validDocument()
		doc["phone_number"] = nil

		account, err := NewAccountFromDocument(doc, now)
		require.NoError(t, err)
		assert.Nil(t, account.PhoneNumber)
	})

	t.Run("email and address accept any text", func(t *testing.T) {
		doc := validDocument()
		doc["email"] = "not-an-email"
		doc["address"] = ""

		account, err := NewAccountFromDocument(doc, now)
		require.NoError(t, err)
		assert.Equal(t, "not-an-email", account.Email)
		assert.Empty(t, account.Address)

		var copied Account
		require.NoError(t, copied.Deserialize(account.Serialize()))
		require.NoError(t, copied.Validate())
		assert.Equal(t, account.Email, copied.Email)
		assert.Equal(t, account.Address, copied.Address)
	})
}

func TestNewAccountFromDocumentErrors(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		mutate    func(Document) Document
		field     string
		wantCause error
	}{
		{
			name:      "nil document",
			mutate:    func(Document) Document { return nil },
			field:     "",
			wantCause: ErrMissingField,
		},
		{
			name:      "unrelated keys only",
			mutate:    func(Document) Document { return Document{"invalid": "data"} },
			field:     "name",
			wantCause: ErrMissingField,
		},
		{
			name:      "missing email",
			mutate:    func(d Document) Document { delete(d, "email"); return d },
			field:     "email",
			wantCause: ErrMissingField,
		},
		{
			name:      "null address",
			mutate:    func(d Document) Document { d["address"] = nil; return d },
			field:     "address",
			wantCause: ErrMissingField,
		},
		{
			name:      "numeric name",
			mutate:    func(d Document) Document { d["name"] = float64(12); return d },
			field:     "name",
			wantCause: ErrInvalidType,
		},
		{
			name:      "boolean phone number",
			mutate:    func(d Document) Document { d["phone_number"] = true; return d },
			field:     "phone_number",
			wantCause: ErrInvalidType,
		},
		{
			name:      "malformed date",
			mutate:    func(d Document) Document { d["date_joined"] = "01/02/2023"; return d },
			field:     "date_joined",
			wantCause: ErrInvalidFormat,
		},
		{
			name:      "non-string date",
			mutate:    func(d Document) Document { d["date_joined"] = float64(20230101); return d },
			field:     "date_joined",
			wantCause: ErrInvalidType,
		},
		{
			name:      "empty name",
			mutate:    func(d Document) Document { d["name"] = ""; return d },
			field:     "name",
			wantCause: ErrInvalidFormat,
		},
		{
			name:      "email too long",
			mutate:    func(d Document) Document { d["email"] = strings.Repeat("e", 65); return d },
			field:     "email",
			wantCause: ErrInvalidFormat,
		},
		{
			name:      "address too long",
			mutate:    func(d Document) Document { d["address"] = strings.Repeat("a", 257); return d },
			field:     "address",
			wantCause: ErrInvalidFormat,
		},
		{
			name:      "name too long",
			mutate:    func(d Document) Document { d["name"] = strings.Repeat("x", 65); return d },
			field:     "name",
			wantCause: ErrInvalidFormat,
		},
		{
			name:      "phone number too long",
			mutate:    func(d Document) Document { d["phone_number"] = strings.Repeat("5", 33); return d },
			field:     "phone_number",
			wantCause: ErrInvalidFormat,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			account, err := NewAccountFromDocument(tc.mutate(validDocument()), now)

			require.Error(t, err)
			assert.Nil(t, account)
			assert.True(t, errors.Is(err, ErrValidation), "all failures should be validation errors")
			assert.True(t, errors.Is(err, tc.wantCause), "expected cause %v, got %v", tc.wantCause, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestAccountSerialize(t *testing.T) {
	phone := "555-1234"
	account := &Account{
		ID:          7,
		Name:        "Jane",
		Email:       "jane@example.com",
		Address:     "1 Main St",
		PhoneNumber: &phone,
		DateJoined:  time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	}

	doc := account.Serialize()

	assert.Len(t, doc, 6)
	assert.Equal(t, int64(7), doc["id"])
	assert.Equal(t, "Jane", doc["name"])
	assert.Equal(t, "jane@example.com", doc["email"])
	assert.Equal(t, "1 Main St", doc["address"])
	assert.Equal(t, "555-1234", doc["phone_number"])
	assert.Equal(t, "2024-02-29", doc["date_joined"])

	account.PhoneNumber = nil
	doc = account.Serialize()
	value, present := doc["phone_number"]
	assert.True(t, present, "phone_number key is always present")
	assert.Nil(t, value)
}

// Deserializing a serialized account reproduces every client-visible field.
func TestAccountRoundTrip(t *testing.T) {
	original, err := NewAccountFromDocument(validDocument(), time.Now())
	require.NoError(t, err)
	original.ID = 99

	var copied Account
	require.NoError(t, copied.Deserialize(original.Serialize()))

	assert.Zero(t, copied.ID)
	copied.ID = original.ID
	assert.Equal(t, *original, copied)
}

func TestAccountDeserializeReplacesWholesale(t *testing.T) {
	phone := "555-0000"
	joined := time.Date(2020, time.May, 5, 0, 0, 0, 0, time.UTC)
	account := &Account{
		ID:          3,
		Name:        "Old",
		Email:       "old@example.com",
		Address:     "Old Street",
		PhoneNumber: &phone,
		DateJoined:  joined,
	}

	err := account.Deserialize(Document{
		"name":    "New",
		"email":   "new@example.com",
		"address": "New Street",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), account.ID)
	assert.Equal(t, "New", account.Name)
	assert.Nil(t, account.PhoneNumber, "absent phone_number clears the stored value")
	assert.Equal(t, joined, account.DateJoined, "absent date_joined keeps the stored value")
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("email", "is required", ErrMissingField)
	assert.Equal(t, "email is required", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(err, ErrMissingField))

	bare := NewValidationError("", "account document is required", nil)
	assert.Equal(t, "account document is required", bare.Error())
	assert.True(t, errors.Is(bare, ErrValidation))
}
