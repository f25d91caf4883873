package domain

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateFormat is the wire format of date_joined.
const DateFormat = "2006-01-02"

// Document keys of an Account.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"
	FieldDateJoined  = "date_joined"
)

// Document is the plain key-value form of an entity as it travels on the wire.
type Document map[string]any

// Account is a customer account managed by the service.
//
// ID is assigned by the store on creation and never changes afterwards.
// DateJoined only carries a calendar date; it is kept at midnight UTC.
type Account struct {
	ID          int64     `doc:"id"`
	Name        string    `doc:"name" validate:"required,max=64"`
	Email       string    `doc:"email" validate:"max=64"`
	Address     string    `doc:"address" validate:"max=256"`
	PhoneNumber *string   `doc:"phone_number" validate:"omitempty,max=32"`
	DateJoined  time.Time `doc:"date_joined" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("doc")
	})
	return v
}

// NewAccountFromDocument builds a new, not yet persisted Account from doc.
// date_joined defaults to the calendar date of now when the document omits it.
func NewAccountFromDocument(doc Document, now time.Time) (*Account, error) {
	account := &Account{}
	if err := account.Deserialize(doc); err != nil {
		return nil, err
	}

	if account.DateJoined.IsZero() {
		account.DateJoined = DateOf(now)
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Serialize renders the account as a Document with the keys
// id, name, email, address, phone_number and date_joined.
func (a *Account) Serialize() Document {
	var phone any
	if a.PhoneNumber != nil {
		phone = *a.PhoneNumber
	}

	return Document{
		FieldID:          a.ID,
		FieldName:        a.Name,
		FieldEmail:       a.Email,
		FieldAddress:     a.Address,
		FieldPhoneNumber: phone,
		FieldDateJoined:  a.DateJoined.Format(DateFormat),
	}
}

// Deserialize replaces the account's client-editable fields with the values in doc.
//
// name, email and address are required strings. phone_number is optional and
// cleared when absent or null. date_joined is left untouched when absent so
// that callers can apply a default or keep the stored value. id is never read.
func (a *Account) Deserialize(doc Document) error {
	if doc == nil {
		return NewValidationError("", "account document is required", ErrMissingField)
	}

	name, err := requiredString(doc, FieldName)
	if err != nil {
		return err
	}
	email, err := requiredString(doc, FieldEmail)
	if err != nil {
		return err
	}
	address, err := requiredString(doc, FieldAddress)
	if err != nil {
		return err
	}
	phone, err := optionalString(doc, FieldPhoneNumber)
	if err != nil {
		return err
	}
	dateJoined, err := optionalDate(doc, FieldDateJoined)
	if err != nil {
		return err
	}

	a.Name = name
	a.Email = email
	a.Address = address
	a.PhoneNumber = phone
	if dateJoined != nil {
		a.DateJoined = *dateJoined
	}

	return nil
}

// Validate checks field constraints. It returns the first violation found as
// a *ValidationError.
func (a *Account) Validate() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return NewValidationError("", "invalid account", err)
	}

	fe := fieldErrs[0]
	return NewValidationError(fe.Field(), tagMessage(fe), ErrInvalidFormat)
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

func requiredString(doc Document, key string) (string, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return "", NewValidationError(key, "is required", ErrMissingField)
	}

	s, ok := raw.(string)
	if !ok {
		return "", NewValidationError(key, "must be a string", ErrInvalidType)
	}

	return s, nil
}

func optionalString(doc Document, key string) (*string, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, nil
	}

	s, ok := raw.(string)
	if !ok {
		return nil, NewValidationError(key, "must be a string", ErrInvalidType)
	}

	return &s, nil
}

func optionalDate(doc Document, key string) (*time.Time, error) {
	s, err := optionalString(doc, key)
	if err != nil || s == nil {
		return nil, err
	}

	t, err := time.Parse(DateFormat, *s)
	if err != nil {
		return nil, NewValidationError(key, "must be a date in YYYY-MM-DD format", ErrInvalidFormat)
	}

	return &t, nil
}
