package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/phrazzld/accounts-api/internal/domain"
)

var accountSeq atomic.Int64

// AccountOption customizes an account built by NewTestAccount.
type AccountOption func(*domain.Account)

// WithAccountName sets the account name.
func WithAccountName(name string) AccountOption {
	return func(a *domain.Account) { a.Name = name }
}

// WithAccountEmail sets the account email address.
func WithAccountEmail(email string) AccountOption {
	return func(a *domain.Account) { a.Email = email }
}

// WithAccountAddress sets the postal address.
func WithAccountAddress(address string) AccountOption {
	return func(a *domain.Account) { a.Address = address }
}

// WithAccountPhone sets the phone number. An empty string clears it.
func WithAccountPhone(phone string) AccountOption {
	return func(a *domain.Account) {
		if phone == "" {
			a.PhoneNumber = nil
			return
		}
		a.PhoneNumber = &phone
	}
}

// WithAccountDateJoined sets the join date, truncated to a calendar date.
func WithAccountDateJoined(t time.Time) AccountOption {
	return func(a *domain.Account) { a.DateJoined = domain.DateOf(t) }
}

// NewTestAccount builds a valid, unsaved account. Each call produces a
// distinct name and email address.
func NewTestAccount(opts ...AccountOption) *domain.Account {
	n := accountSeq.Add(1)
	phone := fmt.Sprintf("555-%04d", n%10000)

	account := &domain.Account{
		Name:        fmt.Sprintf("Test User %d", n),
		Email:       fmt.Sprintf("user%d@example.com", n),
		Address:     fmt.Sprintf("%d Elm Street", n),
		PhoneNumber: &phone,
		DateJoined:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, opt := range opts {
		opt(account)
	}

	return account
}

// AccountDocument returns the wire form of a new test account, without an id.
func AccountDocument(opts ...AccountOption) domain.Document {
	doc := NewTestAccount(opts...).Serialize()
	delete(doc, domain.FieldID)
	return doc
}
