// Package mocks provides centralized mock implementations for testing.
//
// Two flavours of store.AccountStore are offered:
//
//   - MockAccountStore keeps accounts in memory and lets individual
//     methods be overridden through function fields. It suits end-to-end
//     handler tests that create, list and update records.
//   - TestifyMockAccountStore is a github.com/stretchr/testify/mock based
//     mock for tests that assert on exact calls or inject failures.
//
// Usage:
//
//	import "github.com/phrazzld/accounts-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    accountStore := mocks.NewMockAccountStore()
//	    accountStore.GetByIDFn = func(ctx context.Context, id int64) (*domain.Account, error) {
//	        return nil, errors.New("DB Error")
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
