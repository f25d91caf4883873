// Package testdb provides utilities for PostgreSQL integration tests.
//
// Tests run only when DATABASE_URL (or ACCOUNTS_TEST_DB_URL) points at a
// reachable database and skip otherwise. Each test runs in its own
// transaction which is rolled back when the test completes, so tests can
// run in parallel without cleaning up after themselves:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := postgres.NewPostgresAccountStore(db, nil).WithTx(tx)
//	        // ...
//	    })
//	}
package testdb
