// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Each test runs inside its own transaction, which is rolled back when the
// test finishes, so tests can share one schema and run in parallel:
//
//	func TestTaskStore_Integration(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        tasks := postgres.NewPostgresTaskStore(tx, nil)
//	        ...
//	    })
//	}
//
// Tests are skipped when no database URL is configured. The URL is read
// from TASKPOST_TEST_DATABASE_URL, then DATABASE_URL.
package testdb
