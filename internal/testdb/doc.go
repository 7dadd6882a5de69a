//go:build integration

// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Tests run inside a transaction that is rolled back when the test ends,
// so they can run in parallel against the same schema without cleanup:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := postgres.NewPostgresProgressStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The database is located through DAXDAILY_TEST_DATABASE_URL. When it is
// unset the test is skipped.
package testdb
