// Package postgres provides PostgreSQL implementations of the store
// interfaces. All stores accept a store.DBTX so they run equally against a
// connection pool or a transaction, and they translate PostgreSQL error
// codes (unique and foreign-key violations) into store sentinel errors.
package postgres
