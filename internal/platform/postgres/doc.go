// Package postgres provides the PostgreSQL implementation of the storage
// interfaces defined in the internal/store package. It owns the schema
// migrations, query execution, and the mapping between driver errors and
// store errors.
package postgres
