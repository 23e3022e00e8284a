// Package postgres provides PostgreSQL implementations of the store
// interfaces.
package postgres
