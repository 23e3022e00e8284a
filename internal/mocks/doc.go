// Package mocks provides hand-written mock implementations of the store and
// service interfaces for testing. Each mock supports per-method Fn overrides
// for custom behavior, default return fields, and call tracking so tests can
// assert that a handler did or did not reach the store.
package mocks
