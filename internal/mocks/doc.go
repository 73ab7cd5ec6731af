// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock keeps simple in-memory state for the
// common case and exposes function fields to override behavior per test.
package mocks
