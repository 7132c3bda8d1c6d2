// Package mocks provides centralized mock implementations for testing.
//
// It contains a behavioral in-memory task store that mirrors the Postgres
// store's counting and uniqueness semantics, and a function-field mock of
// the task service for handler tests.
package mocks
