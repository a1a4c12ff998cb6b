// Package testutil provides shared fixtures for tests: record builders,
// a scriptable in-memory source and a seeded SQLite snapshot.
package testutil
