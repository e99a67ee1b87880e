// Package database provides SQLite connectivity for Panel Gate.
//
// It wraps database/sql with:
//   - Connection setup (WAL mode, busy timeout, foreign keys)
//   - Embedded schema migrations applied at startup
//   - Health checks for the startup verification pass
//
// SQLite is configured with a single writer connection. The activity
// log and operator store both write through this connection, so
// concurrent appends from the HTTP handlers and the event bridge are
// serialised by the pool rather than by caller-visible locks.
package database
