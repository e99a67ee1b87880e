// Package gateway is the panel's application core.
//
// It orchestrates the other packages: credentials and tokens from
// auth, command delivery through bridge, and the audit trail in
// activity. All authorisation policy lives here; handlers in the api
// package translate HTTP to these calls and back, nothing more.
//
// The one ordering rule worth knowing: a device command is published
// to the broker before its activity line is appended, and a failed
// publish appends nothing. The log records what happened, not what
// was attempted.
package gateway
