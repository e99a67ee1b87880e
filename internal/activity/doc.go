// Package activity maintains the append-only activity log.
//
// Every state-changing thing the gateway does lands here as a single
// human-readable line: executed commands, inbound sensor events, and
// raised alerts. Entries are never updated or deleted, and their IDs
// are strictly increasing in insert order.
package activity
