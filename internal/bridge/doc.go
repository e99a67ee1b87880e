// Package bridge moves messages between the MQTT broker and the rest
// of the gateway.
//
// Outbound, PublishCommand delivers validated device verbs (lock,
// unlock, arm, disarm) to the lock command topic. Inbound, the bridge
// subscribes to the sensor wildcard and records every message in the
// activity log as "[MQTT] <topic>: <payload>", optionally mirroring
// it to InfluxDB for time-series history.
//
// Inbound recording is best-effort and ordered: a buffered channel
// decouples the broker callback from SQLite, and a single drain
// worker preserves arrival order. Outbound publishing is strict: a
// failed publish surfaces ErrTransportUnavailable so the caller can
// refuse the command without logging it.
package bridge
