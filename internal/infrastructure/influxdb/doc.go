// Package influxdb provides the optional sensor-event history sink.
//
// When enabled, the event bridge mirrors every inbound sensor message
// (and outbound device command) into InfluxDB as time-series points,
// alongside the authoritative activity log in SQLite. The sink is
// strictly best-effort: writes are batched and asynchronous, and a
// failed write never affects command dispatch or log appends.
package influxdb
