// Package config loads and validates Panel Gate configuration.
//
// Configuration is layered: hardcoded defaults, then the YAML file,
// then PANELGATE_* environment variables. Validation runs after all
// layers are applied, so an environment override can satisfy a
// requirement the file leaves empty (the JWT secret in particular).
//
// Secrets (JWT signing key, MQTT password, InfluxDB token) are expected
// to arrive via environment variables in production deployments.
package config
