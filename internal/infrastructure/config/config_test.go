package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeConfig writes YAML content to a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

const validYAML = `
database:
  path: ./test.db
  wal_mode: true
  busy_timeout: 5

mqtt:
  broker:
    host: "127.0.0.1"
    port: 1883
    client_id: "panelgate-test"
  qos: 1

api:
  host: "127.0.0.1"
  port: 8080

logging:
  level: debug
  format: text

security:
  jwt:
    secret: "test-secret-that-is-at-least-32-chars!!"
    access_token_ttl: 30
`

func TestLoad(t *testing.T) {
	path := writeConfig(t, validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "./test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "./test.db")
	}
	if cfg.MQTT.Broker.ClientID != "panelgate-test" {
		t.Errorf("ClientID = %q, want %q", cfg.MQTT.Broker.ClientID, "panelgate-test")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.AccessTokenTTL() != 30*time.Minute {
		t.Errorf("AccessTokenTTL() = %v, want 30m", cfg.AccessTokenTTL())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() should fail for missing file")
	}
}

func TestLoad_Defaults(t *testing.T) {
	// Minimal file: defaults must fill in everything except the secret.
	path := writeConfig(t, `
security:
  jwt:
    secret: "test-secret-that-is-at-least-32-chars!!"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Port != 1883 {
		t.Errorf("default MQTT port = %d, want 1883", cfg.MQTT.Broker.Port)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("default API port = %d, want 8080", cfg.API.Port)
	}
	if cfg.Security.JWT.AccessTokenTTL != 30 {
		t.Errorf("default token TTL = %d, want 30", cfg.Security.JWT.AccessTokenTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, validYAML)

	t.Setenv("PANELGATE_MQTT_HOST", "broker.internal")
	t.Setenv("PANELGATE_API_PORT", "9090")
	t.Setenv("PANELGATE_JWT_SECRET", "env-secret-that-is-at-least-32-chars!!!")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MQTT.Broker.Host != "broker.internal" {
		t.Errorf("MQTT host = %q, want env override", cfg.MQTT.Broker.Host)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API port = %d, want 9090", cfg.API.Port)
	}
	if !strings.HasPrefix(cfg.Security.JWT.Secret, "env-secret") {
		t.Error("JWT secret should come from environment")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing jwt secret",
			mutate:  func(c *Config) { c.Security.JWT.Secret = "" },
			wantErr: "security.jwt.secret is required",
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *Config) { c.Security.JWT.Secret = "too-short" },
			wantErr: "at least 32 characters",
		},
		{
			name:    "invalid qos",
			mutate:  func(c *Config) { c.MQTT.QoS = 3 },
			wantErr: "mqtt.qos",
		},
		{
			name:    "invalid api port",
			mutate:  func(c *Config) { c.API.Port = 0 },
			wantErr: "api.port",
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path",
		},
		{
			name: "influxdb enabled without url",
			mutate: func(c *Config) {
				c.InfluxDB.Enabled = true
				c.InfluxDB.Bucket = "events"
			},
			wantErr: "influxdb.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Security.JWT.Secret = "test-secret-that-is-at-least-32-chars!!"
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.JWT.Secret = "test-secret-that-is-at-least-32-chars!!"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}
