package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: arbitrack
  user: arbitrack
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "arbitrack", cfg.Database.Name)
				assert.Equal(t, "arbitrack", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: arbitrack
  user: arbitrack
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, 1*time.Hour, cfg.Schedule.RefreshInterval)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.RecoveryInterval)
				assert.Equal(t, 2, cfg.Worker.Workers)
				assert.Equal(t, 5, cfg.Worker.BatchSize)
				assert.Equal(t, 2*time.Second, cfg.Worker.PollInterval)
				assert.Equal(t, "arbitrack", cfg.Telemetry.ServiceName)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
				assert.False(t, cfg.Scoring.Transactional)
			},
		},
		{
			name: "explicit values override defaults",
			yaml: `
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 10s
database:
  host: db.internal
  port: 5433
  name: arbitrack
  user: svc
  sslmode: require
  pool_size: 25
scoring:
  transactional: true
schedule:
  refresh_interval: 30m
  recovery_interval: 1m
worker:
  workers: 4
  batch_size: 10
  poll_interval: 500ms
  rate_limit: 2.5
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 25, cfg.Database.PoolSize)
				assert.True(t, cfg.Scoring.Transactional)
				assert.Equal(t, 30*time.Minute, cfg.Schedule.RefreshInterval)
				assert.Equal(t, 1*time.Minute, cfg.Schedule.RecoveryInterval)
				assert.Equal(t, 4, cfg.Worker.Workers)
				assert.Equal(t, 10, cfg.Worker.BatchSize)
				assert.Equal(t, 500*time.Millisecond, cfg.Worker.PollInterval)
				assert.Equal(t, 2.5, cfg.Worker.RateLimit)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
		{
			name: "environment variables expanded",
			yaml: `
database:
  host: localhost
  name: arbitrack
  user: arbitrack
  password: ${TEST_DB_PASSWORD}
notifications:
  discord:
    enabled: true
    webhook_url: ${TEST_WEBHOOK_URL}
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "s3cret",
				"TEST_WEBHOOK_URL": "https://discord.com/api/webhooks/1/abc",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "s3cret", cfg.Database.Password)
				assert.Equal(t, "https://discord.com/api/webhooks/1/abc", cfg.Notifications.Discord.WebhookURL)
			},
		},
		{
			name: "missing database host",
			yaml: `
database:
  name: arbitrack
  user: arbitrack
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing database name and user",
			yaml: `
database:
  host: localhost
`,
			wantErr: "database.name is required",
		},
		{
			name: "discord enabled without webhook",
			yaml: `
database:
  host: localhost
  name: arbitrack
  user: arbitrack
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.webhook_url is required",
		},
		{
			name: "telemetry enabled without endpoint",
			yaml: `
database:
  host: localhost
  name: arbitrack
  user: arbitrack
telemetry:
  enabled: true
`,
			wantErr: "telemetry.endpoint is required",
		},
		{
			name: "negative rate limit",
			yaml: `
database:
  host: localhost
  name: arbitrack
  user: arbitrack
worker:
  rate_limit: -1
`,
			wantErr: "worker.rate_limit must not be negative",
		},
		{
			name: "invalid yaml",
			yaml: `
database: [not a mapping
`,
			wantErr: "parsing config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Name:     "arbitrack",
		User:     "svc",
		Password: "pw",
		SSLMode:  "require",
		PoolSize: 25,
	}
	assert.Equal(
		t,
		"host=db.internal port=5433 dbname=arbitrack user=svc password=pw sslmode=require pool_max_conns=25",
		d.DSN(),
	)
}
