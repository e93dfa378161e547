package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exilemarket/item-price-scanner/pkg/schema"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalConfig = `
database:
  host: localhost
  name: ips
  user: ips
source:
  base_url: http://localhost:9200
estimator:
  backend: http
  endpoint: http://localhost:8500/predict
`

func TestLoadMinimalAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10000, cfg.Source.PageSize)
	assert.Equal(t, 10*time.Minute, cfg.Source.ScrollTTL)
	assert.Equal(t, 2.0, cfg.Source.RateLimit.PerSecond)
	assert.Equal(t, 256, cfg.Estimator.BatchSize)
	assert.Equal(t, "csv", cfg.Dataset.Format)
	assert.Equal(t, 50.0, cfg.Dataset.MaxPriceChaos)
	assert.Equal(t, 15.0, cfg.Deals.MinProfitChaos)
	assert.Equal(t, 1.0, cfg.Deals.MinProfitRatio)
	assert.Equal(t, "deals.log", cfg.Deals.Log.Path)
	assert.Equal(t, 24*time.Hour, cfg.Schedule.PrepareInterval)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, schema.FillZero, cfg.Schemas.FillPolicy())
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("IPS_TEST_DB_PASSWORD", "hunter2")

	cfg, err := Load(writeConfig(t, `
database:
  host: localhost
  name: ips
  user: ips
  password: ${IPS_TEST_DB_PASSWORD}
source:
  base_url: http://localhost:9200
estimator:
  backend: baseline
`))
	require.NoError(t, err)
	assert.Equal(t, "hunter2", cfg.Database.Password)
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name: "missing database host",
			content: `
database:
  name: ips
  user: ips
source:
  base_url: http://localhost:9200
estimator:
  backend: baseline
`,
			wantMsg: "database.host is required",
		},
		{
			name: "missing source base url",
			content: `
database:
  host: localhost
  name: ips
  user: ips
estimator:
  backend: baseline
`,
			wantMsg: "source.base_url is required",
		},
		{
			name: "http estimator needs endpoint",
			content: `
database:
  host: localhost
  name: ips
  user: ips
source:
  base_url: http://localhost:9200
estimator:
  backend: http
`,
			wantMsg: "estimator.endpoint is required",
		},
		{
			name: "unknown estimator backend",
			content: `
database:
  host: localhost
  name: ips
  user: ips
source:
  base_url: http://localhost:9200
estimator:
  backend: oracle
`,
			wantMsg: "estimator.backend must be one of",
		},
		{
			name: "bad fill policy",
			content: minimalConfig + `
schemas:
  fill: median
`,
			wantMsg: "schemas.fill must be one of",
		},
		{
			name: "bad dataset format",
			content: minimalConfig + `
dataset:
  format: avro
`,
			wantMsg: "dataset.format must be one of",
		},
		{
			name: "discord enabled without webhook",
			content: minimalConfig + `
notifications:
  discord:
    enabled: true
`,
			wantMsg: "notifications.discord.webhook_url is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{
		Host: "db", Port: 5433, Name: "ips", User: "u", Password: "p", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 dbname=ips user=u password=p sslmode=require", d.DSN())
}

func TestFillPolicyMean(t *testing.T) {
	t.Parallel()

	s := SchemasConfig{Fill: "mean"}
	assert.Equal(t, schema.FillMean, s.FillPolicy())
}
