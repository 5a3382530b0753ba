package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8502", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "runway_conditions.json", cfg.Store.RunwayFile)
	assert.Equal(t, "ratings.json", cfg.Store.FeedbackFile)
	assert.Equal(t, 256, cfg.Estimator.MemoSize)
	assert.Equal(t, 50, cfg.Chart.Points)
	assert.Equal(t, 10000.0, cfg.Chart.MaxAltFt)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		check  func(t *testing.T, cfg *Config)
	}{
		{
			name:   "AT502_SERVER__ADDR",
			envKey: "AT502_SERVER__ADDR",
			envVal: "127.0.0.1:9000",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
			},
		},
		{
			name:   "AT502_SERVER__READ_TIMEOUT",
			envKey: "AT502_SERVER__READ_TIMEOUT",
			envVal: "30s",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
			},
		},
		{
			name:   "AT502_ESTIMATOR__MEMO_SIZE",
			envKey: "AT502_ESTIMATOR__MEMO_SIZE",
			envVal: "0",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.Estimator.MemoSize)
			},
		},
		{
			name:   "AT502_STORE__RUNWAY_FILE",
			envKey: "AT502_STORE__RUNWAY_FILE",
			envVal: "/tmp/rw.json",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/rw.json", cfg.Store.RunwayFile)
				assert.Equal(t, "ratings.json", cfg.Store.FeedbackFile)
			},
		},
		{
			name:   "AT502_CHART__POINTS",
			envKey: "AT502_CHART__POINTS",
			envVal: "60",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 60, cfg.Chart.Points)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)
			cfg, err := Load("")
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("AT502_CHART__POINTS", "lots")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "at502.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9100"
store:
  runway_file: /var/lib/at502/runway.json
chart:
  points: 20
  max_alt_ft: 15000
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "/var/lib/at502/runway.json", cfg.Store.RunwayFile)
	assert.Equal(t, 20, cfg.Chart.Points)
	assert.Equal(t, 15000.0, cfg.Chart.MaxAltFt)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadJSONFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "at502.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server": {"addr": ":9200"}}`), 0o644))
	t.Setenv("AT502_SERVER__ADDR", ":9300")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9300", cfg.Server.Addr)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("config.toml")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chart:\n  points: 1\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"empty runway file", func(c *Config) { c.Store.RunwayFile = "" }},
		{"empty feedback file", func(c *Config) { c.Store.FeedbackFile = "" }},
		{"negative memo", func(c *Config) { c.Estimator.MemoSize = -1 }},
		{"too few points", func(c *Config) { c.Chart.Points = 1 }},
		{"zero altitude", func(c *Config) { c.Chart.MaxAltFt = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
