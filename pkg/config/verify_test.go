package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", modify: func(c *Config) {}},
		{name: "missing server listen", modify: func(c *Config) { c.Server.Listen = "" }, wantErr: true, errMsg: "server.listen is required"},
		{name: "missing server timeout", modify: func(c *Config) { c.Server.Timeout = 0 }, wantErr: true, errMsg: "server.timeout is required"},
		{name: "missing dsn", modify: func(c *Config) { c.Database.DSN = "" }, wantErr: true, errMsg: "database.dsn is required"},
		{name: "missing fetch timeout", modify: func(c *Config) { c.Fetch.Timeout = 0 }, wantErr: true, errMsg: "fetch.timeout is required"},
		{name: "missing scheduler tick", modify: func(c *Config) { c.Scheduler.Tick = 0 }, wantErr: true, errMsg: "scheduler.tick is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVerify_SchemaOutOfSync(t *testing.T) {
	schema := `{
  "$ref": "#/$defs/Config",
  "$defs": {
    "Config": {
      "type": "object",
      "properties": {
        "server": {"type": "object", "properties": {"listen": {"type": "string"}, "base_url": {"type": "string"}}},
        "metrics": {"type": "object"}
      }
    }
  }
}`
	err := verify(defaultConfig(), []byte(schema))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.base_url")
	assert.Contains(t, err.Error(), "metrics")

	err = verify(defaultConfig(), []byte("not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse embedded schema")
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	for _, key := range []string{"server", "database", "fetch", "scheduler", "defaults", "refresh_interval_minutes"} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}

	// generated schema matches the embedded one
	require.NoError(t, verify(defaultConfig(), data))
}
