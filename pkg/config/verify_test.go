package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := &Config{}
	cfg.Server = ServerConfig{Listen: ":8080", Timeout: 30 * time.Second}
	cfg.Line = LineConfig{
		ChannelSecret: "secret",
		ChannelToken:  "token",
		APIEndpoint:   "https://api.line.me",
		Timeout:       10 * time.Second,
	}
	cfg.Agent = AgentConfig{APIKey: "key", Model: "gpt-4o-mini", Temperature: 0.7, MaxHistory: 20}
	cfg.Mongo = MongoConfig{
		URI:            "mongodb://localhost:27017",
		Database:       "vibpath_linebot",
		Collection:     "user_preferences",
		ConnectTimeout: 10 * time.Second,
	}
	cfg.Admin = AdminConfig{Timezone: "Asia/Taipei", DefaultPause: time.Hour}
	cfg.Cache = CacheConfig{TTL: 10 * time.Minute}
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing server listen",
			mutate:  func(cfg *Config) { cfg.Server.Listen = "" },
			wantErr: true,
			errMsg:  "server.listen is required",
		},
		{
			name:    "missing mongo collection",
			mutate:  func(cfg *Config) { cfg.Mongo.Collection = "" },
			wantErr: true,
			errMsg:  "mongo.collection is required",
		},
		{
			name:    "missing line endpoint",
			mutate:  func(cfg *Config) { cfg.Line.APIEndpoint = "" },
			wantErr: true,
			errMsg:  "line.api_endpoint is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRequiredFields(t *testing.T) {
	t.Run("valid minimal config", func(t *testing.T) {
		err := validateRequiredFields(validTestConfig())
		require.NoError(t, err)
	})

	t.Run("missing mongo uri", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Mongo.URI = ""
		err := validateRequiredFields(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mongo.uri is required")
	})

	t.Run("missing server timeout", func(t *testing.T) {
		cfg := validTestConfig()
		cfg.Server.Timeout = 0
		err := validateRequiredFields(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.timeout is required")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// verify schema can be marshaled to JSON
	data, err := schema.MarshalJSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	// verify it contains expected fields
	schemaStr := string(data)
	assert.Contains(t, schemaStr, "Config")
	assert.Contains(t, schemaStr, "server")
	assert.Contains(t, schemaStr, "line")
	assert.Contains(t, schemaStr, "mongo")
}
