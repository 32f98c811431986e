package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	Line   LineConfig   `yaml:"line" json:"line" jsonschema:"description=LINE Messaging API configuration"`
	Agent  AgentConfig  `yaml:"agent" json:"agent" jsonschema:"description=LLM agent configuration"`
	Mongo  MongoConfig  `yaml:"mongo" json:"mongo" jsonschema:"description=MongoDB configuration"`
	Admin  AdminConfig  `yaml:"admin" json:"admin" jsonschema:"description=Admin control configuration"`
	Cache  CacheConfig  `yaml:"cache" json:"cache" jsonschema:"description=Preference cache configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen        string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	StaticDir     string        `yaml:"static_dir" json:"static_dir" jsonschema:"description=Directory served under /static (disabled when empty)"`
	StaticBaseURL string        `yaml:"static_base_url" json:"static_base_url" jsonschema:"description=External base URL for image links in rich messages"`
}

// LineConfig holds LINE Messaging API credentials and endpoint
type LineConfig struct {
	ChannelSecret string        `yaml:"channel_secret" json:"channel_secret" jsonschema:"required,description=Channel secret used to verify webhook signatures"`
	ChannelToken  string        `yaml:"channel_token" json:"channel_token" jsonschema:"required,description=Channel access token for the Messaging API"`
	APIEndpoint   string        `yaml:"api_endpoint" json:"api_endpoint" jsonschema:"default=https://api.line.me,description=Messaging API endpoint"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Messaging API request timeout"`
}

// AgentConfig holds LLM agent settings for free-text replies
type AgentConfig struct {
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=API key for the OpenAI-compatible service"`
	BaseURL      string        `yaml:"base_url" json:"base_url" jsonschema:"description=OpenAI-compatible API base URL (empty for the default)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=600,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=25s,description=Agent request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (built-in persona when empty)"`
	MaxHistory   int           `yaml:"max_history" json:"max_history" jsonschema:"default=20,description=Messages kept per user conversation"`
	SessionTTL   time.Duration `yaml:"session_ttl" json:"session_ttl" jsonschema:"default=30m,description=Idle time before a user conversation is dropped"`
}

// MongoConfig holds preference store connection settings
type MongoConfig struct {
	URI            string        `yaml:"uri" json:"uri" jsonschema:"default=mongodb://localhost:27017,description=MongoDB connection URI"`
	Database       string        `yaml:"database" json:"database" jsonschema:"default=vibpath_linebot,description=Database name"`
	Collection     string        `yaml:"collection" json:"collection" jsonschema:"default=user_preferences,description=Preference collection name"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" json:"connect_timeout" jsonschema:"default=10s,description=Initial connection timeout"`
}

// AdminConfig holds admin identities and pause behavior
type AdminConfig struct {
	UserIDs      string        `yaml:"user_ids" json:"user_ids" jsonschema:"description=Admin user IDs separated by colon pipe or comma"`
	Timezone     string        `yaml:"timezone" json:"timezone" jsonschema:"default=Asia/Taipei,description=Timezone for pause schedules"`
	DefaultPause time.Duration `yaml:"default_pause" json:"default_pause" jsonschema:"default=1h,description=Pause duration when the command gives none"`
}

// CacheConfig holds preference cache settings
type CacheConfig struct {
	TTL time.Duration `yaml:"ttl" json:"ttl" jsonschema:"default=10m,description=Preference cache TTL"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for line
	if cfg.Line.APIEndpoint == "" {
		cfg.Line.APIEndpoint = "https://api.line.me"
	}
	if cfg.Line.Timeout == 0 {
		cfg.Line.Timeout = 10 * time.Second
	}

	// set defaults for agent
	if cfg.Agent.Model == "" {
		cfg.Agent.Model = "gpt-4o-mini"
	}
	if cfg.Agent.Temperature == 0 {
		cfg.Agent.Temperature = 0.7
	}
	if cfg.Agent.MaxTokens == 0 {
		cfg.Agent.MaxTokens = 600
	}
	if cfg.Agent.Timeout == 0 {
		cfg.Agent.Timeout = 25 * time.Second
	}
	if cfg.Agent.MaxHistory == 0 {
		cfg.Agent.MaxHistory = 20
	}
	if cfg.Agent.SessionTTL == 0 {
		cfg.Agent.SessionTTL = 30 * time.Minute
	}

	// set defaults for mongo
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = "mongodb://localhost:27017"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "vibpath_linebot"
	}
	if cfg.Mongo.Collection == "" {
		cfg.Mongo.Collection = "user_preferences"
	}
	if cfg.Mongo.ConnectTimeout == 0 {
		cfg.Mongo.ConnectTimeout = 10 * time.Second
	}

	// set defaults for admin
	if cfg.Admin.Timezone == "" {
		cfg.Admin.Timezone = "Asia/Taipei"
	}
	if cfg.Admin.DefaultPause == 0 {
		cfg.Admin.DefaultPause = time.Hour
	}

	// set defaults for cache
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 10 * time.Minute
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {

	// validate line config
	if cfg.Line.ChannelSecret == "" {
		return fmt.Errorf("line.channel_secret is required")
	}
	if cfg.Line.ChannelToken == "" {
		return fmt.Errorf("line.channel_token is required")
	}

	// validate agent config
	if cfg.Agent.APIKey == "" {
		return fmt.Errorf("agent.api_key is required")
	}
	if cfg.Agent.Temperature < 0 || cfg.Agent.Temperature > 2 {
		return fmt.Errorf("agent.temperature must be between 0 and 2")
	}
	if cfg.Agent.MaxHistory < 2 {
		return fmt.Errorf("agent.max_history must be at least 2")
	}

	// validate admin config
	if _, err := time.LoadLocation(cfg.Admin.Timezone); err != nil {
		return fmt.Errorf("admin.timezone %q is invalid: %w", cfg.Admin.Timezone, err)
	}
	if cfg.Admin.DefaultPause < time.Minute {
		return fmt.Errorf("admin.default_pause must be at least 1 minute")
	}

	// validate cache config
	if cfg.Cache.TTL < time.Second {
		return fmt.Errorf("cache.ttl must be at least 1 second")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLineConfig returns LINE Messaging API configuration
func (c *Config) GetLineConfig() LineConfig {
	return c.Line
}

// GetStaticDir returns the static files directory, empty when serving is disabled
func (c *Config) GetStaticDir() string {
	return c.Server.StaticDir
}

// GetAgentConfig returns LLM agent configuration
func (c *Config) GetAgentConfig() AgentConfig {
	return c.Agent
}

// GetMongoConfig returns preference store configuration
func (c *Config) GetMongoConfig() MongoConfig {
	return c.Mongo
}

// GetAdminConfig returns admin control configuration
func (c *Config) GetAdminConfig() AdminConfig {
	return c.Admin
}

// GetCacheTTL returns the preference cache TTL
func (c *Config) GetCacheTTL() time.Duration {
	return c.Cache.TTL
}

// GetFullConfig returns the full configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
