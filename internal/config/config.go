package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration. Values come from an
// optional YAML file overlaid by environment variables; env always wins,
// envDefault applies only when neither source set the field.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	AWS     AWSConfig     `yaml:"aws"`
	Tables  TablesConfig  `yaml:"tables"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Mail    MailConfig    `yaml:"mail"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server settings and the runtime strategy.
type ServerConfig struct {
	Runtime      string        `yaml:"runtime" env:"RUNTIME" envDefault:"local"`
	Port         int           `yaml:"port" env:"PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// AWSConfig holds region and the optional local DynamoDB endpoint.
type AWSConfig struct {
	Region   string `yaml:"region" env:"AWS_REGION" envDefault:"eu-west-2"`
	Endpoint string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT"`
}

// TablesConfig names the five DynamoDB tables.
type TablesConfig struct {
	Content     string `yaml:"content" env:"DYNAMODB_CONTENT_TABLE" envDefault:"wrs-content"`
	Articles    string `yaml:"articles" env:"DYNAMODB_ARTICLES_TABLE" envDefault:"wrs-articles"`
	Events      string `yaml:"events" env:"DYNAMODB_EVENTS_TABLE" envDefault:"wrs-events"`
	Gallery     string `yaml:"gallery" env:"DYNAMODB_GALLERY_TABLE" envDefault:"wrs-gallery"`
	Subscribers string `yaml:"subscribers" env:"DYNAMODB_SUBSCRIBERS_TABLE" envDefault:"wrs-subscribers"`
}

// StorageConfig holds the image bucket and the CDN domain fronting it.
type StorageConfig struct {
	Bucket    string `yaml:"bucket" env:"S3_BUCKET_NAME" envDefault:"wrs-images"`
	CDNDomain string `yaml:"cdn_domain" env:"CLOUDFRONT_URL"`
}

// AuthConfig holds Cognito settings. DevMode enables the fixed-token
// authentication bypass and must never be set in production.
type AuthConfig struct {
	UserPoolID string `yaml:"user_pool_id" env:"COGNITO_USER_POOL_ID"`
	ClientID   string `yaml:"client_id" env:"COGNITO_CLIENT_ID"`
	AdminGroup string `yaml:"admin_group" env:"COGNITO_ADMIN_GROUP" envDefault:"Admins"`
	DevMode    bool   `yaml:"dev_mode" env:"DEV_MODE" envDefault:"false"`
}

// MailConfig holds SES sender/recipient for the contact form.
type MailConfig struct {
	Sender    string `yaml:"sender" env:"SES_SENDER_EMAIL"`
	Recipient string `yaml:"recipient" env:"CONTACT_RECIPIENT_EMAIL"`
}

// MetricsConfig holds the optional DogStatsD address. Empty disables metrics.
type MetricsConfig struct {
	StatsdAddr string `yaml:"statsd_addr" env:"STATSD_ADDR"`
}

// LoggingConfig holds log level and format ("json" or "console").
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" envDefault:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" envDefault:"json"`
}

// Load builds the configuration. path may be empty; when set, the YAML file
// is read first and the environment is applied on top.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that have no safe default.
func (c *Config) Validate() error {
	if !c.Auth.DevMode && c.Auth.UserPoolID == "" {
		return fmt.Errorf("config: COGNITO_USER_POOL_ID is required outside dev mode")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("config: invalid port %d", c.Server.Port)
	}
	return nil
}
