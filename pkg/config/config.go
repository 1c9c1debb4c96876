package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"

	"github.com/angelmondragon/codedeploy-go/pkg/env"
)

const (
	EnvRegion             = "AWS_REGION"
	EnvDefaultRegion      = "AWS_DEFAULT_REGION"
	EnvAccessKeyID        = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken       = "AWS_SESSION_TOKEN"
	EnvProfile            = "AWS_PROFILE"
	EnvCodeDeployEndpoint = "DEPLOYKIT_CODEDEPLOY_ENDPOINT"
	EnvTransferEndpoint   = "DEPLOYKIT_TRANSFER_ENDPOINT"
	EnvHTTPTimeout        = "DEPLOYKIT_HTTP_TIMEOUT"
	EnvLogLevel           = "DEPLOYKIT_LOG_LEVEL"
	EnvLogWarnStack       = "DEPLOYKIT_LOG_WARN_STACK"
	EnvLogFormat          = "LOG_FORMAT"
	EnvMetadataCapacity   = "DEPLOYKIT_METADATA_CAPACITY"
	EnvMetadataTTL        = "DEPLOYKIT_METADATA_TTL"
	EnvRedisURL           = "DEPLOYKIT_REDIS_URL"
	EnvValidate           = "DEPLOYKIT_VALIDATE"

	DefaultRegion           = "us-east-1"
	DefaultHTTPTimeout      = 30 * time.Second
	DefaultMetadataCapacity = 50
	DefaultMetadataTTL      = 15 * time.Minute
)

// Config is the client configuration. Values come from defaults, then an
// optional TOML profile, then the environment.
type Config struct {
	AWS        AWSConfig        `toml:"aws"`
	Endpoints  EndpointsConfig  `toml:"endpoints"`
	HTTP       HTTPConfig       `toml:"http"`
	Log        LogConfig        `toml:"log"`
	Metadata   MetadataConfig   `toml:"metadata"`
	Validation ValidationConfig `toml:"validation"`
}

type AWSConfig struct {
	Region          string `envconfig:"AWS_REGION" toml:"region"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" toml:"accessKeyId"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" toml:"secretAccessKey"`
	SessionToken    string `envconfig:"AWS_SESSION_TOKEN" toml:"sessionToken"`
	Profile         string `envconfig:"AWS_PROFILE" toml:"profile"`
}

type EndpointsConfig struct {
	CodeDeploy string `envconfig:"DEPLOYKIT_CODEDEPLOY_ENDPOINT" toml:"codedeploy"`
	Transfer   string `envconfig:"DEPLOYKIT_TRANSFER_ENDPOINT" toml:"transfer"`
}

type HTTPConfig struct {
	Timeout duration `envconfig:"DEPLOYKIT_HTTP_TIMEOUT" toml:"timeout"`
}

type LogConfig struct {
	Level     string `envconfig:"DEPLOYKIT_LOG_LEVEL" toml:"level"`
	WarnStack bool   `envconfig:"DEPLOYKIT_LOG_WARN_STACK" toml:"warnStack"`
	Format    string `envconfig:"LOG_FORMAT" toml:"format"`
}

// MetadataConfig selects the response-metadata cache. An empty RedisURL keeps
// the cache in memory.
type MetadataConfig struct {
	Capacity int      `envconfig:"DEPLOYKIT_METADATA_CAPACITY" toml:"capacity"`
	TTL      duration `envconfig:"DEPLOYKIT_METADATA_TTL" toml:"ttl"`
	RedisURL string   `envconfig:"DEPLOYKIT_REDIS_URL" toml:"redisUrl"`
}

type ValidationConfig struct {
	Enabled bool `envconfig:"DEPLOYKIT_VALIDATE" toml:"enabled"`
}

// duration decodes both from the environment and from TOML strings such as "30s".
type duration struct {
	time.Duration
}

func (d *duration) Decode(value string) error {
	return d.UnmarshalText([]byte(value))
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (c HTTPConfig) TimeoutDuration() time.Duration { return c.Timeout.Duration }

func (c MetadataConfig) TTLDuration() time.Duration { return c.TTL.Duration }

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		AWS:      AWSConfig{Region: DefaultRegion},
		HTTP:     HTTPConfig{Timeout: duration{DefaultHTTPTimeout}},
		Log:      LogConfig{Level: "info", Format: "json"},
		Metadata: MetadataConfig{Capacity: DefaultMetadataCapacity, TTL: duration{DefaultMetadataTTL}},
	}
}

// Load reads the environment on top of the defaults.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads the TOML profile at path (skipped when empty) and then the
// environment, which wins over the file.
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if cfg.AWS.Region == DefaultRegion || cfg.AWS.Region == "" {
		cfg.AWS.Region = env.First(cfg.AWS.Region, EnvDefaultRegion)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem found rather than stopping at the first.
func (c *Config) Validate() error {
	var err error
	if strings.TrimSpace(c.AWS.Region) == "" {
		err = multierr.Append(err, fmt.Errorf("%s is required", EnvRegion))
	}
	if (c.AWS.AccessKeyID == "") != (c.AWS.SecretAccessKey == "") {
		err = multierr.Append(err, fmt.Errorf("%s and %s must be set together", EnvAccessKeyID, EnvSecretAccessKey))
	}
	if c.AWS.SessionToken != "" && c.AWS.AccessKeyID == "" {
		err = multierr.Append(err, fmt.Errorf("%s requires static access keys", EnvSessionToken))
	}
	err = multierr.Append(err, validateEndpoint(EnvCodeDeployEndpoint, c.Endpoints.CodeDeploy))
	err = multierr.Append(err, validateEndpoint(EnvTransferEndpoint, c.Endpoints.Transfer))
	if c.HTTP.Timeout.Duration <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be positive", EnvHTTPTimeout))
	}
	if c.Metadata.Capacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be positive", EnvMetadataCapacity))
	}
	if c.Metadata.RedisURL != "" && c.Metadata.TTL.Duration <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be positive when %s is set", EnvMetadataTTL, EnvRedisURL))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("%s must be json or console, got %q", EnvLogFormat, c.Log.Format))
	}
	return err
}

func validateEndpoint(name, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s is missing a host", name)
	}
	return nil
}

// Credentials returns static credentials when access keys are configured and
// otherwise the environment/shared-file chain.
func (a AWSConfig) Credentials() *credentials.Credentials {
	if a.AccessKeyID != "" {
		return credentials.NewStaticCredentials(a.AccessKeyID, a.SecretAccessKey, a.SessionToken)
	}
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvProvider{},
		&credentials.SharedCredentialsProvider{Profile: a.Profile},
	})
}
