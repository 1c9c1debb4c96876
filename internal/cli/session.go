package cli

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws/credentials"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	"github.com/angelmondragon/codedeploy-go/pkg/codedeploy"
	"github.com/angelmondragon/codedeploy-go/pkg/config"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
	"github.com/angelmondragon/codedeploy-go/pkg/logger"
	"github.com/angelmondragon/codedeploy-go/pkg/redis"
	"github.com/angelmondragon/codedeploy-go/pkg/transfer"
)

const serviceName = "deployctl"

// DefaultSessionFactory loads the profile and environment, applies the flag
// overrides and builds real clients.
func DefaultSessionFactory(ctx context.Context, opts GlobalOptions) (*Session, error) {
	cfg, err := config.LoadFile(opts.ConfigPath)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConfig, err, "load configuration")
	}
	applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConfig, err, "invalid configuration")
	}

	logg := logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.Log.Level),
		WarnStack:   cfg.Log.WarnStack,
		Output:      os.Stderr,
		Format:      cfg.Log.Format,
	})

	store, closeStore, err := metadataStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	creds := cfg.AWS.Credentials()
	if opts.NoSign {
		creds = credentials.AnonymousCredentials
	}
	base := awsjson.Config{
		Region:      cfg.AWS.Region,
		Credentials: creds,
		HTTPClient:  &http.Client{Timeout: cfg.HTTP.TimeoutDuration()},
		Logger:      logg,
		Metadata:    store,
		Validate:    cfg.Validation.Enabled,
		UserAgent:   serviceName + "/" + awsjson.Version,
	}

	cd, err := codedeploy.New(base, awsjson.WithEndpoint(cfg.Endpoints.CodeDeploy))
	if err != nil {
		_ = closeStore()
		return nil, err
	}
	tr, err := transfer.New(base, awsjson.WithEndpoint(cfg.Endpoints.Transfer))
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	logg.Debug(logg.WithFields(ctx, map[string]any{
		"region":              cd.Region(),
		"codedeploy_endpoint": cd.Endpoint(),
		"transfer_endpoint":   tr.Endpoint(),
	}), "session ready")

	return &Session{CodeDeploy: cd, Transfer: tr, Logger: logg, Close: closeStore}, nil
}

func applyOverrides(cfg *config.Config, opts GlobalOptions) {
	if region := strings.TrimSpace(opts.Region); region != "" {
		cfg.AWS.Region = region
	}
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		cfg.Endpoints.CodeDeploy = endpoint
		cfg.Endpoints.Transfer = endpoint
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Log.Level = level
	}
}

// metadataStore picks redis when a URL is configured and memory otherwise.
func metadataStore(ctx context.Context, cfg *config.Config) (awsjson.MetadataStore, func() error, error) {
	if cfg.Metadata.RedisURL == "" {
		return awsjson.NewMemoryMetadataStore(cfg.Metadata.Capacity), func() error { return nil }, nil
	}
	client, err := redis.New(ctx, redis.Options{URL: cfg.Metadata.RedisURL})
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeConfig, err, "connect metadata cache")
	}
	return awsjson.NewRedisMetadataStore(client, cfg.Metadata.TTLDuration()), client.Close, nil
}
