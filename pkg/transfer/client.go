// Package transfer is a client for the AWS Transfer Family JSON API.
package transfer

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

const (
	ServiceName    = "transfer"
	EndpointPrefix = "transfer"
	TargetPrefix   = "TransferService"
	APIVersion     = "2018-11-05"
)

var ServiceInfo = awsjson.ServiceInfo{
	Name:           ServiceName,
	SigningName:    EndpointPrefix,
	EndpointPrefix: EndpointPrefix,
	TargetPrefix:   TargetPrefix,
	APIVersion:     APIVersion,
	JSONVersion:    "1.1",
}

// Client calls Transfer Family. It is safe for concurrent use.
type Client struct {
	invoker *awsjson.Client
}

func New(cfg awsjson.Config, opts ...awsjson.Option) (*Client, error) {
	cfg.Service = ServiceInfo
	cfg.Errors = errorRegistry
	invoker, err := awsjson.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{invoker: invoker}, nil
}

func (c *Client) Region() string { return c.invoker.Region() }

func (c *Client) Endpoint() string { return c.invoker.Endpoint() }

func (c *Client) ResponseMetadata(ctx context.Context, invocationID string) (awsjson.ResponseMetadata, bool, error) {
	return c.invoker.ResponseMetadata(ctx, invocationID)
}

func (c *Client) invoke(ctx context.Context, name string, in, out any, opts []awsjson.CallOption) error {
	return c.invoker.Invoke(ctx, awsjson.Operation{Name: name}, in, out, opts...)
}
