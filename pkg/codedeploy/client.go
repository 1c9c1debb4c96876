// Package codedeploy is a client for the AWS CodeDeploy JSON API.
package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

const (
	ServiceName    = "codedeploy"
	EndpointPrefix = "codedeploy"
	TargetPrefix   = "CodeDeploy_20141006"
	APIVersion     = "2014-10-06"
)

// ServiceInfo addresses CodeDeploy requests.
var ServiceInfo = awsjson.ServiceInfo{
	Name:           ServiceName,
	SigningName:    EndpointPrefix,
	EndpointPrefix: EndpointPrefix,
	TargetPrefix:   TargetPrefix,
	APIVersion:     APIVersion,
	JSONVersion:    "1.1",
}

// Client calls CodeDeploy. It is safe for concurrent use.
type Client struct {
	invoker *awsjson.Client
}

// New builds a client. Service and error registry are always CodeDeploy's;
// everything else comes from cfg and opts.
func New(cfg awsjson.Config, opts ...awsjson.Option) (*Client, error) {
	cfg.Service = ServiceInfo
	cfg.Errors = errorRegistry
	invoker, err := awsjson.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{invoker: invoker}, nil
}

// Region is the region requests are signed for.
func (c *Client) Region() string { return c.invoker.Region() }

// Endpoint is the base URL requests are sent to.
func (c *Client) Endpoint() string { return c.invoker.Endpoint() }

// ResponseMetadata returns metadata recorded for an earlier call.
func (c *Client) ResponseMetadata(ctx context.Context, invocationID string) (awsjson.ResponseMetadata, bool, error) {
	return c.invoker.ResponseMetadata(ctx, invocationID)
}

func (c *Client) invoke(ctx context.Context, name string, in, out any, opts []awsjson.CallOption) error {
	return c.invoker.Invoke(ctx, awsjson.Operation{Name: name}, in, out, opts...)
}
