package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type CreateDeploymentConfigInput struct {
	DeploymentConfigName string                `json:"deploymentConfigName" validate:"required,min=1,max=100"`
	MinimumHealthyHosts  *MinimumHealthyHosts  `json:"minimumHealthyHosts,omitempty"`
	TrafficRoutingConfig *TrafficRoutingConfig `json:"trafficRoutingConfig,omitempty"`
	ComputePlatform      ComputePlatform       `json:"computePlatform,omitempty" validate:"enum"`
}

type CreateDeploymentConfigOutput struct {
	DeploymentConfigID string `json:"deploymentConfigId,omitempty"`
}

func (c *Client) CreateDeploymentConfig(ctx context.Context, in *CreateDeploymentConfigInput, opts ...awsjson.CallOption) (*CreateDeploymentConfigOutput, error) {
	out := &CreateDeploymentConfigOutput{}
	if err := c.invoke(ctx, "CreateDeploymentConfig", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteDeploymentConfigInput struct {
	DeploymentConfigName string `json:"deploymentConfigName" validate:"required,min=1,max=100"`
}

type DeleteDeploymentConfigOutput struct{}

// DeleteDeploymentConfig fails with DeploymentConfigInUseException while a
// deployment group still references the configuration.
func (c *Client) DeleteDeploymentConfig(ctx context.Context, in *DeleteDeploymentConfigInput, opts ...awsjson.CallOption) (*DeleteDeploymentConfigOutput, error) {
	out := &DeleteDeploymentConfigOutput{}
	if err := c.invoke(ctx, "DeleteDeploymentConfig", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type GetDeploymentConfigInput struct {
	DeploymentConfigName string `json:"deploymentConfigName" validate:"required,min=1,max=100"`
}

type GetDeploymentConfigOutput struct {
	DeploymentConfigInfo *DeploymentConfigInfo `json:"deploymentConfigInfo,omitempty"`
}

func (c *Client) GetDeploymentConfig(ctx context.Context, in *GetDeploymentConfigInput, opts ...awsjson.CallOption) (*GetDeploymentConfigOutput, error) {
	out := &GetDeploymentConfigOutput{}
	if err := c.invoke(ctx, "GetDeploymentConfig", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListDeploymentConfigsInput struct {
	NextToken string `json:"nextToken,omitempty"`
}

type ListDeploymentConfigsOutput struct {
	DeploymentConfigsList []string `json:"deploymentConfigsList,omitempty"`
	NextToken             string   `json:"nextToken,omitempty"`
}

func (c *Client) ListDeploymentConfigs(ctx context.Context, in *ListDeploymentConfigsInput, opts ...awsjson.CallOption) (*ListDeploymentConfigsOutput, error) {
	out := &ListDeploymentConfigsOutput{}
	if err := c.invoke(ctx, "ListDeploymentConfigs", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
