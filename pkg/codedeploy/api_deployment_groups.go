package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type CreateDeploymentGroupInput struct {
	ApplicationName                  string                            `json:"applicationName" validate:"required,min=1,max=100"`
	DeploymentGroupName              string                            `json:"deploymentGroupName" validate:"required,min=1,max=100"`
	DeploymentConfigName             string                            `json:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`
	EC2TagFilters                    []EC2TagFilter                    `json:"ec2TagFilters,omitempty" validate:"dive"`
	OnPremisesInstanceTagFilters     []TagFilter                       `json:"onPremisesInstanceTagFilters,omitempty" validate:"dive"`
	AutoScalingGroups                []string                          `json:"autoScalingGroups,omitempty"`
	ServiceRoleArn                   string                            `json:"serviceRoleArn" validate:"required"`
	TriggerConfigurations            []TriggerConfig                   `json:"triggerConfigurations,omitempty" validate:"dive"`
	AlarmConfiguration               *AlarmConfiguration               `json:"alarmConfiguration,omitempty"`
	AutoRollbackConfiguration        *AutoRollbackConfiguration        `json:"autoRollbackConfiguration,omitempty"`
	OutdatedInstancesStrategy        string                            `json:"outdatedInstancesStrategy,omitempty" validate:"omitempty,oneof=UPDATE IGNORE"`
	DeploymentStyle                  *DeploymentStyle                  `json:"deploymentStyle,omitempty"`
	BlueGreenDeploymentConfiguration *BlueGreenDeploymentConfiguration `json:"blueGreenDeploymentConfiguration,omitempty"`
	LoadBalancerInfo                 *LoadBalancerInfo                 `json:"loadBalancerInfo,omitempty"`
	EC2TagSet                        *EC2TagSet                        `json:"ec2TagSet,omitempty"`
	ECSServices                      []ECSService                      `json:"ecsServices,omitempty"`
	OnPremisesTagSet                 *OnPremisesTagSet                 `json:"onPremisesTagSet,omitempty"`
	Tags                             []Tag                             `json:"tags,omitempty" validate:"dive"`
}

type CreateDeploymentGroupOutput struct {
	DeploymentGroupID string `json:"deploymentGroupId,omitempty"`
}

func (c *Client) CreateDeploymentGroup(ctx context.Context, in *CreateDeploymentGroupInput, opts ...awsjson.CallOption) (*CreateDeploymentGroupOutput, error) {
	out := &CreateDeploymentGroupOutput{}
	if err := c.invoke(ctx, "CreateDeploymentGroup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteDeploymentGroupInput struct {
	ApplicationName     string `json:"applicationName" validate:"required,min=1,max=100"`
	DeploymentGroupName string `json:"deploymentGroupName" validate:"required,min=1,max=100"`
}

// DeleteDeploymentGroupOutput lists Auto Scaling groups whose lifecycle
// hooks could not be removed.
type DeleteDeploymentGroupOutput struct {
	HooksNotCleanedUp []AutoScalingGroup `json:"hooksNotCleanedUp,omitempty"`
}

func (c *Client) DeleteDeploymentGroup(ctx context.Context, in *DeleteDeploymentGroupInput, opts ...awsjson.CallOption) (*DeleteDeploymentGroupOutput, error) {
	out := &DeleteDeploymentGroupOutput{}
	if err := c.invoke(ctx, "DeleteDeploymentGroup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type GetDeploymentGroupInput struct {
	ApplicationName     string `json:"applicationName" validate:"required,min=1,max=100"`
	DeploymentGroupName string `json:"deploymentGroupName" validate:"required,min=1,max=100"`
}

type GetDeploymentGroupOutput struct {
	DeploymentGroupInfo *DeploymentGroupInfo `json:"deploymentGroupInfo,omitempty"`
}

func (c *Client) GetDeploymentGroup(ctx context.Context, in *GetDeploymentGroupInput, opts ...awsjson.CallOption) (*GetDeploymentGroupOutput, error) {
	out := &GetDeploymentGroupOutput{}
	if err := c.invoke(ctx, "GetDeploymentGroup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type BatchGetDeploymentGroupsInput struct {
	ApplicationName      string   `json:"applicationName" validate:"required,min=1,max=100"`
	DeploymentGroupNames []string `json:"deploymentGroupNames" validate:"required,dive,min=1,max=100"`
}

type BatchGetDeploymentGroupsOutput struct {
	DeploymentGroupsInfo []DeploymentGroupInfo `json:"deploymentGroupsInfo,omitempty"`
	ErrorMessage         string                `json:"errorMessage,omitempty"`
}

func (c *Client) BatchGetDeploymentGroups(ctx context.Context, in *BatchGetDeploymentGroupsInput, opts ...awsjson.CallOption) (*BatchGetDeploymentGroupsOutput, error) {
	out := &BatchGetDeploymentGroupsOutput{}
	if err := c.invoke(ctx, "BatchGetDeploymentGroups", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListDeploymentGroupsInput struct {
	ApplicationName string `json:"applicationName" validate:"required,min=1,max=100"`
	NextToken       string `json:"nextToken,omitempty"`
}

type ListDeploymentGroupsOutput struct {
	ApplicationName  string   `json:"applicationName,omitempty"`
	DeploymentGroups []string `json:"deploymentGroups,omitempty"`
	NextToken        string   `json:"nextToken,omitempty"`
}

func (c *Client) ListDeploymentGroups(ctx context.Context, in *ListDeploymentGroupsInput, opts ...awsjson.CallOption) (*ListDeploymentGroupsOutput, error) {
	out := &ListDeploymentGroupsOutput{}
	if err := c.invoke(ctx, "ListDeploymentGroups", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDeploymentGroupInput replaces the settings it carries; unset fields
// are left alone by the service. Empty, non-nil slices clear a list.
type UpdateDeploymentGroupInput struct {
	ApplicationName                  string                            `json:"applicationName" validate:"required,min=1,max=100"`
	CurrentDeploymentGroupName       string                            `json:"currentDeploymentGroupName" validate:"required,min=1,max=100"`
	NewDeploymentGroupName           string                            `json:"newDeploymentGroupName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentConfigName             string                            `json:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`
	EC2TagFilters                    []EC2TagFilter                    `json:"ec2TagFilters,omitempty" validate:"dive"`
	OnPremisesInstanceTagFilters     []TagFilter                       `json:"onPremisesInstanceTagFilters,omitempty" validate:"dive"`
	AutoScalingGroups                []string                          `json:"autoScalingGroups,omitempty"`
	ServiceRoleArn                   string                            `json:"serviceRoleArn,omitempty"`
	TriggerConfigurations            []TriggerConfig                   `json:"triggerConfigurations,omitempty" validate:"dive"`
	AlarmConfiguration               *AlarmConfiguration               `json:"alarmConfiguration,omitempty"`
	AutoRollbackConfiguration        *AutoRollbackConfiguration        `json:"autoRollbackConfiguration,omitempty"`
	OutdatedInstancesStrategy        string                            `json:"outdatedInstancesStrategy,omitempty" validate:"omitempty,oneof=UPDATE IGNORE"`
	DeploymentStyle                  *DeploymentStyle                  `json:"deploymentStyle,omitempty"`
	BlueGreenDeploymentConfiguration *BlueGreenDeploymentConfiguration `json:"blueGreenDeploymentConfiguration,omitempty"`
	LoadBalancerInfo                 *LoadBalancerInfo                 `json:"loadBalancerInfo,omitempty"`
	EC2TagSet                        *EC2TagSet                        `json:"ec2TagSet,omitempty"`
	ECSServices                      []ECSService                      `json:"ecsServices,omitempty"`
	OnPremisesTagSet                 *OnPremisesTagSet                 `json:"onPremisesTagSet,omitempty"`
}

type UpdateDeploymentGroupOutput struct {
	HooksNotCleanedUp []AutoScalingGroup `json:"hooksNotCleanedUp,omitempty"`
}

func (c *Client) UpdateDeploymentGroup(ctx context.Context, in *UpdateDeploymentGroupInput, opts ...awsjson.CallOption) (*UpdateDeploymentGroupOutput, error) {
	out := &UpdateDeploymentGroupOutput{}
	if err := c.invoke(ctx, "UpdateDeploymentGroup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
