package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type BatchGetDeploymentInstancesInput struct {
	DeploymentID string   `json:"deploymentId" validate:"required"`
	InstanceIDs  []string `json:"instanceIds" validate:"required,max=25"`
}

type BatchGetDeploymentInstancesOutput struct {
	InstancesSummary []InstanceSummary `json:"instancesSummary,omitempty"`
	ErrorMessage     string            `json:"errorMessage,omitempty"`
}

// BatchGetDeploymentInstances is deprecated upstream in favour of
// BatchGetDeploymentTargets.
func (c *Client) BatchGetDeploymentInstances(ctx context.Context, in *BatchGetDeploymentInstancesInput, opts ...awsjson.CallOption) (*BatchGetDeploymentInstancesOutput, error) {
	out := &BatchGetDeploymentInstancesOutput{}
	if err := c.invoke(ctx, "BatchGetDeploymentInstances", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type GetDeploymentInstanceInput struct {
	DeploymentID string `json:"deploymentId" validate:"required"`
	InstanceID   string `json:"instanceId" validate:"required"`
}

type GetDeploymentInstanceOutput struct {
	InstanceSummary *InstanceSummary `json:"instanceSummary,omitempty"`
}

func (c *Client) GetDeploymentInstance(ctx context.Context, in *GetDeploymentInstanceInput, opts ...awsjson.CallOption) (*GetDeploymentInstanceOutput, error) {
	out := &GetDeploymentInstanceOutput{}
	if err := c.invoke(ctx, "GetDeploymentInstance", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListDeploymentInstancesInput struct {
	DeploymentID         string           `json:"deploymentId" validate:"required"`
	NextToken            string           `json:"nextToken,omitempty"`
	InstanceStatusFilter []InstanceStatus `json:"instanceStatusFilter,omitempty" validate:"dive,enum"`
	InstanceTypeFilter   []InstanceType   `json:"instanceTypeFilter,omitempty" validate:"dive,enum"`
}

type ListDeploymentInstancesOutput struct {
	InstancesList []string `json:"instancesList,omitempty"`
	NextToken     string   `json:"nextToken,omitempty"`
}

func (c *Client) ListDeploymentInstances(ctx context.Context, in *ListDeploymentInstancesInput, opts ...awsjson.CallOption) (*ListDeploymentInstancesOutput, error) {
	out := &ListDeploymentInstancesOutput{}
	if err := c.invoke(ctx, "ListDeploymentInstances", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type BatchGetDeploymentTargetsInput struct {
	DeploymentID string   `json:"deploymentId,omitempty"`
	TargetIDs    []string `json:"targetIds,omitempty" validate:"max=25"`
}

type BatchGetDeploymentTargetsOutput struct {
	DeploymentTargets []DeploymentTarget `json:"deploymentTargets,omitempty"`
}

func (c *Client) BatchGetDeploymentTargets(ctx context.Context, in *BatchGetDeploymentTargetsInput, opts ...awsjson.CallOption) (*BatchGetDeploymentTargetsOutput, error) {
	out := &BatchGetDeploymentTargetsOutput{}
	if err := c.invoke(ctx, "BatchGetDeploymentTargets", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type GetDeploymentTargetInput struct {
	DeploymentID string `json:"deploymentId,omitempty"`
	TargetID     string `json:"targetId,omitempty"`
}

type GetDeploymentTargetOutput struct {
	DeploymentTarget *DeploymentTarget `json:"deploymentTarget,omitempty"`
}

func (c *Client) GetDeploymentTarget(ctx context.Context, in *GetDeploymentTargetInput, opts ...awsjson.CallOption) (*GetDeploymentTargetOutput, error) {
	out := &GetDeploymentTargetOutput{}
	if err := c.invoke(ctx, "GetDeploymentTarget", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDeploymentTargetsInput filters by TargetFilterName keys, for example
// {TargetFilterNameTargetStatus: {"Failed"}}.
type ListDeploymentTargetsInput struct {
	DeploymentID  string                        `json:"deploymentId,omitempty"`
	NextToken     string                        `json:"nextToken,omitempty"`
	TargetFilters map[TargetFilterName][]string `json:"targetFilters,omitempty" validate:"dive,keys,enum,endkeys"`
}

type ListDeploymentTargetsOutput struct {
	TargetIDs []string `json:"targetIds,omitempty"`
	NextToken string   `json:"nextToken,omitempty"`
}

func (c *Client) ListDeploymentTargets(ctx context.Context, in *ListDeploymentTargetsInput, opts ...awsjson.CallOption) (*ListDeploymentTargetsOutput, error) {
	out := &ListDeploymentTargetsOutput{}
	if err := c.invoke(ctx, "ListDeploymentTargets", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type RegisterOnPremisesInstanceInput struct {
	InstanceName  string `json:"instanceName" validate:"required"`
	IamSessionArn string `json:"iamSessionArn,omitempty"`
	IamUserArn    string `json:"iamUserArn,omitempty"`
}

type RegisterOnPremisesInstanceOutput struct{}

// RegisterOnPremisesInstance accepts exactly one of IamSessionArn or IamUserArn.
func (c *Client) RegisterOnPremisesInstance(ctx context.Context, in *RegisterOnPremisesInstanceInput, opts ...awsjson.CallOption) (*RegisterOnPremisesInstanceOutput, error) {
	out := &RegisterOnPremisesInstanceOutput{}
	if err := c.invoke(ctx, "RegisterOnPremisesInstance", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeregisterOnPremisesInstanceInput struct {
	InstanceName string `json:"instanceName" validate:"required"`
}

type DeregisterOnPremisesInstanceOutput struct{}

func (c *Client) DeregisterOnPremisesInstance(ctx context.Context, in *DeregisterOnPremisesInstanceInput, opts ...awsjson.CallOption) (*DeregisterOnPremisesInstanceOutput, error) {
	out := &DeregisterOnPremisesInstanceOutput{}
	if err := c.invoke(ctx, "DeregisterOnPremisesInstance", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type GetOnPremisesInstanceInput struct {
	InstanceName string `json:"instanceName" validate:"required"`
}

type GetOnPremisesInstanceOutput struct {
	InstanceInfo *InstanceInfo `json:"instanceInfo,omitempty"`
}

func (c *Client) GetOnPremisesInstance(ctx context.Context, in *GetOnPremisesInstanceInput, opts ...awsjson.CallOption) (*GetOnPremisesInstanceOutput, error) {
	out := &GetOnPremisesInstanceOutput{}
	if err := c.invoke(ctx, "GetOnPremisesInstance", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type BatchGetOnPremisesInstancesInput struct {
	InstanceNames []string `json:"instanceNames" validate:"required,max=25"`
}

type BatchGetOnPremisesInstancesOutput struct {
	InstanceInfos []InstanceInfo `json:"instanceInfos,omitempty"`
}

func (c *Client) BatchGetOnPremisesInstances(ctx context.Context, in *BatchGetOnPremisesInstancesInput, opts ...awsjson.CallOption) (*BatchGetOnPremisesInstancesOutput, error) {
	out := &BatchGetOnPremisesInstancesOutput{}
	if err := c.invoke(ctx, "BatchGetOnPremisesInstances", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListOnPremisesInstancesInput struct {
	RegistrationStatus RegistrationStatus `json:"registrationStatus,omitempty" validate:"enum"`
	TagFilters         []TagFilter        `json:"tagFilters,omitempty" validate:"dive"`
	NextToken          string             `json:"nextToken,omitempty"`
}

type ListOnPremisesInstancesOutput struct {
	InstanceNames []string `json:"instanceNames,omitempty"`
	NextToken     string   `json:"nextToken,omitempty"`
}

func (c *Client) ListOnPremisesInstances(ctx context.Context, in *ListOnPremisesInstancesInput, opts ...awsjson.CallOption) (*ListOnPremisesInstancesOutput, error) {
	out := &ListOnPremisesInstancesOutput{}
	if err := c.invoke(ctx, "ListOnPremisesInstances", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type AddTagsToOnPremisesInstancesInput struct {
	Tags          []Tag    `json:"tags" validate:"required,dive"`
	InstanceNames []string `json:"instanceNames" validate:"required"`
}

type AddTagsToOnPremisesInstancesOutput struct{}

func (c *Client) AddTagsToOnPremisesInstances(ctx context.Context, in *AddTagsToOnPremisesInstancesInput, opts ...awsjson.CallOption) (*AddTagsToOnPremisesInstancesOutput, error) {
	out := &AddTagsToOnPremisesInstancesOutput{}
	if err := c.invoke(ctx, "AddTagsToOnPremisesInstances", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type RemoveTagsFromOnPremisesInstancesInput struct {
	Tags          []Tag    `json:"tags" validate:"required,dive"`
	InstanceNames []string `json:"instanceNames" validate:"required"`
}

type RemoveTagsFromOnPremisesInstancesOutput struct{}

func (c *Client) RemoveTagsFromOnPremisesInstances(ctx context.Context, in *RemoveTagsFromOnPremisesInstancesInput, opts ...awsjson.CallOption) (*RemoveTagsFromOnPremisesInstancesOutput, error) {
	out := &RemoveTagsFromOnPremisesInstancesOutput{}
	if err := c.invoke(ctx, "RemoveTagsFromOnPremisesInstances", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
