package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type CreateDeploymentInput struct {
	ApplicationName               string                     `json:"applicationName" validate:"required,min=1,max=100"`
	DeploymentGroupName           string                     `json:"deploymentGroupName,omitempty" validate:"omitempty,min=1,max=100"`
	Revision                      *RevisionLocation          `json:"revision,omitempty"`
	DeploymentConfigName          string                     `json:"deploymentConfigName,omitempty" validate:"omitempty,min=1,max=100"`
	Description                   string                     `json:"description,omitempty"`
	IgnoreApplicationStopFailures *bool                      `json:"ignoreApplicationStopFailures,omitempty"`
	TargetInstances               *TargetInstances           `json:"targetInstances,omitempty"`
	AutoRollbackConfiguration     *AutoRollbackConfiguration `json:"autoRollbackConfiguration,omitempty"`
	UpdateOutdatedInstancesOnly   *bool                      `json:"updateOutdatedInstancesOnly,omitempty"`
	FileExistsBehavior            FileExistsBehavior         `json:"fileExistsBehavior,omitempty" validate:"enum"`
	OverrideAlarmConfiguration    *AlarmConfiguration        `json:"overrideAlarmConfiguration,omitempty"`
}

type CreateDeploymentOutput struct {
	DeploymentID string `json:"deploymentId,omitempty"`
}

// CreateDeployment starts deploying a revision to a deployment group.
func (c *Client) CreateDeployment(ctx context.Context, in *CreateDeploymentInput, opts ...awsjson.CallOption) (*CreateDeploymentOutput, error) {
	out := &CreateDeploymentOutput{}
	if err := c.invoke(ctx, "CreateDeployment", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type GetDeploymentInput struct {
	DeploymentID string `json:"deploymentId" validate:"required"`
}

type GetDeploymentOutput struct {
	DeploymentInfo *DeploymentInfo `json:"deploymentInfo,omitempty"`
}

func (c *Client) GetDeployment(ctx context.Context, in *GetDeploymentInput, opts ...awsjson.CallOption) (*GetDeploymentOutput, error) {
	out := &GetDeploymentOutput{}
	if err := c.invoke(ctx, "GetDeployment", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type BatchGetDeploymentsInput struct {
	DeploymentIDs []string `json:"deploymentIds" validate:"required,max=25"`
}

type BatchGetDeploymentsOutput struct {
	DeploymentsInfo []DeploymentInfo `json:"deploymentsInfo,omitempty"`
}

func (c *Client) BatchGetDeployments(ctx context.Context, in *BatchGetDeploymentsInput, opts ...awsjson.CallOption) (*BatchGetDeploymentsOutput, error) {
	out := &BatchGetDeploymentsOutput{}
	if err := c.invoke(ctx, "BatchGetDeployments", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDeploymentsInput narrows the listing. DeploymentGroupName requires
// ApplicationName.
type ListDeploymentsInput struct {
	ApplicationName     string             `json:"applicationName,omitempty" validate:"omitempty,min=1,max=100"`
	DeploymentGroupName string             `json:"deploymentGroupName,omitempty" validate:"omitempty,min=1,max=100"`
	ExternalID          string             `json:"externalId,omitempty"`
	IncludeOnlyStatuses []DeploymentStatus `json:"includeOnlyStatuses,omitempty" validate:"dive,enum"`
	CreateTimeRange     *TimeRange         `json:"createTimeRange,omitempty"`
	NextToken           string             `json:"nextToken,omitempty"`
}

type ListDeploymentsOutput struct {
	Deployments []string `json:"deployments,omitempty"`
	NextToken   string   `json:"nextToken,omitempty"`
}

func (c *Client) ListDeployments(ctx context.Context, in *ListDeploymentsInput, opts ...awsjson.CallOption) (*ListDeploymentsOutput, error) {
	out := &ListDeploymentsOutput{}
	if err := c.invoke(ctx, "ListDeployments", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type StopDeploymentInput struct {
	DeploymentID        string `json:"deploymentId" validate:"required"`
	AutoRollbackEnabled *bool  `json:"autoRollbackEnabled,omitempty"`
}

type StopDeploymentOutput struct {
	Status        StopStatus `json:"status,omitempty"`
	StatusMessage string     `json:"statusMessage,omitempty"`
}

func (c *Client) StopDeployment(ctx context.Context, in *StopDeploymentInput, opts ...awsjson.CallOption) (*StopDeploymentOutput, error) {
	out := &StopDeploymentOutput{}
	if err := c.invoke(ctx, "StopDeployment", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ContinueDeploymentInput resumes a blue/green deployment that is waiting
// for traffic rerouting or for blue instance termination.
type ContinueDeploymentInput struct {
	DeploymentID       string             `json:"deploymentId,omitempty"`
	DeploymentWaitType DeploymentWaitType `json:"deploymentWaitType,omitempty" validate:"enum"`
}

type ContinueDeploymentOutput struct{}

func (c *Client) ContinueDeployment(ctx context.Context, in *ContinueDeploymentInput, opts ...awsjson.CallOption) (*ContinueDeploymentOutput, error) {
	out := &ContinueDeploymentOutput{}
	if err := c.invoke(ctx, "ContinueDeployment", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type SkipWaitTimeForInstanceTerminationInput struct {
	DeploymentID string `json:"deploymentId,omitempty"`
}

type SkipWaitTimeForInstanceTerminationOutput struct{}

// SkipWaitTimeForInstanceTermination is deprecated upstream; use
// ContinueDeployment with DeploymentWaitTypeTerminationWait.
func (c *Client) SkipWaitTimeForInstanceTermination(ctx context.Context, in *SkipWaitTimeForInstanceTerminationInput, opts ...awsjson.CallOption) (*SkipWaitTimeForInstanceTerminationOutput, error) {
	out := &SkipWaitTimeForInstanceTerminationOutput{}
	if err := c.invoke(ctx, "SkipWaitTimeForInstanceTermination", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type PutLifecycleEventHookExecutionStatusInput struct {
	DeploymentID                  string               `json:"deploymentId,omitempty"`
	LifecycleEventHookExecutionID string               `json:"lifecycleEventHookExecutionId,omitempty"`
	Status                        LifecycleEventStatus `json:"status,omitempty" validate:"enum"`
}

type PutLifecycleEventHookExecutionStatusOutput struct {
	LifecycleEventHookExecutionID string `json:"lifecycleEventHookExecutionId,omitempty"`
}

// PutLifecycleEventHookExecutionStatus reports the outcome of a Lambda or
// ECS validation hook.
func (c *Client) PutLifecycleEventHookExecutionStatus(ctx context.Context, in *PutLifecycleEventHookExecutionStatusInput, opts ...awsjson.CallOption) (*PutLifecycleEventHookExecutionStatusOutput, error) {
	out := &PutLifecycleEventHookExecutionStatusOutput{}
	if err := c.invoke(ctx, "PutLifecycleEventHookExecutionStatus", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteResourcesByExternalIDInput struct {
	ExternalID string `json:"externalId,omitempty"`
}

type DeleteResourcesByExternalIDOutput struct{}

// DeleteResourcesByExternalID removes resources created by an external
// deployment tool such as CloudFormation.
func (c *Client) DeleteResourcesByExternalID(ctx context.Context, in *DeleteResourcesByExternalIDInput, opts ...awsjson.CallOption) (*DeleteResourcesByExternalIDOutput, error) {
	out := &DeleteResourcesByExternalIDOutput{}
	if err := c.invoke(ctx, "DeleteResourcesByExternalId", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
