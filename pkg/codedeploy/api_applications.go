package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type CreateApplicationInput struct {
	ApplicationName string          `json:"applicationName" validate:"required,min=1,max=100"`
	ComputePlatform ComputePlatform `json:"computePlatform,omitempty" validate:"enum"`
	Tags            []Tag           `json:"tags,omitempty" validate:"dive"`
}

type CreateApplicationOutput struct {
	ApplicationID string `json:"applicationId,omitempty"`
}

// CreateApplication creates an application.
func (c *Client) CreateApplication(ctx context.Context, in *CreateApplicationInput, opts ...awsjson.CallOption) (*CreateApplicationOutput, error) {
	out := &CreateApplicationOutput{}
	if err := c.invoke(ctx, "CreateApplication", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteApplicationInput struct {
	ApplicationName string `json:"applicationName" validate:"required,min=1,max=100"`
}

type DeleteApplicationOutput struct{}

// DeleteApplication deletes an application and its deployment groups.
func (c *Client) DeleteApplication(ctx context.Context, in *DeleteApplicationInput, opts ...awsjson.CallOption) (*DeleteApplicationOutput, error) {
	out := &DeleteApplicationOutput{}
	if err := c.invoke(ctx, "DeleteApplication", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type GetApplicationInput struct {
	ApplicationName string `json:"applicationName" validate:"required,min=1,max=100"`
}

type GetApplicationOutput struct {
	Application *ApplicationInfo `json:"application,omitempty"`
}

func (c *Client) GetApplication(ctx context.Context, in *GetApplicationInput, opts ...awsjson.CallOption) (*GetApplicationOutput, error) {
	out := &GetApplicationOutput{}
	if err := c.invoke(ctx, "GetApplication", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type BatchGetApplicationsInput struct {
	ApplicationNames []string `json:"applicationNames" validate:"required,max=100,dive,min=1,max=100"`
}

type BatchGetApplicationsOutput struct {
	ApplicationsInfo []ApplicationInfo `json:"applicationsInfo,omitempty"`
}

func (c *Client) BatchGetApplications(ctx context.Context, in *BatchGetApplicationsInput, opts ...awsjson.CallOption) (*BatchGetApplicationsOutput, error) {
	out := &BatchGetApplicationsOutput{}
	if err := c.invoke(ctx, "BatchGetApplications", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListApplicationsInput struct {
	NextToken string `json:"nextToken,omitempty"`
}

type ListApplicationsOutput struct {
	Applications []string `json:"applications,omitempty"`
	NextToken    string   `json:"nextToken,omitempty"`
}

// ListApplications returns one page of application names.
func (c *Client) ListApplications(ctx context.Context, in *ListApplicationsInput, opts ...awsjson.CallOption) (*ListApplicationsOutput, error) {
	out := &ListApplicationsOutput{}
	if err := c.invoke(ctx, "ListApplications", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateApplicationInput struct {
	ApplicationName    string `json:"applicationName,omitempty" validate:"omitempty,min=1,max=100"`
	NewApplicationName string `json:"newApplicationName,omitempty" validate:"omitempty,min=1,max=100"`
}

type UpdateApplicationOutput struct{}

// UpdateApplication renames an application.
func (c *Client) UpdateApplication(ctx context.Context, in *UpdateApplicationInput, opts ...awsjson.CallOption) (*UpdateApplicationOutput, error) {
	out := &UpdateApplicationOutput{}
	if err := c.invoke(ctx, "UpdateApplication", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
