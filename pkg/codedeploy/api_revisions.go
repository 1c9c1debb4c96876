package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type BatchGetApplicationRevisionsInput struct {
	ApplicationName string             `json:"applicationName" validate:"required,min=1,max=100"`
	Revisions       []RevisionLocation `json:"revisions" validate:"required,max=25,dive"`
}

type BatchGetApplicationRevisionsOutput struct {
	ApplicationName string         `json:"applicationName,omitempty"`
	ErrorMessage    string         `json:"errorMessage,omitempty"`
	Revisions       []RevisionInfo `json:"revisions,omitempty"`
}

func (c *Client) BatchGetApplicationRevisions(ctx context.Context, in *BatchGetApplicationRevisionsInput, opts ...awsjson.CallOption) (*BatchGetApplicationRevisionsOutput, error) {
	out := &BatchGetApplicationRevisionsOutput{}
	if err := c.invoke(ctx, "BatchGetApplicationRevisions", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type GetApplicationRevisionInput struct {
	ApplicationName string            `json:"applicationName" validate:"required,min=1,max=100"`
	Revision        *RevisionLocation `json:"revision" validate:"required"`
}

type GetApplicationRevisionOutput struct {
	ApplicationName string               `json:"applicationName,omitempty"`
	Revision        *RevisionLocation    `json:"revision,omitempty"`
	RevisionInfo    *GenericRevisionInfo `json:"revisionInfo,omitempty"`
}

func (c *Client) GetApplicationRevision(ctx context.Context, in *GetApplicationRevisionInput, opts ...awsjson.CallOption) (*GetApplicationRevisionOutput, error) {
	out := &GetApplicationRevisionOutput{}
	if err := c.invoke(ctx, "GetApplicationRevision", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ListApplicationRevisionsInput filters and orders the revisions of one
// application. S3Bucket and S3KeyPrefix only apply to S3 revisions.
type ListApplicationRevisionsInput struct {
	ApplicationName string                    `json:"applicationName" validate:"required,min=1,max=100"`
	SortBy          ApplicationRevisionSortBy `json:"sortBy,omitempty" validate:"enum"`
	SortOrder       SortOrder                 `json:"sortOrder,omitempty" validate:"enum"`
	S3Bucket        string                    `json:"s3Bucket,omitempty"`
	S3KeyPrefix     string                    `json:"s3KeyPrefix,omitempty"`
	Deployed        ListStateFilterAction     `json:"deployed,omitempty" validate:"enum"`
	NextToken       string                    `json:"nextToken,omitempty"`
}

type ListApplicationRevisionsOutput struct {
	Revisions []RevisionLocation `json:"revisions,omitempty"`
	NextToken string             `json:"nextToken,omitempty"`
}

func (c *Client) ListApplicationRevisions(ctx context.Context, in *ListApplicationRevisionsInput, opts ...awsjson.CallOption) (*ListApplicationRevisionsOutput, error) {
	out := &ListApplicationRevisionsOutput{}
	if err := c.invoke(ctx, "ListApplicationRevisions", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type RegisterApplicationRevisionInput struct {
	ApplicationName string            `json:"applicationName" validate:"required,min=1,max=100"`
	Description     string            `json:"description,omitempty"`
	Revision        *RevisionLocation `json:"revision" validate:"required"`
}

type RegisterApplicationRevisionOutput struct{}

func (c *Client) RegisterApplicationRevision(ctx context.Context, in *RegisterApplicationRevisionInput, opts ...awsjson.CallOption) (*RegisterApplicationRevisionOutput, error) {
	out := &RegisterApplicationRevisionOutput{}
	if err := c.invoke(ctx, "RegisterApplicationRevision", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
