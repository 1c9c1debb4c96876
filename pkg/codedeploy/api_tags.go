package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type TagResourceInput struct {
	ResourceArn string `json:"ResourceArn" validate:"required,min=1,max=1011"`
	Tags        []Tag  `json:"Tags" validate:"required,dive"`
}

type TagResourceOutput struct{}

func (c *Client) TagResource(ctx context.Context, in *TagResourceInput, opts ...awsjson.CallOption) (*TagResourceOutput, error) {
	out := &TagResourceOutput{}
	if err := c.invoke(ctx, "TagResource", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type UntagResourceInput struct {
	ResourceArn string   `json:"ResourceArn" validate:"required,min=1,max=1011"`
	TagKeys     []string `json:"TagKeys" validate:"required,dive,max=128"`
}

type UntagResourceOutput struct{}

func (c *Client) UntagResource(ctx context.Context, in *UntagResourceInput, opts ...awsjson.CallOption) (*UntagResourceOutput, error) {
	out := &UntagResourceOutput{}
	if err := c.invoke(ctx, "UntagResource", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListTagsForResourceInput struct {
	ResourceArn string `json:"ResourceArn" validate:"required,min=1,max=1011"`
	NextToken   string `json:"NextToken,omitempty"`
}

type ListTagsForResourceOutput struct {
	Tags      []Tag  `json:"Tags,omitempty"`
	NextToken string `json:"NextToken,omitempty"`
}

func (c *Client) ListTagsForResource(ctx context.Context, in *ListTagsForResourceInput, opts ...awsjson.CallOption) (*ListTagsForResourceOutput, error) {
	out := &ListTagsForResourceOutput{}
	if err := c.invoke(ctx, "ListTagsForResource", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteGitHubAccountTokenInput struct {
	TokenName string `json:"tokenName,omitempty"`
}

type DeleteGitHubAccountTokenOutput struct {
	TokenName string `json:"tokenName,omitempty"`
}

func (c *Client) DeleteGitHubAccountToken(ctx context.Context, in *DeleteGitHubAccountTokenInput, opts ...awsjson.CallOption) (*DeleteGitHubAccountTokenOutput, error) {
	out := &DeleteGitHubAccountTokenOutput{}
	if err := c.invoke(ctx, "DeleteGitHubAccountToken", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListGitHubAccountTokenNamesInput struct {
	NextToken string `json:"nextToken,omitempty"`
}

type ListGitHubAccountTokenNamesOutput struct {
	TokenNameList []string `json:"tokenNameList,omitempty"`
	NextToken     string   `json:"nextToken,omitempty"`
}

func (c *Client) ListGitHubAccountTokenNames(ctx context.Context, in *ListGitHubAccountTokenNamesInput, opts ...awsjson.CallOption) (*ListGitHubAccountTokenNamesOutput, error) {
	out := &ListGitHubAccountTokenNamesOutput{}
	if err := c.invoke(ctx, "ListGitHubAccountTokenNames", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
