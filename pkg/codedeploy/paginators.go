package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

// pages drives a NextToken listing. fetch receives the token for the page to
// load; fn sees every page and returns false to stop early. A token that
// repeats the one just sent ends the walk.
func pages[T any](ctx context.Context, token string, fetch func(token string) (*T, string, error), fn func(page *T, lastPage bool) bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		page, next, err := fetch(token)
		if err != nil {
			return err
		}
		last := next == "" || next == token
		if !fn(page, last) || last {
			return nil
		}
		token = next
	}
}

// ListApplicationsPages calls fn for every page of ListApplications.
func (c *Client) ListApplicationsPages(ctx context.Context, in *ListApplicationsInput, fn func(*ListApplicationsOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListApplicationsInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListApplicationsOutput, string, error) {
		req.NextToken = token
		out, err := c.ListApplications(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

func (c *Client) ListApplicationRevisionsPages(ctx context.Context, in *ListApplicationRevisionsInput, fn func(*ListApplicationRevisionsOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListApplicationRevisionsInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListApplicationRevisionsOutput, string, error) {
		req.NextToken = token
		out, err := c.ListApplicationRevisions(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

func (c *Client) ListDeploymentConfigsPages(ctx context.Context, in *ListDeploymentConfigsInput, fn func(*ListDeploymentConfigsOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListDeploymentConfigsInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListDeploymentConfigsOutput, string, error) {
		req.NextToken = token
		out, err := c.ListDeploymentConfigs(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

func (c *Client) ListDeploymentGroupsPages(ctx context.Context, in *ListDeploymentGroupsInput, fn func(*ListDeploymentGroupsOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListDeploymentGroupsInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListDeploymentGroupsOutput, string, error) {
		req.NextToken = token
		out, err := c.ListDeploymentGroups(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

func (c *Client) ListDeploymentInstancesPages(ctx context.Context, in *ListDeploymentInstancesInput, fn func(*ListDeploymentInstancesOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListDeploymentInstancesInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListDeploymentInstancesOutput, string, error) {
		req.NextToken = token
		out, err := c.ListDeploymentInstances(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

func (c *Client) ListDeploymentTargetsPages(ctx context.Context, in *ListDeploymentTargetsInput, fn func(*ListDeploymentTargetsOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListDeploymentTargetsInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListDeploymentTargetsOutput, string, error) {
		req.NextToken = token
		out, err := c.ListDeploymentTargets(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

// ListDeploymentsPages calls fn for every page of ListDeployments.
func (c *Client) ListDeploymentsPages(ctx context.Context, in *ListDeploymentsInput, fn func(*ListDeploymentsOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListDeploymentsInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListDeploymentsOutput, string, error) {
		req.NextToken = token
		out, err := c.ListDeployments(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

func (c *Client) ListGitHubAccountTokenNamesPages(ctx context.Context, in *ListGitHubAccountTokenNamesInput, fn func(*ListGitHubAccountTokenNamesOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListGitHubAccountTokenNamesInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListGitHubAccountTokenNamesOutput, string, error) {
		req.NextToken = token
		out, err := c.ListGitHubAccountTokenNames(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

func (c *Client) ListOnPremisesInstancesPages(ctx context.Context, in *ListOnPremisesInstancesInput, fn func(*ListOnPremisesInstancesOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListOnPremisesInstancesInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListOnPremisesInstancesOutput, string, error) {
		req.NextToken = token
		out, err := c.ListOnPremisesInstances(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}

func (c *Client) ListTagsForResourcePages(ctx context.Context, in *ListTagsForResourceInput, fn func(*ListTagsForResourceOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListTagsForResourceInput{}
	if in != nil {
		req = *in
	}
	return pages(ctx, req.NextToken, func(token string) (*ListTagsForResourceOutput, string, error) {
		req.NextToken = token
		out, err := c.ListTagsForResource(ctx, &req, opts...)
		if err != nil {
			return nil, "", err
		}
		return out, out.NextToken, nil
	}, fn)
}
