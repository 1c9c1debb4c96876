package codedeploy

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	"golang.org/x/sync/errgroup"
)

const (
	// BatchSize is the number of identifiers sent per BatchGet call.
	BatchSize = 25
	// batchConcurrency bounds the BatchGet calls in flight for one helper.
	batchConcurrency = 4
)

func chunk(ids []string, size int) [][]string {
	var chunks [][]string
	for len(ids) > size {
		chunks = append(chunks, ids[:size:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}

// fanOut runs get for every chunk of ids and concatenates the results in
// chunk order. The first error cancels the remaining calls. Per-call options
// are not shared between chunks: every chunk gets its own invocation id, and a
// CaptureMetadata destination receives the metadata of the last chunk once all
// chunks have succeeded.
func fanOut[T any](ctx context.Context, ids []string, opts []awsjson.CallOption, get func(ctx context.Context, ids []string, opts []awsjson.CallOption) ([]T, error)) ([]T, error) {
	chunks := chunk(ids, BatchSize)
	results := make([][]T, len(chunks))
	metas := make([]awsjson.ResponseMetadata, len(chunks))
	shared, capture := awsjson.SharedCallOptions(opts...)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, part := range chunks {
		i, part := i, part
		callOpts := append(shared[:len(shared):len(shared)], awsjson.CaptureMetadata(&metas[i]))
		g.Go(func() error {
			items, err := get(ctx, part, callOpts)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if capture != nil && len(metas) > 0 {
		*capture = metas[len(metas)-1]
	}

	var all []T
	for _, items := range results {
		all = append(all, items...)
	}
	return all, nil
}

// BatchGetDeploymentsAll describes any number of deployments, splitting the
// ids into BatchGetDeployments calls of BatchSize.
func (c *Client) BatchGetDeploymentsAll(ctx context.Context, deploymentIDs []string, opts ...awsjson.CallOption) ([]DeploymentInfo, error) {
	return fanOut(ctx, deploymentIDs, opts, func(ctx context.Context, ids []string, opts []awsjson.CallOption) ([]DeploymentInfo, error) {
		out, err := c.BatchGetDeployments(ctx, &BatchGetDeploymentsInput{DeploymentIDs: ids}, opts...)
		if err != nil {
			return nil, err
		}
		return out.DeploymentsInfo, nil
	})
}

func (c *Client) BatchGetApplicationsAll(ctx context.Context, names []string, opts ...awsjson.CallOption) ([]ApplicationInfo, error) {
	return fanOut(ctx, names, opts, func(ctx context.Context, ids []string, opts []awsjson.CallOption) ([]ApplicationInfo, error) {
		out, err := c.BatchGetApplications(ctx, &BatchGetApplicationsInput{ApplicationNames: ids}, opts...)
		if err != nil {
			return nil, err
		}
		return out.ApplicationsInfo, nil
	})
}

func (c *Client) BatchGetOnPremisesInstancesAll(ctx context.Context, names []string, opts ...awsjson.CallOption) ([]InstanceInfo, error) {
	return fanOut(ctx, names, opts, func(ctx context.Context, ids []string, opts []awsjson.CallOption) ([]InstanceInfo, error) {
		out, err := c.BatchGetOnPremisesInstances(ctx, &BatchGetOnPremisesInstancesInput{InstanceNames: ids}, opts...)
		if err != nil {
			return nil, err
		}
		return out.InstanceInfos, nil
	})
}
