package codedeploy

import (
	"context"
	"fmt"
	"time"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
)

const (
	DefaultWaiterDelay       = 15 * time.Second
	DefaultWaiterMaxAttempts = 120
)

type WaiterConfig struct {
	Delay       time.Duration
	MaxAttempts int
	CallOptions []awsjson.CallOption
	// OnPoll, when set, sees every GetDeployment result.
	OnPoll func(attempt int, info *DeploymentInfo)
}

type WaiterOption func(*WaiterConfig)

func WithWaiterDelay(d time.Duration) WaiterOption {
	return func(c *WaiterConfig) { c.Delay = d }
}

func WithWaiterMaxAttempts(n int) WaiterOption {
	return func(c *WaiterConfig) { c.MaxAttempts = n }
}

func WithWaiterCallOptions(opts ...awsjson.CallOption) WaiterOption {
	return func(c *WaiterConfig) { c.CallOptions = append(c.CallOptions, opts...) }
}

func WithWaiterPoll(fn func(attempt int, info *DeploymentInfo)) WaiterOption {
	return func(c *WaiterConfig) { c.OnPoll = fn }
}

// WaitUntilDeploymentSuccessful polls GetDeployment until the deployment
// succeeds. Failed or Stopped deployments, and running out of attempts,
// return a WAITER_ERROR whose details carry the last DeploymentInfo.
// Service errors are returned as they are.
func (c *Client) WaitUntilDeploymentSuccessful(ctx context.Context, in *GetDeploymentInput, opts ...WaiterOption) error {
	cfg := WaiterConfig{Delay: DefaultWaiterDelay, MaxAttempts: DefaultWaiterMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultWaiterMaxAttempts
	}
	if in == nil || in.DeploymentID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "deploymentId is required")
	}

	var last *DeploymentInfo
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		out, err := c.GetDeployment(ctx, in, cfg.CallOptions...)
		if err != nil {
			return err
		}
		last = out.DeploymentInfo
		if cfg.OnPoll != nil {
			cfg.OnPoll(attempt, last)
		}
		if last != nil {
			switch last.Status {
			case DeploymentStatusSucceeded:
				return nil
			case DeploymentStatusFailed, DeploymentStatusStopped:
				return pkgerrors.New(pkgerrors.CodeWaiter,
					fmt.Sprintf("deployment %s entered terminal status %s", in.DeploymentID, last.Status)).WithDetails(last)
			}
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		timer := time.NewTimer(cfg.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return pkgerrors.New(pkgerrors.CodeWaiter,
		fmt.Sprintf("deployment %s not successful after %d attempts", in.DeploymentID, cfg.MaxAttempts)).WithDetails(last)
}
