package cli

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	"github.com/angelmondragon/codedeploy-go/pkg/codedeploy"
	"github.com/angelmondragon/codedeploy-go/pkg/transfer"
)

//go:generate mockgen -destination=mock/mock_api.go -package=mock . CodeDeployAPI,TransferAPI

// CodeDeployAPI is the part of *codedeploy.Client the commands use.
type CodeDeployAPI interface {
	ListApplicationsPages(ctx context.Context, in *codedeploy.ListApplicationsInput, fn func(*codedeploy.ListApplicationsOutput, bool) bool, opts ...awsjson.CallOption) error
	GetApplication(ctx context.Context, in *codedeploy.GetApplicationInput, opts ...awsjson.CallOption) (*codedeploy.GetApplicationOutput, error)
	CreateApplication(ctx context.Context, in *codedeploy.CreateApplicationInput, opts ...awsjson.CallOption) (*codedeploy.CreateApplicationOutput, error)
	DeleteApplication(ctx context.Context, in *codedeploy.DeleteApplicationInput, opts ...awsjson.CallOption) (*codedeploy.DeleteApplicationOutput, error)

	ListDeploymentsPages(ctx context.Context, in *codedeploy.ListDeploymentsInput, fn func(*codedeploy.ListDeploymentsOutput, bool) bool, opts ...awsjson.CallOption) error
	GetDeployment(ctx context.Context, in *codedeploy.GetDeploymentInput, opts ...awsjson.CallOption) (*codedeploy.GetDeploymentOutput, error)
	CreateDeployment(ctx context.Context, in *codedeploy.CreateDeploymentInput, opts ...awsjson.CallOption) (*codedeploy.CreateDeploymentOutput, error)
	StopDeployment(ctx context.Context, in *codedeploy.StopDeploymentInput, opts ...awsjson.CallOption) (*codedeploy.StopDeploymentOutput, error)
	WaitUntilDeploymentSuccessful(ctx context.Context, in *codedeploy.GetDeploymentInput, opts ...codedeploy.WaiterOption) error

	ListDeploymentGroupsPages(ctx context.Context, in *codedeploy.ListDeploymentGroupsInput, fn func(*codedeploy.ListDeploymentGroupsOutput, bool) bool, opts ...awsjson.CallOption) error
	GetDeploymentGroup(ctx context.Context, in *codedeploy.GetDeploymentGroupInput, opts ...awsjson.CallOption) (*codedeploy.GetDeploymentGroupOutput, error)

	ListDeploymentConfigsPages(ctx context.Context, in *codedeploy.ListDeploymentConfigsInput, fn func(*codedeploy.ListDeploymentConfigsOutput, bool) bool, opts ...awsjson.CallOption) error
	GetDeploymentConfig(ctx context.Context, in *codedeploy.GetDeploymentConfigInput, opts ...awsjson.CallOption) (*codedeploy.GetDeploymentConfigOutput, error)
}

// TransferAPI is the part of *transfer.Client the commands use.
type TransferAPI interface {
	ListServersPages(ctx context.Context, in *transfer.ListServersInput, fn func(*transfer.ListServersOutput, bool) bool, opts ...awsjson.CallOption) error
	DescribeServer(ctx context.Context, in *transfer.DescribeServerInput, opts ...awsjson.CallOption) (*transfer.DescribeServerOutput, error)
	ImportSshPublicKey(ctx context.Context, in *transfer.ImportSshPublicKeyInput, opts ...awsjson.CallOption) (*transfer.ImportSshPublicKeyOutput, error)
	DeleteSshPublicKey(ctx context.Context, in *transfer.DeleteSshPublicKeyInput, opts ...awsjson.CallOption) (*transfer.DeleteSshPublicKeyOutput, error)
}

var (
	_ CodeDeployAPI = (*codedeploy.Client)(nil)
	_ TransferAPI   = (*transfer.Client)(nil)
)
