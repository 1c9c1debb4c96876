package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	"github.com/angelmondragon/codedeploy-go/pkg/codedeploy"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
	"github.com/angelmondragon/codedeploy-go/pkg/logger"
	"github.com/angelmondragon/codedeploy-go/pkg/transfer"
)

const testKey = "ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIOMqqnkVzrm0SdG6UOoqKLsabgH5C9okWi0dh2l9GKJl alice@example"

type env struct {
	url        string
	codedeploy *codedeploy.Client
	transfer   *transfer.Client
}

func newEnv(t *testing.T, pageSize int) *env {
	t.Helper()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	handler := newHandler(settings{Region: "us-west-2", PageSize: pageSize}, logger.Nop(), prometheus.NewRegistry(),
		func() time.Time { return fixed })
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	base := awsjson.Config{Credentials: credentials.AnonymousCredentials, Region: "us-west-2"}
	cd, err := codedeploy.New(base, awsjson.WithEndpoint(ts.URL), awsjson.WithValidation(true))
	require.NoError(t, err)
	tr, err := transfer.New(base, awsjson.WithEndpoint(ts.URL), awsjson.WithValidation(true))
	require.NoError(t, err)
	return &env{url: ts.URL, codedeploy: cd, transfer: tr}
}

func (e *env) seedGroup(t *testing.T, app, group string) {
	t.Helper()
	ctx := context.Background()
	_, err := e.codedeploy.CreateApplication(ctx, &codedeploy.CreateApplicationInput{ApplicationName: app})
	require.NoError(t, err)
	_, err = e.codedeploy.CreateDeploymentGroup(ctx, &codedeploy.CreateDeploymentGroupInput{
		ApplicationName:     app,
		DeploymentGroupName: group,
		ServiceRoleArn:      "arn:aws:iam::123456789012:role/codedeploy",
	})
	require.NoError(t, err)
}

func TestApplicationsLifecycle(t *testing.T) {
	e := newEnv(t, 2)
	ctx := context.Background()

	for _, name := range []string{"web", "api", "worker"} {
		_, err := e.codedeploy.CreateApplication(ctx, &codedeploy.CreateApplicationInput{ApplicationName: name})
		require.NoError(t, err)
	}
	_, err := e.codedeploy.CreateApplication(ctx, &codedeploy.CreateApplicationInput{ApplicationName: "api"})
	assert.True(t, codedeploy.IsErrorCode(err, codedeploy.ErrCodeApplicationAlreadyExistsException))

	var names []string
	pages := 0
	err = e.codedeploy.ListApplicationsPages(ctx, &codedeploy.ListApplicationsInput{}, func(out *codedeploy.ListApplicationsOutput, _ bool) bool {
		pages++
		names = append(names, out.Applications...)
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	assert.Equal(t, []string{"api", "web", "worker"}, names)

	got, err := e.codedeploy.GetApplication(ctx, &codedeploy.GetApplicationInput{ApplicationName: "api"})
	require.NoError(t, err)
	assert.Equal(t, codedeploy.ComputePlatformServer, got.Application.ComputePlatform)
	assert.Equal(t, int64(1714564800), got.Application.CreateTime.Unix())

	_, err = e.codedeploy.DeleteApplication(ctx, &codedeploy.DeleteApplicationInput{ApplicationName: "api"})
	require.NoError(t, err)
	_, err = e.codedeploy.GetApplication(ctx, &codedeploy.GetApplicationInput{ApplicationName: "api"})
	assert.True(t, codedeploy.IsErrorCode(err, codedeploy.ErrCodeApplicationDoesNotExistException))
}

func TestDeploymentRunsToSuccess(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	e.seedGroup(t, "api", "prod")

	created, err := e.codedeploy.CreateDeployment(ctx, &codedeploy.CreateDeploymentInput{
		ApplicationName:     "api",
		DeploymentGroupName: "prod",
		Revision: &codedeploy.RevisionLocation{
			RevisionType: codedeploy.RevisionLocationTypeS3,
			S3Location:   &codedeploy.S3Location{Bucket: "artifacts", Key: "api.zip", BundleType: codedeploy.BundleTypeZip},
		},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^d-[0-9A-F]{9}$`, created.DeploymentID)

	var seen []codedeploy.DeploymentStatus
	err = e.codedeploy.WaitUntilDeploymentSuccessful(ctx, &codedeploy.GetDeploymentInput{DeploymentID: created.DeploymentID},
		codedeploy.WithWaiterDelay(time.Millisecond),
		codedeploy.WithWaiterPoll(func(_ int, info *codedeploy.DeploymentInfo) {
			seen = append(seen, info.Status)
		}))
	require.NoError(t, err)
	assert.Equal(t, []codedeploy.DeploymentStatus{
		codedeploy.DeploymentStatusCreated,
		codedeploy.DeploymentStatusInProgress,
		codedeploy.DeploymentStatusSucceeded,
	}, seen)

	group, err := e.codedeploy.GetDeploymentGroup(ctx, &codedeploy.GetDeploymentGroupInput{ApplicationName: "api", DeploymentGroupName: "prod"})
	require.NoError(t, err)
	require.NotNil(t, group.DeploymentGroupInfo.TargetRevision)
	assert.Equal(t, "api.zip", group.DeploymentGroupInfo.TargetRevision.S3Location.Key)

	_, err = e.codedeploy.StopDeployment(ctx, &codedeploy.StopDeploymentInput{DeploymentID: created.DeploymentID})
	assert.True(t, codedeploy.IsErrorCode(err, codedeploy.ErrCodeDeploymentAlreadyCompletedException))
}

func TestFailMarkerFailsDeployment(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	e.seedGroup(t, "api", "prod")

	created, err := e.codedeploy.CreateDeployment(ctx, &codedeploy.CreateDeploymentInput{
		ApplicationName:     "api",
		DeploymentGroupName: "prod",
		Description:         "smoke [fail]",
	})
	require.NoError(t, err)

	err = e.codedeploy.WaitUntilDeploymentSuccessful(ctx, &codedeploy.GetDeploymentInput{DeploymentID: created.DeploymentID},
		codedeploy.WithWaiterDelay(time.Millisecond))
	require.Error(t, err)
	perr := pkgerrors.As(err)
	require.NotNil(t, perr)
	assert.Equal(t, pkgerrors.CodeWaiter, perr.Code())
	info, ok := perr.Details().(*codedeploy.DeploymentInfo)
	require.True(t, ok)
	assert.Equal(t, codedeploy.DeploymentErrorCodeHookExecutionFailure, info.ErrorInformation.Code)
}

func TestStopAndListDeployments(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	e.seedGroup(t, "api", "prod")

	first, err := e.codedeploy.CreateDeployment(ctx, &codedeploy.CreateDeploymentInput{ApplicationName: "api", DeploymentGroupName: "prod"})
	require.NoError(t, err)
	second, err := e.codedeploy.CreateDeployment(ctx, &codedeploy.CreateDeploymentInput{ApplicationName: "api", DeploymentGroupName: "prod"})
	require.NoError(t, err)

	stopped, err := e.codedeploy.StopDeployment(ctx, &codedeploy.StopDeploymentInput{DeploymentID: first.DeploymentID})
	require.NoError(t, err)
	assert.Equal(t, codedeploy.StopStatusSucceeded, stopped.Status)

	list, err := e.codedeploy.ListDeployments(ctx, &codedeploy.ListDeploymentsInput{
		ApplicationName:     "api",
		DeploymentGroupName: "prod",
		IncludeOnlyStatuses: []codedeploy.DeploymentStatus{codedeploy.DeploymentStatusCreated},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{second.DeploymentID}, list.Deployments)

	_, err = e.codedeploy.ListDeployments(ctx, &codedeploy.ListDeploymentsInput{DeploymentGroupName: "prod"})
	assert.True(t, codedeploy.IsErrorCode(err, codedeploy.ErrCodeApplicationNameRequiredException))

	_, err = e.codedeploy.GetDeployment(ctx, &codedeploy.GetDeploymentInput{DeploymentID: "d-MISSING00"})
	assert.True(t, codedeploy.IsErrorCode(err, codedeploy.ErrCodeDeploymentDoesNotExistException))
}

func TestCreateDeploymentChecksReferences(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	e.seedGroup(t, "api", "prod")

	_, err := e.codedeploy.CreateDeployment(ctx, &codedeploy.CreateDeploymentInput{ApplicationName: "api", DeploymentGroupName: "qa"})
	assert.True(t, codedeploy.IsErrorCode(err, codedeploy.ErrCodeDeploymentGroupDoesNotExistException))

	_, err = e.codedeploy.CreateDeployment(ctx, &codedeploy.CreateDeploymentInput{
		ApplicationName: "api", DeploymentGroupName: "prod", DeploymentConfigName: "Custom.Nope",
	})
	assert.True(t, codedeploy.IsErrorCode(err, codedeploy.ErrCodeDeploymentConfigDoesNotExistException))
}

func TestBuiltinDeploymentConfigs(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	list, err := e.codedeploy.ListDeploymentConfigs(ctx, &codedeploy.ListDeploymentConfigsInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"CodeDeployDefault.AllAtOnce", "CodeDeployDefault.HalfAtATime", "CodeDeployDefault.OneAtATime"}, list.DeploymentConfigsList)

	got, err := e.codedeploy.GetDeploymentConfig(ctx, &codedeploy.GetDeploymentConfigInput{DeploymentConfigName: "CodeDeployDefault.HalfAtATime"})
	require.NoError(t, err)
	assert.Equal(t, &codedeploy.MinimumHealthyHosts{Type: codedeploy.MinimumHealthyHostsTypeFleetPercent, Value: 50},
		got.DeploymentConfigInfo.MinimumHealthyHosts)
}

func TestTransferKeys(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	servers, err := e.transfer.ListServers(ctx, &transfer.ListServersInput{})
	require.NoError(t, err)
	require.Len(t, servers.Servers, 1)
	assert.Equal(t, seedServerID, servers.Servers[0].ServerID)
	assert.Equal(t, "arn:aws:transfer:us-west-2:123456789012:server/"+seedServerID, servers.Servers[0].Arn)

	imported, err := e.transfer.ImportSshPublicKey(ctx, &transfer.ImportSshPublicKeyInput{
		ServerID: seedServerID, UserName: seedUserName, SSHPublicKeyBody: testKey,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^key-[0-9a-f]{17}$`, imported.SSHPublicKeyID)

	_, err = e.transfer.ImportSshPublicKey(ctx, &transfer.ImportSshPublicKeyInput{
		ServerID: seedServerID, UserName: seedUserName, SSHPublicKeyBody: testKey,
	})
	assert.True(t, transfer.IsErrorCode(err, transfer.ErrCodeResourceExistsException))

	user, err := e.transfer.DescribeUser(ctx, &transfer.DescribeUserInput{ServerID: seedServerID, UserName: seedUserName})
	require.NoError(t, err)
	require.Len(t, user.User.SSHPublicKeys, 1)

	_, err = e.transfer.DeleteSshPublicKey(ctx, &transfer.DeleteSshPublicKeyInput{
		ServerID: seedServerID, UserName: seedUserName, SSHPublicKeyID: imported.SSHPublicKeyID,
	})
	require.NoError(t, err)
	_, err = e.transfer.DeleteSshPublicKey(ctx, &transfer.DeleteSshPublicKeyInput{
		ServerID: seedServerID, UserName: seedUserName, SSHPublicKeyID: imported.SSHPublicKeyID,
	})
	assert.True(t, transfer.IsErrorCode(err, transfer.ErrCodeResourceNotFoundException))

	_, err = e.transfer.DescribeServer(ctx, &transfer.DescribeServerInput{ServerID: "s-fffffffffffffffff"})
	assert.True(t, transfer.IsErrorCode(err, transfer.ErrCodeResourceNotFoundException))
}

func TestStopAndStartServer(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	_, err := e.transfer.StopServer(ctx, &transfer.StopServerInput{ServerID: seedServerID})
	require.NoError(t, err)
	got, err := e.transfer.DescribeServer(ctx, &transfer.DescribeServerInput{ServerID: seedServerID})
	require.NoError(t, err)
	assert.Equal(t, transfer.StateOffline, got.Server.State)

	_, err = e.transfer.StartServer(ctx, &transfer.StartServerInput{ServerID: seedServerID})
	require.NoError(t, err)
	got, err = e.transfer.DescribeServer(ctx, &transfer.DescribeServerInput{ServerID: seedServerID})
	require.NoError(t, err)
	assert.Equal(t, transfer.StateOnline, got.Server.State)
}

func TestMetricsCountOperations(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	_, err := e.codedeploy.GetApplication(ctx, &codedeploy.GetApplicationInput{ApplicationName: "missing"})
	require.Error(t, err)
	_, err = e.transfer.ListServers(ctx, &transfer.ListServersInput{})
	require.NoError(t, err)

	resp, err := http.Get(e.url + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `deploykit_fake_requests_total{operation="GetApplication",service="codedeploy",status="400"} 1`)
	assert.Contains(t, string(body), `deploykit_fake_requests_total{operation="ListServers",service="transfer",status="200"} 1`)
}

func TestPaginate(t *testing.T) {
	names := []string{"a", "b", "c"}

	page, next, ok := paginate(names, "", 2)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, page)
	assert.NotEmpty(t, next)

	page, next, ok = paginate(names, next, 2)
	require.True(t, ok)
	assert.Equal(t, []string{"c"}, page)
	assert.Empty(t, next)

	_, _, ok = paginate(names, "x", 2)
	assert.False(t, ok)
	_, _, ok = paginate(names, "9", 2)
	assert.False(t, ok)
}
