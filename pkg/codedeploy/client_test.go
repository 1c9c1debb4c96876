package codedeploy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/codedeploy-go/internal/fakeaws"
	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
)

func newTestClient(t *testing.T, srv *fakeaws.Server, opts ...awsjson.Option) *Client {
	t.Helper()
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	base := []awsjson.Option{
		awsjson.WithEndpoint(ts.URL),
		awsjson.WithCredentialsProvider(credentials.NewStaticCredentials("AKIDTEST", "secret", "")),
	}
	client, err := New(awsjson.Config{}, append(base, opts...)...)
	require.NoError(t, err)
	return client
}

func TestNewDefaultsToRegionalEndpoint(t *testing.T) {
	client, err := New(awsjson.Config{Credentials: credentials.AnonymousCredentials})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", client.Region())
	assert.Equal(t, "https://codedeploy.us-east-1.amazonaws.com", client.Endpoint())

	client, err = New(awsjson.Config{Credentials: credentials.AnonymousCredentials}, awsjson.WithRegion("cn-north-1"))
	require.NoError(t, err)
	assert.Equal(t, "https://codedeploy.cn-north-1.amazonaws.com.cn", client.Endpoint())
}

func TestApplicationDoesNotExist(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "GetApplication", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Fail(http.StatusBadRequest, "ApplicationDoesNotExistException", "no such app")
	})
	client := newTestClient(t, srv)

	out, err := client.GetApplication(context.Background(), &GetApplicationInput{ApplicationName: "missing"})
	require.Error(t, err)
	assert.Nil(t, out)

	code, ok := ErrorCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrCodeApplicationDoesNotExistException, code)
	assert.True(t, IsErrorCode(err, ErrCodeApplicationDoesNotExistException))

	svcErr := pkgerrors.AsService(err)
	require.NotNil(t, svcErr)
	assert.Equal(t, "no such app", svcErr.Message)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, ServiceName, svcErr.Service)
	assert.NotEmpty(t, svcErr.RequestID)
}

func TestEveryRegisteredCodeDecodes(t *testing.T) {
	var current ErrorCode
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "ListApplications", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Fail(http.StatusBadRequest, "com.amazonaws.codedeploy#"+string(current), "boom")
	})
	client := newTestClient(t, srv)

	require.Len(t, errorCodes, 109)
	for _, code := range errorCodes {
		current = code
		_, err := client.ListApplications(context.Background(), &ListApplicationsInput{})
		got, ok := ErrorCodeOf(err)
		require.True(t, ok, code)
		assert.Equal(t, code, got)
		assert.True(t, code.IsValid())
	}
}

func TestUnregisteredCodeFallsBack(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "ListApplications", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Fail(http.StatusInternalServerError, "SomethingNewException", "surprise")
	})
	client := newTestClient(t, srv)

	_, err := client.ListApplications(context.Background(), nil)
	_, ok := ErrorCodeOf(err)
	assert.False(t, ok)

	svcErr := pkgerrors.AsService(err)
	require.NotNil(t, svcErr)
	assert.False(t, svcErr.Known())
	assert.Equal(t, "SomethingNewException", svcErr.Type)
	assert.Equal(t, "surprise", svcErr.Message)
	assert.True(t, svcErr.ServerFault())
	assert.False(t, ErrorCode("SomethingNewException").IsValid())
}

func TestErrorCodeOfIgnoresClientErrors(t *testing.T) {
	_, ok := ErrorCodeOf(pkgerrors.New(pkgerrors.CodeTransport, "down"))
	assert.False(t, ok)
	_, ok = ErrorCodeOf(pkgerrors.NewServiceError("transfer", "ApplicationDoesNotExistException", "x", 400, ""))
	assert.False(t, ok)
}

func TestCreateDeploymentWireFormat(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "CreateDeployment", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Respond(http.StatusOK, map[string]string{"deploymentId": "d-ABCDEF123"})
	})
	client := newTestClient(t, srv)

	out, err := client.CreateDeployment(context.Background(), &CreateDeploymentInput{
		ApplicationName:     "web",
		DeploymentGroupName: "prod",
		Revision: &RevisionLocation{
			RevisionType: RevisionLocationTypeS3,
			S3Location: &S3Location{
				Bucket:     "artifacts",
				Key:        "web.zip",
				BundleType: BundleTypeZip,
			},
		},
		IgnoreApplicationStopFailures: aws.Bool(true),
		FileExistsBehavior:            FileExistsBehaviorOverwrite,
		AutoRollbackConfiguration: &AutoRollbackConfiguration{
			Enabled: aws.Bool(true),
			Events:  []AutoRollbackEvent{AutoRollbackEventDeploymentFailure},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "d-ABCDEF123", out.DeploymentID)

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "CodeDeploy_20141006.CreateDeployment", last.Header.Get("X-Amz-Target"))
	assert.JSONEq(t, `{
		"applicationName": "web",
		"deploymentGroupName": "prod",
		"revision": {
			"revisionType": "S3",
			"s3Location": {"bucket": "artifacts", "key": "web.zip", "bundleType": "zip"}
		},
		"ignoreApplicationStopFailures": true,
		"autoRollbackConfiguration": {"enabled": true, "events": ["DEPLOYMENT_FAILURE"]},
		"fileExistsBehavior": "OVERWRITE"
	}`, string(last.Body))
}

func TestGetDeploymentDecodesTimestamps(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "GetDeployment", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Respond(http.StatusOK, json.RawMessage(`{
			"deploymentInfo": {
				"deploymentId": "d-1",
				"applicationName": "web",
				"status": "Failed",
				"createTime": 1700000000.5,
				"errorInformation": {"code": "HEALTH_CONSTRAINTS", "message": "too many failed"},
				"deploymentOverview": {"Pending": 0, "InProgress": 0, "Succeeded": 2, "Failed": 3, "Skipped": 0, "Ready": 0},
				"creator": "user"
			}
		}`))
	})
	client := newTestClient(t, srv)

	out, err := client.GetDeployment(context.Background(), &GetDeploymentInput{DeploymentID: "d-1"})
	require.NoError(t, err)
	info := out.DeploymentInfo
	require.NotNil(t, info)
	assert.Equal(t, DeploymentStatusFailed, info.Status)
	assert.Equal(t, DeploymentCreatorUser, info.Creator)
	require.NotNil(t, info.CreateTime)
	assert.Equal(t, time.Unix(1700000000, 500*int64(time.Millisecond)).UTC(), info.CreateTime.UTC())
	require.NotNil(t, info.ErrorInformation)
	assert.Equal(t, DeploymentErrorCodeHealthConstraints, info.ErrorInformation.Code)
	assert.Equal(t, int64(3), info.DeploymentOverview.Failed)
}

func TestVoidOperationReturnsEmptyOutput(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "DeleteApplication", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Response{Status: http.StatusOK, Body: json.RawMessage(``)}
	})
	client := newTestClient(t, srv)

	out, err := client.DeleteApplication(context.Background(), &DeleteApplicationInput{ApplicationName: "web"})
	require.NoError(t, err)
	assert.Equal(t, &DeleteApplicationOutput{}, out)
}

func TestDeleteResourcesByExternalIDTarget(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "DeleteResourcesByExternalId", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Respond(http.StatusOK, nil)
	})
	client := newTestClient(t, srv)

	_, err := client.DeleteResourcesByExternalID(context.Background(), &DeleteResourcesByExternalIDInput{ExternalID: "stack-1"})
	require.NoError(t, err)
	last, _ := srv.LastRequest()
	assert.JSONEq(t, `{"externalId":"stack-1"}`, string(last.Body))
}

func TestListDeploymentTargetsFilterKeys(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "ListDeploymentTargets", func(req fakeaws.Request) fakeaws.Response {
		var in ListDeploymentTargetsInput
		require.NoError(t, req.Decode(&in))
		return fakeaws.Respond(http.StatusOK, ListDeploymentTargetsOutput{TargetIDs: in.TargetFilters[TargetFilterNameTargetStatus]})
	})
	client := newTestClient(t, srv)

	out, err := client.ListDeploymentTargets(context.Background(), &ListDeploymentTargetsInput{
		DeploymentID:  "d-1",
		TargetFilters: map[TargetFilterName][]string{TargetFilterNameTargetStatus: {"Failed"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Failed"}, out.TargetIDs)
	last, _ := srv.LastRequest()
	assert.JSONEq(t, `{"deploymentId":"d-1","targetFilters":{"TargetStatus":["Failed"]}}`, string(last.Body))
}

func TestTagOperationsUsePascalCase(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "TagResource", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Respond(http.StatusOK, nil)
	})
	client := newTestClient(t, srv)

	_, err := client.TagResource(context.Background(), &TagResourceInput{
		ResourceArn: "arn:aws:codedeploy:us-east-1:123456789012:application:web",
		Tags:        []Tag{{Key: "team", Value: "platform"}},
	})
	require.NoError(t, err)
	last, _ := srv.LastRequest()
	assert.JSONEq(t, `{"ResourceArn":"arn:aws:codedeploy:us-east-1:123456789012:application:web","Tags":[{"Key":"team","Value":"platform"}]}`, string(last.Body))
}

func TestValidationRejectsBadInput(t *testing.T) {
	srv := fakeaws.New(nil)
	client := newTestClient(t, srv, awsjson.WithValidation(true))

	_, err := client.CreateApplication(context.Background(), &CreateApplicationInput{
		ComputePlatform: ComputePlatform("Mainframe"),
	})
	require.Error(t, err)
	clientErr := pkgerrors.As(err)
	require.NotNil(t, clientErr)
	assert.Equal(t, pkgerrors.CodeValidation, clientErr.Code())
	details, ok := clientErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "applicationName")
	assert.Contains(t, details, "computePlatform")
	assert.Empty(t, srv.Requests())
}

func TestValidationDisabledByDefault(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "CreateApplication", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Fail(http.StatusBadRequest, "ApplicationNameRequiredException", "name required")
	})
	client := newTestClient(t, srv)

	_, err := client.CreateApplication(context.Background(), &CreateApplicationInput{})
	assert.True(t, IsErrorCode(err, ErrCodeApplicationNameRequiredException))
	assert.Len(t, srv.Requests(), 1)
}

func TestResponseMetadataRecorded(t *testing.T) {
	srv := fakeaws.New(nil)
	srv.HandleOperation(TargetPrefix, "ListApplications", func(fakeaws.Request) fakeaws.Response {
		return fakeaws.Respond(http.StatusOK, ListApplicationsOutput{Applications: []string{"web"}})
	})
	client := newTestClient(t, srv)

	var meta awsjson.ResponseMetadata
	_, err := client.ListApplications(context.Background(), nil, awsjson.CaptureMetadata(&meta))
	require.NoError(t, err)
	assert.Equal(t, "ListApplications", meta.Operation)
	assert.NotEmpty(t, meta.RequestID)

	stored, ok, err := client.ResponseMetadata(context.Background(), meta.InvocationID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, meta.RequestID, stored.RequestID)
}

func TestEveryOperationTargetsItsWireName(t *testing.T) {
	ctx := context.Background()
	calls := []struct {
		wire string
		call func(*Client) error
	}{
		{"CreateApplication", func(c *Client) error { _, err := c.CreateApplication(ctx, &CreateApplicationInput{}); return err }},
		{"DeleteApplication", func(c *Client) error { _, err := c.DeleteApplication(ctx, &DeleteApplicationInput{}); return err }},
		{"GetApplication", func(c *Client) error { _, err := c.GetApplication(ctx, &GetApplicationInput{}); return err }},
		{"BatchGetApplications", func(c *Client) error { _, err := c.BatchGetApplications(ctx, &BatchGetApplicationsInput{}); return err }},
		{"ListApplications", func(c *Client) error { _, err := c.ListApplications(ctx, &ListApplicationsInput{}); return err }},
		{"UpdateApplication", func(c *Client) error { _, err := c.UpdateApplication(ctx, &UpdateApplicationInput{}); return err }},
		{"CreateDeploymentConfig", func(c *Client) error { _, err := c.CreateDeploymentConfig(ctx, &CreateDeploymentConfigInput{}); return err }},
		{"DeleteDeploymentConfig", func(c *Client) error { _, err := c.DeleteDeploymentConfig(ctx, &DeleteDeploymentConfigInput{}); return err }},
		{"GetDeploymentConfig", func(c *Client) error { _, err := c.GetDeploymentConfig(ctx, &GetDeploymentConfigInput{}); return err }},
		{"ListDeploymentConfigs", func(c *Client) error { _, err := c.ListDeploymentConfigs(ctx, &ListDeploymentConfigsInput{}); return err }},
		{"CreateDeploymentGroup", func(c *Client) error { _, err := c.CreateDeploymentGroup(ctx, &CreateDeploymentGroupInput{}); return err }},
		{"DeleteDeploymentGroup", func(c *Client) error { _, err := c.DeleteDeploymentGroup(ctx, &DeleteDeploymentGroupInput{}); return err }},
		{"GetDeploymentGroup", func(c *Client) error { _, err := c.GetDeploymentGroup(ctx, &GetDeploymentGroupInput{}); return err }},
		{"BatchGetDeploymentGroups", func(c *Client) error { _, err := c.BatchGetDeploymentGroups(ctx, &BatchGetDeploymentGroupsInput{}); return err }},
		{"ListDeploymentGroups", func(c *Client) error { _, err := c.ListDeploymentGroups(ctx, &ListDeploymentGroupsInput{}); return err }},
		{"UpdateDeploymentGroup", func(c *Client) error { _, err := c.UpdateDeploymentGroup(ctx, &UpdateDeploymentGroupInput{}); return err }},
		{"CreateDeployment", func(c *Client) error { _, err := c.CreateDeployment(ctx, &CreateDeploymentInput{}); return err }},
		{"GetDeployment", func(c *Client) error { _, err := c.GetDeployment(ctx, &GetDeploymentInput{}); return err }},
		{"BatchGetDeployments", func(c *Client) error { _, err := c.BatchGetDeployments(ctx, &BatchGetDeploymentsInput{}); return err }},
		{"ListDeployments", func(c *Client) error { _, err := c.ListDeployments(ctx, &ListDeploymentsInput{}); return err }},
		{"StopDeployment", func(c *Client) error { _, err := c.StopDeployment(ctx, &StopDeploymentInput{}); return err }},
		{"ContinueDeployment", func(c *Client) error { _, err := c.ContinueDeployment(ctx, &ContinueDeploymentInput{}); return err }},
		{"SkipWaitTimeForInstanceTermination", func(c *Client) error { _, err := c.SkipWaitTimeForInstanceTermination(ctx, &SkipWaitTimeForInstanceTerminationInput{}); return err }},
		{"PutLifecycleEventHookExecutionStatus", func(c *Client) error { _, err := c.PutLifecycleEventHookExecutionStatus(ctx, &PutLifecycleEventHookExecutionStatusInput{}); return err }},
		{"DeleteResourcesByExternalId", func(c *Client) error { _, err := c.DeleteResourcesByExternalID(ctx, &DeleteResourcesByExternalIDInput{}); return err }},
		{"BatchGetDeploymentInstances", func(c *Client) error { _, err := c.BatchGetDeploymentInstances(ctx, &BatchGetDeploymentInstancesInput{}); return err }},
		{"GetDeploymentInstance", func(c *Client) error { _, err := c.GetDeploymentInstance(ctx, &GetDeploymentInstanceInput{}); return err }},
		{"ListDeploymentInstances", func(c *Client) error { _, err := c.ListDeploymentInstances(ctx, &ListDeploymentInstancesInput{}); return err }},
		{"BatchGetDeploymentTargets", func(c *Client) error { _, err := c.BatchGetDeploymentTargets(ctx, &BatchGetDeploymentTargetsInput{}); return err }},
		{"GetDeploymentTarget", func(c *Client) error { _, err := c.GetDeploymentTarget(ctx, &GetDeploymentTargetInput{}); return err }},
		{"ListDeploymentTargets", func(c *Client) error { _, err := c.ListDeploymentTargets(ctx, &ListDeploymentTargetsInput{}); return err }},
		{"RegisterOnPremisesInstance", func(c *Client) error { _, err := c.RegisterOnPremisesInstance(ctx, &RegisterOnPremisesInstanceInput{}); return err }},
		{"DeregisterOnPremisesInstance", func(c *Client) error { _, err := c.DeregisterOnPremisesInstance(ctx, &DeregisterOnPremisesInstanceInput{}); return err }},
		{"GetOnPremisesInstance", func(c *Client) error { _, err := c.GetOnPremisesInstance(ctx, &GetOnPremisesInstanceInput{}); return err }},
		{"BatchGetOnPremisesInstances", func(c *Client) error { _, err := c.BatchGetOnPremisesInstances(ctx, &BatchGetOnPremisesInstancesInput{}); return err }},
		{"ListOnPremisesInstances", func(c *Client) error { _, err := c.ListOnPremisesInstances(ctx, &ListOnPremisesInstancesInput{}); return err }},
		{"AddTagsToOnPremisesInstances", func(c *Client) error { _, err := c.AddTagsToOnPremisesInstances(ctx, &AddTagsToOnPremisesInstancesInput{}); return err }},
		{"RemoveTagsFromOnPremisesInstances", func(c *Client) error { _, err := c.RemoveTagsFromOnPremisesInstances(ctx, &RemoveTagsFromOnPremisesInstancesInput{}); return err }},
		{"BatchGetApplicationRevisions", func(c *Client) error { _, err := c.BatchGetApplicationRevisions(ctx, &BatchGetApplicationRevisionsInput{}); return err }},
		{"GetApplicationRevision", func(c *Client) error { _, err := c.GetApplicationRevision(ctx, &GetApplicationRevisionInput{}); return err }},
		{"ListApplicationRevisions", func(c *Client) error { _, err := c.ListApplicationRevisions(ctx, &ListApplicationRevisionsInput{}); return err }},
		{"RegisterApplicationRevision", func(c *Client) error { _, err := c.RegisterApplicationRevision(ctx, &RegisterApplicationRevisionInput{}); return err }},
		{"TagResource", func(c *Client) error { _, err := c.TagResource(ctx, &TagResourceInput{}); return err }},
		{"UntagResource", func(c *Client) error { _, err := c.UntagResource(ctx, &UntagResourceInput{}); return err }},
		{"ListTagsForResource", func(c *Client) error { _, err := c.ListTagsForResource(ctx, &ListTagsForResourceInput{}); return err }},
		{"DeleteGitHubAccountToken", func(c *Client) error { _, err := c.DeleteGitHubAccountToken(ctx, &DeleteGitHubAccountTokenInput{}); return err }},
		{"ListGitHubAccountTokenNames", func(c *Client) error { _, err := c.ListGitHubAccountTokenNames(ctx, &ListGitHubAccountTokenNamesInput{}); return err }},
	}
	require.Len(t, calls, 47)

	srv := fakeaws.New(nil)
	for _, tc := range calls {
		srv.HandleOperation(TargetPrefix, tc.wire, func(fakeaws.Request) fakeaws.Response {
			return fakeaws.Respond(http.StatusOK, nil)
		})
	}
	client := newTestClient(t, srv)

	for _, tc := range calls {
		tc := tc
		t.Run(tc.wire, func(t *testing.T) {
			require.NoError(t, tc.call(client))
			last, ok := srv.LastRequest()
			require.True(t, ok)
			assert.Equal(t, TargetPrefix+"."+tc.wire, last.Target)
		})
	}
}
