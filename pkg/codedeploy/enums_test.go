package codedeploy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumCase struct {
	name  string
	check func(t *testing.T)
}

type wireEnum interface {
	~string
	IsValid() bool
}

func roundTrip[T wireEnum](values []T, parse func(string) (T, error)) func(t *testing.T) {
	return func(t *testing.T) {
		require.NotEmpty(t, values)
		seen := map[T]bool{}
		for _, value := range values {
			assert.False(t, seen[value], "duplicate %q", value)
			seen[value] = true
			assert.True(t, value.IsValid())
			parsed, err := parse(string(value))
			require.NoError(t, err)
			assert.Equal(t, value, parsed)
		}
		_, err := parse("not-a-real-value")
		assert.Error(t, err)
		assert.False(t, T("not-a-real-value").IsValid())
	}
}

func TestEnumsRoundTrip(t *testing.T) {
	cases := []enumCase{
		{"ApplicationRevisionSortBy", roundTrip(validApplicationRevisionSortByValues, ParseApplicationRevisionSortBy)},
		{"AutoRollbackEvent", roundTrip(validAutoRollbackEvents, ParseAutoRollbackEvent)},
		{"BundleType", roundTrip(validBundleTypes, ParseBundleType)},
		{"ComputePlatform", roundTrip(validComputePlatforms, ParseComputePlatform)},
		{"DeploymentCreator", roundTrip(validDeploymentCreators, ParseDeploymentCreator)},
		{"DeploymentErrorCode", roundTrip(validDeploymentErrorCodes, ParseDeploymentErrorCode)},
		{"DeploymentOption", roundTrip(validDeploymentOptions, ParseDeploymentOption)},
		{"DeploymentReadyAction", roundTrip(validDeploymentReadyActions, ParseDeploymentReadyAction)},
		{"DeploymentStatus", roundTrip(validDeploymentStatuses, ParseDeploymentStatus)},
		{"DeploymentTargetType", roundTrip(validDeploymentTargetTypes, ParseDeploymentTargetType)},
		{"DeploymentType", roundTrip(validDeploymentTypes, ParseDeploymentType)},
		{"DeploymentWaitType", roundTrip(validDeploymentWaitTypes, ParseDeploymentWaitType)},
		{"EC2TagFilterType", roundTrip(validEC2TagFilterTypes, ParseEC2TagFilterType)},
		{"FileExistsBehavior", roundTrip(validFileExistsBehaviors, ParseFileExistsBehavior)},
		{"GreenFleetProvisioningAction", roundTrip(validGreenFleetProvisioningActions, ParseGreenFleetProvisioningAction)},
		{"InstanceAction", roundTrip(validInstanceActions, ParseInstanceAction)},
		{"InstanceStatus", roundTrip(validInstanceStatuses, ParseInstanceStatus)},
		{"InstanceType", roundTrip(validInstanceTypes, ParseInstanceType)},
		{"LifecycleErrorCode", roundTrip(validLifecycleErrorCodes, ParseLifecycleErrorCode)},
		{"LifecycleEventStatus", roundTrip(validLifecycleEventStatuses, ParseLifecycleEventStatus)},
		{"ListStateFilterAction", roundTrip(validListStateFilterActions, ParseListStateFilterAction)},
		{"MinimumHealthyHostsType", roundTrip(validMinimumHealthyHostsTypes, ParseMinimumHealthyHostsType)},
		{"RegistrationStatus", roundTrip(validRegistrationStatuses, ParseRegistrationStatus)},
		{"RevisionLocationType", roundTrip(validRevisionLocationTypes, ParseRevisionLocationType)},
		{"SortOrder", roundTrip(validSortOrders, ParseSortOrder)},
		{"StopStatus", roundTrip(validStopStatuses, ParseStopStatus)},
		{"TagFilterType", roundTrip(validTagFilterTypes, ParseTagFilterType)},
		{"TargetFilterName", roundTrip(validTargetFilterNames, ParseTargetFilterName)},
		{"TargetLabel", roundTrip(validTargetLabels, ParseTargetLabel)},
		{"TargetStatus", roundTrip(validTargetStatuses, ParseTargetStatus)},
		{"TrafficRoutingType", roundTrip(validTrafficRoutingTypes, ParseTrafficRoutingType)},
		{"TriggerEventType", roundTrip(validTriggerEventTypes, ParseTriggerEventType)},
	}
	require.Len(t, cases, 32)
	for _, tc := range cases {
		t.Run(tc.name, tc.check)
	}
}

func TestParseIsCaseSensitive(t *testing.T) {
	_, err := ParseDeploymentStatus("succeeded")
	assert.Error(t, err)
	status, err := ParseDeploymentStatus("Succeeded")
	require.NoError(t, err)
	assert.Equal(t, DeploymentStatusSucceeded, status)
	assert.Equal(t, "Succeeded", status.String())
}
