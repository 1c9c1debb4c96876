package codedeploy

import "fmt"

// ApplicationRevisionSortBy orders ListApplicationRevisions results.
type ApplicationRevisionSortBy string

const (
	ApplicationRevisionSortByRegisterTime  ApplicationRevisionSortBy = "registerTime"
	ApplicationRevisionSortByFirstUsedTime ApplicationRevisionSortBy = "firstUsedTime"
	ApplicationRevisionSortByLastUsedTime  ApplicationRevisionSortBy = "lastUsedTime"
)

var validApplicationRevisionSortByValues = []ApplicationRevisionSortBy{
	ApplicationRevisionSortByRegisterTime,
	ApplicationRevisionSortByFirstUsedTime,
	ApplicationRevisionSortByLastUsedTime,
}

func (a ApplicationRevisionSortBy) String() string {
	return string(a)
}

// IsValid reports whether the value is known.
func (a ApplicationRevisionSortBy) IsValid() bool {
	for _, candidate := range validApplicationRevisionSortByValues {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseApplicationRevisionSortBy converts a wire value into an ApplicationRevisionSortBy.
func ParseApplicationRevisionSortBy(value string) (ApplicationRevisionSortBy, error) {
	for _, candidate := range validApplicationRevisionSortByValues {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid application revision sort by %q", value)
}

// AutoRollbackEvent is a condition that triggers an automatic rollback.
type AutoRollbackEvent string

const (
	AutoRollbackEventDeploymentFailure       AutoRollbackEvent = "DEPLOYMENT_FAILURE"
	AutoRollbackEventDeploymentStopOnAlarm   AutoRollbackEvent = "DEPLOYMENT_STOP_ON_ALARM"
	AutoRollbackEventDeploymentStopOnRequest AutoRollbackEvent = "DEPLOYMENT_STOP_ON_REQUEST"
)

var validAutoRollbackEvents = []AutoRollbackEvent{
	AutoRollbackEventDeploymentFailure,
	AutoRollbackEventDeploymentStopOnAlarm,
	AutoRollbackEventDeploymentStopOnRequest,
}

func (a AutoRollbackEvent) String() string {
	return string(a)
}

// IsValid reports whether the value is known.
func (a AutoRollbackEvent) IsValid() bool {
	for _, candidate := range validAutoRollbackEvents {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAutoRollbackEvent converts a wire value into an AutoRollbackEvent.
func ParseAutoRollbackEvent(value string) (AutoRollbackEvent, error) {
	for _, candidate := range validAutoRollbackEvents {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid auto rollback event %q", value)
}

// BundleType is the archive format of an S3 revision.
type BundleType string

const (
	BundleTypeTar  BundleType = "tar"
	BundleTypeTgz  BundleType = "tgz"
	BundleTypeZip  BundleType = "zip"
	BundleTypeYAML BundleType = "YAML"
	BundleTypeJSON BundleType = "JSON"
)

var validBundleTypes = []BundleType{
	BundleTypeTar,
	BundleTypeTgz,
	BundleTypeZip,
	BundleTypeYAML,
	BundleTypeJSON,
}

func (b BundleType) String() string {
	return string(b)
}

// IsValid reports whether the value is known.
func (b BundleType) IsValid() bool {
	for _, candidate := range validBundleTypes {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBundleType converts a wire value into a BundleType.
func ParseBundleType(value string) (BundleType, error) {
	for _, candidate := range validBundleTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid bundle type %q", value)
}

// ComputePlatform is the platform an application deploys to.
type ComputePlatform string

const (
	ComputePlatformServer ComputePlatform = "Server"
	ComputePlatformLambda ComputePlatform = "Lambda"
	ComputePlatformECS    ComputePlatform = "ECS"
)

var validComputePlatforms = []ComputePlatform{
	ComputePlatformServer,
	ComputePlatformLambda,
	ComputePlatformECS,
}

func (c ComputePlatform) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c ComputePlatform) IsValid() bool {
	for _, candidate := range validComputePlatforms {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseComputePlatform converts a wire value into a ComputePlatform.
func ParseComputePlatform(value string) (ComputePlatform, error) {
	for _, candidate := range validComputePlatforms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid compute platform %q", value)
}

// DeploymentCreator identifies who or what started a deployment.
type DeploymentCreator string

const (
	DeploymentCreatorUser                   DeploymentCreator = "user"
	DeploymentCreatorAutoscaling            DeploymentCreator = "autoscaling"
	DeploymentCreatorCodeDeployRollback     DeploymentCreator = "codeDeployRollback"
	DeploymentCreatorCodeDeploy             DeploymentCreator = "CodeDeploy"
	DeploymentCreatorCodeDeployAutoUpdate   DeploymentCreator = "CodeDeployAutoUpdate"
	DeploymentCreatorCloudFormation         DeploymentCreator = "CloudFormation"
	DeploymentCreatorCloudFormationRollback DeploymentCreator = "CloudFormationRollback"
)

var validDeploymentCreators = []DeploymentCreator{
	DeploymentCreatorUser,
	DeploymentCreatorAutoscaling,
	DeploymentCreatorCodeDeployRollback,
	DeploymentCreatorCodeDeploy,
	DeploymentCreatorCodeDeployAutoUpdate,
	DeploymentCreatorCloudFormation,
	DeploymentCreatorCloudFormationRollback,
}

func (d DeploymentCreator) String() string {
	return string(d)
}

// IsValid reports whether the value is known.
func (d DeploymentCreator) IsValid() bool {
	for _, candidate := range validDeploymentCreators {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeploymentCreator converts a wire value into a DeploymentCreator.
func ParseDeploymentCreator(value string) (DeploymentCreator, error) {
	for _, candidate := range validDeploymentCreators {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deployment creator %q", value)
}

// DeploymentErrorCode is the code in a deployment's ErrorInformation.
type DeploymentErrorCode string

const (
	DeploymentErrorCodeAgentIssue                              DeploymentErrorCode = "AGENT_ISSUE"
	DeploymentErrorCodeAlarmActive                             DeploymentErrorCode = "ALARM_ACTIVE"
	DeploymentErrorCodeApplicationMissing                      DeploymentErrorCode = "APPLICATION_MISSING"
	DeploymentErrorCodeAutoscalingValidationError              DeploymentErrorCode = "AUTOSCALING_VALIDATION_ERROR"
	DeploymentErrorCodeAutoScalingConfiguration                DeploymentErrorCode = "AUTO_SCALING_CONFIGURATION"
	DeploymentErrorCodeAutoScalingIamRolePermissions           DeploymentErrorCode = "AUTO_SCALING_IAM_ROLE_PERMISSIONS"
	DeploymentErrorCodeCodedeployResourceCannotBeFound         DeploymentErrorCode = "CODEDEPLOY_RESOURCE_CANNOT_BE_FOUND"
	DeploymentErrorCodeCustomerApplicationUnhealthy            DeploymentErrorCode = "CUSTOMER_APPLICATION_UNHEALTHY"
	DeploymentErrorCodeDeploymentGroupMissing                  DeploymentErrorCode = "DEPLOYMENT_GROUP_MISSING"
	DeploymentErrorCodeEcsUpdateError                          DeploymentErrorCode = "ECS_UPDATE_ERROR"
	DeploymentErrorCodeElasticLoadBalancingInvalid             DeploymentErrorCode = "ELASTIC_LOAD_BALANCING_INVALID"
	DeploymentErrorCodeElbInvalidInstance                      DeploymentErrorCode = "ELB_INVALID_INSTANCE"
	DeploymentErrorCodeHealthConstraints                       DeploymentErrorCode = "HEALTH_CONSTRAINTS"
	DeploymentErrorCodeHealthConstraintsInvalid                DeploymentErrorCode = "HEALTH_CONSTRAINTS_INVALID"
	DeploymentErrorCodeHookExecutionFailure                    DeploymentErrorCode = "HOOK_EXECUTION_FAILURE"
	DeploymentErrorCodeIamRoleMissing                          DeploymentErrorCode = "IAM_ROLE_MISSING"
	DeploymentErrorCodeIamRolePermissions                      DeploymentErrorCode = "IAM_ROLE_PERMISSIONS"
	DeploymentErrorCodeInternalError                           DeploymentErrorCode = "INTERNAL_ERROR"
	DeploymentErrorCodeInvalidEcsService                       DeploymentErrorCode = "INVALID_ECS_SERVICE"
	DeploymentErrorCodeInvalidLambdaConfiguration              DeploymentErrorCode = "INVALID_LAMBDA_CONFIGURATION"
	DeploymentErrorCodeInvalidLambdaFunction                   DeploymentErrorCode = "INVALID_LAMBDA_FUNCTION"
	DeploymentErrorCodeInvalidRevision                         DeploymentErrorCode = "INVALID_REVISION"
	DeploymentErrorCodeManualStop                              DeploymentErrorCode = "MANUAL_STOP"
	DeploymentErrorCodeMissingBlueGreenDeploymentConfiguration DeploymentErrorCode = "MISSING_BLUE_GREEN_DEPLOYMENT_CONFIGURATION"
	DeploymentErrorCodeMissingElbInformation                   DeploymentErrorCode = "MISSING_ELB_INFORMATION"
	DeploymentErrorCodeMissingGithubToken                      DeploymentErrorCode = "MISSING_GITHUB_TOKEN"
	DeploymentErrorCodeNoEc2Subscription                       DeploymentErrorCode = "NO_EC2_SUBSCRIPTION"
	DeploymentErrorCodeNoInstances                             DeploymentErrorCode = "NO_INSTANCES"
	DeploymentErrorCodeOverMaxInstances                        DeploymentErrorCode = "OVER_MAX_INSTANCES"
	DeploymentErrorCodeResourceLimitExceeded                   DeploymentErrorCode = "RESOURCE_LIMIT_EXCEEDED"
	DeploymentErrorCodeRevisionMissing                         DeploymentErrorCode = "REVISION_MISSING"
	DeploymentErrorCodeThrottled                               DeploymentErrorCode = "THROTTLED"
	DeploymentErrorCodeTimeout                                 DeploymentErrorCode = "TIMEOUT"
)

var validDeploymentErrorCodes = []DeploymentErrorCode{
	DeploymentErrorCodeAgentIssue,
	DeploymentErrorCodeAlarmActive,
	DeploymentErrorCodeApplicationMissing,
	DeploymentErrorCodeAutoscalingValidationError,
	DeploymentErrorCodeAutoScalingConfiguration,
	DeploymentErrorCodeAutoScalingIamRolePermissions,
	DeploymentErrorCodeCodedeployResourceCannotBeFound,
	DeploymentErrorCodeCustomerApplicationUnhealthy,
	DeploymentErrorCodeDeploymentGroupMissing,
	DeploymentErrorCodeEcsUpdateError,
	DeploymentErrorCodeElasticLoadBalancingInvalid,
	DeploymentErrorCodeElbInvalidInstance,
	DeploymentErrorCodeHealthConstraints,
	DeploymentErrorCodeHealthConstraintsInvalid,
	DeploymentErrorCodeHookExecutionFailure,
	DeploymentErrorCodeIamRoleMissing,
	DeploymentErrorCodeIamRolePermissions,
	DeploymentErrorCodeInternalError,
	DeploymentErrorCodeInvalidEcsService,
	DeploymentErrorCodeInvalidLambdaConfiguration,
	DeploymentErrorCodeInvalidLambdaFunction,
	DeploymentErrorCodeInvalidRevision,
	DeploymentErrorCodeManualStop,
	DeploymentErrorCodeMissingBlueGreenDeploymentConfiguration,
	DeploymentErrorCodeMissingElbInformation,
	DeploymentErrorCodeMissingGithubToken,
	DeploymentErrorCodeNoEc2Subscription,
	DeploymentErrorCodeNoInstances,
	DeploymentErrorCodeOverMaxInstances,
	DeploymentErrorCodeResourceLimitExceeded,
	DeploymentErrorCodeRevisionMissing,
	DeploymentErrorCodeThrottled,
	DeploymentErrorCodeTimeout,
}

func (d DeploymentErrorCode) String() string {
	return string(d)
}

// IsValid reports whether the value is known.
func (d DeploymentErrorCode) IsValid() bool {
	for _, candidate := range validDeploymentErrorCodes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeploymentErrorCode converts a wire value into a DeploymentErrorCode.
func ParseDeploymentErrorCode(value string) (DeploymentErrorCode, error) {
	for _, candidate := range validDeploymentErrorCodes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deployment error code %q", value)
}

// DeploymentOption selects whether traffic is routed through a load balancer.
type DeploymentOption string

const (
	DeploymentOptionWithTrafficControl    DeploymentOption = "WITH_TRAFFIC_CONTROL"
	DeploymentOptionWithoutTrafficControl DeploymentOption = "WITHOUT_TRAFFIC_CONTROL"
)

var validDeploymentOptions = []DeploymentOption{
	DeploymentOptionWithTrafficControl,
	DeploymentOptionWithoutTrafficControl,
}

func (d DeploymentOption) String() string {
	return string(d)
}

// IsValid reports whether the value is known.
func (d DeploymentOption) IsValid() bool {
	for _, candidate := range validDeploymentOptions {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeploymentOption converts a wire value into a DeploymentOption.
func ParseDeploymentOption(value string) (DeploymentOption, error) {
	for _, candidate := range validDeploymentOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deployment option %q", value)
}

// DeploymentReadyAction decides what happens when a blue/green wait times out.
type DeploymentReadyAction string

const (
	DeploymentReadyActionContinueDeployment DeploymentReadyAction = "CONTINUE_DEPLOYMENT"
	DeploymentReadyActionStopDeployment     DeploymentReadyAction = "STOP_DEPLOYMENT"
)

var validDeploymentReadyActions = []DeploymentReadyAction{
	DeploymentReadyActionContinueDeployment,
	DeploymentReadyActionStopDeployment,
}

func (d DeploymentReadyAction) String() string {
	return string(d)
}

// IsValid reports whether the value is known.
func (d DeploymentReadyAction) IsValid() bool {
	for _, candidate := range validDeploymentReadyActions {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeploymentReadyAction converts a wire value into a DeploymentReadyAction.
func ParseDeploymentReadyAction(value string) (DeploymentReadyAction, error) {
	for _, candidate := range validDeploymentReadyActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deployment ready action %q", value)
}

// DeploymentStatus is the lifecycle state of a deployment.
type DeploymentStatus string

const (
	DeploymentStatusCreated    DeploymentStatus = "Created"
	DeploymentStatusQueued     DeploymentStatus = "Queued"
	DeploymentStatusInProgress DeploymentStatus = "InProgress"
	DeploymentStatusBaking     DeploymentStatus = "Baking"
	DeploymentStatusSucceeded  DeploymentStatus = "Succeeded"
	DeploymentStatusFailed     DeploymentStatus = "Failed"
	DeploymentStatusStopped    DeploymentStatus = "Stopped"
	DeploymentStatusReady      DeploymentStatus = "Ready"
)

var validDeploymentStatuses = []DeploymentStatus{
	DeploymentStatusCreated,
	DeploymentStatusQueued,
	DeploymentStatusInProgress,
	DeploymentStatusBaking,
	DeploymentStatusSucceeded,
	DeploymentStatusFailed,
	DeploymentStatusStopped,
	DeploymentStatusReady,
}

func (d DeploymentStatus) String() string {
	return string(d)
}

// IsValid reports whether the value is known.
func (d DeploymentStatus) IsValid() bool {
	for _, candidate := range validDeploymentStatuses {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeploymentStatus converts a wire value into a DeploymentStatus.
func ParseDeploymentStatus(value string) (DeploymentStatus, error) {
	for _, candidate := range validDeploymentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deployment status %q", value)
}

// DeploymentTargetType tells which target field of a DeploymentTarget is set.
type DeploymentTargetType string

const (
	DeploymentTargetTypeInstanceTarget       DeploymentTargetType = "InstanceTarget"
	DeploymentTargetTypeLambdaTarget         DeploymentTargetType = "LambdaTarget"
	DeploymentTargetTypeECSTarget            DeploymentTargetType = "ECSTarget"
	DeploymentTargetTypeCloudFormationTarget DeploymentTargetType = "CloudFormationTarget"
)

var validDeploymentTargetTypes = []DeploymentTargetType{
	DeploymentTargetTypeInstanceTarget,
	DeploymentTargetTypeLambdaTarget,
	DeploymentTargetTypeECSTarget,
	DeploymentTargetTypeCloudFormationTarget,
}

func (d DeploymentTargetType) String() string {
	return string(d)
}

// IsValid reports whether the value is known.
func (d DeploymentTargetType) IsValid() bool {
	for _, candidate := range validDeploymentTargetTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeploymentTargetType converts a wire value into a DeploymentTargetType.
func ParseDeploymentTargetType(value string) (DeploymentTargetType, error) {
	for _, candidate := range validDeploymentTargetTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deployment target type %q", value)
}

// DeploymentType is in-place or blue/green.
type DeploymentType string

const (
	DeploymentTypeInPlace   DeploymentType = "IN_PLACE"
	DeploymentTypeBlueGreen DeploymentType = "BLUE_GREEN"
)

var validDeploymentTypes = []DeploymentType{
	DeploymentTypeInPlace,
	DeploymentTypeBlueGreen,
}

func (d DeploymentType) String() string {
	return string(d)
}

// IsValid reports whether the value is known.
func (d DeploymentType) IsValid() bool {
	for _, candidate := range validDeploymentTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeploymentType converts a wire value into a DeploymentType.
func ParseDeploymentType(value string) (DeploymentType, error) {
	for _, candidate := range validDeploymentTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deployment type %q", value)
}

// DeploymentWaitType is the wait ContinueDeployment ends.
type DeploymentWaitType string

const (
	DeploymentWaitTypeReadyWait       DeploymentWaitType = "READY_WAIT"
	DeploymentWaitTypeTerminationWait DeploymentWaitType = "TERMINATION_WAIT"
)

var validDeploymentWaitTypes = []DeploymentWaitType{
	DeploymentWaitTypeReadyWait,
	DeploymentWaitTypeTerminationWait,
}

func (d DeploymentWaitType) String() string {
	return string(d)
}

// IsValid reports whether the value is known.
func (d DeploymentWaitType) IsValid() bool {
	for _, candidate := range validDeploymentWaitTypes {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDeploymentWaitType converts a wire value into a DeploymentWaitType.
func ParseDeploymentWaitType(value string) (DeploymentWaitType, error) {
	for _, candidate := range validDeploymentWaitTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deployment wait type %q", value)
}

// EC2TagFilterType selects how an EC2 tag filter matches.
type EC2TagFilterType string

const (
	EC2TagFilterTypeKeyOnly     EC2TagFilterType = "KEY_ONLY"
	EC2TagFilterTypeValueOnly   EC2TagFilterType = "VALUE_ONLY"
	EC2TagFilterTypeKeyAndValue EC2TagFilterType = "KEY_AND_VALUE"
)

var validEC2TagFilterTypes = []EC2TagFilterType{
	EC2TagFilterTypeKeyOnly,
	EC2TagFilterTypeValueOnly,
	EC2TagFilterTypeKeyAndValue,
}

func (e EC2TagFilterType) String() string {
	return string(e)
}

// IsValid reports whether the value is known.
func (e EC2TagFilterType) IsValid() bool {
	for _, candidate := range validEC2TagFilterTypes {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEC2TagFilterType converts a wire value into an EC2TagFilterType.
func ParseEC2TagFilterType(value string) (EC2TagFilterType, error) {
	for _, candidate := range validEC2TagFilterTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ec2 tag filter type %q", value)
}

// FileExistsBehavior decides what the agent does with files already on the instance.
type FileExistsBehavior string

const (
	FileExistsBehaviorDisallow  FileExistsBehavior = "DISALLOW"
	FileExistsBehaviorOverwrite FileExistsBehavior = "OVERWRITE"
	FileExistsBehaviorRetain    FileExistsBehavior = "RETAIN"
)

var validFileExistsBehaviors = []FileExistsBehavior{
	FileExistsBehaviorDisallow,
	FileExistsBehaviorOverwrite,
	FileExistsBehaviorRetain,
}

func (f FileExistsBehavior) String() string {
	return string(f)
}

// IsValid reports whether the value is known.
func (f FileExistsBehavior) IsValid() bool {
	for _, candidate := range validFileExistsBehaviors {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseFileExistsBehavior converts a wire value into a FileExistsBehavior.
func ParseFileExistsBehavior(value string) (FileExistsBehavior, error) {
	for _, candidate := range validFileExistsBehaviors {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid file exists behavior %q", value)
}

// GreenFleetProvisioningAction decides how replacement instances are provisioned.
type GreenFleetProvisioningAction string

const (
	GreenFleetProvisioningActionDiscoverExisting     GreenFleetProvisioningAction = "DISCOVER_EXISTING"
	GreenFleetProvisioningActionCopyAutoScalingGroup GreenFleetProvisioningAction = "COPY_AUTO_SCALING_GROUP"
)

var validGreenFleetProvisioningActions = []GreenFleetProvisioningAction{
	GreenFleetProvisioningActionDiscoverExisting,
	GreenFleetProvisioningActionCopyAutoScalingGroup,
}

func (g GreenFleetProvisioningAction) String() string {
	return string(g)
}

// IsValid reports whether the value is known.
func (g GreenFleetProvisioningAction) IsValid() bool {
	for _, candidate := range validGreenFleetProvisioningActions {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGreenFleetProvisioningAction converts a wire value into a GreenFleetProvisioningAction.
func ParseGreenFleetProvisioningAction(value string) (GreenFleetProvisioningAction, error) {
	for _, candidate := range validGreenFleetProvisioningActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid green fleet provisioning action %q", value)
}

// InstanceAction decides what happens to original instances after a blue/green deployment.
type InstanceAction string

const (
	InstanceActionTerminate InstanceAction = "TERMINATE"
	InstanceActionKeepAlive InstanceAction = "KEEP_ALIVE"
)

var validInstanceActions = []InstanceAction{
	InstanceActionTerminate,
	InstanceActionKeepAlive,
}

func (i InstanceAction) String() string {
	return string(i)
}

// IsValid reports whether the value is known.
func (i InstanceAction) IsValid() bool {
	for _, candidate := range validInstanceActions {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInstanceAction converts a wire value into an InstanceAction.
func ParseInstanceAction(value string) (InstanceAction, error) {
	for _, candidate := range validInstanceActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid instance action %q", value)
}

// InstanceStatus is the per-instance deployment state. Deprecated upstream in favour of TargetStatus.
type InstanceStatus string

const (
	InstanceStatusPending    InstanceStatus = "Pending"
	InstanceStatusInProgress InstanceStatus = "InProgress"
	InstanceStatusSucceeded  InstanceStatus = "Succeeded"
	InstanceStatusFailed     InstanceStatus = "Failed"
	InstanceStatusSkipped    InstanceStatus = "Skipped"
	InstanceStatusUnknown    InstanceStatus = "Unknown"
	InstanceStatusReady      InstanceStatus = "Ready"
)

var validInstanceStatuses = []InstanceStatus{
	InstanceStatusPending,
	InstanceStatusInProgress,
	InstanceStatusSucceeded,
	InstanceStatusFailed,
	InstanceStatusSkipped,
	InstanceStatusUnknown,
	InstanceStatusReady,
}

func (i InstanceStatus) String() string {
	return string(i)
}

// IsValid reports whether the value is known.
func (i InstanceStatus) IsValid() bool {
	for _, candidate := range validInstanceStatuses {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInstanceStatus converts a wire value into an InstanceStatus.
func ParseInstanceStatus(value string) (InstanceStatus, error) {
	for _, candidate := range validInstanceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid instance status %q", value)
}

// InstanceType labels an instance as part of the blue or green fleet.
type InstanceType string

const (
	InstanceTypeBlue  InstanceType = "Blue"
	InstanceTypeGreen InstanceType = "Green"
)

var validInstanceTypes = []InstanceType{
	InstanceTypeBlue,
	InstanceTypeGreen,
}

func (i InstanceType) String() string {
	return string(i)
}

// IsValid reports whether the value is known.
func (i InstanceType) IsValid() bool {
	for _, candidate := range validInstanceTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInstanceType converts a wire value into an InstanceType.
func ParseInstanceType(value string) (InstanceType, error) {
	for _, candidate := range validInstanceTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid instance type %q", value)
}

// LifecycleErrorCode is the result of a lifecycle hook script.
type LifecycleErrorCode string

const (
	LifecycleErrorCodeSuccess             LifecycleErrorCode = "Success"
	LifecycleErrorCodeScriptMissing       LifecycleErrorCode = "ScriptMissing"
	LifecycleErrorCodeScriptNotExecutable LifecycleErrorCode = "ScriptNotExecutable"
	LifecycleErrorCodeScriptTimedOut      LifecycleErrorCode = "ScriptTimedOut"
	LifecycleErrorCodeScriptFailed        LifecycleErrorCode = "ScriptFailed"
	LifecycleErrorCodeUnknownError        LifecycleErrorCode = "UnknownError"
)

var validLifecycleErrorCodes = []LifecycleErrorCode{
	LifecycleErrorCodeSuccess,
	LifecycleErrorCodeScriptMissing,
	LifecycleErrorCodeScriptNotExecutable,
	LifecycleErrorCodeScriptTimedOut,
	LifecycleErrorCodeScriptFailed,
	LifecycleErrorCodeUnknownError,
}

func (l LifecycleErrorCode) String() string {
	return string(l)
}

// IsValid reports whether the value is known.
func (l LifecycleErrorCode) IsValid() bool {
	for _, candidate := range validLifecycleErrorCodes {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLifecycleErrorCode converts a wire value into a LifecycleErrorCode.
func ParseLifecycleErrorCode(value string) (LifecycleErrorCode, error) {
	for _, candidate := range validLifecycleErrorCodes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lifecycle error code %q", value)
}

// LifecycleEventStatus is the state of one lifecycle event.
type LifecycleEventStatus string

const (
	LifecycleEventStatusPending    LifecycleEventStatus = "Pending"
	LifecycleEventStatusInProgress LifecycleEventStatus = "InProgress"
	LifecycleEventStatusSucceeded  LifecycleEventStatus = "Succeeded"
	LifecycleEventStatusFailed     LifecycleEventStatus = "Failed"
	LifecycleEventStatusSkipped    LifecycleEventStatus = "Skipped"
	LifecycleEventStatusUnknown    LifecycleEventStatus = "Unknown"
)

var validLifecycleEventStatuses = []LifecycleEventStatus{
	LifecycleEventStatusPending,
	LifecycleEventStatusInProgress,
	LifecycleEventStatusSucceeded,
	LifecycleEventStatusFailed,
	LifecycleEventStatusSkipped,
	LifecycleEventStatusUnknown,
}

func (l LifecycleEventStatus) String() string {
	return string(l)
}

// IsValid reports whether the value is known.
func (l LifecycleEventStatus) IsValid() bool {
	for _, candidate := range validLifecycleEventStatuses {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLifecycleEventStatus converts a wire value into a LifecycleEventStatus.
func ParseLifecycleEventStatus(value string) (LifecycleEventStatus, error) {
	for _, candidate := range validLifecycleEventStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid lifecycle event status %q", value)
}

// ListStateFilterAction filters revisions by deployment state.
type ListStateFilterAction string

const (
	ListStateFilterActionInclude ListStateFilterAction = "include"
	ListStateFilterActionExclude ListStateFilterAction = "exclude"
	ListStateFilterActionIgnore  ListStateFilterAction = "ignore"
)

var validListStateFilterActions = []ListStateFilterAction{
	ListStateFilterActionInclude,
	ListStateFilterActionExclude,
	ListStateFilterActionIgnore,
}

func (l ListStateFilterAction) String() string {
	return string(l)
}

// IsValid reports whether the value is known.
func (l ListStateFilterAction) IsValid() bool {
	for _, candidate := range validListStateFilterActions {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseListStateFilterAction converts a wire value into a ListStateFilterAction.
func ParseListStateFilterAction(value string) (ListStateFilterAction, error) {
	for _, candidate := range validListStateFilterActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid list state filter action %q", value)
}

// MinimumHealthyHostsType interprets MinimumHealthyHosts.Value.
type MinimumHealthyHostsType string

const (
	MinimumHealthyHostsTypeHostCount    MinimumHealthyHostsType = "HOST_COUNT"
	MinimumHealthyHostsTypeFleetPercent MinimumHealthyHostsType = "FLEET_PERCENT"
)

var validMinimumHealthyHostsTypes = []MinimumHealthyHostsType{
	MinimumHealthyHostsTypeHostCount,
	MinimumHealthyHostsTypeFleetPercent,
}

func (m MinimumHealthyHostsType) String() string {
	return string(m)
}

// IsValid reports whether the value is known.
func (m MinimumHealthyHostsType) IsValid() bool {
	for _, candidate := range validMinimumHealthyHostsTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMinimumHealthyHostsType converts a wire value into a MinimumHealthyHostsType.
func ParseMinimumHealthyHostsType(value string) (MinimumHealthyHostsType, error) {
	for _, candidate := range validMinimumHealthyHostsTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid minimum healthy hosts type %q", value)
}

// RegistrationStatus filters on-premises instances.
type RegistrationStatus string

const (
	RegistrationStatusRegistered   RegistrationStatus = "Registered"
	RegistrationStatusDeregistered RegistrationStatus = "Deregistered"
)

var validRegistrationStatuses = []RegistrationStatus{
	RegistrationStatusRegistered,
	RegistrationStatusDeregistered,
}

func (r RegistrationStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is known.
func (r RegistrationStatus) IsValid() bool {
	for _, candidate := range validRegistrationStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRegistrationStatus converts a wire value into a RegistrationStatus.
func ParseRegistrationStatus(value string) (RegistrationStatus, error) {
	for _, candidate := range validRegistrationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid registration status %q", value)
}

// RevisionLocationType tells which location field of a RevisionLocation is set.
type RevisionLocationType string

const (
	RevisionLocationTypeS3             RevisionLocationType = "S3"
	RevisionLocationTypeGitHub         RevisionLocationType = "GitHub"
	RevisionLocationTypeString         RevisionLocationType = "String"
	RevisionLocationTypeAppSpecContent RevisionLocationType = "AppSpecContent"
)

var validRevisionLocationTypes = []RevisionLocationType{
	RevisionLocationTypeS3,
	RevisionLocationTypeGitHub,
	RevisionLocationTypeString,
	RevisionLocationTypeAppSpecContent,
}

func (r RevisionLocationType) String() string {
	return string(r)
}

// IsValid reports whether the value is known.
func (r RevisionLocationType) IsValid() bool {
	for _, candidate := range validRevisionLocationTypes {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRevisionLocationType converts a wire value into a RevisionLocationType.
func ParseRevisionLocationType(value string) (RevisionLocationType, error) {
	for _, candidate := range validRevisionLocationTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid revision location type %q", value)
}

// SortOrder is ascending or descending.
type SortOrder string

const (
	SortOrderAscending  SortOrder = "ascending"
	SortOrderDescending SortOrder = "descending"
)

var validSortOrders = []SortOrder{
	SortOrderAscending,
	SortOrderDescending,
}

func (s SortOrder) String() string {
	return string(s)
}

// IsValid reports whether the value is known.
func (s SortOrder) IsValid() bool {
	for _, candidate := range validSortOrders {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOrder converts a wire value into a SortOrder.
func ParseSortOrder(value string) (SortOrder, error) {
	for _, candidate := range validSortOrders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort order %q", value)
}

// StopStatus is the outcome of StopDeployment.
type StopStatus string

const (
	StopStatusPending   StopStatus = "Pending"
	StopStatusSucceeded StopStatus = "Succeeded"
)

var validStopStatuses = []StopStatus{
	StopStatusPending,
	StopStatusSucceeded,
}

func (s StopStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is known.
func (s StopStatus) IsValid() bool {
	for _, candidate := range validStopStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStopStatus converts a wire value into a StopStatus.
func ParseStopStatus(value string) (StopStatus, error) {
	for _, candidate := range validStopStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stop status %q", value)
}

// TagFilterType selects how an on-premises tag filter matches.
type TagFilterType string

const (
	TagFilterTypeKeyOnly     TagFilterType = "KEY_ONLY"
	TagFilterTypeValueOnly   TagFilterType = "VALUE_ONLY"
	TagFilterTypeKeyAndValue TagFilterType = "KEY_AND_VALUE"
)

var validTagFilterTypes = []TagFilterType{
	TagFilterTypeKeyOnly,
	TagFilterTypeValueOnly,
	TagFilterTypeKeyAndValue,
}

func (t TagFilterType) String() string {
	return string(t)
}

// IsValid reports whether the value is known.
func (t TagFilterType) IsValid() bool {
	for _, candidate := range validTagFilterTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTagFilterType converts a wire value into a TagFilterType.
func ParseTagFilterType(value string) (TagFilterType, error) {
	for _, candidate := range validTagFilterTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tag filter type %q", value)
}

// TargetFilterName is a key of ListDeploymentTargets filters.
type TargetFilterName string

const (
	TargetFilterNameTargetStatus        TargetFilterName = "TargetStatus"
	TargetFilterNameServerInstanceLabel TargetFilterName = "ServerInstanceLabel"
)

var validTargetFilterNames = []TargetFilterName{
	TargetFilterNameTargetStatus,
	TargetFilterNameServerInstanceLabel,
}

func (t TargetFilterName) String() string {
	return string(t)
}

// IsValid reports whether the value is known.
func (t TargetFilterName) IsValid() bool {
	for _, candidate := range validTargetFilterNames {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTargetFilterName converts a wire value into a TargetFilterName.
func ParseTargetFilterName(value string) (TargetFilterName, error) {
	for _, candidate := range validTargetFilterNames {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid target filter name %q", value)
}

// TargetLabel labels a target as blue or green.
type TargetLabel string

const (
	TargetLabelBlue  TargetLabel = "Blue"
	TargetLabelGreen TargetLabel = "Green"
)

var validTargetLabels = []TargetLabel{
	TargetLabelBlue,
	TargetLabelGreen,
}

func (t TargetLabel) String() string {
	return string(t)
}

// IsValid reports whether the value is known.
func (t TargetLabel) IsValid() bool {
	for _, candidate := range validTargetLabels {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTargetLabel converts a wire value into a TargetLabel.
func ParseTargetLabel(value string) (TargetLabel, error) {
	for _, candidate := range validTargetLabels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid target label %q", value)
}

// TargetStatus is the deployment state of a target.
type TargetStatus string

const (
	TargetStatusPending    TargetStatus = "Pending"
	TargetStatusInProgress TargetStatus = "InProgress"
	TargetStatusSucceeded  TargetStatus = "Succeeded"
	TargetStatusFailed     TargetStatus = "Failed"
	TargetStatusSkipped    TargetStatus = "Skipped"
	TargetStatusUnknown    TargetStatus = "Unknown"
	TargetStatusReady      TargetStatus = "Ready"
)

var validTargetStatuses = []TargetStatus{
	TargetStatusPending,
	TargetStatusInProgress,
	TargetStatusSucceeded,
	TargetStatusFailed,
	TargetStatusSkipped,
	TargetStatusUnknown,
	TargetStatusReady,
}

func (t TargetStatus) String() string {
	return string(t)
}

// IsValid reports whether the value is known.
func (t TargetStatus) IsValid() bool {
	for _, candidate := range validTargetStatuses {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTargetStatus converts a wire value into a TargetStatus.
func ParseTargetStatus(value string) (TargetStatus, error) {
	for _, candidate := range validTargetStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid target status %q", value)
}

// TrafficRoutingType selects how traffic shifts to the new version.
type TrafficRoutingType string

const (
	TrafficRoutingTypeTimeBasedCanary TrafficRoutingType = "TimeBasedCanary"
	TrafficRoutingTypeTimeBasedLinear TrafficRoutingType = "TimeBasedLinear"
	TrafficRoutingTypeAllAtOnce       TrafficRoutingType = "AllAtOnce"
)

var validTrafficRoutingTypes = []TrafficRoutingType{
	TrafficRoutingTypeTimeBasedCanary,
	TrafficRoutingTypeTimeBasedLinear,
	TrafficRoutingTypeAllAtOnce,
}

func (t TrafficRoutingType) String() string {
	return string(t)
}

// IsValid reports whether the value is known.
func (t TrafficRoutingType) IsValid() bool {
	for _, candidate := range validTrafficRoutingTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTrafficRoutingType converts a wire value into a TrafficRoutingType.
func ParseTrafficRoutingType(value string) (TrafficRoutingType, error) {
	for _, candidate := range validTrafficRoutingTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid traffic routing type %q", value)
}

// TriggerEventType is an event that fires a notification trigger.
type TriggerEventType string

const (
	TriggerEventTypeDeploymentStart    TriggerEventType = "DeploymentStart"
	TriggerEventTypeDeploymentSuccess  TriggerEventType = "DeploymentSuccess"
	TriggerEventTypeDeploymentFailure  TriggerEventType = "DeploymentFailure"
	TriggerEventTypeDeploymentStop     TriggerEventType = "DeploymentStop"
	TriggerEventTypeDeploymentRollback TriggerEventType = "DeploymentRollback"
	TriggerEventTypeDeploymentReady    TriggerEventType = "DeploymentReady"
	TriggerEventTypeInstanceStart      TriggerEventType = "InstanceStart"
	TriggerEventTypeInstanceSuccess    TriggerEventType = "InstanceSuccess"
	TriggerEventTypeInstanceFailure    TriggerEventType = "InstanceFailure"
	TriggerEventTypeInstanceReady      TriggerEventType = "InstanceReady"
)

var validTriggerEventTypes = []TriggerEventType{
	TriggerEventTypeDeploymentStart,
	TriggerEventTypeDeploymentSuccess,
	TriggerEventTypeDeploymentFailure,
	TriggerEventTypeDeploymentStop,
	TriggerEventTypeDeploymentRollback,
	TriggerEventTypeDeploymentReady,
	TriggerEventTypeInstanceStart,
	TriggerEventTypeInstanceSuccess,
	TriggerEventTypeInstanceFailure,
	TriggerEventTypeInstanceReady,
}

func (t TriggerEventType) String() string {
	return string(t)
}

// IsValid reports whether the value is known.
func (t TriggerEventType) IsValid() bool {
	for _, candidate := range validTriggerEventTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTriggerEventType converts a wire value into a TriggerEventType.
func ParseTriggerEventType(value string) (TriggerEventType, error) {
	for _, candidate := range validTriggerEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid trigger event type %q", value)
}
