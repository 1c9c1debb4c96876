package codedeploy

import "github.com/angelmondragon/codedeploy-go/pkg/awsjson"

// Tag is a key/value pair attached to a resource.
type Tag struct {
	Key   string `json:"Key,omitempty" validate:"max=128"`
	Value string `json:"Value,omitempty" validate:"max=256"`
}

// TagFilter matches on-premises instances by tag.
type TagFilter struct {
	Key   string        `json:"Key,omitempty"`
	Value string        `json:"Value,omitempty"`
	Type  TagFilterType `json:"Type,omitempty" validate:"enum"`
}

// EC2TagFilter matches EC2 instances by tag.
type EC2TagFilter struct {
	Key   string           `json:"Key,omitempty"`
	Value string           `json:"Value,omitempty"`
	Type  EC2TagFilterType `json:"Type,omitempty" validate:"enum"`
}

// EC2TagSet is a list of tag groups; an instance must match one filter in
// every group.
type EC2TagSet struct {
	EC2TagSetList [][]EC2TagFilter `json:"ec2TagSetList,omitempty" validate:"max=3"`
}

type OnPremisesTagSet struct {
	OnPremisesTagSetList [][]TagFilter `json:"onPremisesTagSetList,omitempty" validate:"max=3"`
}

// RevisionLocation points at an application revision. RevisionType selects
// which of the location fields is meaningful.
type RevisionLocation struct {
	RevisionType   RevisionLocationType `json:"revisionType,omitempty" validate:"enum"`
	S3Location     *S3Location          `json:"s3Location,omitempty"`
	GitHubLocation *GitHubLocation      `json:"gitHubLocation,omitempty"`
	String         *RawString           `json:"string,omitempty"`
	AppSpecContent *AppSpecContent      `json:"appSpecContent,omitempty"`
}

type S3Location struct {
	Bucket     string     `json:"bucket,omitempty"`
	Key        string     `json:"key,omitempty"`
	BundleType BundleType `json:"bundleType,omitempty" validate:"enum"`
	Version    string     `json:"version,omitempty"`
	ETag       string     `json:"eTag,omitempty"`
}

type GitHubLocation struct {
	Repository string `json:"repository,omitempty"`
	CommitID   string `json:"commitId,omitempty"`
}

// RawString is an inline AppSpec. Deprecated upstream in favour of AppSpecContent.
type RawString struct {
	Content string `json:"content,omitempty"`
	Sha256  string `json:"sha256,omitempty"`
}

type AppSpecContent struct {
	Content string `json:"content,omitempty"`
	Sha256  string `json:"sha256,omitempty"`
}

type GenericRevisionInfo struct {
	Description      string             `json:"description,omitempty"`
	DeploymentGroups []string           `json:"deploymentGroups,omitempty"`
	FirstUsedTime    *awsjson.Timestamp `json:"firstUsedTime,omitempty"`
	LastUsedTime     *awsjson.Timestamp `json:"lastUsedTime,omitempty"`
	RegisterTime     *awsjson.Timestamp `json:"registerTime,omitempty"`
}

type RevisionInfo struct {
	RevisionLocation    *RevisionLocation    `json:"revisionLocation,omitempty"`
	GenericRevisionInfo *GenericRevisionInfo `json:"genericRevisionInfo,omitempty"`
}

type ApplicationInfo struct {
	ApplicationID     string             `json:"applicationId,omitempty"`
	ApplicationName   string             `json:"applicationName,omitempty"`
	CreateTime        *awsjson.Timestamp `json:"createTime,omitempty"`
	LinkedToGitHub    *bool              `json:"linkedToGitHub,omitempty"`
	GitHubAccountName string             `json:"gitHubAccountName,omitempty"`
	ComputePlatform   ComputePlatform    `json:"computePlatform,omitempty"`
}

type Alarm struct {
	Name string `json:"name,omitempty"`
}

type AlarmConfiguration struct {
	Enabled                *bool   `json:"enabled,omitempty"`
	IgnorePollAlarmFailure *bool   `json:"ignorePollAlarmFailure,omitempty"`
	Alarms                 []Alarm `json:"alarms,omitempty" validate:"max=10"`
}

type AutoRollbackConfiguration struct {
	Enabled *bool               `json:"enabled,omitempty"`
	Events  []AutoRollbackEvent `json:"events,omitempty" validate:"dive,enum"`
}

type DeploymentStyle struct {
	DeploymentType   DeploymentType   `json:"deploymentType,omitempty" validate:"enum"`
	DeploymentOption DeploymentOption `json:"deploymentOption,omitempty" validate:"enum"`
}

type BlueInstanceTerminationOption struct {
	Action                       InstanceAction `json:"action,omitempty" validate:"enum"`
	TerminationWaitTimeInMinutes *int64         `json:"terminationWaitTimeInMinutes,omitempty" validate:"omitempty,gte=0,lte=2880"`
}

type DeploymentReadyOption struct {
	ActionOnTimeout   DeploymentReadyAction `json:"actionOnTimeout,omitempty" validate:"enum"`
	WaitTimeInMinutes *int64                `json:"waitTimeInMinutes,omitempty"`
}

type GreenFleetProvisioningOption struct {
	Action GreenFleetProvisioningAction `json:"action,omitempty" validate:"enum"`
}

type BlueGreenDeploymentConfiguration struct {
	TerminateBlueInstancesOnDeploymentSuccess *BlueInstanceTerminationOption `json:"terminateBlueInstancesOnDeploymentSuccess,omitempty"`
	DeploymentReadyOption                     *DeploymentReadyOption         `json:"deploymentReadyOption,omitempty"`
	GreenFleetProvisioningOption              *GreenFleetProvisioningOption  `json:"greenFleetProvisioningOption,omitempty"`
}

type ELBInfo struct {
	Name string `json:"name,omitempty"`
}

type TargetGroupInfo struct {
	Name string `json:"name,omitempty"`
}

type TrafficRoute struct {
	ListenerArns []string `json:"listenerArns,omitempty" validate:"max=1"`
}

type TargetGroupPairInfo struct {
	TargetGroups     []TargetGroupInfo `json:"targetGroups,omitempty"`
	ProdTrafficRoute *TrafficRoute     `json:"prodTrafficRoute,omitempty"`
	TestTrafficRoute *TrafficRoute     `json:"testTrafficRoute,omitempty"`
}

type LoadBalancerInfo struct {
	ELBInfoList             []ELBInfo             `json:"elbInfoList,omitempty"`
	TargetGroupInfoList     []TargetGroupInfo     `json:"targetGroupInfoList,omitempty"`
	TargetGroupPairInfoList []TargetGroupPairInfo `json:"targetGroupPairInfoList,omitempty"`
}

type TriggerConfig struct {
	TriggerName      string             `json:"triggerName,omitempty"`
	TriggerTargetArn string             `json:"triggerTargetArn,omitempty"`
	TriggerEvents    []TriggerEventType `json:"triggerEvents,omitempty" validate:"dive,enum"`
}

type ECSService struct {
	ServiceName string `json:"serviceName,omitempty"`
	ClusterName string `json:"clusterName,omitempty"`
}

type AutoScalingGroup struct {
	Name string `json:"name,omitempty"`
	Hook string `json:"hook,omitempty"`
}

type LastDeploymentInfo struct {
	DeploymentID string             `json:"deploymentId,omitempty"`
	Status       DeploymentStatus   `json:"status,omitempty"`
	EndTime      *awsjson.Timestamp `json:"endTime,omitempty"`
	CreateTime   *awsjson.Timestamp `json:"createTime,omitempty"`
}

type DeploymentGroupInfo struct {
	ApplicationName                  string                            `json:"applicationName,omitempty"`
	DeploymentGroupID                string                            `json:"deploymentGroupId,omitempty"`
	DeploymentGroupName              string                            `json:"deploymentGroupName,omitempty"`
	DeploymentConfigName             string                            `json:"deploymentConfigName,omitempty"`
	EC2TagFilters                    []EC2TagFilter                    `json:"ec2TagFilters,omitempty"`
	OnPremisesInstanceTagFilters     []TagFilter                       `json:"onPremisesInstanceTagFilters,omitempty"`
	AutoScalingGroups                []AutoScalingGroup                `json:"autoScalingGroups,omitempty"`
	ServiceRoleArn                   string                            `json:"serviceRoleArn,omitempty"`
	TargetRevision                   *RevisionLocation                 `json:"targetRevision,omitempty"`
	TriggerConfigurations            []TriggerConfig                   `json:"triggerConfigurations,omitempty"`
	AlarmConfiguration               *AlarmConfiguration               `json:"alarmConfiguration,omitempty"`
	AutoRollbackConfiguration        *AutoRollbackConfiguration        `json:"autoRollbackConfiguration,omitempty"`
	DeploymentStyle                  *DeploymentStyle                  `json:"deploymentStyle,omitempty"`
	BlueGreenDeploymentConfiguration *BlueGreenDeploymentConfiguration `json:"blueGreenDeploymentConfiguration,omitempty"`
	LoadBalancerInfo                 *LoadBalancerInfo                 `json:"loadBalancerInfo,omitempty"`
	LastSuccessfulDeployment         *LastDeploymentInfo               `json:"lastSuccessfulDeployment,omitempty"`
	LastAttemptedDeployment          *LastDeploymentInfo               `json:"lastAttemptedDeployment,omitempty"`
	EC2TagSet                        *EC2TagSet                        `json:"ec2TagSet,omitempty"`
	OnPremisesTagSet                 *OnPremisesTagSet                 `json:"onPremisesTagSet,omitempty"`
	ComputePlatform                  ComputePlatform                   `json:"computePlatform,omitempty"`
	ECSServices                      []ECSService                      `json:"ecsServices,omitempty"`
}

type ErrorInformation struct {
	Code    DeploymentErrorCode `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
}

// DeploymentOverview counts instances by state.
type DeploymentOverview struct {
	Pending    int64 `json:"Pending"`
	InProgress int64 `json:"InProgress"`
	Succeeded  int64 `json:"Succeeded"`
	Failed     int64 `json:"Failed"`
	Skipped    int64 `json:"Skipped"`
	Ready      int64 `json:"Ready"`
}

type RollbackInfo struct {
	RollbackDeploymentID           string `json:"rollbackDeploymentId,omitempty"`
	RollbackTriggeringDeploymentID string `json:"rollbackTriggeringDeploymentId,omitempty"`
	RollbackMessage                string `json:"rollbackMessage,omitempty"`
}

type TargetInstances struct {
	TagFilters        []EC2TagFilter `json:"tagFilters,omitempty"`
	AutoScalingGroups []string       `json:"autoScalingGroups,omitempty"`
	EC2TagSet         *EC2TagSet     `json:"ec2TagSet,omitempty"`
}

type DeploymentInfo struct {
	ApplicationName                    string                            `json:"applicationName,omitempty"`
	DeploymentGroupName                string                            `json:"deploymentGroupName,omitempty"`
	DeploymentConfigName               string                            `json:"deploymentConfigName,omitempty"`
	DeploymentID                       string                            `json:"deploymentId,omitempty"`
	PreviousRevision                   *RevisionLocation                 `json:"previousRevision,omitempty"`
	Revision                           *RevisionLocation                 `json:"revision,omitempty"`
	Status                             DeploymentStatus                  `json:"status,omitempty"`
	ErrorInformation                   *ErrorInformation                 `json:"errorInformation,omitempty"`
	CreateTime                         *awsjson.Timestamp                `json:"createTime,omitempty"`
	StartTime                          *awsjson.Timestamp                `json:"startTime,omitempty"`
	CompleteTime                       *awsjson.Timestamp                `json:"completeTime,omitempty"`
	DeploymentOverview                 *DeploymentOverview               `json:"deploymentOverview,omitempty"`
	Description                        string                            `json:"description,omitempty"`
	Creator                            DeploymentCreator                 `json:"creator,omitempty"`
	IgnoreApplicationStopFailures      *bool                             `json:"ignoreApplicationStopFailures,omitempty"`
	AutoRollbackConfiguration          *AutoRollbackConfiguration        `json:"autoRollbackConfiguration,omitempty"`
	UpdateOutdatedInstancesOnly        *bool                             `json:"updateOutdatedInstancesOnly,omitempty"`
	RollbackInfo                       *RollbackInfo                     `json:"rollbackInfo,omitempty"`
	DeploymentStyle                    *DeploymentStyle                  `json:"deploymentStyle,omitempty"`
	TargetInstances                    *TargetInstances                  `json:"targetInstances,omitempty"`
	InstanceTerminationWaitTimeStarted *bool                             `json:"instanceTerminationWaitTimeStarted,omitempty"`
	BlueGreenDeploymentConfiguration   *BlueGreenDeploymentConfiguration `json:"blueGreenDeploymentConfiguration,omitempty"`
	LoadBalancerInfo                   *LoadBalancerInfo                 `json:"loadBalancerInfo,omitempty"`
	AdditionalDeploymentStatusInfo     string                            `json:"additionalDeploymentStatusInfo,omitempty"`
	FileExistsBehavior                 FileExistsBehavior                `json:"fileExistsBehavior,omitempty"`
	DeploymentStatusMessages           []string                          `json:"deploymentStatusMessages,omitempty"`
	ComputePlatform                    ComputePlatform                   `json:"computePlatform,omitempty"`
	ExternalID                         string                            `json:"externalId,omitempty"`
}

type MinimumHealthyHosts struct {
	Type  MinimumHealthyHostsType `json:"type,omitempty" validate:"enum"`
	Value int64                   `json:"value,omitempty"`
}

type TimeBasedCanary struct {
	CanaryPercentage int64 `json:"canaryPercentage,omitempty"`
	CanaryInterval   int64 `json:"canaryInterval,omitempty"`
}

type TimeBasedLinear struct {
	LinearPercentage int64 `json:"linearPercentage,omitempty"`
	LinearInterval   int64 `json:"linearInterval,omitempty"`
}

type TrafficRoutingConfig struct {
	Type            TrafficRoutingType `json:"type,omitempty" validate:"enum"`
	TimeBasedCanary *TimeBasedCanary   `json:"timeBasedCanary,omitempty"`
	TimeBasedLinear *TimeBasedLinear   `json:"timeBasedLinear,omitempty"`
}

type DeploymentConfigInfo struct {
	DeploymentConfigID   string                `json:"deploymentConfigId,omitempty"`
	DeploymentConfigName string                `json:"deploymentConfigName,omitempty"`
	MinimumHealthyHosts  *MinimumHealthyHosts  `json:"minimumHealthyHosts,omitempty"`
	CreateTime           *awsjson.Timestamp    `json:"createTime,omitempty"`
	ComputePlatform      ComputePlatform       `json:"computePlatform,omitempty"`
	TrafficRoutingConfig *TrafficRoutingConfig `json:"trafficRoutingConfig,omitempty"`
}

type Diagnostics struct {
	ErrorCode  LifecycleErrorCode `json:"errorCode,omitempty"`
	ScriptName string             `json:"scriptName,omitempty"`
	Message    string             `json:"message,omitempty"`
	LogTail    string             `json:"logTail,omitempty"`
}

type LifecycleEvent struct {
	LifecycleEventName string               `json:"lifecycleEventName,omitempty"`
	Diagnostics        *Diagnostics         `json:"diagnostics,omitempty"`
	StartTime          *awsjson.Timestamp   `json:"startTime,omitempty"`
	EndTime            *awsjson.Timestamp   `json:"endTime,omitempty"`
	Status             LifecycleEventStatus `json:"status,omitempty"`
}

// InstanceSummary is the per-instance view of a deployment. Deprecated
// upstream in favour of DeploymentTarget.
type InstanceSummary struct {
	DeploymentID    string             `json:"deploymentId,omitempty"`
	InstanceID      string             `json:"instanceId,omitempty"`
	Status          InstanceStatus     `json:"status,omitempty"`
	LastUpdatedAt   *awsjson.Timestamp `json:"lastUpdatedAt,omitempty"`
	LifecycleEvents []LifecycleEvent   `json:"lifecycleEvents,omitempty"`
	InstanceType    InstanceType       `json:"instanceType,omitempty"`
}

// InstanceInfo describes a registered on-premises instance.
type InstanceInfo struct {
	InstanceName   string             `json:"instanceName,omitempty"`
	IamSessionArn  string             `json:"iamSessionArn,omitempty"`
	IamUserArn     string             `json:"iamUserArn,omitempty"`
	InstanceArn    string             `json:"instanceArn,omitempty"`
	RegisterTime   *awsjson.Timestamp `json:"registerTime,omitempty"`
	DeregisterTime *awsjson.Timestamp `json:"deregisterTime,omitempty"`
	Tags           []Tag              `json:"tags,omitempty"`
}

type InstanceTarget struct {
	DeploymentID    string             `json:"deploymentId,omitempty"`
	TargetID        string             `json:"targetId,omitempty"`
	TargetArn       string             `json:"targetArn,omitempty"`
	Status          TargetStatus       `json:"status,omitempty"`
	LastUpdatedAt   *awsjson.Timestamp `json:"lastUpdatedAt,omitempty"`
	LifecycleEvents []LifecycleEvent   `json:"lifecycleEvents,omitempty"`
	InstanceLabel   TargetLabel        `json:"instanceLabel,omitempty"`
}

type LambdaFunctionInfo struct {
	FunctionName        string  `json:"functionName,omitempty"`
	FunctionAlias       string  `json:"functionAlias,omitempty"`
	CurrentVersion      string  `json:"currentVersion,omitempty"`
	TargetVersion       string  `json:"targetVersion,omitempty"`
	TargetVersionWeight float64 `json:"targetVersionWeight,omitempty"`
}

type LambdaTarget struct {
	DeploymentID       string              `json:"deploymentId,omitempty"`
	TargetID           string              `json:"targetId,omitempty"`
	TargetArn          string              `json:"targetArn,omitempty"`
	Status             TargetStatus        `json:"status,omitempty"`
	LastUpdatedAt      *awsjson.Timestamp  `json:"lastUpdatedAt,omitempty"`
	LifecycleEvents    []LifecycleEvent    `json:"lifecycleEvents,omitempty"`
	LambdaFunctionInfo *LambdaFunctionInfo `json:"lambdaFunctionInfo,omitempty"`
}

type ECSTaskSet struct {
	Identifier    string           `json:"identifer,omitempty"`
	DesiredCount  int64            `json:"desiredCount,omitempty"`
	PendingCount  int64            `json:"pendingCount,omitempty"`
	RunningCount  int64            `json:"runningCount,omitempty"`
	Status        string           `json:"status,omitempty"`
	TrafficWeight float64          `json:"trafficWeight,omitempty"`
	TargetGroup   *TargetGroupInfo `json:"targetGroup,omitempty"`
	TaskSetLabel  TargetLabel      `json:"taskSetLabel,omitempty"`
}

type ECSTarget struct {
	DeploymentID    string             `json:"deploymentId,omitempty"`
	TargetID        string             `json:"targetId,omitempty"`
	TargetArn       string             `json:"targetArn,omitempty"`
	LastUpdatedAt   *awsjson.Timestamp `json:"lastUpdatedAt,omitempty"`
	LifecycleEvents []LifecycleEvent   `json:"lifecycleEvents,omitempty"`
	Status          TargetStatus       `json:"status,omitempty"`
	TaskSetsInfo    []ECSTaskSet       `json:"taskSetsInfo,omitempty"`
}

type CloudFormationTarget struct {
	DeploymentID        string             `json:"deploymentId,omitempty"`
	TargetID            string             `json:"targetId,omitempty"`
	LastUpdatedAt       *awsjson.Timestamp `json:"lastUpdatedAt,omitempty"`
	LifecycleEvents     []LifecycleEvent   `json:"lifecycleEvents,omitempty"`
	Status              TargetStatus       `json:"status,omitempty"`
	ResourceType        string             `json:"resourceType,omitempty"`
	TargetVersionWeight float64            `json:"targetVersionWeight,omitempty"`
}

// DeploymentTarget wraps one of the target kinds; DeploymentTargetType says which.
type DeploymentTarget struct {
	DeploymentTargetType DeploymentTargetType  `json:"deploymentTargetType,omitempty"`
	InstanceTarget       *InstanceTarget       `json:"instanceTarget,omitempty"`
	LambdaTarget         *LambdaTarget         `json:"lambdaTarget,omitempty"`
	ECSTarget            *ECSTarget            `json:"ecsTarget,omitempty"`
	CloudFormationTarget *CloudFormationTarget `json:"cloudFormationTarget,omitempty"`
}

// TimeRange bounds ListDeployments by creation time. Both ends are optional.
type TimeRange struct {
	Start *awsjson.Timestamp `json:"start,omitempty"`
	End   *awsjson.Timestamp `json:"end,omitempty"`
}
