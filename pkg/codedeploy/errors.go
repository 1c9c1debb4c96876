package codedeploy

import (
	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
)

// ErrorCode is a registered CodeDeploy error discriminator.
type ErrorCode string

const (
	ErrCodeAlarmsLimitExceededException                       ErrorCode = "AlarmsLimitExceededException"
	ErrCodeApplicationAlreadyExistsException                  ErrorCode = "ApplicationAlreadyExistsException"
	ErrCodeApplicationDoesNotExistException                   ErrorCode = "ApplicationDoesNotExistException"
	ErrCodeApplicationLimitExceededException                  ErrorCode = "ApplicationLimitExceededException"
	ErrCodeApplicationNameRequiredException                   ErrorCode = "ApplicationNameRequiredException"
	ErrCodeArnNotSupportedException                           ErrorCode = "ArnNotSupportedException"
	ErrCodeBatchLimitExceededException                        ErrorCode = "BatchLimitExceededException"
	ErrCodeBucketNameFilterRequiredException                  ErrorCode = "BucketNameFilterRequiredException"
	ErrCodeDeploymentAlreadyCompletedException                ErrorCode = "DeploymentAlreadyCompletedException"
	ErrCodeDeploymentConfigAlreadyExistsException             ErrorCode = "DeploymentConfigAlreadyExistsException"
	ErrCodeDeploymentConfigDoesNotExistException              ErrorCode = "DeploymentConfigDoesNotExistException"
	ErrCodeDeploymentConfigInUseException                     ErrorCode = "DeploymentConfigInUseException"
	ErrCodeDeploymentConfigLimitExceededException             ErrorCode = "DeploymentConfigLimitExceededException"
	ErrCodeDeploymentConfigNameRequiredException              ErrorCode = "DeploymentConfigNameRequiredException"
	ErrCodeDeploymentDoesNotExistException                    ErrorCode = "DeploymentDoesNotExistException"
	ErrCodeDeploymentGroupAlreadyExistsException              ErrorCode = "DeploymentGroupAlreadyExistsException"
	ErrCodeDeploymentGroupDoesNotExistException               ErrorCode = "DeploymentGroupDoesNotExistException"
	ErrCodeDeploymentGroupLimitExceededException              ErrorCode = "DeploymentGroupLimitExceededException"
	ErrCodeDeploymentGroupNameRequiredException               ErrorCode = "DeploymentGroupNameRequiredException"
	ErrCodeDeploymentIdRequiredException                      ErrorCode = "DeploymentIdRequiredException"
	ErrCodeDeploymentIsNotInReadyStateException               ErrorCode = "DeploymentIsNotInReadyStateException"
	ErrCodeDeploymentLimitExceededException                   ErrorCode = "DeploymentLimitExceededException"
	ErrCodeDeploymentNotStartedException                      ErrorCode = "DeploymentNotStartedException"
	ErrCodeDeploymentTargetDoesNotExistException              ErrorCode = "DeploymentTargetDoesNotExistException"
	ErrCodeDeploymentTargetIdRequiredException                ErrorCode = "DeploymentTargetIdRequiredException"
	ErrCodeDeploymentTargetListSizeExceededException          ErrorCode = "DeploymentTargetListSizeExceededException"
	ErrCodeDescriptionTooLongException                        ErrorCode = "DescriptionTooLongException"
	ErrCodeECSServiceMappingLimitExceededException            ErrorCode = "ECSServiceMappingLimitExceededException"
	ErrCodeGitHubAccountTokenDoesNotExistException            ErrorCode = "GitHubAccountTokenDoesNotExistException"
	ErrCodeGitHubAccountTokenNameRequiredException            ErrorCode = "GitHubAccountTokenNameRequiredException"
	ErrCodeIamArnRequiredException                            ErrorCode = "IamArnRequiredException"
	ErrCodeIamSessionArnAlreadyRegisteredException            ErrorCode = "IamSessionArnAlreadyRegisteredException"
	ErrCodeIamUserArnAlreadyRegisteredException               ErrorCode = "IamUserArnAlreadyRegisteredException"
	ErrCodeIamUserArnRequiredException                        ErrorCode = "IamUserArnRequiredException"
	ErrCodeInstanceDoesNotExistException                      ErrorCode = "InstanceDoesNotExistException"
	ErrCodeInstanceIdRequiredException                        ErrorCode = "InstanceIdRequiredException"
	ErrCodeInstanceLimitExceededException                     ErrorCode = "InstanceLimitExceededException"
	ErrCodeInstanceNameAlreadyRegisteredException             ErrorCode = "InstanceNameAlreadyRegisteredException"
	ErrCodeInstanceNameRequiredException                      ErrorCode = "InstanceNameRequiredException"
	ErrCodeInstanceNotRegisteredException                     ErrorCode = "InstanceNotRegisteredException"
	ErrCodeInvalidAlarmConfigException                        ErrorCode = "InvalidAlarmConfigException"
	ErrCodeInvalidApplicationNameException                    ErrorCode = "InvalidApplicationNameException"
	ErrCodeInvalidArnException                                ErrorCode = "InvalidArnException"
	ErrCodeInvalidAutoRollbackConfigException                 ErrorCode = "InvalidAutoRollbackConfigException"
	ErrCodeInvalidAutoScalingGroupException                   ErrorCode = "InvalidAutoScalingGroupException"
	ErrCodeInvalidBlueGreenDeploymentConfigurationException   ErrorCode = "InvalidBlueGreenDeploymentConfigurationException"
	ErrCodeInvalidBucketNameFilterException                   ErrorCode = "InvalidBucketNameFilterException"
	ErrCodeInvalidComputePlatformException                    ErrorCode = "InvalidComputePlatformException"
	ErrCodeInvalidDeployedStateFilterException                ErrorCode = "InvalidDeployedStateFilterException"
	ErrCodeInvalidDeploymentConfigNameException               ErrorCode = "InvalidDeploymentConfigNameException"
	ErrCodeInvalidDeploymentGroupNameException                ErrorCode = "InvalidDeploymentGroupNameException"
	ErrCodeInvalidDeploymentIdException                       ErrorCode = "InvalidDeploymentIdException"
	ErrCodeInvalidDeploymentInstanceTypeException             ErrorCode = "InvalidDeploymentInstanceTypeException"
	ErrCodeInvalidDeploymentStatusException                   ErrorCode = "InvalidDeploymentStatusException"
	ErrCodeInvalidDeploymentStyleException                    ErrorCode = "InvalidDeploymentStyleException"
	ErrCodeInvalidDeploymentTargetIdException                 ErrorCode = "InvalidDeploymentTargetIdException"
	ErrCodeInvalidDeploymentWaitTypeException                 ErrorCode = "InvalidDeploymentWaitTypeException"
	ErrCodeInvalidEC2TagCombinationException                  ErrorCode = "InvalidEC2TagCombinationException"
	ErrCodeInvalidEC2TagException                             ErrorCode = "InvalidEC2TagException"
	ErrCodeInvalidECSServiceException                         ErrorCode = "InvalidECSServiceException"
	ErrCodeInvalidExternalIdException                         ErrorCode = "InvalidExternalIdException"
	ErrCodeInvalidFileExistsBehaviorException                 ErrorCode = "InvalidFileExistsBehaviorException"
	ErrCodeInvalidGitHubAccountTokenException                 ErrorCode = "InvalidGitHubAccountTokenException"
	ErrCodeInvalidGitHubAccountTokenNameException             ErrorCode = "InvalidGitHubAccountTokenNameException"
	ErrCodeInvalidIamSessionArnException                      ErrorCode = "InvalidIamSessionArnException"
	ErrCodeInvalidIamUserArnException                         ErrorCode = "InvalidIamUserArnException"
	ErrCodeInvalidIgnoreApplicationStopFailuresValueException ErrorCode = "InvalidIgnoreApplicationStopFailuresValueException"
	ErrCodeInvalidInputException                              ErrorCode = "InvalidInputException"
	ErrCodeInvalidInstanceNameException                       ErrorCode = "InvalidInstanceNameException"
	ErrCodeInvalidInstanceStatusException                     ErrorCode = "InvalidInstanceStatusException"
	ErrCodeInvalidInstanceTypeException                       ErrorCode = "InvalidInstanceTypeException"
	ErrCodeInvalidKeyPrefixFilterException                    ErrorCode = "InvalidKeyPrefixFilterException"
	ErrCodeInvalidLifecycleEventHookExecutionIdException      ErrorCode = "InvalidLifecycleEventHookExecutionIdException"
	ErrCodeInvalidLifecycleEventHookExecutionStatusException  ErrorCode = "InvalidLifecycleEventHookExecutionStatusException"
	ErrCodeInvalidLoadBalancerInfoException                   ErrorCode = "InvalidLoadBalancerInfoException"
	ErrCodeInvalidMinimumHealthyHostValueException            ErrorCode = "InvalidMinimumHealthyHostValueException"
	ErrCodeInvalidNextTokenException                          ErrorCode = "InvalidNextTokenException"
	ErrCodeInvalidOnPremisesTagCombinationException           ErrorCode = "InvalidOnPremisesTagCombinationException"
	ErrCodeInvalidOperationException                          ErrorCode = "InvalidOperationException"
	ErrCodeInvalidRegistrationStatusException                 ErrorCode = "InvalidRegistrationStatusException"
	ErrCodeInvalidRevisionException                           ErrorCode = "InvalidRevisionException"
	ErrCodeInvalidRoleException                               ErrorCode = "InvalidRoleException"
	ErrCodeInvalidSortByException                             ErrorCode = "InvalidSortByException"
	ErrCodeInvalidSortOrderException                          ErrorCode = "InvalidSortOrderException"
	ErrCodeInvalidTagException                                ErrorCode = "InvalidTagException"
	ErrCodeInvalidTagFilterException                          ErrorCode = "InvalidTagFilterException"
	ErrCodeInvalidTagsToAddException                          ErrorCode = "InvalidTagsToAddException"
	ErrCodeInvalidTargetFilterNameException                   ErrorCode = "InvalidTargetFilterNameException"
	ErrCodeInvalidTargetGroupPairException                    ErrorCode = "InvalidTargetGroupPairException"
	ErrCodeInvalidTargetInstancesException                    ErrorCode = "InvalidTargetInstancesException"
	ErrCodeInvalidTimeRangeException                          ErrorCode = "InvalidTimeRangeException"
	ErrCodeInvalidTrafficRoutingConfigurationException        ErrorCode = "InvalidTrafficRoutingConfigurationException"
	ErrCodeInvalidTriggerConfigException                      ErrorCode = "InvalidTriggerConfigException"
	ErrCodeInvalidUpdateOutdatedInstancesOnlyValueException   ErrorCode = "InvalidUpdateOutdatedInstancesOnlyValueException"
	ErrCodeLifecycleEventAlreadyCompletedException            ErrorCode = "LifecycleEventAlreadyCompletedException"
	ErrCodeLifecycleHookLimitExceededException                ErrorCode = "LifecycleHookLimitExceededException"
	ErrCodeMultipleIamArnsProvidedException                   ErrorCode = "MultipleIamArnsProvidedException"
	ErrCodeOperationNotSupportedException                     ErrorCode = "OperationNotSupportedException"
	ErrCodeResourceArnRequiredException                       ErrorCode = "ResourceArnRequiredException"
	ErrCodeResourceValidationException                        ErrorCode = "ResourceValidationException"
	ErrCodeRevisionDoesNotExistException                      ErrorCode = "RevisionDoesNotExistException"
	ErrCodeRevisionRequiredException                          ErrorCode = "RevisionRequiredException"
	ErrCodeRoleRequiredException                              ErrorCode = "RoleRequiredException"
	ErrCodeTagLimitExceededException                          ErrorCode = "TagLimitExceededException"
	ErrCodeTagRequiredException                               ErrorCode = "TagRequiredException"
	ErrCodeTagSetListLimitExceededException                   ErrorCode = "TagSetListLimitExceededException"
	ErrCodeThrottlingException                                ErrorCode = "ThrottlingException"
	ErrCodeTriggerTargetsLimitExceededException               ErrorCode = "TriggerTargetsLimitExceededException"
	ErrCodeUnsupportedActionForDeploymentTypeException        ErrorCode = "UnsupportedActionForDeploymentTypeException"
)

var errorCodes = []ErrorCode{
	ErrCodeAlarmsLimitExceededException,
	ErrCodeApplicationAlreadyExistsException,
	ErrCodeApplicationDoesNotExistException,
	ErrCodeApplicationLimitExceededException,
	ErrCodeApplicationNameRequiredException,
	ErrCodeArnNotSupportedException,
	ErrCodeBatchLimitExceededException,
	ErrCodeBucketNameFilterRequiredException,
	ErrCodeDeploymentAlreadyCompletedException,
	ErrCodeDeploymentConfigAlreadyExistsException,
	ErrCodeDeploymentConfigDoesNotExistException,
	ErrCodeDeploymentConfigInUseException,
	ErrCodeDeploymentConfigLimitExceededException,
	ErrCodeDeploymentConfigNameRequiredException,
	ErrCodeDeploymentDoesNotExistException,
	ErrCodeDeploymentGroupAlreadyExistsException,
	ErrCodeDeploymentGroupDoesNotExistException,
	ErrCodeDeploymentGroupLimitExceededException,
	ErrCodeDeploymentGroupNameRequiredException,
	ErrCodeDeploymentIdRequiredException,
	ErrCodeDeploymentIsNotInReadyStateException,
	ErrCodeDeploymentLimitExceededException,
	ErrCodeDeploymentNotStartedException,
	ErrCodeDeploymentTargetDoesNotExistException,
	ErrCodeDeploymentTargetIdRequiredException,
	ErrCodeDeploymentTargetListSizeExceededException,
	ErrCodeDescriptionTooLongException,
	ErrCodeECSServiceMappingLimitExceededException,
	ErrCodeGitHubAccountTokenDoesNotExistException,
	ErrCodeGitHubAccountTokenNameRequiredException,
	ErrCodeIamArnRequiredException,
	ErrCodeIamSessionArnAlreadyRegisteredException,
	ErrCodeIamUserArnAlreadyRegisteredException,
	ErrCodeIamUserArnRequiredException,
	ErrCodeInstanceDoesNotExistException,
	ErrCodeInstanceIdRequiredException,
	ErrCodeInstanceLimitExceededException,
	ErrCodeInstanceNameAlreadyRegisteredException,
	ErrCodeInstanceNameRequiredException,
	ErrCodeInstanceNotRegisteredException,
	ErrCodeInvalidAlarmConfigException,
	ErrCodeInvalidApplicationNameException,
	ErrCodeInvalidArnException,
	ErrCodeInvalidAutoRollbackConfigException,
	ErrCodeInvalidAutoScalingGroupException,
	ErrCodeInvalidBlueGreenDeploymentConfigurationException,
	ErrCodeInvalidBucketNameFilterException,
	ErrCodeInvalidComputePlatformException,
	ErrCodeInvalidDeployedStateFilterException,
	ErrCodeInvalidDeploymentConfigNameException,
	ErrCodeInvalidDeploymentGroupNameException,
	ErrCodeInvalidDeploymentIdException,
	ErrCodeInvalidDeploymentInstanceTypeException,
	ErrCodeInvalidDeploymentStatusException,
	ErrCodeInvalidDeploymentStyleException,
	ErrCodeInvalidDeploymentTargetIdException,
	ErrCodeInvalidDeploymentWaitTypeException,
	ErrCodeInvalidEC2TagCombinationException,
	ErrCodeInvalidEC2TagException,
	ErrCodeInvalidECSServiceException,
	ErrCodeInvalidExternalIdException,
	ErrCodeInvalidFileExistsBehaviorException,
	ErrCodeInvalidGitHubAccountTokenException,
	ErrCodeInvalidGitHubAccountTokenNameException,
	ErrCodeInvalidIamSessionArnException,
	ErrCodeInvalidIamUserArnException,
	ErrCodeInvalidIgnoreApplicationStopFailuresValueException,
	ErrCodeInvalidInputException,
	ErrCodeInvalidInstanceNameException,
	ErrCodeInvalidInstanceStatusException,
	ErrCodeInvalidInstanceTypeException,
	ErrCodeInvalidKeyPrefixFilterException,
	ErrCodeInvalidLifecycleEventHookExecutionIdException,
	ErrCodeInvalidLifecycleEventHookExecutionStatusException,
	ErrCodeInvalidLoadBalancerInfoException,
	ErrCodeInvalidMinimumHealthyHostValueException,
	ErrCodeInvalidNextTokenException,
	ErrCodeInvalidOnPremisesTagCombinationException,
	ErrCodeInvalidOperationException,
	ErrCodeInvalidRegistrationStatusException,
	ErrCodeInvalidRevisionException,
	ErrCodeInvalidRoleException,
	ErrCodeInvalidSortByException,
	ErrCodeInvalidSortOrderException,
	ErrCodeInvalidTagException,
	ErrCodeInvalidTagFilterException,
	ErrCodeInvalidTagsToAddException,
	ErrCodeInvalidTargetFilterNameException,
	ErrCodeInvalidTargetGroupPairException,
	ErrCodeInvalidTargetInstancesException,
	ErrCodeInvalidTimeRangeException,
	ErrCodeInvalidTrafficRoutingConfigurationException,
	ErrCodeInvalidTriggerConfigException,
	ErrCodeInvalidUpdateOutdatedInstancesOnlyValueException,
	ErrCodeLifecycleEventAlreadyCompletedException,
	ErrCodeLifecycleHookLimitExceededException,
	ErrCodeMultipleIamArnsProvidedException,
	ErrCodeOperationNotSupportedException,
	ErrCodeResourceArnRequiredException,
	ErrCodeResourceValidationException,
	ErrCodeRevisionDoesNotExistException,
	ErrCodeRevisionRequiredException,
	ErrCodeRoleRequiredException,
	ErrCodeTagLimitExceededException,
	ErrCodeTagRequiredException,
	ErrCodeTagSetListLimitExceededException,
	ErrCodeThrottlingException,
	ErrCodeTriggerTargetsLimitExceededException,
	ErrCodeUnsupportedActionForDeploymentTypeException,
}

var errorRegistry = newErrorRegistry()

func newErrorRegistry() awsjson.ErrorRegistry {
	codes := make([]string, 0, len(errorCodes))
	for _, code := range errorCodes {
		codes = append(codes, string(code))
	}
	return awsjson.NewErrorRegistry(codes...)
}

func (e ErrorCode) String() string {
	return string(e)
}

// IsValid reports whether the code is registered.
func (e ErrorCode) IsValid() bool {
	_, ok := errorRegistry.Lookup(string(e))
	return ok
}

// ErrorCodeOf returns the CodeDeploy error code carried by err. It reports
// false for client-side failures, for other services, and for discriminators
// outside the registry.
func ErrorCodeOf(err error) (ErrorCode, bool) {
	svcErr := pkgerrors.AsService(err)
	if svcErr == nil || svcErr.Service != ServiceName || !svcErr.Known() {
		return "", false
	}
	return ErrorCode(svcErr.Code), true
}

// IsErrorCode reports whether err is a CodeDeploy service error with code.
func IsErrorCode(err error, code ErrorCode) bool {
	got, ok := ErrorCodeOf(err)
	return ok && got == code
}
