package main

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/codedeploy-go/internal/fakeaws"
	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	"github.com/angelmondragon/codedeploy-go/pkg/codedeploy"
	"github.com/angelmondragon/codedeploy-go/pkg/pagination"
)

const (
	defaultPageSize = 25
	// A deployment whose description contains failMarker ends in Failed.
	failMarker = "[fail]"
)

var builtinConfigs = []codedeploy.DeploymentConfigInfo{
	{
		DeploymentConfigName: "CodeDeployDefault.OneAtATime",
		MinimumHealthyHosts:  &codedeploy.MinimumHealthyHosts{Type: codedeploy.MinimumHealthyHostsTypeHostCount, Value: 1},
		ComputePlatform:      codedeploy.ComputePlatformServer,
	},
	{
		DeploymentConfigName: "CodeDeployDefault.HalfAtATime",
		MinimumHealthyHosts:  &codedeploy.MinimumHealthyHosts{Type: codedeploy.MinimumHealthyHostsTypeFleetPercent, Value: 50},
		ComputePlatform:      codedeploy.ComputePlatformServer,
	},
	{
		DeploymentConfigName: "CodeDeployDefault.AllAtOnce",
		MinimumHealthyHosts:  &codedeploy.MinimumHealthyHosts{Type: codedeploy.MinimumHealthyHostsTypeHostCount, Value: 0},
		ComputePlatform:      codedeploy.ComputePlatformServer,
	},
}

// codeDeployState is an in-memory CodeDeploy. Deployments advance one status
// per GetDeployment call: Created, InProgress, then Succeeded or Failed.
type codeDeployState struct {
	mu          sync.Mutex
	now         func() time.Time
	pageSize    int
	apps        map[string]*codedeploy.ApplicationInfo
	groups      map[string]map[string]*codedeploy.DeploymentGroupInfo
	configs     map[string]*codedeploy.DeploymentConfigInfo
	deployments map[string]*codedeploy.DeploymentInfo
	order       []string
}

func newCodeDeployState(now func() time.Time, pageSize int) *codeDeployState {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	st := &codeDeployState{
		now:         now,
		pageSize:    pageSize,
		apps:        make(map[string]*codedeploy.ApplicationInfo),
		groups:      make(map[string]map[string]*codedeploy.DeploymentGroupInfo),
		configs:     make(map[string]*codedeploy.DeploymentConfigInfo),
		deployments: make(map[string]*codedeploy.DeploymentInfo),
	}
	for i := range builtinConfigs {
		cfg := builtinConfigs[i]
		cfg.DeploymentConfigID = uuid.NewString()
		cfg.CreateTime = awsjson.NewTimestamp(now())
		st.configs[cfg.DeploymentConfigName] = &cfg
	}
	return st
}

func (st *codeDeployState) register(srv *fakeaws.Server, wrap middleware) {
	handlers := map[string]fakeaws.Handler{
		"CreateApplication":     st.createApplication,
		"GetApplication":        st.getApplication,
		"ListApplications":      st.listApplications,
		"DeleteApplication":     st.deleteApplication,
		"CreateDeploymentGroup": st.createDeploymentGroup,
		"GetDeploymentGroup":    st.getDeploymentGroup,
		"ListDeploymentGroups":  st.listDeploymentGroups,
		"GetDeploymentConfig":   st.getDeploymentConfig,
		"ListDeploymentConfigs": st.listDeploymentConfigs,
		"CreateDeployment":      st.createDeployment,
		"GetDeployment":         st.getDeployment,
		"ListDeployments":       st.listDeployments,
		"StopDeployment":        st.stopDeployment,
	}
	for op, h := range handlers {
		srv.HandleOperation(codedeploy.TargetPrefix, op, wrap(codedeploy.ServiceName, op, h))
	}
}

func cdFail(code codedeploy.ErrorCode, format string, args ...any) fakeaws.Response {
	return fakeaws.Fail(http.StatusBadRequest, string(code), fmt.Sprintf(format, args...))
}

func badBody(err error) fakeaws.Response {
	return fakeaws.Fail(http.StatusBadRequest, "SerializationException", err.Error())
}

// paginate returns one page of sorted names. Tokens are offsets.
// paginate pages sorted keys behind opaque cursor tokens. ok is false for a
// token the fake never issued.
func paginate(keys []string, token string, size int) ([]string, string, bool) {
	page, next, err := pagination.Page(keys, token, size)
	if err != nil {
		return nil, "", false
	}
	return page, next, true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (st *codeDeployState) createApplication(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.CreateApplicationInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	if in.ApplicationName == "" {
		return cdFail(codedeploy.ErrCodeApplicationNameRequiredException, "application name is required")
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.apps[in.ApplicationName]; ok {
		return cdFail(codedeploy.ErrCodeApplicationAlreadyExistsException, "application %s already exists", in.ApplicationName)
	}
	platform := in.ComputePlatform
	if platform == "" {
		platform = codedeploy.ComputePlatformServer
	}
	app := &codedeploy.ApplicationInfo{
		ApplicationID:   uuid.NewString(),
		ApplicationName: in.ApplicationName,
		CreateTime:      awsjson.NewTimestamp(st.now()),
		ComputePlatform: platform,
	}
	st.apps[app.ApplicationName] = app
	st.groups[app.ApplicationName] = make(map[string]*codedeploy.DeploymentGroupInfo)
	return fakeaws.Respond(http.StatusOK, codedeploy.CreateApplicationOutput{ApplicationID: app.ApplicationID})
}

func (st *codeDeployState) getApplication(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.GetApplicationInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	app, ok := st.apps[in.ApplicationName]
	if !ok {
		return cdFail(codedeploy.ErrCodeApplicationDoesNotExistException, "No application found for name: %s", in.ApplicationName)
	}
	return fakeaws.Respond(http.StatusOK, codedeploy.GetApplicationOutput{Application: app})
}

func (st *codeDeployState) listApplications(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.ListApplicationsInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	names, next, ok := paginate(sortedKeys(st.apps), in.NextToken, st.pageSize)
	if !ok {
		return cdFail(codedeploy.ErrCodeInvalidNextTokenException, "invalid next token")
	}
	return fakeaws.Respond(http.StatusOK, codedeploy.ListApplicationsOutput{Applications: names, NextToken: next})
}

func (st *codeDeployState) deleteApplication(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.DeleteApplicationInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.apps, in.ApplicationName)
	delete(st.groups, in.ApplicationName)
	return fakeaws.Respond(http.StatusOK, nil)
}

func (st *codeDeployState) createDeploymentGroup(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.CreateDeploymentGroupInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	if in.DeploymentGroupName == "" {
		return cdFail(codedeploy.ErrCodeDeploymentGroupNameRequiredException, "deployment group name is required")
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	app, ok := st.apps[in.ApplicationName]
	if !ok {
		return cdFail(codedeploy.ErrCodeApplicationDoesNotExistException, "No application found for name: %s", in.ApplicationName)
	}
	if _, exists := st.groups[app.ApplicationName][in.DeploymentGroupName]; exists {
		return cdFail(codedeploy.ErrCodeDeploymentGroupAlreadyExistsException, "deployment group %s already exists", in.DeploymentGroupName)
	}
	configName := in.DeploymentConfigName
	if configName == "" {
		configName = builtinConfigs[0].DeploymentConfigName
	}
	if _, ok := st.configs[configName]; !ok {
		return cdFail(codedeploy.ErrCodeDeploymentConfigDoesNotExistException, "No deployment configuration found for name: %s", configName)
	}
	group := &codedeploy.DeploymentGroupInfo{
		ApplicationName:              app.ApplicationName,
		DeploymentGroupID:            uuid.NewString(),
		DeploymentGroupName:          in.DeploymentGroupName,
		DeploymentConfigName:         configName,
		EC2TagFilters:                in.EC2TagFilters,
		OnPremisesInstanceTagFilters: in.OnPremisesInstanceTagFilters,
		ServiceRoleArn:               in.ServiceRoleArn,
		TriggerConfigurations:        in.TriggerConfigurations,
		AlarmConfiguration:           in.AlarmConfiguration,
		AutoRollbackConfiguration:    in.AutoRollbackConfiguration,
		DeploymentStyle:              in.DeploymentStyle,
		ComputePlatform:              app.ComputePlatform,
	}
	st.groups[app.ApplicationName][group.DeploymentGroupName] = group
	return fakeaws.Respond(http.StatusOK, codedeploy.CreateDeploymentGroupOutput{DeploymentGroupID: group.DeploymentGroupID})
}

func (st *codeDeployState) getDeploymentGroup(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.GetDeploymentGroupInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	groups, ok := st.groups[in.ApplicationName]
	if !ok {
		return cdFail(codedeploy.ErrCodeApplicationDoesNotExistException, "No application found for name: %s", in.ApplicationName)
	}
	group, ok := groups[in.DeploymentGroupName]
	if !ok {
		return cdFail(codedeploy.ErrCodeDeploymentGroupDoesNotExistException, "No Deployment Group found for name: %s", in.DeploymentGroupName)
	}
	snapshot := *group
	return fakeaws.Respond(http.StatusOK, codedeploy.GetDeploymentGroupOutput{DeploymentGroupInfo: &snapshot})
}

func (st *codeDeployState) listDeploymentGroups(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.ListDeploymentGroupsInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	groups, ok := st.groups[in.ApplicationName]
	if !ok {
		return cdFail(codedeploy.ErrCodeApplicationDoesNotExistException, "No application found for name: %s", in.ApplicationName)
	}
	names, next, ok := paginate(sortedKeys(groups), in.NextToken, st.pageSize)
	if !ok {
		return cdFail(codedeploy.ErrCodeInvalidNextTokenException, "invalid next token")
	}
	return fakeaws.Respond(http.StatusOK, codedeploy.ListDeploymentGroupsOutput{
		ApplicationName:  in.ApplicationName,
		DeploymentGroups: names,
		NextToken:        next,
	})
}

func (st *codeDeployState) getDeploymentConfig(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.GetDeploymentConfigInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	cfg, ok := st.configs[in.DeploymentConfigName]
	if !ok {
		return cdFail(codedeploy.ErrCodeDeploymentConfigDoesNotExistException, "No deployment configuration found for name: %s", in.DeploymentConfigName)
	}
	return fakeaws.Respond(http.StatusOK, codedeploy.GetDeploymentConfigOutput{DeploymentConfigInfo: cfg})
}

func (st *codeDeployState) listDeploymentConfigs(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.ListDeploymentConfigsInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	names, next, ok := paginate(sortedKeys(st.configs), in.NextToken, st.pageSize)
	if !ok {
		return cdFail(codedeploy.ErrCodeInvalidNextTokenException, "invalid next token")
	}
	return fakeaws.Respond(http.StatusOK, codedeploy.ListDeploymentConfigsOutput{DeploymentConfigsList: names, NextToken: next})
}

func newDeploymentID() string {
	return "d-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
}

func (st *codeDeployState) createDeployment(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.CreateDeploymentInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	if in.ApplicationName == "" {
		return cdFail(codedeploy.ErrCodeApplicationNameRequiredException, "application name is required")
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.apps[in.ApplicationName]; !ok {
		return cdFail(codedeploy.ErrCodeApplicationDoesNotExistException, "No application found for name: %s", in.ApplicationName)
	}
	if in.DeploymentGroupName == "" {
		return cdFail(codedeploy.ErrCodeDeploymentGroupNameRequiredException, "deployment group name is required")
	}
	group, ok := st.groups[in.ApplicationName][in.DeploymentGroupName]
	if !ok {
		return cdFail(codedeploy.ErrCodeDeploymentGroupDoesNotExistException, "No Deployment Group found for name: %s", in.DeploymentGroupName)
	}
	configName := in.DeploymentConfigName
	if configName == "" {
		configName = group.DeploymentConfigName
	}
	if _, ok := st.configs[configName]; !ok {
		return cdFail(codedeploy.ErrCodeDeploymentConfigDoesNotExistException, "No deployment configuration found for name: %s", configName)
	}

	revision := in.Revision
	if revision == nil {
		revision = group.TargetRevision
	}
	info := &codedeploy.DeploymentInfo{
		ApplicationName:      in.ApplicationName,
		DeploymentGroupName:  in.DeploymentGroupName,
		DeploymentConfigName: configName,
		DeploymentID:         newDeploymentID(),
		PreviousRevision:     group.TargetRevision,
		Revision:             revision,
		Status:               codedeploy.DeploymentStatusCreated,
		CreateTime:           awsjson.NewTimestamp(st.now()),
		DeploymentOverview:   &codedeploy.DeploymentOverview{Pending: 1},
		Description:          in.Description,
		Creator:              codedeploy.DeploymentCreatorUser,
		FileExistsBehavior:   in.FileExistsBehavior,
	}
	group.TargetRevision = revision
	st.deployments[info.DeploymentID] = info
	st.order = append(st.order, info.DeploymentID)
	return fakeaws.Respond(http.StatusOK, codedeploy.CreateDeploymentOutput{DeploymentID: info.DeploymentID})
}

// advance moves a deployment one step along its lifecycle.
func (st *codeDeployState) advance(info *codedeploy.DeploymentInfo) {
	switch info.Status {
	case codedeploy.DeploymentStatusCreated, codedeploy.DeploymentStatusQueued:
		info.Status = codedeploy.DeploymentStatusInProgress
		info.StartTime = awsjson.NewTimestamp(st.now())
		info.DeploymentOverview = &codedeploy.DeploymentOverview{InProgress: 1}
	case codedeploy.DeploymentStatusInProgress:
		info.CompleteTime = awsjson.NewTimestamp(st.now())
		if strings.Contains(info.Description, failMarker) {
			info.Status = codedeploy.DeploymentStatusFailed
			info.DeploymentOverview = &codedeploy.DeploymentOverview{Failed: 1}
			info.ErrorInformation = &codedeploy.ErrorInformation{
				Code:    codedeploy.DeploymentErrorCodeHookExecutionFailure,
				Message: "Script at specified location: scripts/start.sh run as user root failed with exit code 1",
			}
			return
		}
		info.Status = codedeploy.DeploymentStatusSucceeded
		info.DeploymentOverview = &codedeploy.DeploymentOverview{Succeeded: 1}
	}
}

func (st *codeDeployState) getDeployment(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.GetDeploymentInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	if in.DeploymentID == "" {
		return cdFail(codedeploy.ErrCodeDeploymentIdRequiredException, "deployment id is required")
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	info, ok := st.deployments[in.DeploymentID]
	if !ok {
		return cdFail(codedeploy.ErrCodeDeploymentDoesNotExistException, "Deployment %s does not exist", in.DeploymentID)
	}
	snapshot := *info
	st.advance(info)
	return fakeaws.Respond(http.StatusOK, codedeploy.GetDeploymentOutput{DeploymentInfo: &snapshot})
}

func (st *codeDeployState) listDeployments(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.ListDeploymentsInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	if in.DeploymentGroupName != "" && in.ApplicationName == "" {
		return cdFail(codedeploy.ErrCodeApplicationNameRequiredException, "application name is required with a deployment group")
	}
	wanted := make(map[codedeploy.DeploymentStatus]bool, len(in.IncludeOnlyStatuses))
	for _, s := range in.IncludeOnlyStatuses {
		wanted[s] = true
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if in.ApplicationName != "" {
		if _, ok := st.apps[in.ApplicationName]; !ok {
			return cdFail(codedeploy.ErrCodeApplicationDoesNotExistException, "No application found for name: %s", in.ApplicationName)
		}
	}
	var ids []string
	for _, id := range st.order {
		info := st.deployments[id]
		if in.ApplicationName != "" && info.ApplicationName != in.ApplicationName {
			continue
		}
		if in.DeploymentGroupName != "" && info.DeploymentGroupName != in.DeploymentGroupName {
			continue
		}
		if len(wanted) > 0 && !wanted[info.Status] {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	page, next, ok := paginate(ids, in.NextToken, st.pageSize)
	if !ok {
		return cdFail(codedeploy.ErrCodeInvalidNextTokenException, "invalid next token")
	}
	return fakeaws.Respond(http.StatusOK, codedeploy.ListDeploymentsOutput{Deployments: page, NextToken: next})
}

func (st *codeDeployState) stopDeployment(req fakeaws.Request) fakeaws.Response {
	var in codedeploy.StopDeploymentInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	info, ok := st.deployments[in.DeploymentID]
	if !ok {
		return cdFail(codedeploy.ErrCodeDeploymentDoesNotExistException, "Deployment %s does not exist", in.DeploymentID)
	}
	switch info.Status {
	case codedeploy.DeploymentStatusSucceeded, codedeploy.DeploymentStatusFailed, codedeploy.DeploymentStatusStopped:
		return cdFail(codedeploy.ErrCodeDeploymentAlreadyCompletedException, "Deployment %s has already completed", in.DeploymentID)
	}
	info.Status = codedeploy.DeploymentStatusStopped
	info.CompleteTime = awsjson.NewTimestamp(st.now())
	return fakeaws.Respond(http.StatusOK, codedeploy.StopDeploymentOutput{
		Status:        codedeploy.StopStatusSucceeded,
		StatusMessage: "Deployment stopped",
	})
}
