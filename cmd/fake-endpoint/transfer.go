package main

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/google/uuid"

	"github.com/angelmondragon/codedeploy-go/internal/fakeaws"
	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	"github.com/angelmondragon/codedeploy-go/pkg/transfer"
)

const (
	seedServerID = "s-01234567890abcdef"
	seedUserName = "deploy"
	fakeAccount  = "123456789012"
)

type fakeServer struct {
	server transfer.DescribedServer
	users  map[string]*transfer.DescribedUser
}

// transferState is an in-memory Transfer Family with one seeded server.
type transferState struct {
	mu       sync.Mutex
	now      func() time.Time
	region   string
	pageSize int
	servers  map[string]*fakeServer
}

func newTransferState(now func() time.Time, region string, pageSize int) *transferState {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	st := &transferState{now: now, region: region, pageSize: pageSize, servers: make(map[string]*fakeServer)}
	st.servers[seedServerID] = &fakeServer{
		server: transfer.DescribedServer{
			Arn:                  st.arn("server", seedServerID),
			EndpointType:         transfer.EndpointTypePublic,
			IdentityProviderType: transfer.IdentityProviderTypeServiceManaged,
			Protocols:            []transfer.Protocol{transfer.ProtocolSFTP},
			ServerID:             seedServerID,
			State:                transfer.StateOnline,
		},
		users: map[string]*transfer.DescribedUser{
			seedUserName: {
				Arn:               st.arn("user", seedServerID+"/"+seedUserName),
				HomeDirectory:     "/deploy-artifacts",
				HomeDirectoryType: transfer.HomeDirectoryTypePath,
				Role:              "arn:aws:iam::" + fakeAccount + ":role/transfer-deploy",
				UserName:          seedUserName,
			},
		},
	}
	return st
}

func (st *transferState) arn(kind, id string) string {
	return fmt.Sprintf("arn:aws:transfer:%s:%s:%s/%s", st.region, fakeAccount, kind, id)
}

func (st *transferState) register(srv *fakeaws.Server, wrap middleware) {
	handlers := map[string]fakeaws.Handler{
		"ListServers":        st.listServers,
		"DescribeServer":     st.describeServer,
		"StartServer":        st.setState(transfer.StateOnline),
		"StopServer":         st.setState(transfer.StateOffline),
		"CreateUser":         st.createUser,
		"DescribeUser":       st.describeUser,
		"ListUsers":          st.listUsers,
		"ImportSshPublicKey": st.importKey,
		"DeleteSshPublicKey": st.deleteKey,
	}
	for op, h := range handlers {
		srv.HandleOperation(transfer.TargetPrefix, op, wrap(transfer.ServiceName, op, h))
	}
}

func trFail(code transfer.ErrorCode, format string, args ...any) fakeaws.Response {
	status := http.StatusBadRequest
	if code == transfer.ErrCodeResourceNotFoundException {
		status = http.StatusNotFound
	}
	return fakeaws.Fail(status, string(code), fmt.Sprintf(format, args...))
}

// lookup returns the server or a not-found response. Callers hold st.mu.
func (st *transferState) lookup(id string) (*fakeServer, *fakeaws.Response) {
	srv, ok := st.servers[id]
	if !ok {
		resp := trFail(transfer.ErrCodeResourceNotFoundException, "Unknown server: %s", id)
		return nil, &resp
	}
	return srv, nil
}

func (st *transferState) listServers(req fakeaws.Request) fakeaws.Response {
	var in transfer.ListServersInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	size := st.pageSize
	if in.MaxResults != nil && int(*in.MaxResults) < size {
		size = int(*in.MaxResults)
	}
	ids, next, ok := paginate(sortedKeys(st.servers), in.NextToken, size)
	if !ok {
		return trFail(transfer.ErrCodeInvalidNextTokenException, "invalid next token")
	}
	out := transfer.ListServersOutput{NextToken: next}
	for _, id := range ids {
		s := st.servers[id]
		out.Servers = append(out.Servers, transfer.ListedServer{
			Arn:                  s.server.Arn,
			IdentityProviderType: s.server.IdentityProviderType,
			EndpointType:         s.server.EndpointType,
			LoggingRole:          s.server.LoggingRole,
			ServerID:             s.server.ServerID,
			State:                s.server.State,
			UserCount:            aws.Int64(int64(len(s.users))),
		})
	}
	return fakeaws.Respond(http.StatusOK, out)
}

func (st *transferState) describeServer(req fakeaws.Request) fakeaws.Response {
	var in transfer.DescribeServerInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	srv, fail := st.lookup(in.ServerID)
	if fail != nil {
		return *fail
	}
	described := srv.server
	described.UserCount = aws.Int64(int64(len(srv.users)))
	return fakeaws.Respond(http.StatusOK, transfer.DescribeServerOutput{Server: &described})
}

func (st *transferState) setState(state transfer.State) fakeaws.Handler {
	return func(req fakeaws.Request) fakeaws.Response {
		var in transfer.StartServerInput
		if err := req.Decode(&in); err != nil {
			return badBody(err)
		}
		st.mu.Lock()
		defer st.mu.Unlock()
		srv, fail := st.lookup(in.ServerID)
		if fail != nil {
			return *fail
		}
		srv.server.State = state
		return fakeaws.Respond(http.StatusOK, nil)
	}
}

func (st *transferState) createUser(req fakeaws.Request) fakeaws.Response {
	var in transfer.CreateUserInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	srv, fail := st.lookup(in.ServerID)
	if fail != nil {
		return *fail
	}
	if _, exists := srv.users[in.UserName]; exists {
		return trFail(transfer.ErrCodeResourceExistsException, "User already exists: %s", in.UserName)
	}
	user := &transfer.DescribedUser{
		Arn:                   st.arn("user", in.ServerID+"/"+in.UserName),
		HomeDirectory:         in.HomeDirectory,
		HomeDirectoryMappings: in.HomeDirectoryMappings,
		HomeDirectoryType:     in.HomeDirectoryType,
		Policy:                in.Policy,
		Role:                  in.Role,
		Tags:                  in.Tags,
		UserName:              in.UserName,
	}
	if in.SSHPublicKeyBody != "" {
		user.SSHPublicKeys = append(user.SSHPublicKeys, st.newKey(in.SSHPublicKeyBody))
	}
	srv.users[in.UserName] = user
	return fakeaws.Respond(http.StatusOK, transfer.CreateUserOutput{ServerID: in.ServerID, UserName: in.UserName})
}

func (st *transferState) describeUser(req fakeaws.Request) fakeaws.Response {
	var in transfer.DescribeUserInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	srv, fail := st.lookup(in.ServerID)
	if fail != nil {
		return *fail
	}
	user, ok := srv.users[in.UserName]
	if !ok {
		return trFail(transfer.ErrCodeResourceNotFoundException, "Unknown user: %s", in.UserName)
	}
	described := *user
	described.SSHPublicKeys = append([]transfer.SSHPublicKeyInfo(nil), user.SSHPublicKeys...)
	return fakeaws.Respond(http.StatusOK, transfer.DescribeUserOutput{ServerID: in.ServerID, User: &described})
}

func (st *transferState) listUsers(req fakeaws.Request) fakeaws.Response {
	var in transfer.ListUsersInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	srv, fail := st.lookup(in.ServerID)
	if fail != nil {
		return *fail
	}
	names, next, ok := paginate(sortedKeys(srv.users), in.NextToken, st.pageSize)
	if !ok {
		return trFail(transfer.ErrCodeInvalidNextTokenException, "invalid next token")
	}
	out := transfer.ListUsersOutput{ServerID: in.ServerID, NextToken: next}
	for _, name := range names {
		u := srv.users[name]
		out.Users = append(out.Users, transfer.ListedUser{
			Arn:               u.Arn,
			HomeDirectory:     u.HomeDirectory,
			HomeDirectoryType: u.HomeDirectoryType,
			Role:              u.Role,
			SSHPublicKeyCount: aws.Int64(int64(len(u.SSHPublicKeys))),
			UserName:          u.UserName,
		})
	}
	return fakeaws.Respond(http.StatusOK, out)
}

func (st *transferState) newKey(body string) transfer.SSHPublicKeyInfo {
	return transfer.SSHPublicKeyInfo{
		DateImported:     awsjson.NewTimestamp(st.now()),
		SSHPublicKeyBody: strings.TrimSpace(body),
		SSHPublicKeyID:   "key-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:17],
	}
}

func (st *transferState) importKey(req fakeaws.Request) fakeaws.Response {
	var in transfer.ImportSshPublicKeyInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	if _, err := transfer.ParseSSHPublicKey(in.SSHPublicKeyBody); err != nil {
		return trFail(transfer.ErrCodeInvalidRequestException, "Unsupported or invalid SSH public key format")
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	srv, fail := st.lookup(in.ServerID)
	if fail != nil {
		return *fail
	}
	user, ok := srv.users[in.UserName]
	if !ok {
		return trFail(transfer.ErrCodeResourceNotFoundException, "Unknown user: %s", in.UserName)
	}
	body := strings.TrimSpace(in.SSHPublicKeyBody)
	for _, k := range user.SSHPublicKeys {
		if k.SSHPublicKeyBody == body {
			return trFail(transfer.ErrCodeResourceExistsException, "Public key already exists for user %s", in.UserName)
		}
	}
	key := st.newKey(body)
	user.SSHPublicKeys = append(user.SSHPublicKeys, key)
	return fakeaws.Respond(http.StatusOK, transfer.ImportSshPublicKeyOutput{
		ServerID:       in.ServerID,
		SSHPublicKeyID: key.SSHPublicKeyID,
		UserName:       in.UserName,
	})
}

func (st *transferState) deleteKey(req fakeaws.Request) fakeaws.Response {
	var in transfer.DeleteSshPublicKeyInput
	if err := req.Decode(&in); err != nil {
		return badBody(err)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	srv, fail := st.lookup(in.ServerID)
	if fail != nil {
		return *fail
	}
	user, ok := srv.users[in.UserName]
	if !ok {
		return trFail(transfer.ErrCodeResourceNotFoundException, "Unknown user: %s", in.UserName)
	}
	for i, k := range user.SSHPublicKeys {
		if k.SSHPublicKeyID == in.SSHPublicKeyID {
			user.SSHPublicKeys = append(user.SSHPublicKeys[:i], user.SSHPublicKeys[i+1:]...)
			return fakeaws.Respond(http.StatusOK, nil)
		}
	}
	return trFail(transfer.ErrCodeResourceNotFoundException, "Unknown key: %s", in.SSHPublicKeyID)
}
