package transfer

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type CreateUserInput struct {
	HomeDirectory         string                  `json:"HomeDirectory,omitempty" validate:"max=1024"`
	HomeDirectoryType     HomeDirectoryType       `json:"HomeDirectoryType,omitempty" validate:"enum"`
	HomeDirectoryMappings []HomeDirectoryMapEntry `json:"HomeDirectoryMappings,omitempty" validate:"max=50,dive"`
	Policy                string                  `json:"Policy,omitempty" validate:"max=2048"`
	Role                  string                  `json:"Role" validate:"required,min=20,max=2048"`
	ServerID              string                  `json:"ServerId" validate:"required,serverid"`
	SSHPublicKeyBody      string                  `json:"SshPublicKeyBody,omitempty" validate:"max=2048,sshkey"`
	Tags                  []Tag                   `json:"Tags,omitempty" validate:"max=50,dive"`
	UserName              string                  `json:"UserName" validate:"required,username"`
}

type CreateUserOutput struct {
	ServerID string `json:"ServerId,omitempty"`
	UserName string `json:"UserName,omitempty"`
}

func (c *Client) CreateUser(ctx context.Context, in *CreateUserInput, opts ...awsjson.CallOption) (*CreateUserOutput, error) {
	out := &CreateUserOutput{}
	if err := c.invoke(ctx, "CreateUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteUserInput struct {
	ServerID string `json:"ServerId" validate:"required,serverid"`
	UserName string `json:"UserName" validate:"required,username"`
}

type DeleteUserOutput struct{}

func (c *Client) DeleteUser(ctx context.Context, in *DeleteUserInput, opts ...awsjson.CallOption) (*DeleteUserOutput, error) {
	out := &DeleteUserOutput{}
	if err := c.invoke(ctx, "DeleteUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeUserInput struct {
	ServerID string `json:"ServerId" validate:"required,serverid"`
	UserName string `json:"UserName" validate:"required,username"`
}

type DescribeUserOutput struct {
	ServerID string         `json:"ServerId,omitempty"`
	User     *DescribedUser `json:"User,omitempty"`
}

func (c *Client) DescribeUser(ctx context.Context, in *DescribeUserInput, opts ...awsjson.CallOption) (*DescribeUserOutput, error) {
	out := &DescribeUserOutput{}
	if err := c.invoke(ctx, "DescribeUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListUsersInput struct {
	MaxResults *int64 `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=1000"`
	NextToken  string `json:"NextToken,omitempty" validate:"max=6144"`
	ServerID   string `json:"ServerId" validate:"required,serverid"`
}

type ListUsersOutput struct {
	NextToken string       `json:"NextToken,omitempty"`
	ServerID  string       `json:"ServerId,omitempty"`
	Users     []ListedUser `json:"Users,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context, in *ListUsersInput, opts ...awsjson.CallOption) (*ListUsersOutput, error) {
	out := &ListUsersOutput{}
	if err := c.invoke(ctx, "ListUsers", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateUserInput struct {
	HomeDirectory         string                  `json:"HomeDirectory,omitempty" validate:"max=1024"`
	HomeDirectoryType     HomeDirectoryType       `json:"HomeDirectoryType,omitempty" validate:"enum"`
	HomeDirectoryMappings []HomeDirectoryMapEntry `json:"HomeDirectoryMappings,omitempty" validate:"max=50,dive"`
	Policy                string                  `json:"Policy,omitempty" validate:"max=2048"`
	Role                  string                  `json:"Role,omitempty" validate:"omitempty,min=20,max=2048"`
	ServerID              string                  `json:"ServerId" validate:"required,serverid"`
	UserName              string                  `json:"UserName" validate:"required,username"`
}

type UpdateUserOutput struct {
	ServerID string `json:"ServerId,omitempty"`
	UserName string `json:"UserName,omitempty"`
}

func (c *Client) UpdateUser(ctx context.Context, in *UpdateUserInput, opts ...awsjson.CallOption) (*UpdateUserOutput, error) {
	out := &UpdateUserOutput{}
	if err := c.invoke(ctx, "UpdateUser", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ImportSshPublicKeyInput attaches a public key to a service-managed user.
type ImportSshPublicKeyInput struct {
	ServerID         string `json:"ServerId" validate:"required,serverid"`
	SSHPublicKeyBody string `json:"SshPublicKeyBody" validate:"required,max=2048,sshkey"`
	UserName         string `json:"UserName" validate:"required,username"`
}

type ImportSshPublicKeyOutput struct {
	ServerID       string `json:"ServerId,omitempty"`
	SSHPublicKeyID string `json:"SshPublicKeyId,omitempty"`
	UserName       string `json:"UserName,omitempty"`
}

func (c *Client) ImportSshPublicKey(ctx context.Context, in *ImportSshPublicKeyInput, opts ...awsjson.CallOption) (*ImportSshPublicKeyOutput, error) {
	out := &ImportSshPublicKeyOutput{}
	if err := c.invoke(ctx, "ImportSshPublicKey", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteSshPublicKeyInput struct {
	ServerID       string `json:"ServerId" validate:"required,serverid"`
	SSHPublicKeyID string `json:"SshPublicKeyId" validate:"required,sshkeyid"`
	UserName       string `json:"UserName" validate:"required,username"`
}

type DeleteSshPublicKeyOutput struct{}

func (c *Client) DeleteSshPublicKey(ctx context.Context, in *DeleteSshPublicKeyInput, opts ...awsjson.CallOption) (*DeleteSshPublicKeyOutput, error) {
	out := &DeleteSshPublicKeyOutput{}
	if err := c.invoke(ctx, "DeleteSshPublicKey", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// ListServersPages calls fn for every page of ListServers.
func (c *Client) ListServersPages(ctx context.Context, in *ListServersInput, fn func(*ListServersOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListServersInput{}
	if in != nil {
		req = *in
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sent := req.NextToken
		out, err := c.ListServers(ctx, &req, opts...)
		if err != nil {
			return err
		}
		last := out.NextToken == "" || out.NextToken == sent
		if !fn(out, last) || last {
			return nil
		}
		req.NextToken = out.NextToken
	}
}

// ListUsersPages calls fn for every page of ListUsers.
func (c *Client) ListUsersPages(ctx context.Context, in *ListUsersInput, fn func(*ListUsersOutput, bool) bool, opts ...awsjson.CallOption) error {
	req := ListUsersInput{}
	if in != nil {
		req = *in
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		sent := req.NextToken
		out, err := c.ListUsers(ctx, &req, opts...)
		if err != nil {
			return err
		}
		last := out.NextToken == "" || out.NextToken == sent
		if !fn(out, last) || last {
			return nil
		}
		req.NextToken = out.NextToken
	}
}
