package transfer

import (
	"context"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type CreateServerInput struct {
	Certificate             string                   `json:"Certificate,omitempty" validate:"max=1600"`
	EndpointDetails         *EndpointDetails         `json:"EndpointDetails,omitempty"`
	EndpointType            EndpointType             `json:"EndpointType,omitempty" validate:"enum"`
	HostKey                 string                   `json:"HostKey,omitempty" validate:"max=4096"`
	IdentityProviderDetails *IdentityProviderDetails `json:"IdentityProviderDetails,omitempty"`
	IdentityProviderType    IdentityProviderType     `json:"IdentityProviderType,omitempty" validate:"enum"`
	LoggingRole             string                   `json:"LoggingRole,omitempty" validate:"omitempty,min=20,max=2048"`
	Protocols               []Protocol               `json:"Protocols,omitempty" validate:"max=3,dive,enum"`
	SecurityPolicyName      string                   `json:"SecurityPolicyName,omitempty" validate:"max=100"`
	Tags                    []Tag                    `json:"Tags,omitempty" validate:"max=50,dive"`
}

type CreateServerOutput struct {
	ServerID string `json:"ServerId,omitempty"`
}

// CreateServer provisions a server. HostKey is a private key and never logged.
func (c *Client) CreateServer(ctx context.Context, in *CreateServerInput, opts ...awsjson.CallOption) (*CreateServerOutput, error) {
	out := &CreateServerOutput{}
	if err := c.invoke(ctx, "CreateServer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteServerInput struct {
	ServerID string `json:"ServerId" validate:"required,serverid"`
}

type DeleteServerOutput struct{}

func (c *Client) DeleteServer(ctx context.Context, in *DeleteServerInput, opts ...awsjson.CallOption) (*DeleteServerOutput, error) {
	out := &DeleteServerOutput{}
	if err := c.invoke(ctx, "DeleteServer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type DescribeServerInput struct {
	ServerID string `json:"ServerId" validate:"required,serverid"`
}

type DescribeServerOutput struct {
	Server *DescribedServer `json:"Server,omitempty"`
}

func (c *Client) DescribeServer(ctx context.Context, in *DescribeServerInput, opts ...awsjson.CallOption) (*DescribeServerOutput, error) {
	out := &DescribeServerOutput{}
	if err := c.invoke(ctx, "DescribeServer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListServersInput struct {
	MaxResults *int64 `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=1000"`
	NextToken  string `json:"NextToken,omitempty" validate:"max=6144"`
}

type ListServersOutput struct {
	NextToken string         `json:"NextToken,omitempty"`
	Servers   []ListedServer `json:"Servers,omitempty"`
}

func (c *Client) ListServers(ctx context.Context, in *ListServersInput, opts ...awsjson.CallOption) (*ListServersOutput, error) {
	out := &ListServersOutput{}
	if err := c.invoke(ctx, "ListServers", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type StartServerInput struct {
	ServerID string `json:"ServerId" validate:"required,serverid"`
}

type StartServerOutput struct{}

// StartServer moves an OFFLINE server to ONLINE. The call returns while the
// server is still STARTING.
func (c *Client) StartServer(ctx context.Context, in *StartServerInput, opts ...awsjson.CallOption) (*StartServerOutput, error) {
	out := &StartServerOutput{}
	if err := c.invoke(ctx, "StartServer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type StopServerInput struct {
	ServerID string `json:"ServerId" validate:"required,serverid"`
}

type StopServerOutput struct{}

func (c *Client) StopServer(ctx context.Context, in *StopServerInput, opts ...awsjson.CallOption) (*StopServerOutput, error) {
	out := &StopServerOutput{}
	if err := c.invoke(ctx, "StopServer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateServerInput struct {
	Certificate             string                   `json:"Certificate,omitempty" validate:"max=1600"`
	EndpointDetails         *EndpointDetails         `json:"EndpointDetails,omitempty"`
	EndpointType            EndpointType             `json:"EndpointType,omitempty" validate:"enum"`
	HostKey                 string                   `json:"HostKey,omitempty" validate:"max=4096"`
	IdentityProviderDetails *IdentityProviderDetails `json:"IdentityProviderDetails,omitempty"`
	LoggingRole             string                   `json:"LoggingRole,omitempty" validate:"max=2048"`
	Protocols               []Protocol               `json:"Protocols,omitempty" validate:"max=3,dive,enum"`
	SecurityPolicyName      string                   `json:"SecurityPolicyName,omitempty" validate:"max=100"`
	ServerID                string                   `json:"ServerId" validate:"required,serverid"`
}

type UpdateServerOutput struct {
	ServerID string `json:"ServerId,omitempty"`
}

func (c *Client) UpdateServer(ctx context.Context, in *UpdateServerInput, opts ...awsjson.CallOption) (*UpdateServerOutput, error) {
	out := &UpdateServerOutput{}
	if err := c.invoke(ctx, "UpdateServer", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type TestIdentityProviderInput struct {
	ServerID       string   `json:"ServerId" validate:"required,serverid"`
	ServerProtocol Protocol `json:"ServerProtocol,omitempty" validate:"enum"`
	UserName       string   `json:"UserName" validate:"required,username"`
	UserPassword   string   `json:"UserPassword,omitempty" validate:"max=1024"`
}

type TestIdentityProviderOutput struct {
	Response   string `json:"Response,omitempty"`
	StatusCode int    `json:"StatusCode"`
	Message    string `json:"Message,omitempty"`
	URL        string `json:"Url,omitempty"`
}

// TestIdentityProvider checks an API_GATEWAY server's authentication setup
// with the given credentials.
func (c *Client) TestIdentityProvider(ctx context.Context, in *TestIdentityProviderInput, opts ...awsjson.CallOption) (*TestIdentityProviderOutput, error) {
	out := &TestIdentityProviderOutput{}
	if err := c.invoke(ctx, "TestIdentityProvider", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type TagResourceInput struct {
	Arn  string `json:"Arn" validate:"required,min=20,max=1600"`
	Tags []Tag  `json:"Tags" validate:"required,min=1,max=50,dive"`
}

type TagResourceOutput struct{}

func (c *Client) TagResource(ctx context.Context, in *TagResourceInput, opts ...awsjson.CallOption) (*TagResourceOutput, error) {
	out := &TagResourceOutput{}
	if err := c.invoke(ctx, "TagResource", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type UntagResourceInput struct {
	Arn     string   `json:"Arn" validate:"required,min=20,max=1600"`
	TagKeys []string `json:"TagKeys" validate:"required,min=1,max=50,dive,max=128"`
}

type UntagResourceOutput struct{}

func (c *Client) UntagResource(ctx context.Context, in *UntagResourceInput, opts ...awsjson.CallOption) (*UntagResourceOutput, error) {
	out := &UntagResourceOutput{}
	if err := c.invoke(ctx, "UntagResource", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

type ListTagsForResourceInput struct {
	Arn        string `json:"Arn" validate:"required,min=20,max=1600"`
	MaxResults *int64 `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=1000"`
	NextToken  string `json:"NextToken,omitempty" validate:"max=6144"`
}

type ListTagsForResourceOutput struct {
	Arn       string `json:"Arn,omitempty"`
	NextToken string `json:"NextToken,omitempty"`
	Tags      []Tag  `json:"Tags,omitempty"`
}

func (c *Client) ListTagsForResource(ctx context.Context, in *ListTagsForResourceInput, opts ...awsjson.CallOption) (*ListTagsForResourceOutput, error) {
	out := &ListTagsForResourceOutput{}
	if err := c.invoke(ctx, "ListTagsForResource", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
