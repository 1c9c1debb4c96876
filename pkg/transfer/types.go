package transfer

import "github.com/angelmondragon/codedeploy-go/pkg/awsjson"

type Tag struct {
	Key   string `json:"Key" validate:"required,max=128"`
	Value string `json:"Value" validate:"max=256"`
}

// EndpointDetails configures a VPC endpoint. VpcEndpointID is only used with
// EndpointTypeVPCEndpoint; the other fields only with EndpointTypeVPC.
type EndpointDetails struct {
	AddressAllocationIDs []string `json:"AddressAllocationIds,omitempty"`
	SubnetIDs            []string `json:"SubnetIds,omitempty"`
	VpcEndpointID        string   `json:"VpcEndpointId,omitempty" validate:"omitempty,len=22"`
	VpcID                string   `json:"VpcId,omitempty"`
	SecurityGroupIDs     []string `json:"SecurityGroupIds,omitempty"`
}

// IdentityProviderDetails points an API_GATEWAY server at its
// authentication endpoint.
type IdentityProviderDetails struct {
	URL            string `json:"Url,omitempty" validate:"omitempty,max=255"`
	InvocationRole string `json:"InvocationRole,omitempty" validate:"omitempty,min=20,max=2048"`
}

// HomeDirectoryMapEntry maps a visible path to an S3 target for LOGICAL
// home directories.
type HomeDirectoryMapEntry struct {
	Entry  string `json:"Entry" validate:"required,max=1024"`
	Target string `json:"Target" validate:"required,max=1024"`
}

type DescribedServer struct {
	Arn                     string                   `json:"Arn,omitempty"`
	Certificate             string                   `json:"Certificate,omitempty"`
	EndpointDetails         *EndpointDetails         `json:"EndpointDetails,omitempty"`
	EndpointType            EndpointType             `json:"EndpointType,omitempty"`
	HostKeyFingerprint      string                   `json:"HostKeyFingerprint,omitempty"`
	IdentityProviderDetails *IdentityProviderDetails `json:"IdentityProviderDetails,omitempty"`
	IdentityProviderType    IdentityProviderType     `json:"IdentityProviderType,omitempty"`
	LoggingRole             string                   `json:"LoggingRole,omitempty"`
	Protocols               []Protocol               `json:"Protocols,omitempty"`
	SecurityPolicyName      string                   `json:"SecurityPolicyName,omitempty"`
	ServerID                string                   `json:"ServerId,omitempty"`
	State                   State                    `json:"State,omitempty"`
	Tags                    []Tag                    `json:"Tags,omitempty"`
	UserCount               *int64                   `json:"UserCount,omitempty"`
}

type SSHPublicKeyInfo struct {
	DateImported     *awsjson.Timestamp `json:"DateImported,omitempty"`
	SSHPublicKeyBody string             `json:"SshPublicKeyBody,omitempty"`
	SSHPublicKeyID   string             `json:"SshPublicKeyId,omitempty"`
}

type DescribedUser struct {
	Arn                   string                  `json:"Arn,omitempty"`
	HomeDirectory         string                  `json:"HomeDirectory,omitempty"`
	HomeDirectoryMappings []HomeDirectoryMapEntry `json:"HomeDirectoryMappings,omitempty"`
	HomeDirectoryType     HomeDirectoryType       `json:"HomeDirectoryType,omitempty"`
	Policy                string                  `json:"Policy,omitempty"`
	Role                  string                  `json:"Role,omitempty"`
	SSHPublicKeys         []SSHPublicKeyInfo      `json:"SshPublicKeys,omitempty"`
	Tags                  []Tag                   `json:"Tags,omitempty"`
	UserName              string                  `json:"UserName,omitempty"`
}

type ListedServer struct {
	Arn                  string               `json:"Arn,omitempty"`
	IdentityProviderType IdentityProviderType `json:"IdentityProviderType,omitempty"`
	EndpointType         EndpointType         `json:"EndpointType,omitempty"`
	LoggingRole          string               `json:"LoggingRole,omitempty"`
	ServerID             string               `json:"ServerId,omitempty"`
	State                State                `json:"State,omitempty"`
	UserCount            *int64               `json:"UserCount,omitempty"`
}

type ListedUser struct {
	Arn               string            `json:"Arn,omitempty"`
	HomeDirectory     string            `json:"HomeDirectory,omitempty"`
	HomeDirectoryType HomeDirectoryType `json:"HomeDirectoryType,omitempty"`
	Role              string            `json:"Role,omitempty"`
	SSHPublicKeyCount *int64            `json:"SshPublicKeyCount,omitempty"`
	UserName          string            `json:"UserName,omitempty"`
}
