package transfer

import "fmt"

// EndpointType is how a server is reached.
type EndpointType string

const (
	EndpointTypePublic      EndpointType = "PUBLIC"
	EndpointTypeVPC         EndpointType = "VPC"
	EndpointTypeVPCEndpoint EndpointType = "VPC_ENDPOINT"
)

var validEndpointTypes = []EndpointType{
	EndpointTypePublic,
	EndpointTypeVPC,
	EndpointTypeVPCEndpoint,
}

func (e EndpointType) String() string {
	return string(e)
}

// IsValid reports whether the value is known.
func (e EndpointType) IsValid() bool {
	for _, candidate := range validEndpointTypes {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEndpointType converts a wire value into an EndpointType.
func ParseEndpointType(value string) (EndpointType, error) {
	for _, candidate := range validEndpointTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid endpoint type %q", value)
}

// HomeDirectoryType selects how a user's home directory is presented.
type HomeDirectoryType string

const (
	HomeDirectoryTypePath    HomeDirectoryType = "PATH"
	HomeDirectoryTypeLogical HomeDirectoryType = "LOGICAL"
)

var validHomeDirectoryTypes = []HomeDirectoryType{
	HomeDirectoryTypePath,
	HomeDirectoryTypeLogical,
}

func (h HomeDirectoryType) String() string {
	return string(h)
}

// IsValid reports whether the value is known.
func (h HomeDirectoryType) IsValid() bool {
	for _, candidate := range validHomeDirectoryTypes {
		if candidate == h {
			return true
		}
	}
	return false
}

// ParseHomeDirectoryType converts a wire value into a HomeDirectoryType.
func ParseHomeDirectoryType(value string) (HomeDirectoryType, error) {
	for _, candidate := range validHomeDirectoryTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid home directory type %q", value)
}

// IdentityProviderType is the authentication mode of a server.
type IdentityProviderType string

const (
	IdentityProviderTypeServiceManaged IdentityProviderType = "SERVICE_MANAGED"
	IdentityProviderTypeAPIGateway     IdentityProviderType = "API_GATEWAY"
)

var validIdentityProviderTypes = []IdentityProviderType{
	IdentityProviderTypeServiceManaged,
	IdentityProviderTypeAPIGateway,
}

func (i IdentityProviderType) String() string {
	return string(i)
}

// IsValid reports whether the value is known.
func (i IdentityProviderType) IsValid() bool {
	for _, candidate := range validIdentityProviderTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseIdentityProviderType converts a wire value into an IdentityProviderType.
func ParseIdentityProviderType(value string) (IdentityProviderType, error) {
	for _, candidate := range validIdentityProviderTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid identity provider type %q", value)
}

// Protocol is a file transfer protocol a server accepts.
type Protocol string

const (
	ProtocolSFTP Protocol = "SFTP"
	ProtocolFTP  Protocol = "FTP"
	ProtocolFTPS Protocol = "FTPS"
)

var validProtocols = []Protocol{
	ProtocolSFTP,
	ProtocolFTP,
	ProtocolFTPS,
}

func (p Protocol) String() string {
	return string(p)
}

// IsValid reports whether the value is known.
func (p Protocol) IsValid() bool {
	for _, candidate := range validProtocols {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProtocol converts a wire value into a Protocol.
func ParseProtocol(value string) (Protocol, error) {
	for _, candidate := range validProtocols {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid protocol %q", value)
}

// State is the condition of a server.
type State string

const (
	StateOffline     State = "OFFLINE"
	StateOnline      State = "ONLINE"
	StateStarting    State = "STARTING"
	StateStopping    State = "STOPPING"
	StateStartFailed State = "START_FAILED"
	StateStopFailed  State = "STOP_FAILED"
)

var validStates = []State{
	StateOffline,
	StateOnline,
	StateStarting,
	StateStopping,
	StateStartFailed,
	StateStopFailed,
}

func (s State) String() string {
	return string(s)
}

// IsValid reports whether the value is known.
func (s State) IsValid() bool {
	for _, candidate := range validStates {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseState converts a wire value into a State.
func ParseState(value string) (State, error) {
	for _, candidate := range validStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid state %q", value)
}
