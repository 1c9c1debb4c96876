package transfer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/codedeploy-go/internal/fakeaws"
	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
)

func TestParseSSHPublicKey(t *testing.T) {
	key, err := ParseSSHPublicKey("  " + testKey + "\n")
	require.NoError(t, err)
	assert.Equal(t, "ssh-ed25519", key.Type)
	assert.Equal(t, "alice@example", key.Comment)
	assert.True(t, strings.HasPrefix(key.Fingerprint, "SHA256:"))
}

func TestParseSSHPublicKeyRejects(t *testing.T) {
	cases := map[string]string{
		"empty":    "   ",
		"garbage":  "ssh-rsa not-base64!!",
		"options":  `command="ls" ` + testKey,
		"two keys": testKey + "\n" + testKey,
	}
	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			_, err := ParseSSHPublicKey(body)
			assert.Error(t, err)
		})
	}
}

func TestRequestValidation(t *testing.T) {
	cases := []struct {
		name   string
		in     any
		fields []string
	}{
		{
			name:   "bad server id",
			in:     &DescribeServerInput{ServerID: "server-1"},
			fields: []string{"ServerId"},
		},
		{
			name:   "bad user name and key",
			in:     &ImportSshPublicKeyInput{ServerID: testServerID, UserName: "a", SSHPublicKeyBody: "not a key"},
			fields: []string{"UserName", "SshPublicKeyBody"},
		},
		{
			name:   "missing role and bad enum",
			in:     &CreateUserInput{ServerID: testServerID, UserName: "alice", HomeDirectoryType: "FLAT"},
			fields: []string{"Role", "HomeDirectoryType"},
		},
		{
			name:   "bad key id",
			in:     &DeleteSshPublicKeyInput{ServerID: testServerID, UserName: "alice", SSHPublicKeyID: "key-1"},
			fields: []string{"SshPublicKeyId"},
		},
		{
			name:   "bad protocol",
			in:     &CreateServerInput{Protocols: []Protocol{ProtocolSFTP, "SCP"}},
			fields: []string{"Protocols[1]"},
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := awsjson.ValidateRequest(tc.in)
			require.Error(t, err)
			details, ok := pkgerrors.As(err).Details().(map[string]string)
			require.True(t, ok)
			for _, field := range tc.fields {
				assert.Contains(t, details, field)
			}
		})
	}
}

func TestValidRequestsPass(t *testing.T) {
	assert.NoError(t, awsjson.ValidateRequest(&ImportSshPublicKeyInput{ServerID: testServerID, UserName: "alice", SSHPublicKeyBody: testKey}))
	assert.NoError(t, awsjson.ValidateRequest(&UpdateUserInput{ServerID: testServerID, UserName: "alice_01"}))
	assert.NoError(t, awsjson.ValidateRequest(&CreateServerInput{IdentityProviderType: IdentityProviderTypeAPIGateway}))
}

func TestClientValidatesWhenEnabled(t *testing.T) {
	srv := fakeaws.New(nil)
	client := newTestClient(t, srv, awsjson.WithValidation(true))

	_, err := client.ImportSshPublicKey(context.Background(), &ImportSshPublicKeyInput{ServerID: testServerID, UserName: "alice", SSHPublicKeyBody: "nope"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
	assert.Empty(t, srv.Requests())
}

func TestEnumsRoundTrip(t *testing.T) {
	for _, v := range validIdentityProviderTypes {
		got, err := ParseIdentityProviderType(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, v := range validHomeDirectoryTypes {
		got, err := ParseHomeDirectoryType(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, v := range validEndpointTypes {
		got, err := ParseEndpointType(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, v := range validStates {
		got, err := ParseState(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, v := range validProtocols {
		got, err := ParseProtocol(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, "SERVICE_MANAGED", IdentityProviderTypeServiceManaged.String())
	assert.Equal(t, "API_GATEWAY", IdentityProviderTypeAPIGateway.String())
	assert.Equal(t, "PATH", HomeDirectoryTypePath.String())
	assert.Equal(t, "LOGICAL", HomeDirectoryTypeLogical.String())

	_, err := ParseIdentityProviderType("LDAP")
	assert.Error(t, err)
	_, err = ParseHomeDirectoryType("path")
	assert.Error(t, err)
}
