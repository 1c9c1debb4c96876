package transfer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/ssh"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

var (
	serverIDPattern = regexp.MustCompile(`^s-([0-9a-f]{17})$`)
	userNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_-]{2,31}$`)
	keyIDPattern    = regexp.MustCompile(`^key-[0-9a-f]{17}$`)
)

func init() {
	awsjson.RegisterValidation("serverid", matchString(serverIDPattern))
	awsjson.RegisterValidation("username", matchString(userNamePattern))
	awsjson.RegisterValidation("sshkeyid", matchString(keyIDPattern))
	awsjson.RegisterValidation("sshkey", func(fl validator.FieldLevel) bool {
		body := fl.Field().String()
		if body == "" {
			return true
		}
		_, err := ParseSSHPublicKey(body)
		return err == nil
	})
}

// matchString accepts empty values so optional fields pass; pair with
// required where the field is mandatory.
func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || re.MatchString(value)
	}
}

// SSHPublicKey is a parsed authorized_keys line.
type SSHPublicKey struct {
	Type        string
	Comment     string
	Fingerprint string
	Key         ssh.PublicKey
}

// ParseSSHPublicKey parses a single OpenSSH public key in authorized_keys
// format. Options before the key type are rejected; Transfer Family only
// stores the key itself.
func ParseSSHPublicKey(body string) (*SSHPublicKey, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, fmt.Errorf("ssh public key is empty")
	}
	key, comment, options, rest, err := ssh.ParseAuthorizedKey([]byte(trimmed))
	if err != nil {
		return nil, fmt.Errorf("parse ssh public key: %w", err)
	}
	if len(options) > 0 {
		return nil, fmt.Errorf("ssh public key must not carry options")
	}
	if len(strings.TrimSpace(string(rest))) > 0 {
		return nil, fmt.Errorf("expected a single ssh public key")
	}
	return &SSHPublicKey{
		Type:        key.Type(),
		Comment:     comment,
		Fingerprint: ssh.FingerprintSHA256(key),
		Key:         key,
	}, nil
}
