package awsjson

import (
	"fmt"
	"strings"
)

const (
	// DefaultRegion is used when a client is built without a region.
	DefaultRegion = "us-east-1"

	defaultJSONVersion = "1.1"
)

// ServiceInfo names a JSON-protocol service and how its requests are addressed.
type ServiceInfo struct {
	// Name is used in logs, metrics and service errors.
	Name string
	// SigningName is the SigV4 service name; defaults to EndpointPrefix.
	SigningName string
	// EndpointPrefix is the host label used to build regional endpoints.
	EndpointPrefix string
	// TargetPrefix is prepended to the operation name in X-Amz-Target.
	TargetPrefix string
	APIVersion   string
	// JSONVersion selects application/x-amz-json-{JSONVersion}; defaults to 1.1.
	JSONVersion string
}

func (s ServiceInfo) signingName() string {
	if s.SigningName != "" {
		return s.SigningName
	}
	return s.EndpointPrefix
}

func (s ServiceInfo) contentType() string {
	version := s.JSONVersion
	if version == "" {
		version = defaultJSONVersion
	}
	return "application/x-amz-json-" + version
}

func (s ServiceInfo) target(operation string) string {
	return s.TargetPrefix + "." + operation
}

func (s ServiceInfo) validate() error {
	var missing []string
	if strings.TrimSpace(s.Name) == "" {
		missing = append(missing, "Name")
	}
	if strings.TrimSpace(s.EndpointPrefix) == "" {
		missing = append(missing, "EndpointPrefix")
	}
	if strings.TrimSpace(s.TargetPrefix) == "" {
		missing = append(missing, "TargetPrefix")
	}
	if len(missing) > 0 {
		return fmt.Errorf("service info missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// ResolveEndpoint returns the public HTTPS endpoint of a service in region.
// China regions live under amazonaws.com.cn.
func ResolveEndpoint(endpointPrefix, region string) string {
	region = strings.TrimSpace(region)
	if region == "" {
		region = DefaultRegion
	}
	suffix := "amazonaws.com"
	if strings.HasPrefix(region, "cn-") {
		suffix = "amazonaws.com.cn"
	}
	return fmt.Sprintf("https://%s.%s.%s", endpointPrefix, region, suffix)
}
