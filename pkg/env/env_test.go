package env

import "testing"

func TestGetFallback(t *testing.T) {
	t.Setenv("DEPLOYKIT_TEST_VALUE", "")
	if got := Get("DEPLOYKIT_TEST_VALUE", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv("DEPLOYKIT_TEST_VALUE", "set")
	if got := Get("DEPLOYKIT_TEST_VALUE", "fallback"); got != "set" {
		t.Fatalf("expected set value, got %q", got)
	}
}

func TestFirstPrefersEarlierKeys(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")
	if got := First("us-east-1", "AWS_REGION", "AWS_DEFAULT_REGION"); got != "eu-west-1" {
		t.Fatalf("expected eu-west-1, got %q", got)
	}
	t.Setenv("AWS_REGION", "ap-south-1")
	if got := First("us-east-1", "AWS_REGION", "AWS_DEFAULT_REGION"); got != "ap-south-1" {
		t.Fatalf("expected ap-south-1, got %q", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("DEPLOYKIT_TEST_BOOL", "true")
	if !Bool("DEPLOYKIT_TEST_BOOL", false) {
		t.Fatalf("expected true")
	}
	t.Setenv("DEPLOYKIT_TEST_BOOL", "nope")
	if Bool("DEPLOYKIT_TEST_BOOL", false) {
		t.Fatalf("malformed bool should fall back")
	}
}
