package domain

import (
	"regexp"
	"strings"
)

var (
	privateKeyPattern = regexp.MustCompile(`^[sp]-priv-[a-zA-Z0-9]+`)
	publicKeyPattern  = regexp.MustCompile(`^[sp]-pub-[a-zA-Z0-9]+`)
	resourceIDPattern = regexp.MustCompile(`^[sp]-([a-z]{3}|p24)-[a-z0-9]*`)
)

// IsValidPrivateKey reports whether key has the format of a gateway private key.
func IsValidPrivateKey(key string) bool {
	return privateKeyPattern.MatchString(key)
}

func IsValidPublicKey(key string) bool {
	return publicKeyPattern.MatchString(key)
}

// ValidatePrivateKey returns an SDK error when key is not a private key.
func ValidatePrivateKey(key string) error {
	if !IsValidPrivateKey(key) {
		return NewInvalidKeyError("private")
	}
	return nil
}

func ValidatePublicKey(key string) error {
	if !IsValidPublicKey(key) {
		return NewInvalidKeyError("public")
	}
	return nil
}

// ResourceTypeCode extracts the type code of an id, e.g. "crd" from "s-crd-abc".
func ResourceTypeCode(id string) (string, error) {
	match := resourceIDPattern.FindStringSubmatch(id)
	if match == nil {
		return "", NewUnknownResourceError(id)
	}
	return match[1], nil
}

// lastSegment returns the final non-empty path segment of a URL or URI.
func lastSegment(uri string) string {
	segments := strings.Split(strings.Trim(uri, "/"), "/")
	return segments[len(segments)-1]
}
