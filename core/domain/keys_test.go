package domain_test

import (
	"testing"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPrivateKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"s-priv-2a10an6aJK0Jg7sMdpu9gK7ih8pCccze", true},
		{"p-priv-2a10an6aJK0Jg7sMdpu9gK7ih8pCccze", true},
		{"s-pub-2a10ifVINFAjpQJ9qW8jBe5OJPBx6Gxa", false},
		{"x-priv-2a10an6aJK0Jg7sMdpu9gK7ih8pCccze", false},
		{"s-priv-", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsValidPrivateKey(tt.key))
		})
	}
}

func TestValidatePublicKey(t *testing.T) {
	require.NoError(t, domain.ValidatePublicKey("s-pub-2a10ifVINFAjpQJ9qW8jBe5OJPBx6Gxa"))

	err := domain.ValidatePublicKey("s-priv-2a10an6aJK0Jg7sMdpu9gK7ih8pCccze")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidKey))
}

func TestResourceTypeCode(t *testing.T) {
	tests := []struct {
		id      string
		want    string
		wantErr bool
	}{
		{id: "s-crd-9wmri5mdlqps", want: "crd"},
		{id: "p-sdd-abc123", want: "sdd"},
		{id: "s-p24-xyz", want: "p24"},
		{id: "s-ivg-", want: "ivg"},
		{id: "crd-9wmri5mdlqps", wantErr: true},
		{id: "s-CRD-9wmri5mdlqps", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			code, err := domain.ResourceTypeCode(tt.id)
			if tt.wantErr {
				assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnknownResource))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code)
		})
	}
}
