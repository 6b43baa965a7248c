package domain

import (
	"errors"
	"fmt"
)

// SDKError represents a usage error detected before a request reaches the gateway
type SDKError struct {
	Code    string
	Message string
	Err     error
}

func (e *SDKError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *SDKError) Unwrap() error {
	return e.Err
}

// Retryable interface for errors that can be retried
type Retryable interface {
	IsRetryable() bool
}

const (
	ErrCodeInvalidKey           = "INVALID_KEY"
	ErrCodeMissingID            = "MISSING_ID"
	ErrCodeInvalidArgument      = "INVALID_ARGUMENT"
	ErrCodeUnsupportedOperation = "UNSUPPORTED_OPERATION"
	ErrCodeUnknownResource      = "UNKNOWN_RESOURCE"
	ErrCodeSerialization        = "SERIALIZATION"
	ErrCodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
)

func NewInvalidKeyError(kind string) *SDKError {
	return &SDKError{
		Code:    ErrCodeInvalidKey,
		Message: fmt.Sprintf("invalid %s key format", kind),
	}
}

func NewMissingIDError(resource string) *SDKError {
	return &SDKError{
		Code:    ErrCodeMissingID,
		Message: fmt.Sprintf("%s id is required", resource),
	}
}

func NewInvalidArgumentError(argument string, err error) *SDKError {
	return &SDKError{
		Code:    ErrCodeInvalidArgument,
		Message: fmt.Sprintf("invalid argument %s", argument),
		Err:     err,
	}
}

func NewUnsupportedOperationError(typePath, operation string) *SDKError {
	return &SDKError{
		Code:    ErrCodeUnsupportedOperation,
		Message: fmt.Sprintf("payment type %s does not support %s", typePath, operation),
	}
}

func NewUnknownResourceError(id string) *SDKError {
	return &SDKError{
		Code:    ErrCodeUnknownResource,
		Message: fmt.Sprintf("cannot resolve resource type of %q", id),
	}
}

func NewSerializationError(err error) *SDKError {
	return &SDKError{
		Code:    ErrCodeSerialization,
		Message: "could not serialize resource",
		Err:     err,
	}
}

func NewTransactionNotFoundError(transaction, paymentID string) *SDKError {
	return &SDKError{
		Code:    ErrCodeTransactionNotFound,
		Message: fmt.Sprintf("payment %s has no %s", paymentID, transaction),
	}
}

// IsErrorCode checks if an error is an SDKError with a specific code
func IsErrorCode(err error, code string) bool {
	var sdkErr *SDKError
	if errors.As(err, &sdkErr) {
		return sdkErr.Code == code
	}
	return false
}

const (
	defaultMerchantMessage = "The payment api returned an error!"
	defaultClientMessage   = "The payment api returned an error!"
)

// APIError is an error response of the gateway. ClientMessage is safe to show to customers.
type APIError struct {
	Code            string
	MerchantMessage string
	ClientMessage   string
	ErrorID         string
	StatusCode      int
}

func NewAPIError(code, merchantMessage, clientMessage, errorID string, statusCode int) *APIError {
	if merchantMessage == "" {
		merchantMessage = defaultMerchantMessage
	}
	if clientMessage == "" {
		clientMessage = defaultClientMessage
	}
	return &APIError{
		Code:            code,
		MerchantMessage: merchantMessage,
		ClientMessage:   clientMessage,
		ErrorID:         errorID,
		StatusCode:      statusCode,
	}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("heidelpay api error [%s]: %s (status: %d)", e.Code, e.MerchantMessage, e.StatusCode)
}

func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// IsAPIErrorCode reports whether err is an APIError carrying the given vendor code.
func IsAPIErrorCode(err error, code string) bool {
	apiErr, ok := IsAPIError(err)
	return ok && apiErr.Code == code
}
