package ports

import (
	"context"
)

// Request is a call to the gateway. URI is relative to the API version root.
type Request struct {
	Method         string
	URI            string
	Payload        []byte
	IdempotencyKey string
}

// Response is the fully read reply of a successful call.
type Response struct {
	StatusCode int
	Body       []byte
}

// HTTPAdapter defines the behavior of the transport to the payment gateway.
// Implementations return a *domain.APIError for error responses of the gateway.
type HTTPAdapter interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}
