package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
)

type errorDetail struct {
	Code            string `json:"code"`
	MerchantMessage string `json:"merchantMessage"`
	CustomerMessage string `json:"customerMessage"`
}

// ErrorResponse is the body the gateway sends along with a failed call.
type ErrorResponse struct {
	ID        string        `json:"id"`
	URL       string        `json:"url"`
	Timestamp string        `json:"timestamp"`
	Errors    []errorDetail `json:"errors"`
}

// decodeAPIError returns nil when the response is a success. The gateway may
// report errors with a 2xx status, so the body is inspected as well.
func decodeAPIError(statusCode int, body []byte) *domain.APIError {
	var errResp ErrorResponse
	parsed := len(body) > 0 && json.Unmarshal(body, &errResp) == nil

	if parsed && len(errResp.Errors) > 0 {
		first := errResp.Errors[0]
		return domain.NewAPIError(first.Code, first.MerchantMessage, first.CustomerMessage, errResp.ID, statusCode)
	}

	if statusCode >= 400 {
		return domain.NewAPIError("", fmt.Sprintf("gateway returned status %d: %s", statusCode, string(body)), "", errResp.ID, statusCode)
	}

	return nil
}
