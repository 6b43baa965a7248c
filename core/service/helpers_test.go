package service_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DanielPopoola/heidelpay-go/core/ports"
	"github.com/DanielPopoola/heidelpay-go/core/ports/mocks"
	"github.com/DanielPopoola/heidelpay-go/core/service"
	"github.com/stretchr/testify/mock"
)

type testServices struct {
	adapter   *mocks.MockHTTPAdapter
	resources *service.ResourceService
	payments  *service.PaymentService
	webhooks  *service.WebhookService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	adapter := mocks.NewMockHTTPAdapter(t)
	resources := service.NewResourceService(adapter, nil)
	return &testServices{
		adapter:   adapter,
		resources: resources,
		payments:  service.NewPaymentService(resources, nil),
		webhooks:  service.NewWebhookService(resources, nil),
	}
}

// request matches a gateway call by method and URI.
func request(method, uri string) any {
	return mock.MatchedBy(func(r *ports.Request) bool {
		return r.Method == method && r.URI == uri
	})
}

// post matches a POST to uri whose payload satisfies check.
func post(uri string, check func(payload map[string]any) bool) any {
	return mock.MatchedBy(func(r *ports.Request) bool {
		if r.Method != http.MethodPost || r.URI != uri {
			return false
		}
		var payload map[string]any
		if err := json.Unmarshal(r.Payload, &payload); err != nil {
			return false
		}
		return check(payload)
	})
}

func respond(body string) *ports.Response {
	return &ports.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

const paymentBody = `{
	"id": "s-pay-1",
	"state": {"id": 3},
	"amount": {"total": 100, "charged": 60, "canceled": 10, "remaining": 30, "currency": "EUR"},
	"resources": {"paymentId": "s-pay-1", "typeId": "s-crd-1"},
	"transactions": [
		{"type": "authorize", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/authorize/s-aut-1", "amount": "100.0000"},
		{"type": "charge", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-1", "amount": "40.0000"},
		{"type": "charge", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-2", "amount": "20.0000"},
		{"type": "cancel-charge", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-1/cancels/s-cnl-1", "amount": "10.0000"}
	]
}`
