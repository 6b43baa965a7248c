package gateway_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/DanielPopoola/heidelpay-go/adapters/gateway"
	"github.com/DanielPopoola/heidelpay-go/core/domain"
	"github.com/DanielPopoola/heidelpay-go/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "s-priv-2a10an6aJK0Jg7sMdpu9gK7ih8pCccze"

func newTestClient(t *testing.T, handler http.HandlerFunc) *gateway.HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return gateway.NewHTTPClient(gateway.Config{
		PrivateKey: testKey,
		BaseURL:    server.URL,
	})
}

func TestHTTPClient_Send_SetsHeaders(t *testing.T) {
	var got *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"s-pay-1"}`))
	})
	client.SetClientIP("127.0.0.1")

	_, err := client.Send(context.Background(), &ports.Request{
		Method:         http.MethodPost,
		URI:            "payments/charges",
		Payload:        []byte(`{}`),
		IdempotencyKey: "idem-key",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte(testKey+":"))
	assert.Equal(t, wantAuth, got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, gateway.DefaultLocale, got.Header.Get("Accept-Language"))
	assert.Equal(t, domain.SDKName, got.Header.Get("SDK-TYPE"))
	assert.Equal(t, domain.SDKVersion, got.Header.Get("SDK-VERSION"))
	assert.Equal(t, "127.0.0.1", got.Header.Get("CLIENTIP"))
	assert.Equal(t, "idem-key", got.Header.Get("idempotency-key"))
}

func TestHTTPClient_Send_BuildsVersionedURL(t *testing.T) {
	var method, path string
	var body []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := client.Send(context.Background(), &ports.Request{
		Method:  http.MethodPut,
		URI:     "/customers/s-cst-1",
		Payload: []byte(`{"firstname":"Max"}`),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/v1/customers/s-cst-1", path)
	assert.JSONEq(t, `{"firstname":"Max"}`, string(body))
}

func TestHTTPClient_Send_SetLocale(t *testing.T) {
	var locale string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		locale = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte(`{}`))
	})
	client.SetLocale("de-DE")

	_, err := client.Send(context.Background(), &ports.Request{Method: http.MethodGet, URI: "keypair"})
	require.NoError(t, err)

	assert.Equal(t, "de-DE", locale)
	assert.Equal(t, "de-DE", client.Locale())
}

func TestHTTPClient_SettingsChangeDuringSend(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			client.SetLocale("de-DE")
			client.SetClientIP(fmt.Sprintf("10.0.0.%d", i))
		}()
		go func() {
			defer wg.Done()
			_, err := client.Send(context.Background(), &ports.Request{Method: http.MethodGet, URI: "keypair"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, "de-DE", client.Locale())
}

func TestHTTPClient_Send_DecodesErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantStatus int
		wantClient string
	}{
		{
			name:   "error status with error body",
			status: http.StatusBadRequest,
			body: `{"id":"s-err-1","url":"https://api.heidelpay.com/v1/payments/charges","errors":[
				{"code":"API.330.100.008","merchantMessage":"Card expired","customerMessage":"Your card has expired."}]}`,
			wantCode:   "API.330.100.008",
			wantStatus: http.StatusBadRequest,
			wantClient: "Your card has expired.",
		},
		{
			name:       "success status with error body",
			status:     http.StatusOK,
			body:       `{"id":"s-err-2","errors":[{"code":"API.340.100.014","merchantMessage":"already canceled"}]}`,
			wantCode:   domain.APIErrorAlreadyCanceled,
			wantStatus: http.StatusOK,
			wantClient: "The payment api returned an error!",
		},
		{
			name:       "error status without body",
			status:     http.StatusBadGateway,
			body:       ``,
			wantCode:   "",
			wantStatus: http.StatusBadGateway,
			wantClient: "The payment api returned an error!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			resp, err := client.Send(context.Background(), &ports.Request{Method: http.MethodGet, URI: "payments/s-pay-1"})

			require.Error(t, err)
			assert.Nil(t, resp)

			apiErr, ok := domain.IsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantClient, apiErr.ClientMessage)
		})
	}
}

func TestHTTPClient_Send_EmptyErrorsIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"s-pay-1","errors":[]}`))
	})

	resp, err := client.Send(context.Background(), &ports.Request{Method: http.MethodGet, URI: "payments/s-pay-1"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
