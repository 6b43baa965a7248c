package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
	"github.com/DanielPopoola/heidelpay-go/core/ports"
)

const (
	DefaultBaseURL = "https://api.heidelpay.com/"
	APIVersion     = "v1"
	DefaultLocale  = "en-US"
	DefaultTimeout = 60 * time.Second
)

// Config configures the HTTP adapter. Only PrivateKey is required.
type Config struct {
	PrivateKey string
	BaseURL    string
	Locale     string
	ClientIP   string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// HTTPClient is safe for concurrent use, including SetLocale and SetClientIP.
type HTTPClient struct {
	baseURL    string
	privateKey string
	httpClient *http.Client
	logger     *slog.Logger

	mu       sync.RWMutex
	locale   string
	clientIP string
}

func NewHTTPClient(cfg Config) *HTTPClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	locale := cfg.Locale
	if locale == "" {
		locale = DefaultLocale
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &HTTPClient{
		baseURL:    baseURL + APIVersion + "/",
		privateKey: cfg.PrivateKey,
		locale:     locale,
		clientIP:   cfg.ClientIP,
		httpClient: httpClient,
		logger:     logger,
	}
}

// SetLocale changes the language of the customer messages returned by the gateway.
func (c *HTTPClient) SetLocale(locale string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locale = locale
}

func (c *HTTPClient) SetClientIP(ip string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientIP = ip
}

func (c *HTTPClient) Locale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.locale
}

func (c *HTTPClient) Send(ctx context.Context, req *ports.Request) (*ports.Response, error) {
	fullURL := c.baseURL + strings.TrimLeft(req.URI, "/")

	var bodyReader io.Reader
	if req.Payload != nil {
		bodyReader = bytes.NewReader(req.Payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	c.setHeaders(httpReq, req)

	c.logger.Debug("sending gateway request", "method", req.Method, "uri", req.URI)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("gateway request failed", "method", req.Method, "uri", req.URI, "error", err)
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if apiErr := decodeAPIError(resp.StatusCode, body); apiErr != nil {
		c.logger.Warn("gateway returned error",
			"method", req.Method,
			"uri", req.URI,
			"status", resp.StatusCode,
			"code", apiErr.Code,
			"error_id", apiErr.ErrorID,
		)
		return nil, apiErr
	}

	c.logger.Debug("gateway request completed", "method", req.Method, "uri", req.URI, "status", resp.StatusCode)

	return &ports.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

func (c *HTTPClient) setHeaders(httpReq *http.Request, req *ports.Request) {
	c.mu.RLock()
	locale, clientIP := c.locale, c.clientIP
	c.mu.RUnlock()

	httpReq.SetBasicAuth(c.privateKey, "")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Language", locale)
	httpReq.Header.Set("SDK-TYPE", domain.SDKName)
	httpReq.Header.Set("SDK-VERSION", domain.SDKVersion)
	httpReq.Header.Set("User-Agent", domain.SDKName+" - "+domain.SDKVersion)

	if clientIP != "" {
		httpReq.Header.Set("CLIENTIP", clientIP)
	}
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("idempotency-key", req.IdempotencyKey)
	}
}
