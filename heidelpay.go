// Package heidelpay is a client for the heidelpay payment API.
//
// A Heidelpay value holds the merchant's private key and routes every call
// through one HTTP adapter:
//
//	hp, err := heidelpay.New("s-priv-...")
//	card := domain.NewCard("4711100000000000", "03/2030")
//	auth, err := hp.Authorize(ctx, heidelpay.AuthorizeCommand{
//		TransactionCommand: heidelpay.TransactionCommand{
//			Amount:      domain.NewAmount(12.99),
//			Currency:    "EUR",
//			PaymentType: card,
//			ReturnURL:   "https://shop.example/return",
//		},
//	})
package heidelpay

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/DanielPopoola/heidelpay-go/adapters/gateway"
	"github.com/DanielPopoola/heidelpay-go/core/domain"
	"github.com/DanielPopoola/heidelpay-go/core/ports"
	"github.com/DanielPopoola/heidelpay-go/core/service"
	"github.com/DanielPopoola/heidelpay-go/internal/config"
)

type (
	TransactionCommand         = service.TransactionCommand
	AuthorizeCommand           = service.AuthorizeCommand
	ChargeCommand              = service.ChargeCommand
	PayoutCommand              = service.PayoutCommand
	ChargeAuthorizationCommand = service.ChargeAuthorizationCommand
	ChargePaymentCommand       = service.ChargePaymentCommand
	CancelChargeCommand        = service.CancelChargeCommand
	ShipCommand                = service.ShipCommand
)

// DefaultRetry is used for the built-in adapter unless WithRetry is given.
var DefaultRetry = gateway.RetryConfig{
	BaseDelay:   500 * time.Millisecond,
	MaxAttempts: 3,
}

type Heidelpay struct {
	key       string
	client    *gateway.HTTPClient
	resources *service.ResourceService
	payments  *service.PaymentService
	webhooks  *service.WebhookService
	logger    *slog.Logger
}

type options struct {
	locale     string
	baseURL    string
	clientIP   string
	timeout    time.Duration
	httpClient *http.Client
	adapter    ports.HTTPAdapter
	logger     *slog.Logger
	retry      gateway.RetryConfig
}

type Option func(*options)

// WithLocale sets the language of customer messages, e.g. "de-DE".
func WithLocale(locale string) Option {
	return func(o *options) { o.locale = locale }
}

// WithBaseURL points the client at another gateway host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

func WithClientIP(ip string) Option {
	return func(o *options) { o.clientIP = ip }
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithAdapter replaces the built-in HTTP adapter. Locale, base URL, client IP,
// timeout and retry options are ignored then.
func WithAdapter(adapter ports.HTTPAdapter) Option {
	return func(o *options) { o.adapter = adapter }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRetry configures retries of the built-in adapter. maxAttempts of 1 disables them.
func WithRetry(baseDelay time.Duration, maxAttempts int) Option {
	return func(o *options) {
		o.retry = gateway.RetryConfig{BaseDelay: baseDelay, MaxAttempts: maxAttempts}
	}
}

// New returns a client authenticating with the private key.
func New(key string, opts ...Option) (*Heidelpay, error) {
	if err := domain.ValidatePrivateKey(key); err != nil {
		return nil, err
	}

	o := &options{
		locale: gateway.DefaultLocale,
		retry:  DefaultRetry,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	hp := &Heidelpay{key: key, logger: o.logger}

	adapter := o.adapter
	if adapter == nil {
		hp.client = gateway.NewHTTPClient(gateway.Config{
			PrivateKey: key,
			BaseURL:    o.baseURL,
			Locale:     o.locale,
			ClientIP:   o.clientIP,
			Timeout:    o.timeout,
			HTTPClient: o.httpClient,
			Logger:     o.logger,
		})
		adapter = gateway.NewRetryHTTPClient(hp.client, o.retry)
	}

	hp.resources = service.NewResourceService(adapter, o.logger)
	hp.payments = service.NewPaymentService(hp.resources, o.logger)
	hp.webhooks = service.NewWebhookService(hp.resources, o.logger)

	return hp, nil
}

// NewFromEnv builds a client from HEIDELPAY_* environment variables.
func NewFromEnv() (*Heidelpay, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	return New(cfg.API.PrivateKey,
		WithLocale(cfg.API.Locale),
		WithBaseURL(cfg.API.BaseURL),
		WithClientIP(cfg.API.ClientIP),
		WithTimeout(cfg.API.Timeout),
		WithRetry(cfg.Retry.BaseDelay, cfg.Retry.MaxRetries+1),
		WithLogger(cfg.Logger.NewLogger(os.Stderr)),
	)
}

func (h *Heidelpay) Key() string {
	return h.key
}

// Locale is empty when a custom adapter is used.
func (h *Heidelpay) Locale() string {
	if h.client == nil {
		return ""
	}
	return h.client.Locale()
}

func (h *Heidelpay) SetLocale(locale string) {
	if h.client != nil {
		h.client.SetLocale(locale)
	}
}

// SetClientIP forwards the shopper's IP to the gateway for fraud checks.
func (h *Heidelpay) SetClientIP(ip string) {
	if h.client != nil {
		h.client.SetClientIP(ip)
	}
}

// Resources

func (h *Heidelpay) FetchPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return h.resources.FetchPayment(ctx, paymentID)
}

func (h *Heidelpay) FetchPaymentByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	return h.resources.FetchPaymentByOrderID(ctx, orderID)
}

func (h *Heidelpay) FetchKeypair(ctx context.Context, detailed bool) (*domain.Keypair, error) {
	return h.resources.FetchKeypair(ctx, detailed)
}

func (h *Heidelpay) CreateMetadata(ctx context.Context, metadata *domain.Metadata) (*domain.Metadata, error) {
	return h.resources.CreateMetadata(ctx, metadata)
}

func (h *Heidelpay) FetchMetadata(ctx context.Context, metadataID string) (*domain.Metadata, error) {
	return h.resources.FetchMetadata(ctx, metadataID)
}

func (h *Heidelpay) CreateBasket(ctx context.Context, basket *domain.Basket) (*domain.Basket, error) {
	return h.resources.CreateBasket(ctx, basket)
}

func (h *Heidelpay) FetchBasket(ctx context.Context, basketID string) (*domain.Basket, error) {
	return h.resources.FetchBasket(ctx, basketID)
}

func (h *Heidelpay) UpdateBasket(ctx context.Context, basket *domain.Basket) (*domain.Basket, error) {
	return h.resources.UpdateBasket(ctx, basket)
}

func (h *Heidelpay) CreatePaymentType(ctx context.Context, paymentType domain.PaymentType) (domain.PaymentType, error) {
	return h.resources.CreatePaymentType(ctx, paymentType)
}

// FetchPaymentType returns the concrete type matching the id, e.g. *domain.Card.
func (h *Heidelpay) FetchPaymentType(ctx context.Context, typeID string) (domain.PaymentType, error) {
	return h.resources.FetchPaymentType(ctx, typeID)
}

func (h *Heidelpay) UpdatePaymentType(ctx context.Context, paymentType domain.PaymentType) (domain.PaymentType, error) {
	return h.resources.UpdatePaymentType(ctx, paymentType)
}

func (h *Heidelpay) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return h.resources.CreateCustomer(ctx, customer)
}

func (h *Heidelpay) CreateOrUpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return h.resources.CreateOrUpdateCustomer(ctx, customer)
}

func (h *Heidelpay) FetchCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return h.resources.FetchCustomer(ctx, customerID)
}

func (h *Heidelpay) FetchCustomerByExtCustomerID(ctx context.Context, externalID string) (*domain.Customer, error) {
	return h.resources.FetchCustomerByExtCustomerID(ctx, externalID)
}

func (h *Heidelpay) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return h.resources.UpdateCustomer(ctx, customer)
}

func (h *Heidelpay) DeleteCustomer(ctx context.Context, customerID string) error {
	return h.resources.DeleteCustomer(ctx, customerID)
}

func (h *Heidelpay) ActivateRecurringPayment(ctx context.Context, paymentType domain.PaymentType, returnURL string) (*domain.Recurring, error) {
	return h.payments.ActivateRecurringPayment(ctx, paymentType, returnURL)
}

// ActivateRecurringPaymentByTypeID activates recurring payments for an existing payment type.
func (h *Heidelpay) ActivateRecurringPaymentByTypeID(ctx context.Context, typeID, returnURL string) (*domain.Recurring, error) {
	paymentType, err := domain.NewPaymentTypeFromID(typeID)
	if err != nil {
		return nil, err
	}
	return h.payments.ActivateRecurringPayment(ctx, paymentType, returnURL)
}

// FetchResourceFromEvent fetches the resource named by the retrieveUrl of a webhook event body.
func (h *Heidelpay) FetchResourceFromEvent(ctx context.Context, body []byte) (domain.Resource, error) {
	return h.resources.FetchResourceFromEvent(ctx, body)
}

// Transactions

func (h *Heidelpay) Authorize(ctx context.Context, cmd AuthorizeCommand) (*domain.Authorization, error) {
	return h.payments.Authorize(ctx, cmd)
}

func (h *Heidelpay) FetchAuthorization(ctx context.Context, paymentID string) (*domain.Authorization, error) {
	return h.resources.FetchAuthorization(ctx, paymentID)
}

func (h *Heidelpay) Charge(ctx context.Context, cmd ChargeCommand) (*domain.Charge, error) {
	return h.payments.Charge(ctx, cmd)
}

func (h *Heidelpay) ChargeAuthorization(ctx context.Context, cmd ChargeAuthorizationCommand) (*domain.Charge, error) {
	return h.payments.ChargeAuthorization(ctx, cmd)
}

func (h *Heidelpay) ChargePayment(ctx context.Context, cmd ChargePaymentCommand) (*domain.Charge, error) {
	return h.payments.ChargePayment(ctx, cmd)
}

func (h *Heidelpay) FetchCharge(ctx context.Context, paymentID, chargeID string) (*domain.Charge, error) {
	return h.resources.FetchCharge(ctx, paymentID, chargeID)
}

// CancelAuthorization reverses amount of the authorization, or all of it when amount is nil.
func (h *Heidelpay) CancelAuthorization(ctx context.Context, authorization *domain.Authorization, amount *domain.Amount) (*domain.Cancellation, error) {
	return h.payments.CancelAuthorization(ctx, authorization, amount, "")
}

func (h *Heidelpay) CancelAuthorizationByPayment(ctx context.Context, paymentID string, amount *domain.Amount) (*domain.Cancellation, error) {
	return h.payments.CancelAuthorizationByPayment(ctx, paymentID, amount)
}

func (h *Heidelpay) FetchReversal(ctx context.Context, paymentID, cancellationID string) (*domain.Cancellation, error) {
	return h.resources.FetchReversal(ctx, paymentID, cancellationID)
}

// CancelCharge refunds amount of the charge, or all of it when amount is nil.
func (h *Heidelpay) CancelCharge(ctx context.Context, charge *domain.Charge, amount *domain.Amount, reason domain.CancelReasonCode) (*domain.Cancellation, error) {
	return h.payments.CancelCharge(ctx, charge, amount, reason, "")
}

func (h *Heidelpay) CancelChargeByID(ctx context.Context, cmd CancelChargeCommand) (*domain.Cancellation, error) {
	return h.payments.CancelChargeByID(ctx, cmd)
}

func (h *Heidelpay) FetchRefund(ctx context.Context, paymentID, chargeID, cancellationID string) (*domain.Cancellation, error) {
	return h.resources.FetchRefund(ctx, paymentID, chargeID, cancellationID)
}

// CancelPayment cancels amount of the payment, or everything left when amount is nil.
func (h *Heidelpay) CancelPayment(ctx context.Context, paymentID string, amount *domain.Amount) ([]*domain.Cancellation, error) {
	return h.payments.CancelPayment(ctx, paymentID, amount)
}

func (h *Heidelpay) Ship(ctx context.Context, cmd ShipCommand) (*domain.Shipment, error) {
	return h.payments.Ship(ctx, cmd)
}

func (h *Heidelpay) FetchShipment(ctx context.Context, paymentID, shipmentID string) (*domain.Shipment, error) {
	return h.resources.FetchShipment(ctx, paymentID, shipmentID)
}

func (h *Heidelpay) Payout(ctx context.Context, cmd PayoutCommand) (*domain.Payout, error) {
	return h.payments.Payout(ctx, cmd)
}

func (h *Heidelpay) FetchPayout(ctx context.Context, paymentID string) (*domain.Payout, error) {
	return h.resources.FetchPayout(ctx, paymentID)
}

// Webhooks

func (h *Heidelpay) CreateWebhook(ctx context.Context, webhookURL string, event domain.WebhookEvent) (*domain.Webhook, error) {
	return h.webhooks.CreateWebhook(ctx, webhookURL, event)
}

func (h *Heidelpay) FetchWebhook(ctx context.Context, webhookID string) (*domain.Webhook, error) {
	return h.webhooks.FetchWebhook(ctx, webhookID)
}

func (h *Heidelpay) UpdateWebhook(ctx context.Context, webhook *domain.Webhook) (*domain.Webhook, error) {
	return h.webhooks.UpdateWebhook(ctx, webhook)
}

func (h *Heidelpay) DeleteWebhook(ctx context.Context, webhookID string) error {
	return h.webhooks.DeleteWebhook(ctx, webhookID)
}

func (h *Heidelpay) FetchAllWebhooks(ctx context.Context) ([]*domain.Webhook, error) {
	return h.webhooks.FetchAllWebhooks(ctx)
}

func (h *Heidelpay) DeleteAllWebhooks(ctx context.Context) error {
	return h.webhooks.DeleteAllWebhooks(ctx)
}

func (h *Heidelpay) RegisterMultipleWebhooks(ctx context.Context, webhookURL string, events ...domain.WebhookEvent) ([]*domain.Webhook, error) {
	return h.webhooks.RegisterMultipleWebhooks(ctx, webhookURL, events...)
}
