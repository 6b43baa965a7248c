package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
	"github.com/DanielPopoola/heidelpay-go/core/ports"
)

// ResourceService performs the CRUD calls shared by all gateway resources.
type ResourceService struct {
	adapter  ports.HTTPAdapter
	validate *validator.Validate
	logger   *slog.Logger
}

func NewResourceService(adapter ports.HTTPAdapter, logger *slog.Logger) *ResourceService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ResourceService{
		adapter:  adapter,
		validate: validator.New(),
		logger:   logger,
	}
}

// Send serializes r for POST and PUT, calls uri and hydrates r from the response.
func (s *ResourceService) Send(ctx context.Context, method, uri string, r domain.Resource, idempotencyKey string) error {
	req := &ports.Request{
		Method:         method,
		URI:            uri,
		IdempotencyKey: idempotencyKey,
	}

	if method == http.MethodPost || method == http.MethodPut {
		if err := s.validateResource(r); err != nil {
			return err
		}
		payload, err := json.Marshal(r)
		if err != nil {
			return domain.NewSerializationError(err)
		}
		req.Payload = payload
	}

	resp, err := s.adapter.Send(ctx, req)
	if err != nil {
		return err
	}

	if method == http.MethodDelete {
		return nil
	}
	return domain.Hydrate(r, resp.Body)
}

func (s *ResourceService) Create(ctx context.Context, r domain.Resource) error {
	return s.Send(ctx, http.MethodPost, r.URI(false), r, "")
}

func (s *ResourceService) Update(ctx context.Context, r domain.Resource) error {
	if r.GetID() == "" {
		return domain.NewMissingIDError(resourceName(r))
	}
	return s.Send(ctx, http.MethodPut, r.URI(true), r, "")
}

func (s *ResourceService) Fetch(ctx context.Context, r domain.Resource) error {
	return s.Send(ctx, http.MethodGet, r.URI(true), r, "")
}

func (s *ResourceService) Delete(ctx context.Context, r domain.Resource) error {
	if r.GetID() == "" {
		return domain.NewMissingIDError(resourceName(r))
	}
	return s.Send(ctx, http.MethodDelete, r.URI(true), r, "")
}

func (s *ResourceService) validateResource(r domain.Resource) error {
	err := s.validate.Struct(r)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}
	return domain.NewInvalidArgumentError(resourceName(r), err)
}

func (s *ResourceService) fetchByID(ctx context.Context, r domain.Resource, id string) error {
	if id == "" {
		return domain.NewMissingIDError(resourceName(r))
	}
	r.SetID(id)
	return s.Fetch(ctx, r)
}

// Payment

func (s *ResourceService) FetchPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment := &domain.Payment{}
	if err := s.fetchByID(ctx, payment, paymentID); err != nil {
		return nil, err
	}
	return payment, nil
}

// FetchPaymentByOrderID looks a payment up by the merchant's order id, which the gateway accepts in place of the id.
func (s *ResourceService) FetchPaymentByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	if orderID == "" {
		return nil, domain.NewMissingIDError("order")
	}
	return s.FetchPayment(ctx, orderID)
}

// Keypair

func (s *ResourceService) FetchKeypair(ctx context.Context, detailed bool) (*domain.Keypair, error) {
	keypair := &domain.Keypair{Detailed: detailed}
	if err := s.Fetch(ctx, keypair); err != nil {
		return nil, err
	}
	return keypair, nil
}

// Metadata

func (s *ResourceService) CreateMetadata(ctx context.Context, metadata *domain.Metadata) (*domain.Metadata, error) {
	if err := s.Create(ctx, metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

func (s *ResourceService) FetchMetadata(ctx context.Context, metadataID string) (*domain.Metadata, error) {
	metadata := domain.NewMetadata()
	if err := s.fetchByID(ctx, metadata, metadataID); err != nil {
		return nil, err
	}
	return metadata, nil
}

// Basket

func (s *ResourceService) CreateBasket(ctx context.Context, basket *domain.Basket) (*domain.Basket, error) {
	if err := s.Create(ctx, basket); err != nil {
		return nil, err
	}
	return basket, nil
}

func (s *ResourceService) FetchBasket(ctx context.Context, basketID string) (*domain.Basket, error) {
	basket := &domain.Basket{}
	if err := s.fetchByID(ctx, basket, basketID); err != nil {
		return nil, err
	}
	return basket, nil
}

func (s *ResourceService) UpdateBasket(ctx context.Context, basket *domain.Basket) (*domain.Basket, error) {
	if err := s.Update(ctx, basket); err != nil {
		return nil, err
	}
	return basket, nil
}

// Payment types

func (s *ResourceService) CreatePaymentType(ctx context.Context, paymentType domain.PaymentType) (domain.PaymentType, error) {
	if err := s.Create(ctx, paymentType); err != nil {
		return nil, err
	}
	return paymentType, nil
}

func (s *ResourceService) FetchPaymentType(ctx context.Context, typeID string) (domain.PaymentType, error) {
	paymentType, err := domain.NewPaymentTypeFromID(typeID)
	if err != nil {
		return nil, err
	}
	if err := s.Fetch(ctx, paymentType); err != nil {
		return nil, err
	}
	return paymentType, nil
}

func (s *ResourceService) UpdatePaymentType(ctx context.Context, paymentType domain.PaymentType) (domain.PaymentType, error) {
	if err := s.Update(ctx, paymentType); err != nil {
		return nil, err
	}
	return paymentType, nil
}

// Customer

func (s *ResourceService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// CreateOrUpdateCustomer creates the customer or, if its customerId is taken,
// updates the existing customer with the local values.
func (s *ResourceService) CreateOrUpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	err := s.Create(ctx, customer)
	if err == nil {
		return customer, nil
	}
	if !domain.IsAPIErrorCode(err, domain.APIErrorCustomerIDAlreadyExists) {
		return nil, err
	}

	s.logger.Debug("customer id exists, updating customer", "customer_id", customer.CustomerID)

	existing, err := s.FetchCustomerByExtCustomerID(ctx, customer.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("fetching existing customer: %w", err)
	}
	customer.ID = existing.ID

	return s.UpdateCustomer(ctx, customer)
}

// FetchCustomer accepts the gateway id or the merchant's customerId.
func (s *ResourceService) FetchCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer := &domain.Customer{}
	if err := s.fetchByID(ctx, customer, customerID); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *ResourceService) FetchCustomerByExtCustomerID(ctx context.Context, externalID string) (*domain.Customer, error) {
	if externalID == "" {
		return nil, domain.NewMissingIDError("external customer")
	}
	return s.FetchCustomer(ctx, externalID)
}

func (s *ResourceService) UpdateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *ResourceService) DeleteCustomer(ctx context.Context, customerID string) error {
	customer := &domain.Customer{}
	customer.ID = customerID
	return s.Delete(ctx, customer)
}

// Transactions

func (s *ResourceService) FetchAuthorization(ctx context.Context, paymentID string) (*domain.Authorization, error) {
	payment, err := s.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	authorization := payment.Authorization()
	if authorization == nil {
		return nil, domain.NewTransactionNotFoundError("authorization", paymentID)
	}
	if err := s.Fetch(ctx, authorization); err != nil {
		return nil, err
	}
	return authorization, nil
}

func (s *ResourceService) FetchCharge(ctx context.Context, paymentID, chargeID string) (*domain.Charge, error) {
	if paymentID == "" {
		return nil, domain.NewMissingIDError("payment")
	}
	charge := &domain.Charge{}
	charge.SetPayment(domain.NewPayment(paymentID))
	if err := s.fetchByID(ctx, charge, chargeID); err != nil {
		return nil, err
	}
	return charge, nil
}

// FetchReversal fetches a cancellation of the payment's authorization.
func (s *ResourceService) FetchReversal(ctx context.Context, paymentID, cancellationID string) (*domain.Cancellation, error) {
	authorization, err := s.FetchAuthorization(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	reversal := &domain.Cancellation{}
	reversal.SetParent(authorization)
	if err := s.fetchByID(ctx, reversal, cancellationID); err != nil {
		return nil, err
	}
	return reversal, nil
}

// FetchRefund fetches a cancellation of the given charge.
func (s *ResourceService) FetchRefund(ctx context.Context, paymentID, chargeID, cancellationID string) (*domain.Cancellation, error) {
	if paymentID == "" {
		return nil, domain.NewMissingIDError("payment")
	}
	if chargeID == "" {
		return nil, domain.NewMissingIDError("charge")
	}
	charge := &domain.Charge{}
	charge.ID = chargeID
	charge.SetPayment(domain.NewPayment(paymentID))

	refund := &domain.Cancellation{}
	refund.SetParent(charge)
	if err := s.fetchByID(ctx, refund, cancellationID); err != nil {
		return nil, err
	}
	return refund, nil
}

func (s *ResourceService) FetchShipment(ctx context.Context, paymentID, shipmentID string) (*domain.Shipment, error) {
	if paymentID == "" {
		return nil, domain.NewMissingIDError("payment")
	}
	shipment := &domain.Shipment{}
	shipment.SetPayment(domain.NewPayment(paymentID))
	if err := s.fetchByID(ctx, shipment, shipmentID); err != nil {
		return nil, err
	}
	return shipment, nil
}

// FetchPayout fetches the payout of a payment.
func (s *ResourceService) FetchPayout(ctx context.Context, paymentID string) (*domain.Payout, error) {
	payment, err := s.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	payoutID := payment.TransactionID(domain.TransactionTypePayout)
	if payoutID == "" {
		return nil, domain.NewTransactionNotFoundError("payout", paymentID)
	}
	payout := &domain.Payout{}
	payout.SetPayment(payment)
	if err := s.fetchByID(ctx, payout, payoutID); err != nil {
		return nil, err
	}
	return payout, nil
}

func resourceName(r domain.Resource) string {
	return strings.ToLower(strings.TrimPrefix(fmt.Sprintf("%T", r), "*domain."))
}
