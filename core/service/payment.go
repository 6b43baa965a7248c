package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
)

// PaymentService creates the transactions of a payment.
type PaymentService struct {
	resources *ResourceService
	logger    *slog.Logger
}

func NewPaymentService(resources *ResourceService, logger *slog.Logger) *PaymentService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &PaymentService{
		resources: resources,
		logger:    logger,
	}
}

func (s *PaymentService) Authorize(ctx context.Context, cmd AuthorizeCommand) (*domain.Authorization, error) {
	paymentType, err := s.resolvePaymentType(ctx, cmd.PaymentType, cmd.TypeID)
	if err != nil {
		return nil, err
	}
	if _, ok := paymentType.(domain.Authorizable); !ok {
		return nil, domain.NewUnsupportedOperationError(paymentType.TypePath(), "authorize")
	}

	authorization := domain.NewAuthorization(cmd.Amount, cmd.Currency, cmd.ReturnURL)
	authorization.Card3DS = cmd.Card3DS
	applyCommand(&authorization.Transaction, cmd.TransactionCommand)

	if err := s.linkResources(ctx, &authorization.Transaction, paymentType, cmd.TransactionCommand); err != nil {
		return nil, err
	}

	if err := s.createTransaction(ctx, authorization, cmd.IdempotencyKey); err != nil {
		return nil, err
	}
	authorization.SyncPayment()

	s.logger.Info("authorization created",
		"payment_id", authorization.PaymentID(),
		"authorization_id", authorization.ID,
		"success", authorization.IsSuccess,
	)
	return authorization, nil
}

// Charge charges the payment type directly, creating a new payment.
func (s *PaymentService) Charge(ctx context.Context, cmd ChargeCommand) (*domain.Charge, error) {
	paymentType, err := s.resolvePaymentType(ctx, cmd.PaymentType, cmd.TypeID)
	if err != nil {
		return nil, err
	}
	if _, ok := paymentType.(domain.DirectChargeable); !ok {
		return nil, domain.NewUnsupportedOperationError(paymentType.TypePath(), "direct charge")
	}

	amount := cmd.Amount
	charge := domain.NewCharge(&amount, cmd.Currency, cmd.ReturnURL)
	charge.Card3DS = cmd.Card3DS
	applyCommand(&charge.Transaction, cmd.TransactionCommand)

	if err := s.linkResources(ctx, &charge.Transaction, paymentType, cmd.TransactionCommand); err != nil {
		return nil, err
	}

	if err := s.createTransaction(ctx, charge, cmd.IdempotencyKey); err != nil {
		return nil, err
	}
	charge.SyncPayment()

	s.logger.Info("charge created",
		"payment_id", charge.PaymentID(),
		"charge_id", charge.ID,
		"success", charge.IsSuccess,
	)
	return charge, nil
}

func (s *PaymentService) ChargeAuthorization(ctx context.Context, cmd ChargeAuthorizationCommand) (*domain.Charge, error) {
	return s.ChargePayment(ctx, ChargePaymentCommand{
		PaymentID:      cmd.PaymentID,
		Amount:         cmd.Amount,
		IdempotencyKey: cmd.IdempotencyKey,
	})
}

func (s *PaymentService) ChargePayment(ctx context.Context, cmd ChargePaymentCommand) (*domain.Charge, error) {
	if cmd.PaymentID == "" {
		return nil, domain.NewMissingIDError("payment")
	}

	charge := domain.NewCharge(cmd.Amount, cmd.Currency, "")
	charge.SetPayment(domain.NewPayment(cmd.PaymentID))

	if err := s.createTransaction(ctx, charge, cmd.IdempotencyKey); err != nil {
		return nil, err
	}
	charge.SyncPayment()

	s.logger.Info("payment charged", "payment_id", cmd.PaymentID, "charge_id", charge.ID)
	return charge, nil
}

// CancelAuthorization reverses amount of the authorization; nil reverses the full remainder.
func (s *PaymentService) CancelAuthorization(ctx context.Context, authorization *domain.Authorization, amount *domain.Amount, key string) (*domain.Cancellation, error) {
	if authorization == nil {
		return nil, domain.NewMissingIDError("authorization")
	}
	if authorization.PaymentID() == "" {
		return nil, domain.NewMissingIDError("payment")
	}
	if authorization.ID == "" {
		return nil, domain.NewMissingIDError("authorization")
	}

	reversal := domain.NewCancellation(amount)
	reversal.SetParent(authorization)

	if err := s.createTransaction(ctx, reversal, key); err != nil {
		return nil, err
	}

	s.logger.Info("authorization canceled",
		"payment_id", authorization.PaymentID(),
		"cancellation_id", reversal.ID,
	)
	return reversal, nil
}

func (s *PaymentService) CancelAuthorizationByPayment(ctx context.Context, paymentID string, amount *domain.Amount) (*domain.Cancellation, error) {
	payment, err := s.resources.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	authorization := payment.Authorization()
	if authorization == nil {
		return nil, domain.NewTransactionNotFoundError("authorization", paymentID)
	}
	return s.CancelAuthorization(ctx, authorization, amount, "")
}

// CancelCharge refunds amount of the charge; nil refunds the full charge.
func (s *PaymentService) CancelCharge(ctx context.Context, charge *domain.Charge, amount *domain.Amount, reason domain.CancelReasonCode, key string) (*domain.Cancellation, error) {
	if charge == nil {
		return nil, domain.NewMissingIDError("charge")
	}
	if charge.PaymentID() == "" {
		return nil, domain.NewMissingIDError("payment")
	}
	if charge.ID == "" {
		return nil, domain.NewMissingIDError("charge")
	}

	refund := domain.NewCancellation(amount)
	refund.ReasonCode = reason
	refund.SetParent(charge)

	if err := s.createTransaction(ctx, refund, key); err != nil {
		return nil, err
	}

	s.logger.Info("charge canceled",
		"payment_id", charge.PaymentID(),
		"charge_id", charge.ID,
		"cancellation_id", refund.ID,
	)
	return refund, nil
}

func (s *PaymentService) CancelChargeByID(ctx context.Context, cmd CancelChargeCommand) (*domain.Cancellation, error) {
	charge := &domain.Charge{}
	charge.ID = cmd.ChargeID
	charge.SetPayment(domain.NewPayment(cmd.PaymentID))
	return s.CancelCharge(ctx, charge, cmd.Amount, cmd.ReasonCode, cmd.IdempotencyKey)
}

// CancelPayment cancels amount of the payment, nil meaning everything that is left.
// The open part of the authorization is reversed first, then the charges are
// refunded in the order they were made until the amount is covered.
func (s *PaymentService) CancelPayment(ctx context.Context, paymentID string, amount *domain.Amount) ([]*domain.Cancellation, error) {
	payment, err := s.resources.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	var cancellations []*domain.Cancellation
	var remaining domain.Amount
	if amount != nil {
		remaining = *amount
	}
	cancelAll := amount == nil

	portion := func(cancelable domain.Amount) domain.Amount {
		if cancelAll {
			return cancelable
		}
		return domain.MinAmount(remaining, cancelable)
	}

	if authorization := payment.Authorization(); authorization != nil {
		if part := portion(payment.Amounts().Remaining); part.IsPositive() {
			reversal, err := s.CancelAuthorization(ctx, authorization, &part, "")
			switch {
			case err == nil:
				cancellations = append(cancellations, reversal)
				remaining = remaining.Sub(part)
			case !isAlreadyCanceled(err) && !domain.IsAPIErrorCode(err, domain.APIErrorAlreadyCharged):
				return cancellations, err
			}
		}
	}

	for _, charge := range payment.Charges() {
		if !cancelAll && !remaining.IsPositive() {
			break
		}
		cancelable := charge.AmountValue().Sub(payment.RefundedAmount(charge.ID))
		part := portion(cancelable)
		if !part.IsPositive() {
			continue
		}

		refund, err := s.CancelCharge(ctx, charge, &part, "", "")
		switch {
		case err == nil:
			cancellations = append(cancellations, refund)
			remaining = remaining.Sub(part)
		case !isAlreadyCanceled(err):
			return cancellations, err
		}
	}

	return cancellations, nil
}

// Ship notifies the gateway of the shipment of an invoice payment.
func (s *PaymentService) Ship(ctx context.Context, cmd ShipCommand) (*domain.Shipment, error) {
	payment, err := s.resources.FetchPayment(ctx, cmd.PaymentID)
	if err != nil {
		return nil, err
	}

	if typeID := payment.TypeID(); typeID != "" {
		paymentType, err := domain.NewPaymentTypeFromID(typeID)
		if err != nil {
			return nil, err
		}
		if _, ok := paymentType.(domain.Shippable); !ok {
			return nil, domain.NewUnsupportedOperationError(paymentType.TypePath(), "shipment")
		}
	}

	shipment := domain.NewShipment(cmd.InvoiceID, cmd.OrderID)
	shipment.SetPayment(payment)

	if err := s.createTransaction(ctx, shipment, cmd.IdempotencyKey); err != nil {
		return nil, err
	}

	s.logger.Info("shipment created", "payment_id", payment.ID, "shipment_id", shipment.ID)
	return shipment, nil
}

func (s *PaymentService) Payout(ctx context.Context, cmd PayoutCommand) (*domain.Payout, error) {
	paymentType, err := s.resolvePaymentType(ctx, cmd.PaymentType, cmd.TypeID)
	if err != nil {
		return nil, err
	}
	if _, ok := paymentType.(domain.Payoutable); !ok {
		return nil, domain.NewUnsupportedOperationError(paymentType.TypePath(), "payout")
	}

	payout := domain.NewPayout(cmd.Amount, cmd.Currency, cmd.ReturnURL)
	applyCommand(&payout.Transaction, cmd.TransactionCommand)

	if err := s.linkResources(ctx, &payout.Transaction, paymentType, cmd.TransactionCommand); err != nil {
		return nil, err
	}

	if err := s.createTransaction(ctx, payout, cmd.IdempotencyKey); err != nil {
		return nil, err
	}
	payout.SyncPayment()

	s.logger.Info("payout created", "payment_id", payout.PaymentID(), "payout_id", payout.ID)
	return payout, nil
}

// ActivateRecurringPayment registers the payment type for recurring charges.
func (s *PaymentService) ActivateRecurringPayment(ctx context.Context, paymentType domain.PaymentType, returnURL string) (*domain.Recurring, error) {
	if paymentType == nil {
		return nil, domain.NewMissingIDError("payment type")
	}
	if _, ok := paymentType.(domain.RecurringCapable); !ok {
		return nil, domain.NewUnsupportedOperationError(paymentType.TypePath(), "recurring")
	}
	paymentType, err := s.resolvePaymentType(ctx, paymentType, "")
	if err != nil {
		return nil, err
	}

	recurring := domain.NewRecurring(paymentType.GetID(), returnURL)
	if err := s.resources.Send(ctx, http.MethodPost, recurring.URI(false), recurring, ""); err != nil {
		return nil, err
	}
	return recurring, nil
}

func (s *PaymentService) createTransaction(ctx context.Context, transaction domain.Resource, key string) error {
	return s.resources.Send(ctx, http.MethodPost, transaction.URI(false), transaction, idempotencyKey(key))
}

// resolvePaymentType creates a new payment type, or derives the type of an existing id.
func (s *PaymentService) resolvePaymentType(ctx context.Context, paymentType domain.PaymentType, typeID string) (domain.PaymentType, error) {
	if paymentType != nil {
		if paymentType.GetID() != "" {
			return paymentType, nil
		}
		return s.resources.CreatePaymentType(ctx, paymentType)
	}
	if typeID == "" {
		return nil, domain.NewMissingIDError("payment type")
	}
	return domain.NewPaymentTypeFromID(typeID)
}

// linkResources creates the referenced resources that have no id yet and links them to the transaction.
func (s *PaymentService) linkResources(ctx context.Context, transaction *domain.Transaction, paymentType domain.PaymentType, cmd TransactionCommand) error {
	if cmd.Customer != nil && cmd.Customer.ID == "" {
		if _, err := s.resources.CreateCustomer(ctx, cmd.Customer); err != nil {
			return err
		}
	}
	if cmd.Metadata != nil && cmd.Metadata.ID == "" {
		if _, err := s.resources.CreateMetadata(ctx, cmd.Metadata); err != nil {
			return err
		}
	}
	if cmd.Basket != nil && cmd.Basket.ID == "" {
		if _, err := s.resources.CreateBasket(ctx, cmd.Basket); err != nil {
			return err
		}
	}

	transaction.Link(paymentType, cmd.Customer, cmd.Metadata, cmd.Basket)
	transaction.SetPayment(&domain.Payment{})
	return nil
}

func applyCommand(transaction *domain.Transaction, cmd TransactionCommand) {
	transaction.OrderID = cmd.OrderID
	transaction.InvoiceID = cmd.InvoiceID
	transaction.PaymentReference = cmd.PaymentReference
}

func isAlreadyCanceled(err error) bool {
	return domain.IsAPIErrorCode(err, domain.APIErrorAlreadyCanceled) ||
		domain.IsAPIErrorCode(err, domain.APIErrorAlreadyChargedBack)
}
