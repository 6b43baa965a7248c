package service

import (
	"github.com/google/uuid"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
)

// TransactionCommand holds what authorizations, direct charges and payouts have in common.
// PaymentType may be left nil when TypeID names an existing type.
type TransactionCommand struct {
	Amount           domain.Amount
	Currency         string
	PaymentType      domain.PaymentType
	TypeID           string
	ReturnURL        string
	Customer         *domain.Customer
	Metadata         *domain.Metadata
	Basket           *domain.Basket
	OrderID          string
	InvoiceID        string
	PaymentReference string
	IdempotencyKey   string
}

type AuthorizeCommand struct {
	TransactionCommand
	Card3DS *bool
}

type ChargeCommand struct {
	TransactionCommand
	Card3DS *bool
}

type PayoutCommand struct {
	TransactionCommand
}

// ChargeAuthorizationCommand charges (part of) an existing authorization. A nil Amount charges the full remainder.
type ChargeAuthorizationCommand struct {
	PaymentID      string
	Amount         *domain.Amount
	IdempotencyKey string
}

// ChargePaymentCommand charges an existing payment, e.g. one created on a pay page.
type ChargePaymentCommand struct {
	PaymentID      string
	Amount         *domain.Amount
	Currency       string
	IdempotencyKey string
}

type CancelChargeCommand struct {
	PaymentID      string
	ChargeID       string
	Amount         *domain.Amount
	ReasonCode     domain.CancelReasonCode
	IdempotencyKey string
}

type ShipCommand struct {
	PaymentID      string
	InvoiceID      string
	OrderID        string
	IdempotencyKey string
}

func idempotencyKey(key string) string {
	if key != "" {
		return key
	}
	return uuid.NewString()
}
