package domain

// Vendor error codes the SDK reacts to.
const (
	APIErrorCustomerIDAlreadyExists = "API.410.200.010"
	APIErrorAlreadyCanceled         = "API.340.100.014"
	APIErrorAlreadyCharged          = "API.340.100.015"
	APIErrorAlreadyChargedBack      = "API.340.100.018"
)

// PaymentState is the numeric state of a payment.
type PaymentState int

const (
	PaymentStatePending       PaymentState = 0
	PaymentStateCompleted     PaymentState = 1
	PaymentStateCanceled      PaymentState = 2
	PaymentStatePartly        PaymentState = 3
	PaymentStatePaymentReview PaymentState = 4
	PaymentStateChargeback    PaymentState = 5
)

var paymentStateNames = map[PaymentState]string{
	PaymentStatePending:       "pending",
	PaymentStateCompleted:     "completed",
	PaymentStateCanceled:      "canceled",
	PaymentStatePartly:        "partly",
	PaymentStatePaymentReview: "payment review",
	PaymentStateChargeback:    "chargeback",
}

func (s PaymentState) String() string {
	if name, ok := paymentStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// TransactionType is the type of an entry in a payment's transaction list.
type TransactionType string

const (
	TransactionTypeAuthorization TransactionType = "authorize"
	TransactionTypeCharge        TransactionType = "charge"
	TransactionTypeReversal      TransactionType = "cancel-authorize"
	TransactionTypeRefund        TransactionType = "cancel-charge"
	TransactionTypeShipment      TransactionType = "shipment"
	TransactionTypePayout        TransactionType = "payout"
	TransactionTypeChargeback    TransactionType = "chargeback"
)

const (
	transactionStatusSuccess = "success"
	transactionStatusPending = "pending"
	transactionStatusError   = "error"
)

// CancelReasonCode is sent with refunds of guaranteed and factoring types.
type CancelReasonCode string

const (
	CancelReasonCancel CancelReasonCode = "CANCEL"
	CancelReasonReturn CancelReasonCode = "RETURN"
	CancelReasonCredit CancelReasonCode = "CREDIT"
)

type Salutation string

const (
	SalutationMr      Salutation = "mr"
	SalutationMrs     Salutation = "mrs"
	SalutationUnknown Salutation = "unknown"
)

const (
	BasketItemTypeGoods    = "goods"
	BasketItemTypeShipment = "shipment"
	BasketItemTypeVoucher  = "voucher"
	BasketItemTypeDigital  = "digital"
)

// WebhookEvent names an event a webhook can subscribe to.
type WebhookEvent string

const (
	WebhookEventAll                  WebhookEvent = "all"
	WebhookEventAuthorize            WebhookEvent = "authorize"
	WebhookEventAuthorizeCanceled    WebhookEvent = "authorize.canceled"
	WebhookEventAuthorizeExpired     WebhookEvent = "authorize.expired"
	WebhookEventAuthorizeFailed      WebhookEvent = "authorize.failed"
	WebhookEventAuthorizePending     WebhookEvent = "authorize.pending"
	WebhookEventAuthorizeSucceeded   WebhookEvent = "authorize.succeeded"
	WebhookEventCharge               WebhookEvent = "charge"
	WebhookEventChargeCanceled       WebhookEvent = "charge.canceled"
	WebhookEventChargeExpired        WebhookEvent = "charge.expired"
	WebhookEventChargeFailed         WebhookEvent = "charge.failed"
	WebhookEventChargePending        WebhookEvent = "charge.pending"
	WebhookEventChargeSucceeded      WebhookEvent = "charge.succeeded"
	WebhookEventChargeback           WebhookEvent = "chargeback"
	WebhookEventCustomer             WebhookEvent = "customer"
	WebhookEventCustomerCreated      WebhookEvent = "customer.created"
	WebhookEventCustomerDeleted      WebhookEvent = "customer.deleted"
	WebhookEventCustomerUpdated      WebhookEvent = "customer.updated"
	WebhookEventPayment              WebhookEvent = "payment"
	WebhookEventPaymentPending       WebhookEvent = "payment.pending"
	WebhookEventPaymentCompleted     WebhookEvent = "payment.completed"
	WebhookEventPaymentCanceled      WebhookEvent = "payment.canceled"
	WebhookEventPaymentPartly        WebhookEvent = "payment.partly"
	WebhookEventPaymentPaymentReview WebhookEvent = "payment.payment_review"
	WebhookEventPaymentChargeback    WebhookEvent = "payment.chargeback"
	WebhookEventPayout               WebhookEvent = "payout"
	WebhookEventPayoutSucceeded      WebhookEvent = "payout.succeeded"
	WebhookEventPayoutFailed         WebhookEvent = "payout.failed"
	WebhookEventShipment             WebhookEvent = "shipment"
	WebhookEventTypes                WebhookEvent = "types"
)
