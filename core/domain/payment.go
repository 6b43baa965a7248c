package domain

import (
	"strings"

	"github.com/samber/lo"
)

type PaymentStateInfo struct {
	ID   PaymentState `json:"id"`
	Name string       `json:"name,omitempty"`
}

// PaymentAmounts is the amount bookkeeping maintained by the gateway.
type PaymentAmounts struct {
	Total     Amount `json:"total"`
	Charged   Amount `json:"charged"`
	Canceled  Amount `json:"canceled"`
	Remaining Amount `json:"remaining"`
	Currency  string `json:"currency,omitempty"`
}

// TransactionSummary is an entry of a payment's transaction list.
type TransactionSummary struct {
	Date   string          `json:"date,omitempty"`
	Type   TransactionType `json:"type"`
	Status string          `json:"status,omitempty"`
	URL    string          `json:"url"`
	Amount Amount          `json:"amount"`
}

// ID returns the id of the transaction taken from its URL.
func (t TransactionSummary) ID() string {
	return lastSegment(t.URL)
}

// ParentID returns the id of the transaction this one was created on,
// e.g. the charge id of a refund. It is empty for top-level transactions.
func (t TransactionSummary) ParentID() string {
	segments := strings.Split(strings.Trim(t.URL, "/"), "/")
	for i := len(segments) - 1; i >= 2; i-- {
		if segments[i] == "cancels" {
			return segments[i-1]
		}
	}
	return ""
}

func (t TransactionSummary) IsSuccess() bool {
	return t.Status == transactionStatusSuccess
}

func (t TransactionSummary) IsPending() bool {
	return t.Status == transactionStatusPending
}

func (t TransactionSummary) IsError() bool {
	return t.Status == transactionStatusError
}

// Payment aggregates the transactions made for one order.
type Payment struct {
	Entity
	OrderID      string               `json:"orderId,omitempty"`
	RedirectURL  string               `json:"redirectUrl,omitempty"`
	State        *PaymentStateInfo    `json:"state,omitempty"`
	Amount       *PaymentAmounts      `json:"amount,omitempty"`
	Resources    *References          `json:"resources,omitempty"`
	Transactions []TransactionSummary `json:"transactions,omitempty"`
}

func NewPayment(id string) *Payment {
	return &Payment{Entity: Entity{ID: id}}
}

func (p *Payment) URI(appendID bool) string {
	return resourceURI("payments", p.ID, appendID)
}

func (p *Payment) StateID() PaymentState {
	if p.State == nil {
		return PaymentStatePending
	}
	return p.State.ID
}

func (p *Payment) IsPending() bool       { return p.StateID() == PaymentStatePending }
func (p *Payment) IsCompleted() bool     { return p.StateID() == PaymentStateCompleted }
func (p *Payment) IsCanceled() bool      { return p.StateID() == PaymentStateCanceled }
func (p *Payment) IsPartlyPaid() bool    { return p.StateID() == PaymentStatePartly }
func (p *Payment) IsPaymentReview() bool { return p.StateID() == PaymentStatePaymentReview }
func (p *Payment) IsChargeback() bool    { return p.StateID() == PaymentStateChargeback }

// Amounts never returns nil.
func (p *Payment) Amounts() PaymentAmounts {
	if p.Amount == nil {
		return PaymentAmounts{}
	}
	return *p.Amount
}

func (p *Payment) Currency() string {
	return p.Amounts().Currency
}

func (p *Payment) TransactionsOfType(kind TransactionType) []TransactionSummary {
	return lo.Filter(p.Transactions, func(t TransactionSummary, _ int) bool {
		return t.Type == kind
	})
}

// Authorization returns the payment's authorization, or nil if it has none.
func (p *Payment) Authorization() *Authorization {
	summaries := p.TransactionsOfType(TransactionTypeAuthorization)
	if len(summaries) == 0 {
		return nil
	}
	auth := &Authorization{}
	auth.ID = summaries[0].ID()
	auth.Amount = lo.ToPtr(summaries[0].Amount)
	auth.SetPayment(p)
	return auth
}

// Charges returns the payment's successful charges in the order they were made.
// Failed charge attempts have nothing to refund and are left out.
func (p *Payment) Charges() []*Charge {
	succeeded := lo.Reject(p.TransactionsOfType(TransactionTypeCharge), func(s TransactionSummary, _ int) bool {
		return s.IsError()
	})
	return lo.Map(succeeded, func(s TransactionSummary, _ int) *Charge {
		charge := &Charge{}
		charge.ID = s.ID()
		charge.Amount = lo.ToPtr(s.Amount)
		charge.SetPayment(p)
		return charge
	})
}

// RefundedAmount sums the successful refunds made on the given charge.
func (p *Payment) RefundedAmount(chargeID string) Amount {
	total := Amount{}
	for _, s := range p.TransactionsOfType(TransactionTypeRefund) {
		if s.ParentID() == chargeID && !s.IsError() {
			total = total.Add(s.Amount)
		}
	}
	return total
}

// ReversedAmount sums the successful reversals made on the authorization.
func (p *Payment) ReversedAmount() Amount {
	total := Amount{}
	for _, s := range p.TransactionsOfType(TransactionTypeReversal) {
		if !s.IsError() {
			total = total.Add(s.Amount)
		}
	}
	return total
}

// TransactionID returns the id of the first transaction of the given type, or "".
func (p *Payment) TransactionID(kind TransactionType) string {
	summary, ok := lo.Find(p.Transactions, func(t TransactionSummary) bool {
		return t.Type == kind
	})
	if !ok {
		return ""
	}
	return summary.ID()
}

func (p *Payment) TypeID() string {
	if p.Resources == nil {
		return ""
	}
	return p.Resources.TypeID
}

func (p *Payment) CustomerID() string {
	if p.Resources == nil {
		return ""
	}
	return p.Resources.CustomerID
}

func (p *Payment) MetadataID() string {
	if p.Resources == nil {
		return ""
	}
	return p.Resources.MetadataID
}

func (p *Payment) BasketID() string {
	if p.Resources == nil {
		return ""
	}
	return p.Resources.BasketID
}
