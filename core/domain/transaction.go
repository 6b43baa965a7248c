package domain

// References links a transaction or payment to the other resources it uses.
type References struct {
	CustomerID string `json:"customerId,omitempty"`
	PaymentID  string `json:"paymentId,omitempty"`
	BasketID   string `json:"basketId,omitempty"`
	MetadataID string `json:"metadataId,omitempty"`
	PayPageID  string `json:"payPageId,omitempty"`
	TraceID    string `json:"traceId,omitempty"`
	TypeID     string `json:"typeId,omitempty"`
	RiskID     string `json:"riskId,omitempty"`
}

type Message struct {
	Code     string `json:"code,omitempty"`
	Merchant string `json:"merchant,omitempty"`
	Customer string `json:"customer,omitempty"`
}

// Processing carries the clearing details returned with a transaction.
// Prepayment and invoice charges expose the account the customer has to pay to here.
type Processing struct {
	UniqueID        string `json:"uniqueId,omitempty"`
	ShortID         string `json:"shortId,omitempty"`
	TraceID         string `json:"traceId,omitempty"`
	Iban            string `json:"iban,omitempty"`
	Bic             string `json:"bic,omitempty"`
	Holder          string `json:"holder,omitempty"`
	Descriptor      string `json:"descriptor,omitempty"`
	ExternalOrderID string `json:"externalOrderId,omitempty"`
	ZgReferenceID   string `json:"zgReferenceId,omitempty"`
	PdfLink         string `json:"PDFLink,omitempty"`
}

// Transaction holds the fields every transaction type shares.
type Transaction struct {
	Entity
	Amount           *Amount     `json:"amount,omitempty"`
	Currency         string      `json:"currency,omitempty"`
	ReturnURL        string      `json:"returnUrl,omitempty"`
	OrderID          string      `json:"orderId,omitempty"`
	InvoiceID        string      `json:"invoiceId,omitempty"`
	PaymentReference string      `json:"paymentReference,omitempty"`
	Card3DS          *bool       `json:"card3ds,omitempty"`
	Resources        *References `json:"resources,omitempty"`

	IsSuccess   bool        `json:"isSuccess,omitempty"`
	IsPending   bool        `json:"isPending,omitempty"`
	IsError     bool        `json:"isError,omitempty"`
	Message     *Message    `json:"message,omitempty"`
	Date        string      `json:"date,omitempty"`
	RedirectURL string      `json:"redirectUrl,omitempty"`
	Processing  *Processing `json:"processing,omitempty"`

	payment *Payment
}

// Payment returns the payment the transaction belongs to, if known.
func (t *Transaction) Payment() *Payment {
	return t.payment
}

func (t *Transaction) SetPayment(p *Payment) {
	t.payment = p
}

// PaymentID prefers the parent payment and falls back to the id returned by the gateway.
func (t *Transaction) PaymentID() string {
	if t.payment != nil && t.payment.ID != "" {
		return t.payment.ID
	}
	if t.Resources != nil {
		return t.Resources.PaymentID
	}
	return ""
}

// SyncPayment makes the parent payment reflect the payment id of a gateway response.
func (t *Transaction) SyncPayment() {
	if t.Resources == nil || t.Resources.PaymentID == "" {
		return
	}
	if t.payment == nil {
		t.payment = &Payment{}
	}
	if t.payment.ID == "" {
		t.payment.ID = t.Resources.PaymentID
	}
}

func (t *Transaction) references() *References {
	if t.Resources == nil {
		t.Resources = &References{}
	}
	return t.Resources
}

// Link stores the ids of the given resources in the transaction's references.
// Nil or not yet created resources are skipped.
func (t *Transaction) Link(paymentType PaymentType, customer *Customer, metadata *Metadata, basket *Basket) {
	refs := t.references()
	if paymentType != nil && paymentType.GetID() != "" {
		refs.TypeID = paymentType.GetID()
	}
	if customer != nil && customer.ID != "" {
		refs.CustomerID = customer.ID
	}
	if metadata != nil && metadata.ID != "" {
		refs.MetadataID = metadata.ID
	}
	if basket != nil && basket.ID != "" {
		refs.BasketID = basket.ID
	}
}

func (t *Transaction) paymentURI() string {
	if t.payment != nil {
		return t.payment.URI(true)
	}
	return resourceURI("payments", t.PaymentID(), true)
}

func (t *Transaction) AmountValue() Amount {
	return amountValue(t.Amount)
}

// Authorization reserves an amount on the customer's payment method.
type Authorization struct {
	Transaction
}

func NewAuthorization(amount Amount, currency, returnURL string) *Authorization {
	return &Authorization{Transaction: Transaction{Amount: &amount, Currency: currency, ReturnURL: returnURL}}
}

func (a *Authorization) URI(appendID bool) string {
	return resourceURI(joinURI(a.paymentURI(), "authorize"), a.ID, appendID)
}

// Charge debits the customer, either directly or against an authorization.
type Charge struct {
	Transaction
}

func NewCharge(amount *Amount, currency, returnURL string) *Charge {
	return &Charge{Transaction: Transaction{Amount: amount, Currency: currency, ReturnURL: returnURL}}
}

func (c *Charge) URI(appendID bool) string {
	return resourceURI(joinURI(c.paymentURI(), "charges"), c.ID, appendID)
}

// Cancellation reverses an authorization or refunds a charge, depending on its parent.
type Cancellation struct {
	Transaction
	ReasonCode CancelReasonCode `json:"reasonCode,omitempty"`

	parent Resource
}

func NewCancellation(amount *Amount) *Cancellation {
	return &Cancellation{Transaction: Transaction{Amount: amount}}
}

// SetParent attaches the cancellation to an *Authorization (reversal) or *Charge (refund).
func (c *Cancellation) SetParent(parent Resource) {
	c.parent = parent
	switch p := parent.(type) {
	case *Authorization:
		c.payment = p.payment
	case *Charge:
		c.payment = p.payment
	}
}

func (c *Cancellation) Parent() Resource {
	return c.parent
}

// IsRefund reports whether the cancellation belongs to a charge.
func (c *Cancellation) IsRefund() bool {
	_, ok := c.parent.(*Charge)
	return ok
}

func (c *Cancellation) URI(appendID bool) string {
	base := joinURI(c.paymentURI(), "authorize")
	if c.parent != nil {
		base = c.parent.URI(true)
	}
	return resourceURI(joinURI(base, "cancels"), c.ID, appendID)
}

// Shipment notifies the gateway that the goods of an invoice payment were shipped.
type Shipment struct {
	Transaction
}

func NewShipment(invoiceID, orderID string) *Shipment {
	return &Shipment{Transaction: Transaction{InvoiceID: invoiceID, OrderID: orderID}}
}

func (s *Shipment) URI(appendID bool) string {
	return resourceURI(joinURI(s.paymentURI(), "shipments"), s.ID, appendID)
}

// Payout credits an amount to the customer's payment method.
type Payout struct {
	Transaction
}

func NewPayout(amount Amount, currency, returnURL string) *Payout {
	return &Payout{Transaction: Transaction{Amount: &amount, Currency: currency, ReturnURL: returnURL}}
}

func (p *Payout) URI(appendID bool) string {
	return resourceURI(joinURI(p.paymentURI(), "payouts"), p.ID, appendID)
}
