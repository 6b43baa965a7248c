package domain

import "fmt"

// Card is a credit or debit card. Number, expiry date and CVC are only sent
// on creation; the gateway returns them masked.
type Card struct {
	BasePaymentType
	canAuthorize
	canDirectCharge
	canPayout
	canRecur
	Number     string `json:"number,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVC        string `json:"cvc,omitempty"`
	CardHolder string `json:"cardHolder,omitempty"`
	ThreeDS    *bool  `json:"3ds,omitempty"`
	Brand      string `json:"brand,omitempty"`
	Method     string `json:"method,omitempty"`
}

func NewCard(number, expiryDate string) *Card {
	return &Card{Number: number, ExpiryDate: expiryDate}
}

func (c *Card) TypePath() string { return "card" }

func (c *Card) URI(appendID bool) string { return typeURI(c.TypePath(), c.ID, appendID) }

// SetExpiry stores the expiry date in the MM/YYYY format the gateway expects.
func (c *Card) SetExpiry(month, year int) {
	c.ExpiryDate = fmt.Sprintf("%02d/%04d", month, year)
}

type Paypal struct {
	BasePaymentType
	canAuthorize
	canDirectCharge
	canRecur
	Email string `json:"email,omitempty"`
}

func (p *Paypal) TypePath() string { return "paypal" }

func (p *Paypal) URI(appendID bool) string { return typeURI(p.TypePath(), p.ID, appendID) }

// SepaAccount holds the bank account of the direct debit types.
type SepaAccount struct {
	Iban   string `json:"iban,omitempty"`
	Bic    string `json:"bic,omitempty"`
	Holder string `json:"holder,omitempty"`
}

type SepaDirectDebit struct {
	BasePaymentType
	canDirectCharge
	canPayout
	canRecur
	SepaAccount
}

func NewSepaDirectDebit(iban string) *SepaDirectDebit {
	return &SepaDirectDebit{SepaAccount: SepaAccount{Iban: iban}}
}

func (s *SepaDirectDebit) TypePath() string { return "sepa-direct-debit" }

func (s *SepaDirectDebit) URI(appendID bool) string { return typeURI(s.TypePath(), s.ID, appendID) }

// SepaDirectDebitGuaranteed requires a customer with billing address on charge.
type SepaDirectDebitGuaranteed struct {
	BasePaymentType
	canDirectCharge
	canPayout
	SepaAccount
}

func NewSepaDirectDebitGuaranteed(iban string) *SepaDirectDebitGuaranteed {
	return &SepaDirectDebitGuaranteed{SepaAccount: SepaAccount{Iban: iban}}
}

func (s *SepaDirectDebitGuaranteed) TypePath() string { return "sepa-direct-debit-guaranteed" }

func (s *SepaDirectDebitGuaranteed) URI(appendID bool) string {
	return typeURI(s.TypePath(), s.ID, appendID)
}

type Sofort struct {
	BasePaymentType
	canDirectCharge
}

func (s *Sofort) TypePath() string { return "sofort" }

func (s *Sofort) URI(appendID bool) string { return typeURI(s.TypePath(), s.ID, appendID) }

type Giropay struct {
	BasePaymentType
	canDirectCharge
}

func (g *Giropay) TypePath() string { return "giropay" }

func (g *Giropay) URI(appendID bool) string { return typeURI(g.TypePath(), g.ID, appendID) }

type Ideal struct {
	BasePaymentType
	canDirectCharge
	Bic string `json:"bic,omitempty"`
}

func (i *Ideal) TypePath() string { return "ideal" }

func (i *Ideal) URI(appendID bool) string { return typeURI(i.TypePath(), i.ID, appendID) }

type EPS struct {
	BasePaymentType
	canDirectCharge
	Bic string `json:"bic,omitempty"`
}

func (e *EPS) TypePath() string { return "eps" }

func (e *EPS) URI(appendID bool) string { return typeURI(e.TypePath(), e.ID, appendID) }

type Przelewy24 struct {
	BasePaymentType
	canDirectCharge
}

func (p *Przelewy24) TypePath() string { return "przelewy24" }

func (p *Przelewy24) URI(appendID bool) string { return typeURI(p.TypePath(), p.ID, appendID) }

// Prepayment returns the account to transfer to in the processing details of the transaction.
type Prepayment struct {
	BasePaymentType
	canAuthorize
	canDirectCharge
}

func (p *Prepayment) TypePath() string { return "prepayment" }

func (p *Prepayment) URI(appendID bool) string { return typeURI(p.TypePath(), p.ID, appendID) }

type Invoice struct {
	BasePaymentType
	canDirectCharge
}

func (i *Invoice) TypePath() string { return "invoice" }

func (i *Invoice) URI(appendID bool) string { return typeURI(i.TypePath(), i.ID, appendID) }

type InvoiceGuaranteed struct {
	BasePaymentType
	canDirectCharge
	canShip
}

func (i *InvoiceGuaranteed) TypePath() string { return "invoice-guaranteed" }

func (i *InvoiceGuaranteed) URI(appendID bool) string {
	return typeURI(i.TypePath(), i.ID, appendID)
}

// InvoiceFactoring requires a basket and a customer on charge.
type InvoiceFactoring struct {
	BasePaymentType
	canDirectCharge
	canShip
}

func (i *InvoiceFactoring) TypePath() string { return "invoice-factoring" }

func (i *InvoiceFactoring) URI(appendID bool) string {
	return typeURI(i.TypePath(), i.ID, appendID)
}

// PIS is the FlexiPay Direct bank transfer.
type PIS struct {
	BasePaymentType
	canDirectCharge
}

func (p *PIS) TypePath() string { return "pis" }

func (p *PIS) URI(appendID bool) string { return typeURI(p.TypePath(), p.ID, appendID) }

type Alipay struct {
	BasePaymentType
	canDirectCharge
}

func (a *Alipay) TypePath() string { return "alipay" }

func (a *Alipay) URI(appendID bool) string { return typeURI(a.TypePath(), a.ID, appendID) }

type Wechatpay struct {
	BasePaymentType
	canDirectCharge
}

func (w *Wechatpay) TypePath() string { return "wechatpay" }

func (w *Wechatpay) URI(appendID bool) string { return typeURI(w.TypePath(), w.ID, appendID) }

// HirePurchaseDirectDebit is an instalment plan chosen from the plans the gateway offers.
type HirePurchaseDirectDebit struct {
	BasePaymentType
	canAuthorize
	Iban                  string  `json:"iban,omitempty"`
	Bic                   string  `json:"bic,omitempty"`
	AccountHolder         string  `json:"accountHolder,omitempty"`
	InvoiceDate           string  `json:"invoiceDate,omitempty"`
	InvoiceDueDate        string  `json:"invoiceDueDate,omitempty"`
	NumberOfRates         int     `json:"numberOfRates,omitempty"`
	DayOfPurchase         string  `json:"dayOfPurchase,omitempty"`
	TotalPurchaseAmount   *Amount `json:"totalPurchaseAmount,omitempty"`
	TotalInterestAmount   *Amount `json:"totalInterestAmount,omitempty"`
	TotalAmount           *Amount `json:"totalAmount,omitempty"`
	EffectiveInterestRate *Amount `json:"effectiveInterestRate,omitempty"`
	NominalInterestRate   *Amount `json:"nominalInterestRate,omitempty"`
	FeeFirstRate          *Amount `json:"feeFirstRate,omitempty"`
	FeePerRate            *Amount `json:"feePerRate,omitempty"`
	MonthlyRate           *Amount `json:"monthlyRate,omitempty"`
	LastRate              *Amount `json:"lastRate,omitempty"`
}

func (h *HirePurchaseDirectDebit) TypePath() string { return "hire-purchase-direct-debit" }

func (h *HirePurchaseDirectDebit) URI(appendID bool) string {
	return typeURI(h.TypePath(), h.ID, appendID)
}
