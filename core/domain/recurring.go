package domain

// Recurring registers a payment type for recurring charges. The customer may
// have to confirm at RedirectURL before the type is flagged recurring.
type Recurring struct {
	ReturnURL   string      `json:"returnUrl" validate:"required,url"`
	RedirectURL string      `json:"redirectUrl,omitempty"`
	Resources   *References `json:"resources,omitempty"`
	IsSuccess   bool        `json:"isSuccess,omitempty"`
	IsPending   bool        `json:"isPending,omitempty"`
	IsError     bool        `json:"isError,omitempty"`
	Message     *Message    `json:"message,omitempty"`
	Date        string      `json:"date,omitempty"`
	Processing  *Processing `json:"processing,omitempty"`

	paymentTypeID string
}

func NewRecurring(paymentTypeID, returnURL string) *Recurring {
	return &Recurring{paymentTypeID: paymentTypeID, ReturnURL: returnURL}
}

func (r *Recurring) PaymentTypeID() string { return r.paymentTypeID }

func (r *Recurring) GetID() string { return "" }

func (r *Recurring) SetID(string) {}

func (r *Recurring) URI(bool) string {
	return joinURI("types", r.paymentTypeID, "recurring")
}
