package domain

import "sort"

// PaymentType is a tokenized payment method.
type PaymentType interface {
	Resource
	// TypePath is the resource name of the type below types/, e.g. "sepa-direct-debit".
	TypePath() string
}

// Capabilities of payment types. A type embeds the matching marker to opt in.
type (
	Authorizable interface {
		PaymentType
		supportsAuthorize()
	}
	DirectChargeable interface {
		PaymentType
		supportsDirectCharge()
	}
	Payoutable interface {
		PaymentType
		supportsPayout()
	}
	RecurringCapable interface {
		PaymentType
		supportsRecurring()
	}
	Shippable interface {
		PaymentType
		supportsShipment()
	}
)

type canAuthorize struct{}

func (canAuthorize) supportsAuthorize() {}

type canDirectCharge struct{}

func (canDirectCharge) supportsDirectCharge() {}

type canPayout struct{}

func (canPayout) supportsPayout() {}

type canRecur struct{}

func (canRecur) supportsRecurring() {}

type canShip struct{}

func (canShip) supportsShipment() {}

// GeoLocation is returned for types created from a client device.
type GeoLocation struct {
	ClientIP    string `json:"clientIp,omitempty"`
	CountryCode string `json:"countryIsoA2,omitempty"`
}

// BasePaymentType carries the fields every payment type shares.
type BasePaymentType struct {
	Entity
	Recurring   bool         `json:"recurring,omitempty"`
	GeoLocation *GeoLocation `json:"geolocation,omitempty"`
}

func typeURI(path, id string, appendID bool) string {
	return resourceURI(joinURI("types", path), id, appendID)
}

var paymentTypeFactories = map[string]func() PaymentType{
	"crd": func() PaymentType { return &Card{} },
	"ppl": func() PaymentType { return &Paypal{} },
	"sdd": func() PaymentType { return &SepaDirectDebit{} },
	"ddg": func() PaymentType { return &SepaDirectDebitGuaranteed{} },
	"sft": func() PaymentType { return &Sofort{} },
	"gro": func() PaymentType { return &Giropay{} },
	"idl": func() PaymentType { return &Ideal{} },
	"eps": func() PaymentType { return &EPS{} },
	"p24": func() PaymentType { return &Przelewy24{} },
	"ppy": func() PaymentType { return &Prepayment{} },
	"ivc": func() PaymentType { return &Invoice{} },
	"ivg": func() PaymentType { return &InvoiceGuaranteed{} },
	"ivf": func() PaymentType { return &InvoiceFactoring{} },
	"pis": func() PaymentType { return &PIS{} },
	"ali": func() PaymentType { return &Alipay{} },
	"wcp": func() PaymentType { return &Wechatpay{} },
	"hdd": func() PaymentType { return &HirePurchaseDirectDebit{} },
}

// NewPaymentTypeFromID returns an empty value of the concrete type the id belongs to,
// with its id set. It fails for ids of unknown types.
func NewPaymentTypeFromID(id string) (PaymentType, error) {
	code, err := ResourceTypeCode(id)
	if err != nil {
		return nil, err
	}
	factory, ok := paymentTypeFactories[code]
	if !ok {
		return nil, NewUnknownResourceError(id)
	}
	paymentType := factory()
	paymentType.SetID(id)
	return paymentType, nil
}

// PaymentTypeCodes lists the id codes of all supported payment types.
func PaymentTypeCodes() []string {
	codes := make([]string, 0, len(paymentTypeFactories))
	for code := range paymentTypeFactories {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
