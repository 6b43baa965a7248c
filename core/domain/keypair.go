package domain

// PaymentTypeSupport describes the brands and currencies a configured type accepts.
type PaymentTypeSupport struct {
	Brands    []string `json:"brands,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Channel   string   `json:"channel,omitempty"`
	Currency  []string `json:"currency,omitempty"`
}

// KeypairPaymentType is returned instead of a plain name when the keypair is fetched detailed.
type KeypairPaymentType struct {
	Type                   string               `json:"type"`
	AllowCustomerTypes     string               `json:"allowCustomerTypes,omitempty"`
	AllowCreditTransaction bool                 `json:"allowCreditTransaction,omitempty"`
	Supports               []PaymentTypeSupport `json:"supports,omitempty"`
}

// Keypair describes the merchant configuration behind the private key in use.
type Keypair struct {
	PublicKey             string               `json:"publicKey"`
	PrivateKey            string               `json:"privateKey"`
	AvailablePaymentTypes []string             `json:"availablePaymentTypes,omitempty"`
	PaymentTypes          []KeypairPaymentType `json:"paymentTypes,omitempty"`
	SecureLevel           string               `json:"secureLevel,omitempty"`
	Alias                 string               `json:"alias,omitempty"`
	MerchantName          string               `json:"merchantName,omitempty"`
	MerchantAddress       string               `json:"merchantAddress,omitempty"`
	ImprintURL            string               `json:"imprintUrl,omitempty"`
	PrivacyPolicyURL      string               `json:"privacyPolicyUrl,omitempty"`
	TermsOfUseURL         string               `json:"termsOfUseUrl,omitempty"`
	VerifyTransaction     bool                 `json:"verifyTransaction,omitempty"`

	Detailed bool `json:"-"`
}

func (k *Keypair) GetID() string { return "" }

func (k *Keypair) SetID(string) {}

func (k *Keypair) URI(bool) string {
	if k.Detailed {
		return "keypair/types"
	}
	return "keypair"
}

// SupportsType reports whether the merchant may use the payment type with the given path.
func (k *Keypair) SupportsType(typePath string) bool {
	for _, t := range k.AvailablePaymentTypes {
		if t == typePath {
			return true
		}
	}
	for _, t := range k.PaymentTypes {
		if t.Type == typePath {
			return true
		}
	}
	return false
}
