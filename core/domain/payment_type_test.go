package domain_test

import (
	"testing"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentTypeFromID(t *testing.T) {
	tests := []struct {
		id       string
		wantPath string
	}{
		{"s-crd-1", "card"},
		{"s-ppl-1", "paypal"},
		{"s-sdd-1", "sepa-direct-debit"},
		{"s-ddg-1", "sepa-direct-debit-guaranteed"},
		{"s-sft-1", "sofort"},
		{"s-gro-1", "giropay"},
		{"s-idl-1", "ideal"},
		{"s-eps-1", "eps"},
		{"s-p24-1", "przelewy24"},
		{"s-ppy-1", "prepayment"},
		{"s-ivc-1", "invoice"},
		{"s-ivg-1", "invoice-guaranteed"},
		{"s-ivf-1", "invoice-factoring"},
		{"s-pis-1", "pis"},
		{"s-ali-1", "alipay"},
		{"s-wcp-1", "wechatpay"},
		{"s-hdd-1", "hire-purchase-direct-debit"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			paymentType, err := domain.NewPaymentTypeFromID(tt.id)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPath, paymentType.TypePath())
			assert.Equal(t, tt.id, paymentType.GetID())
			assert.Equal(t, "types/"+tt.wantPath+"/"+tt.id, paymentType.URI(true))
		})
	}

	assert.Len(t, domain.PaymentTypeCodes(), len(tests))
}

func TestNewPaymentTypeFromID_Unknown(t *testing.T) {
	_, err := domain.NewPaymentTypeFromID("s-xyz-1")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnknownResource))

	_, err = domain.NewPaymentTypeFromID("not-an-id")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnknownResource))
}

func TestPaymentTypeCapabilities(t *testing.T) {
	var (
		card     domain.PaymentType = &domain.Card{}
		sofort   domain.PaymentType = &domain.Sofort{}
		invoice  domain.PaymentType = &domain.InvoiceGuaranteed{}
		purchase domain.PaymentType = &domain.HirePurchaseDirectDebit{}
	)

	_, ok := card.(domain.Authorizable)
	assert.True(t, ok)
	_, ok = card.(domain.Payoutable)
	assert.True(t, ok)
	_, ok = card.(domain.RecurringCapable)
	assert.True(t, ok)

	_, ok = sofort.(domain.Authorizable)
	assert.False(t, ok)
	_, ok = sofort.(domain.DirectChargeable)
	assert.True(t, ok)

	_, ok = invoice.(domain.Shippable)
	assert.True(t, ok)

	_, ok = purchase.(domain.Authorizable)
	assert.True(t, ok)
	_, ok = purchase.(domain.DirectChargeable)
	assert.False(t, ok)
}

func TestPaymentTypeURI(t *testing.T) {
	card := domain.NewCard("4711100000000000", "03/2030")
	assert.Equal(t, "types/card", card.URI(false))
	assert.Equal(t, "types/card", card.URI(true))

	card.ID = "s-crd-1"
	assert.Equal(t, "types/card", card.URI(false))
	assert.Equal(t, "types/card/s-crd-1", card.URI(true))

	card.SetExpiry(3, 2030)
	assert.Equal(t, "03/2030", card.ExpiryDate)
}
