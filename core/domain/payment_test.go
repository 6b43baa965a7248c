package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/DanielPopoola/heidelpay-go/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paymentBody = `{
	"id": "s-pay-1",
	"orderId": "order-1",
	"state": {"id": 3, "name": "partly"},
	"amount": {"total": 100.0, "charged": 60.0, "canceled": 10.0, "remaining": 30.0, "currency": "EUR"},
	"resources": {"customerId": "s-cst-1", "paymentId": "s-pay-1", "metadataId": "s-mtd-1", "basketId": "s-bsk-1", "typeId": "s-crd-1"},
	"transactions": [
		{"date": "2019-01-01 10:00:00", "type": "authorize", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/authorize/s-aut-1", "amount": "100.0000"},
		{"date": "2019-01-01 10:01:00", "type": "charge", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-1", "amount": "40.0000"},
		{"date": "2019-01-01 10:02:00", "type": "charge", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-2", "amount": "20.0000"},
		{"date": "2019-01-01 10:03:00", "type": "cancel-charge", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-1/cancels/s-cnl-1", "amount": "10.0000"},
		{"date": "2019-01-01 10:04:00", "type": "cancel-charge", "status": "error", "url": "https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-1/cancels/s-cnl-2", "amount": "5.0000"}
	]
}`

func hydratedPayment(t *testing.T) *domain.Payment {
	t.Helper()
	payment := &domain.Payment{}
	require.NoError(t, domain.Hydrate(payment, []byte(paymentBody)))
	return payment
}

func TestPayment_Hydrate(t *testing.T) {
	payment := hydratedPayment(t)

	assert.Equal(t, "s-pay-1", payment.ID)
	assert.Equal(t, "order-1", payment.OrderID)
	assert.Equal(t, domain.PaymentStatePartly, payment.StateID())
	assert.True(t, payment.IsPartlyPaid())
	assert.Equal(t, "partly", payment.StateID().String())
	assert.Equal(t, "EUR", payment.Currency())
	assert.True(t, payment.Amounts().Remaining.Equal(domain.NewAmount(30)))

	assert.Equal(t, "s-crd-1", payment.TypeID())
	assert.Equal(t, "s-cst-1", payment.CustomerID())
	assert.Equal(t, "s-mtd-1", payment.MetadataID())
	assert.Equal(t, "s-bsk-1", payment.BasketID())
}

func TestPayment_Transactions(t *testing.T) {
	payment := hydratedPayment(t)

	authorization := payment.Authorization()
	require.NotNil(t, authorization)
	assert.Equal(t, "s-aut-1", authorization.ID)
	assert.Equal(t, "payments/s-pay-1/authorize/s-aut-1", authorization.URI(true))

	charges := payment.Charges()
	require.Len(t, charges, 2)
	assert.Equal(t, "s-chg-1", charges[0].ID)
	assert.Equal(t, "s-chg-2", charges[1].ID)
	assert.True(t, charges[1].AmountValue().Equal(domain.NewAmount(20)))

	refunds := payment.TransactionsOfType(domain.TransactionTypeRefund)
	require.Len(t, refunds, 2)
	assert.Equal(t, "s-cnl-1", refunds[0].ID())
	assert.Equal(t, "s-chg-1", refunds[0].ParentID())
	assert.True(t, refunds[1].IsError())

	assert.True(t, payment.RefundedAmount("s-chg-1").Equal(domain.NewAmount(10)))
	assert.True(t, payment.RefundedAmount("s-chg-2").IsZero())
	assert.True(t, payment.ReversedAmount().IsZero())
	assert.Equal(t, "s-chg-1", payment.TransactionID(domain.TransactionTypeCharge))
	assert.Empty(t, payment.TransactionID(domain.TransactionTypePayout))
}

func TestPayment_NoAuthorization(t *testing.T) {
	payment := domain.NewPayment("s-pay-2")

	assert.Nil(t, payment.Authorization())
	assert.Empty(t, payment.Charges())
	assert.Equal(t, domain.PaymentStatePending, payment.StateID())
	assert.Empty(t, payment.TypeID())
}

func TestTransactionSummary_ParentID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-1", ""},
		{"https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-1/cancels/s-cnl-1", "s-chg-1"},
		{"https://api.heidelpay.com/v1/payments/s-pay-1/authorize/s-aut-1/cancels/s-cnl-1/", "s-aut-1"},
	}

	for _, tt := range tests {
		summary := domain.TransactionSummary{URL: tt.url}
		assert.Equal(t, tt.want, summary.ParentID(), tt.url)
	}
}

func TestMetadata_JSON(t *testing.T) {
	metadata := domain.NewMetadata()
	metadata.ShopType = "Shopware"
	require.NoError(t, metadata.AddMetadata("invoice-nr", "inv-1"))

	data, err := json.Marshal(metadata)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"sdkName": "HeidelpayGo",
		"sdkVersion": "1.2.0",
		"shopType": "Shopware",
		"invoice-nr": "inv-1"
	}`, string(data))

	fetched := domain.NewMetadata()
	require.NoError(t, domain.Hydrate(fetched, []byte(`{"id":"s-mtd-1","sdkName":"HeidelpayGo","priority":3,"invoice-nr":"inv-1"}`)))

	assert.Equal(t, "s-mtd-1", fetched.ID)
	value, ok := fetched.Get("priority")
	assert.True(t, ok)
	assert.Equal(t, "3", value)
	assert.Equal(t, map[string]string{"priority": "3", "invoice-nr": "inv-1"}, fetched.Values())
	assert.Equal(t, "metadata/s-mtd-1", fetched.URI(true))
}

func TestMetadata_RawValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "large number", body: `{"limit":1000000}`, want: "1000000"},
		{name: "decimal", body: `{"limit":12.50}`, want: "12.50"},
		{name: "bool", body: `{"limit":true}`, want: "true"},
		{name: "null", body: `{"limit":null}`, want: ""},
		{name: "escaped string", body: `{"limit":"a \"b\""}`, want: `a "b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := domain.NewMetadata()
			require.NoError(t, json.Unmarshal([]byte(tt.body), metadata))

			value, ok := metadata.Get("limit")
			assert.True(t, ok)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestPayment_ChargesSkipsFailedAttempts(t *testing.T) {
	payment := &domain.Payment{}
	require.NoError(t, domain.Hydrate(payment, []byte(`{
		"id": "s-pay-3",
		"transactions": [
			{"type": "charge", "status": "error", "url": "https://api.heidelpay.com/v1/payments/s-pay-3/charges/s-chg-1", "amount": "50.0000"},
			{"type": "charge", "status": "success", "url": "https://api.heidelpay.com/v1/payments/s-pay-3/charges/s-chg-2", "amount": "50.0000"}
		]
	}`)))

	charges := payment.Charges()

	require.Len(t, charges, 1)
	assert.Equal(t, "s-chg-2", charges[0].ID)
}

func TestMetadata_ReservedKeys(t *testing.T) {
	metadata := domain.NewMetadata()

	err := metadata.AddMetadata("sdkName", "other")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidArgument))
	assert.Equal(t, domain.SDKName, metadata.SDKName)
}

func TestAmount_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Amount domain.Amount `json:"amount"`
	}{domain.NewAmount(119.99)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":119.99}`, string(data))

	var parsed struct {
		Number domain.Amount `json:"number"`
		Quoted domain.Amount `json:"quoted"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"number":10.5,"quoted":"10.5000"}`), &parsed))
	assert.True(t, parsed.Number.Equal(parsed.Quoted))

	amount, err := domain.ParseAmount("12.30")
	require.NoError(t, err)
	assert.True(t, amount.Equal(domain.NewAmount(12.3)))

	_, err = domain.ParseAmount("twelve")
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidArgument))

	assert.True(t, domain.MinAmount(domain.NewAmount(5), domain.NewAmount(3)).Equal(domain.NewAmount(3)))
}

func TestEventPayload_ResourcePath(t *testing.T) {
	payload, err := domain.ParseEventPayload([]byte(`{
		"event": "charge.succeeded",
		"publicKey": "s-pub-1",
		"retrieveUrl": "https://api.heidelpay.com/v1/payments/s-pay-1/charges/s-chg-1",
		"paymentId": "s-pay-1"
	}`))
	require.NoError(t, err)
	assert.Equal(t, domain.WebhookEventChargeSucceeded, payload.Event)

	path, err := payload.ResourcePath()
	require.NoError(t, err)
	assert.Equal(t, "payments/s-pay-1/charges/s-chg-1", path)

	_, err = domain.ParseEventPayload([]byte(`{"event":"charge"}`))
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidArgument))
}
