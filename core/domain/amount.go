package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value as the gateway transmits it: a plain JSON number.
type Amount struct {
	decimal.Decimal
}

func NewAmount(value float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(value)}
}

func NewAmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// ParseAmount parses a decimal string such as "119.00".
func ParseAmount(value string) (Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, NewInvalidArgumentError("amount", err)
	}
	return Amount{Decimal: d}, nil
}

// AmountPtr is a shortcut for optional amounts.
func AmountPtr(value float64) *Amount {
	return lo.ToPtr(NewAmount(value))
}

// MarshalJSON writes the amount without quotes, which decimal.Decimal does not do by default.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

func (a Amount) Add(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(b.Decimal)}
}

func (a Amount) Sub(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Sub(b.Decimal)}
}

func (a Amount) Equal(b Amount) bool {
	return a.Decimal.Equal(b.Decimal)
}

func (a Amount) IsPositive() bool {
	return a.Decimal.IsPositive()
}

// MinAmount returns the smaller of a and b.
func MinAmount(a, b Amount) Amount {
	if a.Decimal.LessThan(b.Decimal) {
		return a
	}
	return b
}

// amountValue returns the zero amount for nil.
func amountValue(a *Amount) Amount {
	return lo.FromPtrOr(a, Amount{})
}
