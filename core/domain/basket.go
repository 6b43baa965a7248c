package domain

import "strconv"

type BasketItem struct {
	BasketItemReferenceID string  `json:"basketItemReferenceId,omitempty"`
	Quantity              int     `json:"quantity"`
	Vat                   *Amount `json:"vat,omitempty"`
	AmountDiscount        *Amount `json:"amountDiscount,omitempty"`
	AmountGross           *Amount `json:"amountGross,omitempty"`
	AmountVat             *Amount `json:"amountVat,omitempty"`
	AmountPerUnit         *Amount `json:"amountPerUnit,omitempty"`
	AmountNet             *Amount `json:"amountNet,omitempty"`
	Unit                  string  `json:"unit,omitempty"`
	Title                 string  `json:"title" validate:"required"`
	SubTitle              string  `json:"subTitle,omitempty"`
	ImageURL              string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Type                  string  `json:"type,omitempty"`
}

func NewBasketItem(title string, amountNet, amountPerUnit Amount, quantity int) *BasketItem {
	return &BasketItem{
		Title:         title,
		AmountNet:     &amountNet,
		AmountPerUnit: &amountPerUnit,
		Quantity:      quantity,
	}
}

// Basket lists the goods of an order; the invoice factoring and hire purchase types require one.
type Basket struct {
	Entity
	AmountTotalGross    *Amount       `json:"amountTotalGross,omitempty"`
	AmountTotalDiscount *Amount       `json:"amountTotalDiscount,omitempty"`
	AmountTotalVat      *Amount       `json:"amountTotalVat,omitempty"`
	CurrencyCode        string        `json:"currencyCode,omitempty" validate:"omitempty,len=3"`
	OrderID             string        `json:"orderId,omitempty"`
	Note                string        `json:"note,omitempty"`
	BasketItems         []*BasketItem `json:"basketItems" validate:"dive"`
}

func NewBasket(orderID string, amountTotalGross Amount, currencyCode string, items ...*BasketItem) *Basket {
	if items == nil {
		items = []*BasketItem{}
	}
	return &Basket{
		OrderID:          orderID,
		AmountTotalGross: &amountTotalGross,
		CurrencyCode:     currencyCode,
		BasketItems:      items,
	}
}

func (b *Basket) URI(appendID bool) string {
	return resourceURI("baskets", b.ID, appendID)
}

// AddItem appends item, numbering it when it carries no reference id.
func (b *Basket) AddItem(item *BasketItem) {
	if item.BasketItemReferenceID == "" {
		item.BasketItemReferenceID = strconv.Itoa(len(b.BasketItems))
	}
	b.BasketItems = append(b.BasketItems, item)
}

func (b *Basket) ItemCount() int {
	return len(b.BasketItems)
}
