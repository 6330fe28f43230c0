package model

// OrderType tells whether the counterparty is a supplier or a customer.
type OrderType string

const (
	OrderTypePurchase OrderType = "purchase"
	OrderTypeSale     OrderType = "sale"
)

// OrderDateLayout is the textual layout order dates are stored with.
const OrderDateLayout = "2006-01-02"

// Order is the order header. CounterpartyID refers to a supplier for purchase
// orders and to a customer for sale orders. TotalAmount is caller supplied.
type Order struct {
	ID             int64
	Type           OrderType
	Date           string
	CounterpartyID int64
	TotalAmount    float64
}

// Valid reports whether t is a recognised order type.
func (t OrderType) Valid() bool {
	return t == OrderTypePurchase || t == OrderTypeSale
}
