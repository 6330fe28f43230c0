package model

// LineItem is a persisted order_details row. Price is a snapshot taken when
// the item was staged and may differ from the product's list price.
type LineItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     float64
}

// DraftItem is a line item staged in a draft and not yet persisted.
type DraftItem struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}
