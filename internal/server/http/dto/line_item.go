package dto

import "github.com/polkiloo/inventory/internal/domain/model"

// LineItemRequest adds a single persisted line item.
type LineItemRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// LineItemResponse describes an order_details row.
type LineItemResponse struct {
	ID        int64   `json:"detail_id"`
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// NewLineItemResponse maps a domain line item.
func NewLineItemResponse(item model.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
}
