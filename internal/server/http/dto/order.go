package dto

import "github.com/polkiloo/inventory/internal/domain/model"

// OrderRequest is the payload of order create and update calls.
type OrderRequest struct {
	Type           string  `json:"order_type"`
	Date           string  `json:"order_date"`
	CounterpartyID int64   `json:"customer_or_supplier_id"`
	TotalAmount    float64 `json:"total_amount"`
}

// OrderResponse describes a stored order header.
type OrderResponse struct {
	ID             int64   `json:"order_id"`
	Type           string  `json:"order_type"`
	Date           string  `json:"order_date"`
	CounterpartyID int64   `json:"customer_or_supplier_id"`
	TotalAmount    float64 `json:"total_amount"`
}

// ToOrder converts the request into a domain order with the given id.
func (r OrderRequest) ToOrder(id int64) model.Order {
	return model.Order{
		ID:             id,
		Type:           model.OrderType(r.Type),
		Date:           r.Date,
		CounterpartyID: r.CounterpartyID,
		TotalAmount:    r.TotalAmount,
	}
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o model.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID,
		Type:           string(o.Type),
		Date:           o.Date,
		CounterpartyID: o.CounterpartyID,
		TotalAmount:    o.TotalAmount,
	}
}
