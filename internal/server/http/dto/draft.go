package dto

import (
	"github.com/polkiloo/inventory/internal/domain/model"
	"github.com/polkiloo/inventory/internal/draft"
)

// DraftItemRequest stages an item in the session draft.
type DraftItemRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// DraftItemResponse is a staged, not yet persisted item.
type DraftItemResponse struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// DraftResponse shows the staged items of a draft and their totals.
// Subtotal is a decimal string to keep cents exact.
type DraftResponse struct {
	OrderID  int64               `json:"order_id"`
	Items    []DraftItemResponse `json:"items"`
	Count    int                 `json:"count"`
	Quantity int                 `json:"quantity"`
	Subtotal string              `json:"subtotal"`
}

// CommitResponse reports how many line items a commit wrote.
type CommitResponse struct {
	OrderID   int64 `json:"order_id"`
	Committed int   `json:"committed"`
}

// NewDraftResponse maps staged items and their summary.
func NewDraftResponse(orderID int64, items []model.DraftItem, summary draft.Summary) DraftResponse {
	resp := DraftResponse{
		OrderID:  orderID,
		Items:    make([]DraftItemResponse, 0, len(items)),
		Count:    summary.Items,
		Quantity: summary.Quantity,
		Subtotal: summary.Subtotal.StringFixed(2),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, DraftItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return resp
}
