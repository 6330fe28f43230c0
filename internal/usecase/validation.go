package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{domainErrors.ErrValidation}, args...)...)
}

// Identifiers and quantities are stored in INTEGER columns.
func inInt32(v int64, lowest int64) bool {
	return v >= lowest && v <= math.MaxInt32
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// ValidateOrder checks an order header before it is written.
func ValidateOrder(order model.Order) error {
	if !order.Type.Valid() {
		return invalid("unknown order type %q", order.Type)
	}
	if strings.TrimSpace(order.Date) == "" {
		return invalid("order date is required")
	}
	if _, err := time.Parse(model.OrderDateLayout, order.Date); err != nil {
		return invalid("order date %q must be YYYY-MM-DD", order.Date)
	}
	if !inInt32(order.CounterpartyID, 1) {
		return invalid("counterparty id out of range")
	}
	if !validAmount(order.TotalAmount) {
		return invalid("total amount must be a non-negative number")
	}
	return nil
}

// ValidateLineItem checks a line item written outside of a draft.
func ValidateLineItem(item model.LineItem) error {
	switch {
	case !inInt32(item.OrderID, 1):
		return invalid("order id out of range")
	case !inInt32(item.ProductID, 1):
		return invalid("product id out of range")
	case !inInt32(int64(item.Quantity), 0):
		return invalid("quantity out of range")
	case !validAmount(item.Price):
		return invalid("price must be a non-negative number")
	}
	return nil
}

// ValidateProduct requires name and category and a non-negative price.
func ValidateProduct(p model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("product name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return invalid("product category is required")
	}
	if !validAmount(p.Price) {
		return invalid("product price must be a non-negative number")
	}
	return nil
}

// ValidateStock checks a stock entry.
func ValidateStock(s model.Stock) error {
	if !inInt32(s.ProductID, 1) {
		return invalid("product id out of range")
	}
	if !inInt32(int64(s.Quantity), 1) {
		return invalid("stock quantity must be between 1 and %d", math.MaxInt32)
	}
	if strings.TrimSpace(s.Location) == "" {
		return invalid("stock location is required")
	}
	return nil
}

// ValidateSupplier requires a supplier name.
func ValidateSupplier(s model.Supplier) error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("supplier name is required")
	}
	return nil
}

// ValidateCustomer requires a customer name.
func ValidateCustomer(c model.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("customer name is required")
	}
	return nil
}
