package model

// Product is a catalog entry. The image column is not handled by the service.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
}

// Stock records quantity of a product kept at a location.
type Stock struct {
	ID        int64
	ProductID int64
	Quantity  int
	Location  string
}

// Supplier is the counterparty of purchase orders.
type Supplier struct {
	ID          int64
	Name        string
	ContactName string
	PhoneNumber string
	Address     string
}

// Customer is the counterparty of sale orders.
type Customer struct {
	ID          int64
	Name        string
	PhoneNumber string
	Address     string
}
