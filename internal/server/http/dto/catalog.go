package dto

import "github.com/polkiloo/inventory/internal/domain/model"

// Product is the wire form of a catalog product.
type Product struct {
	ID          int64   `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// Stock is the wire form of a stock record.
type Stock struct {
	ID        int64  `json:"stock_id"`
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Location  string `json:"location"`
}

// Supplier is the wire form of a supplier.
type Supplier struct {
	ID          int64  `json:"supplier_id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// Customer is the wire form of a customer.
type Customer struct {
	ID          int64  `json:"customer_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func ProductToModel(p Product, id int64) model.Product {
	return model.Product{ID: id, Name: p.Name, Description: p.Description, Price: p.Price, Category: p.Category}
}

func ProductFromModel(p model.Product) Product {
	return Product{ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price, Category: p.Category}
}

func StockToModel(s Stock, id int64) model.Stock {
	return model.Stock{ID: id, ProductID: s.ProductID, Quantity: s.Quantity, Location: s.Location}
}

func StockFromModel(s model.Stock) Stock {
	return Stock{ID: s.ID, ProductID: s.ProductID, Quantity: s.Quantity, Location: s.Location}
}

func SupplierToModel(s Supplier, id int64) model.Supplier {
	return model.Supplier{ID: id, Name: s.Name, ContactName: s.ContactName, PhoneNumber: s.PhoneNumber, Address: s.Address}
}

func SupplierFromModel(s model.Supplier) Supplier {
	return Supplier{ID: s.ID, Name: s.Name, ContactName: s.ContactName, PhoneNumber: s.PhoneNumber, Address: s.Address}
}

func CustomerToModel(c Customer, id int64) model.Customer {
	return model.Customer{ID: id, Name: c.Name, PhoneNumber: c.PhoneNumber, Address: c.Address}
}

func CustomerFromModel(c model.Customer) Customer {
	return Customer{ID: c.ID, Name: c.Name, PhoneNumber: c.PhoneNumber, Address: c.Address}
}
