package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Operators() OperatorRepository
	Orders() OrderRepository
	LineItems() LineItemRepository
	Products() ProductRepository
	Stock() StockRepository
	Suppliers() SupplierRepository
	Customers() CustomerRepository
}
