package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
	testhelpers "github.com/polkiloo/inventory/internal/test"
)

func TestProductUseCaseCRUD(t *testing.T) {
	repo := testhelpers.NewCatalogRepositoryStub(func(p *model.Product) *int64 { return &p.ID })
	uc := NewProductUseCase(repo)
	ctx := context.Background()

	id, err := uc.Create(ctx, model.Product{Name: "bolt", Category: "hardware", Price: 0.25})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := uc.Get(ctx, id)
	if err != nil || got.Name != "bolt" || got.ID != id {
		t.Fatalf("unexpected product %+v err=%v", got, err)
	}

	got.Price = 0.3
	if err := uc.Update(ctx, *got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got.Name = ""
	if err := uc.Update(ctx, *got); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	list, err := uc.List(ctx)
	if err != nil || len(list) != 1 || list[0].Price != 0.3 {
		t.Fatalf("unexpected list %+v err=%v", list, err)
	}

	if err := uc.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(ctx, id); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalogUseCaseRejectsInvalidBeforeWrite(t *testing.T) {
	ctx := context.Background()

	stock := testhelpers.NewCatalogRepositoryStub(func(s *model.Stock) *int64 { return &s.ID })
	if _, err := NewStockUseCase(stock).Create(ctx, model.Stock{ProductID: 1, Quantity: 0, Location: "A"}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(stock.Items) != 0 {
		t.Fatal("expected nothing stored")
	}

	suppliers := testhelpers.NewCatalogRepositoryStub(func(s *model.Supplier) *int64 { return &s.ID })
	if _, err := NewSupplierUseCase(suppliers).Create(ctx, model.Supplier{}); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	customers := testhelpers.NewCatalogRepositoryStub(func(c *model.Customer) *int64 { return &c.ID })
	cuc := NewCustomerUseCase(customers)
	if _, err := cuc.Create(ctx, model.Customer{Name: "Kim"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	customers.Err = domainErrors.ErrStorage
	if _, err := cuc.List(ctx); !errors.Is(err, domainErrors.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
