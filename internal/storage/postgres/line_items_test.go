package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
)

func expectOrderExists(mock pgxmockv3.PgxPoolIface, orderID int64) {
	mock.ExpectQuery("SELECT 1 FROM orders WHERE order_id=").WithArgs(orderID).
		WillReturnRows(pgxmockv3.NewRows([]string{"one"}).AddRow(1))
}

func expectProductExists(mock pgxmockv3.PgxPoolIface, productID int64) {
	mock.ExpectQuery("SELECT 1 FROM products WHERE product_id=").WithArgs(productID).
		WillReturnRows(pgxmockv3.NewRows([]string{"one"}).AddRow(1))
}

func expectInsertDetail(mock pgxmockv3.PgxPoolIface, orderID, productID int64, qty int, price float64, id int64) {
	mock.ExpectQuery("INSERT INTO order_details").WithArgs(orderID, productID, qty, price).
		WillReturnRows(pgxmockv3.NewRows([]string{"detail_id"}).AddRow(id))
}

func TestLineItemRepositoryAdd(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &lineItemRepository{storage: storage}
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		expectOrderExists(mock, 1)
		expectProductExists(mock, 3)
		expectInsertDetail(mock, 1, 3, 2, 9.99, 100)
		mock.ExpectCommit()

		item, err := repo.Add(ctx, model.LineItem{OrderID: 1, ProductID: 3, Quantity: 2, Price: 9.99})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID != 100 || item.Price != 9.99 {
			t.Fatalf("unexpected item: %+v", item)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM orders WHERE order_id=").WithArgs(int64(9)).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.Add(ctx, model.LineItem{OrderID: 9, ProductID: 3, Quantity: 1})
		if !errors.Is(err, domainErrors.ErrValidation) || !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected validation wrapping not found, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		mock.ExpectBegin()
		expectOrderExists(mock, 1)
		mock.ExpectQuery("SELECT 1 FROM products WHERE product_id=").WithArgs(int64(8)).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.Add(ctx, model.LineItem{OrderID: 1, ProductID: 8, Quantity: 1})
		if !errors.Is(err, domainErrors.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("insert failure", func(t *testing.T) {
		mock.ExpectBegin()
		expectOrderExists(mock, 1)
		expectProductExists(mock, 3)
		mock.ExpectQuery("INSERT INTO order_details").WithArgs(int64(1), int64(3), 1, 1.0).WillReturnError(errors.New("insert"))
		mock.ExpectRollback()

		_, err := repo.Add(ctx, model.LineItem{OrderID: 1, ProductID: 3, Quantity: 1, Price: 1})
		if !errors.Is(err, domainErrors.ErrStorage) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLineItemRepositoryAddBatch(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &lineItemRepository{storage: storage}
	ctx := context.Background()

	items := []model.DraftItem{
		{ProductID: 3, Quantity: 2, UnitPrice: 9.99},
		{ProductID: 4, Quantity: 1, UnitPrice: 5.00},
	}

	t.Run("writes all in order", func(t *testing.T) {
		mock.ExpectBegin()
		expectOrderExists(mock, 7)
		expectProductExists(mock, 3)
		expectInsertDetail(mock, 7, 3, 2, 9.99, 1)
		expectProductExists(mock, 4)
		expectInsertDetail(mock, 7, 4, 1, 5.00, 2)
		mock.ExpectCommit()

		n, err := repo.AddBatch(ctx, 7, items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Fatalf("expected 2 rows, got %d", n)
		}
	})

	t.Run("failure on second item rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		expectOrderExists(mock, 7)
		expectProductExists(mock, 3)
		expectInsertDetail(mock, 7, 3, 2, 9.99, 1)
		mock.ExpectQuery("SELECT 1 FROM products WHERE product_id=").WithArgs(int64(4)).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		n, err := repo.AddBatch(ctx, 7, items)
		if n != 0 {
			t.Fatalf("expected zero rows, got %d", n)
		}
		if !errors.Is(err, domainErrors.ErrValidation) || !strings.Contains(err.Error(), "item 1") {
			t.Fatalf("expected validation error naming item 1, got %v", err)
		}
	})

	t.Run("insert failure", func(t *testing.T) {
		mock.ExpectBegin()
		expectOrderExists(mock, 7)
		expectProductExists(mock, 3)
		mock.ExpectQuery("INSERT INTO order_details").WithArgs(int64(7), int64(3), 2, 9.99).WillReturnError(errors.New("disk"))
		mock.ExpectRollback()

		_, err := repo.AddBatch(ctx, 7, items)
		if !errors.Is(err, domainErrors.ErrStorage) || !strings.Contains(err.Error(), "item 0") {
			t.Fatalf("expected storage error naming item 0, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM orders WHERE order_id=").WithArgs(int64(99)).WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		if _, err := repo.AddBatch(ctx, 99, items); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("commit failure", func(t *testing.T) {
		mock.ExpectBegin()
		expectOrderExists(mock, 7)
		expectProductExists(mock, 3)
		expectInsertDetail(mock, 7, 3, 2, 9.99, 1)
		mock.ExpectCommit().WillReturnError(errors.New("commit"))

		n, err := repo.AddBatch(ctx, 7, items[:1])
		if n != 0 || !errors.Is(err, domainErrors.ErrStorage) {
			t.Fatalf("expected storage error and zero rows, got n=%d err=%v", n, err)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLineItemRepositoryListByOrder(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &lineItemRepository{storage: storage}
	ctx := context.Background()

	cols := []string{"detail_id", "order_id", "product_id", "quantity", "price"}
	mock.ExpectQuery("FROM order_details WHERE order_id=").WithArgs(int64(7)).WillReturnRows(
		pgxmockv3.NewRows(cols).
			AddRow(int64(1), int64(7), int64(3), 2, 9.99).
			AddRow(int64(2), int64(7), int64(4), 1, 5.00))
	items, err := repo.ListByOrder(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].ProductID != 3 || items[1].ProductID != 4 || items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", items)
	}

	mock.ExpectQuery("FROM order_details WHERE order_id=").WithArgs(int64(8)).WillReturnRows(pgxmockv3.NewRows(cols))
	items, err = repo.ListByOrder(ctx, 8)
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %v err=%v", items, err)
	}

	mock.ExpectQuery("FROM order_details WHERE order_id=").WithArgs(int64(9)).WillReturnError(errors.New("boom"))
	if _, err := repo.ListByOrder(ctx, 9); !errors.Is(err, domainErrors.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestLineItemRepositoryListRowsError(t *testing.T) {
	repo := &lineItemRepository{storage: newRowsErrorStorage()}
	if _, err := repo.ListByOrder(context.Background(), 1); !errors.Is(err, domainErrors.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
