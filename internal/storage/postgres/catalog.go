package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/inventory/internal/domain/errors"
	"github.com/polkiloo/inventory/internal/domain/model"
)

// entitySchema maps a catalog entity onto its table. columns excludes the id
// column; values and fields must follow the same order.
type entitySchema[T any] struct {
	table    string
	idColumn string
	columns  []string
	id       func(*T) *int64
	fields   func(*T) []any
}

func (s entitySchema[T]) selectList() string {
	return s.idColumn + ", " + strings.Join(s.columns, ", ")
}

func (s entitySchema[T]) scanDest(entity *T) []any {
	return append([]any{s.id(entity)}, s.fields(entity)...)
}

func (s entitySchema[T]) values(entity T) []any {
	out := make([]any, 0, len(s.columns))
	for _, f := range s.fields(&entity) {
		switch v := f.(type) {
		case *string:
			out = append(out, *v)
		case *int64:
			out = append(out, *v)
		case *int:
			out = append(out, *v)
		case *float64:
			out = append(out, *v)
		default:
			out = append(out, v)
		}
	}
	return out
}

func placeholders(from, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("$%d", from+i)
	}
	return out
}

var productSchema = entitySchema[model.Product]{
	table:    "products",
	idColumn: "product_id",
	columns:  []string{"name", "description", "price", "category"},
	id:       func(p *model.Product) *int64 { return &p.ID },
	fields: func(p *model.Product) []any {
		return []any{&p.Name, &p.Description, &p.Price, &p.Category}
	},
}

var stockSchema = entitySchema[model.Stock]{
	table:    "stock",
	idColumn: "stock_id",
	columns:  []string{"product_id", "quantity", "location"},
	id:       func(s *model.Stock) *int64 { return &s.ID },
	fields: func(s *model.Stock) []any {
		return []any{&s.ProductID, &s.Quantity, &s.Location}
	},
}

var supplierSchema = entitySchema[model.Supplier]{
	table:    "suppliers",
	idColumn: "supplier_id",
	columns:  []string{"name", "contact_name", "phone_number", "address"},
	id:       func(s *model.Supplier) *int64 { return &s.ID },
	fields: func(s *model.Supplier) []any {
		return []any{&s.Name, &s.ContactName, &s.PhoneNumber, &s.Address}
	},
}

var customerSchema = entitySchema[model.Customer]{
	table:    "customers",
	idColumn: "customer_id",
	columns:  []string{"name", "phone_number", "address"},
	id:       func(c *model.Customer) *int64 { return &c.ID },
	fields: func(c *model.Customer) []any {
		return []any{&c.Name, &c.PhoneNumber, &c.Address}
	},
}

// catalogRepository implements single-table CRUD for any entity schema.
type catalogRepository[T any] struct {
	storage *Storage
	schema  entitySchema[T]
}

func (r *catalogRepository[T]) Create(ctx context.Context, entity T) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		r.schema.table,
		strings.Join(r.schema.columns, ", "),
		strings.Join(placeholders(1, len(r.schema.columns)), ", "),
		r.schema.idColumn,
	)
	var id int64
	if err := r.storage.pool.QueryRow(ctx, query, r.schema.values(entity)...).Scan(&id); err != nil {
		return 0, storageError("create "+r.schema.table, err)
	}
	return id, nil
}

func (r *catalogRepository[T]) Get(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s=$1`, r.schema.selectList(), r.schema.table, r.schema.idColumn)
	var entity T
	if err := r.storage.pool.QueryRow(ctx, query, id).Scan(r.schema.scanDest(&entity)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s %d: %w", r.schema.table, id, domainErrors.ErrNotFound)
		}
		return nil, storageError("get "+r.schema.table, err)
	}
	return &entity, nil
}

func (r *catalogRepository[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, r.schema.selectList(), r.schema.table, r.schema.idColumn)
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, storageError("list "+r.schema.table, err)
	}
	defer rows.Close()

	result := []T{}
	for rows.Next() {
		var entity T
		if err := rows.Scan(r.schema.scanDest(&entity)...); err != nil {
			return nil, storageError("scan "+r.schema.table, err)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list "+r.schema.table, err)
	}
	return result, nil
}

func (r *catalogRepository[T]) Update(ctx context.Context, entity T) error {
	sets := make([]string, len(r.schema.columns))
	for i, col := range r.schema.columns {
		sets[i] = fmt.Sprintf("%s=$%d", col, i+1)
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s=$%d`,
		r.schema.table, strings.Join(sets, ", "), r.schema.idColumn, len(r.schema.columns)+1)

	id := *r.schema.id(&entity)
	args := append(r.schema.values(entity), id)
	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return storageError("update "+r.schema.table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", r.schema.table, id, domainErrors.ErrNotFound)
	}
	return nil
}

func (r *catalogRepository[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s=$1`, r.schema.table, r.schema.idColumn)
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return storageError("delete "+r.schema.table, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", r.schema.table, id, domainErrors.ErrNotFound)
	}
	return nil
}
