package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre SQLite
// (usable con db o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar db o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, description, category, price_refill, price_full, stock_full, stock_empty, expiry_month, expiry_year`

// List lista todos los productos ordenados por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	row := r.q.QueryRowContext(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Create persiste un nuevo producto y devuelve su ID.
func (r *ProductRepo) Create(p *entity.Product) (int64, error) {
	res, err := r.q.ExecContext(context.Background(), `
		INSERT INTO products (name, description, category, price_refill, price_full, stock_full, stock_empty, expiry_month, expiry_year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Description, p.Category, p.PriceRefill.String(), p.PriceFull.String(),
		p.StockFull, p.StockEmpty, p.ExpiryMonth, p.ExpiryYear,
	)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert product id: %w", err)
	}
	return id, nil
}

// Update escribe solo las columnas presentes en el patch. Patch vacío: no-op.
func (r *ProductRepo) Update(id int64, patch entity.ProductPatch) error {
	var sets []setClause
	sets = setIf(sets, "name", patch.Name)
	sets = setIf(sets, "description", patch.Description)
	sets = setIf(sets, "category", patch.Category)
	if patch.PriceRefill != nil {
		sets = append(sets, setClause{column: "price_refill", value: patch.PriceRefill.String()})
	}
	if patch.PriceFull != nil {
		sets = append(sets, setClause{column: "price_full", value: patch.PriceFull.String()})
	}
	sets = setIf(sets, "stock_full", patch.StockFull)
	sets = setIf(sets, "stock_empty", patch.StockEmpty)
	sets = setIf(sets, "expiry_month", patch.ExpiryMonth)
	sets = setIf(sets, "expiry_year", patch.ExpiryYear)

	query, args := buildUpdate("products", sets, id)
	if query == "" {
		return nil
	}
	if _, err := r.q.ExecContext(context.Background(), query, args...); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Un producto referenciado por líneas
// de pedido o movimientos de stock no puede borrarse (ErrInUse).
func (r *ProductRepo) Delete(id int64) error {
	if _, err := r.q.ExecContext(context.Background(), `DELETE FROM products WHERE id = ?`, id); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el producto %d tiene pedidos o movimientos asociados", domain.ErrInUse, id)
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// AdjustStock suma los deltas a los contadores de stock (pueden ser negativos).
func (r *ProductRepo) AdjustStock(id int64, deltaFull, deltaEmpty int64) error {
	_, err := r.q.ExecContext(context.Background(),
		`UPDATE products SET stock_full = stock_full + ?, stock_empty = stock_empty + ? WHERE id = ?`,
		deltaFull, deltaEmpty, id,
	)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var description sql.NullString
	var priceRefill, priceFull string
	var expiryMonth, expiryYear sql.NullInt64
	err := row.Scan(&p.ID, &p.Name, &description, &p.Category, &priceRefill, &priceFull,
		&p.StockFull, &p.StockEmpty, &expiryMonth, &expiryYear)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	p.Description = nullStr(description)
	p.ExpiryMonth = nullInt(expiryMonth)
	p.ExpiryYear = nullInt(expiryYear)
	if p.PriceRefill, err = scanDecimal(priceRefill); err != nil {
		return nil, fmt.Errorf("scan product price_refill: %w", err)
	}
	if p.PriceFull, err = scanDecimal(priceFull); err != nil {
		return nil, fmt.Errorf("scan product price_full: %w", err)
	}
	return &p, nil
}
