package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con db o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar db o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderSelect = `
	SELECT o.id, o.customer_id, c.name AS customer_name, o.total, o.created_at
	FROM orders o
	LEFT JOIN customers c ON o.customer_id = c.id`

// List lista todos los pedidos, más recientes primero.
func (r *OrderRepo) List() ([]*entity.OrderWithCustomer, error) {
	return r.queryOrders(orderSelect + ` ORDER BY o.created_at DESC, o.id DESC`)
}

// ListByCustomer lista los pedidos de un cliente, más recientes primero.
func (r *OrderRepo) ListByCustomer(customerID int64) ([]*entity.OrderWithCustomer, error) {
	return r.queryOrders(orderSelect+` WHERE o.customer_id = ? ORDER BY o.created_at DESC, o.id DESC`, customerID)
}

// GetByID obtiene el pedido con cliente y líneas. Devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id int64) (*entity.OrderWithItems, error) {
	var o entity.OrderWithCustomer
	var customerID sql.NullInt64
	var customerName sql.NullString
	var total string
	err := r.q.QueryRowContext(context.Background(), orderSelect+` WHERE o.id = ?`, id).
		Scan(&o.ID, &customerID, &customerName, &total, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.CustomerID = nullInt(customerID)
	o.CustomerName = nullStr(customerName)
	if o.Total, err = scanDecimal(total); err != nil {
		return nil, fmt.Errorf("scan order total: %w", err)
	}

	rows, err := r.q.QueryContext(context.Background(), `
		SELECT oi.id, oi.order_id, oi.product_id, p.name AS product_name,
		       oi.quantity, oi.returned_bottle, oi.unit_price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = ?
		ORDER BY oi.id`, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItemWithProduct
	for rows.Next() {
		var it entity.OrderItemWithProduct
		var unitPrice string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.ReturnedBottle, &unitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if it.UnitPrice, err = scanDecimal(unitPrice); err != nil {
			return nil, fmt.Errorf("scan order item unit_price: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &entity.OrderWithItems{Order: o, Items: items}, nil
}

// Insert persiste la cabecera del pedido y devuelve su ID. CreatedAt lo
// asigna la base si viene vacío.
func (r *OrderRepo) Insert(o *entity.Order) (int64, error) {
	var res sql.Result
	var err error
	if o.CreatedAt != "" {
		res, err = r.q.ExecContext(context.Background(),
			`INSERT INTO orders (customer_id, total, created_at) VALUES (?, ?, ?)`,
			o.CustomerID, o.Total.String(), o.CreatedAt)
	} else {
		res, err = r.q.ExecContext(context.Background(),
			`INSERT INTO orders (customer_id, total) VALUES (?, ?)`,
			o.CustomerID, o.Total.String())
	}
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert order id: %w", err)
	}
	return id, nil
}

// InsertItem persiste una línea del pedido.
func (r *OrderRepo) InsertItem(it *entity.OrderItem) error {
	_, err := r.q.ExecContext(context.Background(), `
		INSERT INTO order_items (order_id, product_id, quantity, returned_bottle, unit_price)
		VALUES (?, ?, ?, ?, ?)`,
		it.OrderID, it.ProductID, it.Quantity, it.ReturnedBottle, it.UnitPrice.String(),
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// Update edición administrativa del pedido (solo created_at). Patch vacío: no-op.
func (r *OrderRepo) Update(id int64, patch entity.OrderPatch) error {
	var sets []setClause
	sets = setIf(sets, "created_at", patch.CreatedAt)

	query, args := buildUpdate("orders", sets, id)
	if query == "" {
		return nil
	}
	if _, err := r.q.ExecContext(context.Background(), query, args...); err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// Delete elimina el pedido; las líneas caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(id int64) error {
	if _, err := r.q.ExecContext(context.Background(), `DELETE FROM orders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) queryOrders(query string, args ...any) ([]*entity.OrderWithCustomer, error) {
	rows, err := r.q.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderWithCustomer
	for rows.Next() {
		var o entity.OrderWithCustomer
		var customerID sql.NullInt64
		var customerName sql.NullString
		var total string
		if err := rows.Scan(&o.ID, &customerID, &customerName, &total, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.CustomerID = nullInt(customerID)
		o.CustomerName = nullStr(customerName)
		if o.Total, err = scanDecimal(total); err != nil {
			return nil, fmt.Errorf("scan order total: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
