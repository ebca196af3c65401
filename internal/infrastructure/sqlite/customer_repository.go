package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con db o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar db o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List lista todos los clientes ordenados por nombre.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	return r.query(`SELECT id, name, phone, address, notes FROM customers ORDER BY name`)
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	var c entity.Customer
	var phone, address, notes sql.NullString
	err := r.q.QueryRowContext(context.Background(),
		`SELECT id, name, phone, address, notes FROM customers WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &phone, &address, &notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.Phone, c.Address, c.Notes = nullStr(phone), nullStr(address), nullStr(notes)
	return &c, nil
}

// SearchByPhone busca clientes por subcadena del teléfono.
func (r *CustomerRepo) SearchByPhone(phone string) ([]*entity.Customer, error) {
	return r.query(
		`SELECT id, name, phone, address, notes FROM customers WHERE phone LIKE ? ORDER BY name`,
		"%"+phone+"%",
	)
}

// Create persiste un nuevo cliente y devuelve su ID.
func (r *CustomerRepo) Create(c *entity.Customer) (int64, error) {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO customers (name, phone, address, notes) VALUES (?, ?, ?, ?)`,
		c.Name, c.Phone, c.Address, c.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert customer id: %w", err)
	}
	return id, nil
}

// Update escribe solo las columnas presentes en el patch. Patch vacío: no-op.
func (r *CustomerRepo) Update(id int64, patch entity.CustomerPatch) error {
	var sets []setClause
	sets = setIf(sets, "name", patch.Name)
	sets = setIf(sets, "phone", patch.Phone)
	sets = setIf(sets, "address", patch.Address)
	sets = setIf(sets, "notes", patch.Notes)

	query, args := buildUpdate("customers", sets, id)
	if query == "" {
		return nil
	}
	if _, err := r.q.ExecContext(context.Background(), query, args...); err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id int64) error {
	if _, err := r.q.ExecContext(context.Background(), `DELETE FROM customers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) query(query string, args ...any) ([]*entity.Customer, error) {
	rows, err := r.q.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		var phone, address, notes sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &phone, &address, &notes); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Phone, c.Address, c.Notes = nullStr(phone), nullStr(address), nullStr(notes)
		list = append(list, &c)
	}
	return list, rows.Err()
}
