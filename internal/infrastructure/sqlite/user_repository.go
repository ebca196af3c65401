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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, password_hash, role, created_at, updated_at`

// List lista todos los usuarios ordenados por username.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	return r.getWhere(`id = ?`, id)
}

// GetByUsername obtiene un usuario por username. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getWhere(`username = ?`, username)
}

// Create persiste un nuevo usuario y devuelve su ID. Username duplicado
// devuelve domain.ErrDuplicate.
func (r *UserRepo) Create(u *entity.User) (int64, error) {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		u.Username, u.PasswordHash, u.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user id: %w", err)
	}
	return id, nil
}

// Update escribe solo las columnas presentes en el patch y refresca
// updated_at. Patch vacío: no-op.
func (r *UserRepo) Update(id int64, patch entity.UserPatch) error {
	var sets []setClause
	sets = setIf(sets, "username", patch.Username)
	sets = setIf(sets, "password_hash", patch.PasswordHash)
	sets = setIf(sets, "role", patch.Role)
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, setClause{column: "updated_at", value: nowUTC()})

	query, args := buildUpdate("users", sets, id)
	if _, err := r.q.ExecContext(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID. La regla de protección de la cuenta
// "admin" vive en el caso de uso, no aquí.
func (r *UserRepo) Delete(id int64) error {
	if _, err := r.q.ExecContext(context.Background(), `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepo) getWhere(where string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRowContext(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE `+where, arg).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
