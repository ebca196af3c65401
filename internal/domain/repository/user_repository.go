package repository

import "github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// GetByUsername y GetByID devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	List() ([]*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Create(user *entity.User) (int64, error)
	Update(id int64, patch entity.UserPatch) error
	Delete(id int64) error
}
