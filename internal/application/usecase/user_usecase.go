package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

// UserUseCase gestión de cuentas, reservada al rol admin. La cuenta
// "admin" está protegida: no se puede borrar ni renombrar.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista las cuentas sin exponer los hashes.
func (uc *UserUseCase) List() ([]dto.UserListItemDTO, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserListItemDTO, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UserListItemDTO{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return items, nil
}

// Create valida, hashea la contraseña y persiste la cuenta nueva.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (int64, error) {
	if in.Username == "" {
		return 0, fmt.Errorf("%w: el nombre de usuario no puede estar vacío", domain.ErrInvalidInput)
	}
	if len(in.Password) < 4 {
		return 0, fmt.Errorf("%w: la contraseña debe tener al menos 4 caracteres", domain.ErrInvalidInput)
	}
	if !entity.ValidRole(in.Role) {
		return 0, fmt.Errorf("%w: rol inválido: %q", domain.ErrInvalidInput, in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrPasswordHash, err)
	}

	return uc.repo.Create(&entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
	})
}

// Update actualización parcial de una cuenta. Renombrar o degradar la
// cuenta admin está prohibido.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: usuario %d", domain.ErrNotFound, id)
	}

	if existing.Username == entity.AdminUsername {
		if in.Username != nil && *in.Username != entity.AdminUsername {
			return fmt.Errorf("%w: la cuenta admin no se puede renombrar", domain.ErrProtectedUser)
		}
		if in.Role != nil && *in.Role != entity.RoleAdmin {
			return fmt.Errorf("%w: la cuenta admin no puede perder el rol", domain.ErrProtectedUser)
		}
	}

	if in.Username != nil && *in.Username == "" {
		return fmt.Errorf("%w: el nombre de usuario no puede estar vacío", domain.ErrInvalidInput)
	}
	if in.Role != nil && !entity.ValidRole(*in.Role) {
		return fmt.Errorf("%w: rol inválido: %q", domain.ErrInvalidInput, *in.Role)
	}

	var hashPtr *string
	if in.Password != nil {
		if len(*in.Password) < 4 {
			return fmt.Errorf("%w: la contraseña debe tener al menos 4 caracteres", domain.ErrInvalidInput)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrPasswordHash, err)
		}
		s := string(hash)
		hashPtr = &s
	}

	return uc.repo.Update(id, entity.UserPatch{
		Username:     in.Username,
		PasswordHash: hashPtr,
		Role:         in.Role,
	})
}

// Delete borra una cuenta. La cuenta admin nunca se borra.
func (uc *UserUseCase) Delete(id int64) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: usuario %d", domain.ErrNotFound, id)
	}
	if existing.Username == entity.AdminUsername {
		return fmt.Errorf("%w: la cuenta admin no se puede borrar", domain.ErrProtectedUser)
	}
	return uc.repo.Delete(id)
}
