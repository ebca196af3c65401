package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/entity"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
	"github.com/tu-usuario/distribuidora-pdv/pkg/config"
	"github.com/tu-usuario/distribuidora-pdv/pkg/jwt"
)

// UseCase autenticación con usuario y contraseña. La sesión viaja como
// token firmado en cada petición; el servidor no guarda estado de sesión.
type UseCase struct {
	users repository.UserRepository
	jwt   config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, jwt: jwtCfg}
}

// Login verifica las credenciales y emite un token. Usuario inexistente y
// contraseña incorrecta devuelven el mismo error para no filtrar qué
// cuentas existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwt.Secret, user.ID, user.Username, user.Role, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, fmt.Errorf("generando token: %w", err)
	}

	return &dto.LoginResponse{Token: token, User: toSafeDTO(user)}, nil
}

// SeedAdmin garantiza que exista la cuenta admin. Si ya existe no toca
// nada, ni siquiera la contraseña; por eso es seguro llamarla en cada
// arranque.
func (uc *UseCase) SeedAdmin(password string) error {
	if password == "" {
		return fmt.Errorf("%w: la contraseña inicial no puede estar vacía", domain.ErrInvalidInput)
	}

	existing, err := uc.users.GetByUsername(entity.AdminUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPasswordHash, err)
	}

	_, err = uc.users.Create(&entity.User{
		Username:     entity.AdminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	})
	// Dos arranques simultáneos pueden chocar en el índice único; esa
	// carrera también cuenta como sembrado exitoso.
	if err != nil && errors.Is(err, domain.ErrDuplicate) {
		return nil
	}
	return err
}

// CurrentUser resuelve la identidad del token ya verificado por el
// middleware. Devuelve ErrUnauthorized si el usuario fue borrado después
// de emitir el token.
func (uc *UseCase) CurrentUser(userID int64) (*dto.SafeUserDTO, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: la sesión ya no es válida", domain.ErrUnauthorized)
	}
	out := toSafeDTO(user)
	return &out, nil
}

// toSafeDTO reduce el usuario a la identidad que viaja hacia la GUI.
func toSafeDTO(u *entity.User) dto.SafeUserDTO {
	s := u.Safe()
	return dto.SafeUserDTO{ID: s.ID, Username: s.Username, Role: s.Role}
}
