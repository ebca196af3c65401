package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se envuelven con
// fmt.Errorf("%w: detalle") donde hace falta contexto; los handlers
// los clasifican con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInUse              = errors.New("recurso en uso")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrProtectedUser      = errors.New("usuario protegido")
	ErrPasswordHash       = errors.New("error de hash de contraseña")
)
