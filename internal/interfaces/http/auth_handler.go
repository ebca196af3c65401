package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/auth"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
)

// AuthHandler maneja login, sesión actual y el sembrado del admin.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login verifica credenciales y devuelve el token de sesión.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SeedAdmin garantiza la cuenta admin; idempotente. Público a propósito:
// el primer arranque de la GUI lo llama antes de poder autenticarse.
func (h *AuthHandler) SeedAdmin(c *fiber.Ctx) error {
	var in dto.SeedAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.uc.SeedAdmin(in.Password); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Logout confirma el cierre de sesión. El token firmado es la sesión, así
// que basta con que la GUI lo descarte; no hay estado que limpiar aquí.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// Me devuelve la identidad de la sesión vigente.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.CurrentUser(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
