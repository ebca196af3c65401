package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP para Customer (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List lista todos los clientes; con ?phone= busca por teléfono.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	if phone := c.Query("phone"); phone != "" {
		out, err := h.uc.SearchByPhone(phone)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search busca clientes cuyo teléfono contenga ?phone=.
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.SearchByPhone(c.Query("phone"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un cliente por ID.
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create crea un cliente y devuelve su ID.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	id, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// Update actualización parcial: escribe solo los campos presentes.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.uc.Update(id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete elimina un cliente (solo admin). Sus pedidos quedan sin cliente.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
