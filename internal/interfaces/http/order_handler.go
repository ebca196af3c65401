package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/orders"
)

// OrderHandler maneja las peticiones HTTP para Order (protegido).
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List lista las cabeceras; con ?customer_id= filtra por cliente.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	if customerID := c.QueryInt("customer_id", 0); customerID > 0 {
		out, err := h.uc.ListByCustomer(int64(customerID))
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

// GetByID devuelve el pedido completo con sus líneas.
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
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

// Create registra el pedido completo de forma atómica.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// Update edición administrativa de la fecha (solo admin).
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := h.uc.Update(id, in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete borra el pedido y sus líneas (solo admin).
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
