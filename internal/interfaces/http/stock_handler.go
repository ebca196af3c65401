package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/inventory"
)

// StockHandler movimientos manuales de inventario (protegido).
type StockHandler struct {
	uc *inventory.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// In entrada de mercancía.
func (h *StockHandler) In(c *fiber.Ctx) error {
	return h.apply(c, h.uc.StockIn)
}

// Out salida manual.
func (h *StockHandler) Out(c *fiber.Ctx) error {
	return h.apply(c, h.uc.StockOut)
}

// Adjust corrección con signo tras recuento.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	return h.apply(c, h.uc.StockAdjust)
}

// Movements devuelve el libro completo, más reciente primero.
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.Movements()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// apply parsea el cuerpo común y delega en la operación de stock.
func (h *StockHandler) apply(c *fiber.Ctx, op func(context.Context, dto.StockOpRequest) error) error {
	var in dto.StockOpRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := op(c.Context(), in); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
