package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/analytics"
)

// DashboardHandler resumen de la pantalla principal (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats devuelve el snapshot de métricas para la GUI.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
