package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/libreria-online/internal/application/dto"
	"github.com/tu-usuario/libreria-online/internal/application/ventas"
)

// DashboardHandler expone el resumen de ventas (solo admin).
type DashboardHandler struct {
	uc *ventas.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *ventas.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumen godoc
// @Summary      Dashboard de ventas (solo admin)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno"})
	}
	return c.JSON(out)
}
