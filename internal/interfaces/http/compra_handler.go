package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/libreria-online/internal/application/compras"
	"github.com/tu-usuario/libreria-online/internal/application/dto"
	"github.com/tu-usuario/libreria-online/internal/domain"
)

// CompraHandler maneja la creación de preferencias de pago y el historial.
// Todas las rutas requieren usuario autenticado; el historial se filtra
// siempre a la identidad del token.
type CompraHandler struct {
	uc *compras.ComprasUseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *compras.ComprasUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// CrearPreferencia godoc
// @Summary      Crear preferencia de pago con el carrito
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearPreferenciaRequest  true  "cart"
// @Success      200   {object}  dto.PreferenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /crear-preferencia [post]
func (h *CompraHandler) CrearPreferencia(c *fiber.Ctx) error {
	var in dto.CrearPreferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	out, err := h.uc.CrearPreferencia(c.Context(), GetEmail(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Carrito inválido"})
		}
		if errors.Is(err, domain.ErrProveedorPagos) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear la preferencia de pago"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno"})
	}
	return c.JSON(out)
}

// Historial godoc
// @Summary      Historial de compras propio
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CompraResponse
// @Router       /historial [get]
func (h *CompraHandler) Historial(c *fiber.Ctx) error {
	out, err := h.uc.Historial(c.Context(), GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno"})
	}
	return c.JSON(out)
}

// Recibo godoc
// @Summary      Recibo PDF de una compra propia
// @Tags         compras
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /historial/{id}/recibo [get]
func (h *CompraHandler) Recibo(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Recibo(c.Context(), GetEmail(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCompraNoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Compra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
