package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/libreria-online/internal/application/catalogo"
	"github.com/tu-usuario/libreria-online/internal/application/dto"
	"github.com/tu-usuario/libreria-online/internal/domain"
)

// LibroHandler maneja el catálogo: listado público y alta (solo admin).
type LibroHandler struct {
	uc *catalogo.CatalogoUseCase
}

// NewLibroHandler construye el handler.
func NewLibroHandler(uc *catalogo.CatalogoUseCase) *LibroHandler {
	return &LibroHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar el catálogo
// @Tags         libros
// @Produce      json
// @Success      200  {array}  dto.LibroResponse
// @Router       /libros [get]
func (h *LibroHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno"})
	}
	return c.JSON(out)
}

// Crear godoc
// @Summary      Subir un libro (solo admin)
// @Tags         libros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearLibroRequest  true  "titulo, descripcion, precio, imagen"
// @Success      200   {object}  dto.CrearLibroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /libros [post]
func (h *LibroHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearLibroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Cuerpo inválido"})
	}
	libro, err := h.uc.Agregar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Titulo requerido y precio no negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error interno"})
	}
	return c.JSON(dto.CrearLibroResponse{Mensaje: "Libro agregado", Libro: *libro})
}
