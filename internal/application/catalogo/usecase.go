// Package catalogo contiene los casos de uso del catálogo de libros: listado
// público y alta de títulos (solo admin, gate aplicado en el router).
package catalogo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/libreria-online/internal/application/dto"
	"github.com/tu-usuario/libreria-online/internal/domain"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
)

// CatalogoUseCase casos de uso del catálogo. El catálogo solo crece: no hay
// edición, borrado ni deduplicación de títulos.
type CatalogoUseCase struct {
	libroRepo repository.LibroRepository
}

// NewCatalogoUseCase construye el caso de uso.
func NewCatalogoUseCase(libroRepo repository.LibroRepository) *CatalogoUseCase {
	return &CatalogoUseCase{libroRepo: libroRepo}
}

// Listar devuelve el snapshot actual del catálogo en orden de inserción.
func (uc *CatalogoUseCase) Listar(ctx context.Context) ([]dto.LibroResponse, error) {
	libros, err := uc.libroRepo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LibroResponse, 0, len(libros))
	for _, l := range libros {
		out = append(out, toLibroResponse(l))
	}
	return out, nil
}

// Agregar da de alta un libro con un id nuevo. No valida contra títulos
// existentes; el precio no puede ser negativo.
func (uc *CatalogoUseCase) Agregar(ctx context.Context, in dto.CrearLibroRequest) (*dto.LibroResponse, error) {
	if in.Titulo == "" || in.Precio.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	libro := &entity.Libro{
		ID:          uuid.New().String(),
		Titulo:      in.Titulo,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Imagen:      in.Imagen,
		CreadoEn:    time.Now(),
	}
	if err := uc.libroRepo.Crear(ctx, libro); err != nil {
		return nil, err
	}
	out := toLibroResponse(libro)
	return &out, nil
}

func toLibroResponse(l *entity.Libro) dto.LibroResponse {
	return dto.LibroResponse{
		ID:          l.ID,
		Titulo:      l.Titulo,
		Descripcion: l.Descripcion,
		Precio:      l.Precio,
		Imagen:      l.Imagen,
	}
}
