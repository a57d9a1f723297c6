package repository

import (
	"context"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

// LibroRepository define el puerto de persistencia para el catálogo (DIP).
// El catálogo solo crece: no hay update ni delete. Listar preserva el orden
// de inserción. BuscarPorID devuelve (nil, nil) si el id no existe.
type LibroRepository interface {
	Crear(ctx context.Context, libro *entity.Libro) error
	Listar(ctx context.Context) ([]*entity.Libro, error)
	BuscarPorID(ctx context.Context, id string) (*entity.Libro, error)
}
