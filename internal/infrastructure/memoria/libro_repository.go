package memoria

import (
	"context"
	"sync"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
)

var _ repository.LibroRepository = (*LibroRepo)(nil)

// LibroRepo catálogo en memoria. El slice preserva el orden de inserción;
// el índice por id acelera BuscarPorID.
type LibroRepo struct {
	mu     sync.RWMutex
	libros []entity.Libro
	porID  map[string]int
}

// NewLibroRepository construye el catálogo vacío.
func NewLibroRepository() *LibroRepo {
	return &LibroRepo{porID: make(map[string]int)}
}

// Crear agrega un libro al final del catálogo.
func (r *LibroRepo) Crear(_ context.Context, libro *entity.Libro) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.porID[libro.ID] = len(r.libros)
	r.libros = append(r.libros, *libro)
	return nil
}

// Listar devuelve un snapshot del catálogo en orden de inserción.
func (r *LibroRepo) Listar(_ context.Context) ([]*entity.Libro, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Libro, 0, len(r.libros))
	for i := range r.libros {
		l := r.libros[i]
		out = append(out, &l)
	}
	return out, nil
}

// BuscarPorID devuelve el libro o (nil, nil) si el id no existe.
func (r *LibroRepo) BuscarPorID(_ context.Context, id string) (*entity.Libro, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	l := r.libros[i]
	return &l, nil
}
