package memoria

import (
	"context"
	"sync"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo ledger de compras en memoria, append-only.
type CompraRepo struct {
	mu      sync.RWMutex
	compras []entity.Compra
}

// NewCompraRepository construye el ledger vacío.
func NewCompraRepository() *CompraRepo {
	return &CompraRepo{}
}

// Agregar anexa una compra al ledger. Se guarda una copia con las líneas
// duplicadas para que el registro sea inmutable frente al llamador.
func (r *CompraRepo) Agregar(_ context.Context, compra *entity.Compra) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *compra
	c.Libros = append([]entity.LineaCompra(nil), compra.Libros...)
	r.compras = append(r.compras, c)
	return nil
}

// ListarPorComprador devuelve las compras del email indicado, en orden de
// inserción.
func (r *CompraRepo) ListarPorComprador(_ context.Context, email string) ([]*entity.Compra, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Compra
	for i := range r.compras {
		if r.compras[i].CompradorEmail != email {
			continue
		}
		out = append(out, copia(&r.compras[i]))
	}
	return out, nil
}

// ListarTodas devuelve el ledger completo.
func (r *CompraRepo) ListarTodas(_ context.Context) ([]*entity.Compra, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Compra, 0, len(r.compras))
	for i := range r.compras {
		out = append(out, copia(&r.compras[i]))
	}
	return out, nil
}

// BuscarPorID devuelve la compra o (nil, nil) si no existe.
func (r *CompraRepo) BuscarPorID(_ context.Context, id string) (*entity.Compra, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.compras {
		if r.compras[i].ID == id {
			return copia(&r.compras[i]), nil
		}
	}
	return nil, nil
}

func copia(c *entity.Compra) *entity.Compra {
	out := *c
	out.Libros = append([]entity.LineaCompra(nil), c.Libros...)
	return &out
}
