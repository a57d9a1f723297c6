package repository

import (
	"context"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

// CompraRepository define el puerto de persistencia del ledger de compras
// (DIP). El ledger es append-only: Agregar es la única escritura.
// BuscarPorID devuelve (nil, nil) si la compra no existe.
type CompraRepository interface {
	Agregar(ctx context.Context, compra *entity.Compra) error
	ListarPorComprador(ctx context.Context, email string) ([]*entity.Compra, error)
	ListarTodas(ctx context.Context) ([]*entity.Compra, error)
	BuscarPorID(ctx context.Context, id string) (*entity.Compra, error)
}
