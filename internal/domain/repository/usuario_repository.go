package repository

import (
	"context"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// BuscarPorEmail devuelve (nil, nil) cuando el email no existe.
type UsuarioRepository interface {
	Crear(ctx context.Context, usuario *entity.Usuario) error
	BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
}
