// Package memoria implementa los puertos de persistencia sobre estructuras en
// memoria. Es la variante mock del servidor: mismo contrato que la variante
// MongoDB, sin proceso externo. Todos los repos protegen sus datos con un
// RWMutex porque Fiber atiende peticiones en goroutines concurrentes.
package memoria

import (
	"context"
	"sync"

	"github.com/tu-usuario/libreria-online/internal/domain"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo almacén de usuarios en memoria, indexado por email.
type UsuarioRepo struct {
	mu       sync.RWMutex
	porEmail map[string]entity.Usuario
}

// NewUsuarioRepository construye el almacén vacío.
func NewUsuarioRepository() *UsuarioRepo {
	return &UsuarioRepo{porEmail: make(map[string]entity.Usuario)}
}

// Crear agrega un usuario. El email debe ser único.
func (r *UsuarioRepo) Crear(_ context.Context, usuario *entity.Usuario) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.porEmail[usuario.Email]; ok {
		return domain.ErrUsuarioYaExiste
	}
	r.porEmail[usuario.Email] = *usuario
	return nil
}

// BuscarPorEmail devuelve el usuario o (nil, nil) si no existe.
func (r *UsuarioRepo) BuscarPorEmail(_ context.Context, email string) (*entity.Usuario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.porEmail[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
