package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se mapean a HTTP en la capa
// de interfaces: token requerido → 401, token inválido / no autorizado → 403,
// entrada inválida → 400, no encontrado → 404, el resto → 500.
var (
	ErrTokenRequerido        = errors.New("token requerido")
	ErrTokenInvalido         = errors.New("token inválido")
	ErrNoAutorizado          = errors.New("no autorizado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrUsuarioYaExiste       = errors.New("usuario ya existe")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrLibroNoEncontrado     = errors.New("libro no encontrado")
	ErrCompraNoEncontrada    = errors.New("compra no encontrada")
	ErrProveedorPagos        = errors.New("fallo del proveedor de pagos")
)
