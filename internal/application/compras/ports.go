package compras

import (
	"context"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

// Preferencia es el registro que el proveedor crea para un pago intencionado,
// junto con la URL de redirección al checkout.
type Preferencia struct {
	ID        string
	InitPoint string
}

// PreferenciaCreator define el puerto de salida hacia el proveedor de pagos.
// La implementación real llama a la API de preferencias; para desarrollo y
// tests hay un cliente simulado.
type PreferenciaCreator interface {
	CrearPreferencia(ctx context.Context, compra *entity.Compra) (*Preferencia, error)
}

// ReciboGenerator define el puerto para la representación PDF de una compra.
type ReciboGenerator interface {
	GenerarRecibo(ctx context.Context, compra *entity.Compra) ([]byte, error)
}
