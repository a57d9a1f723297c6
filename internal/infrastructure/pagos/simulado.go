// Package pagos implementa el puerto compras.PreferenciaCreator: el cliente
// real contra la API de preferencias de Mercado Pago y un cliente simulado
// para desarrollo local y tests. main elige cuál cablear según haya o no
// access token configurado.
package pagos

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/libreria-online/internal/application/compras"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

var _ compras.PreferenciaCreator = (*SimuladoClient)(nil)

// SimuladoClient crea preferencias ficticias sin salir del proceso. Siempre
// tiene éxito; el checkout apunta a una URL falsa.
type SimuladoClient struct{}

// NewSimuladoClient construye el cliente simulado.
func NewSimuladoClient() *SimuladoClient {
	return &SimuladoClient{}
}

// CrearPreferencia genera un id local con el prefijo pref_.
func (c *SimuladoClient) CrearPreferencia(_ context.Context, _ *entity.Compra) (*compras.Preferencia, error) {
	id := "pref_" + uuid.New().String()
	return &compras.Preferencia{
		ID:        id,
		InitPoint: fmt.Sprintf("https://fake-checkout.com/%s", id),
	}, nil
}
