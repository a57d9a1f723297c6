// Package ventas (aplicación) expone el resumen de ventas para el dashboard
// de administración. El cálculo vive en el dominio; aquí solo se lee el
// ledger y se adapta la salida.
package ventas

import (
	"context"

	"github.com/tu-usuario/libreria-online/internal/application/dto"
	domventas "github.com/tu-usuario/libreria-online/internal/domain/ventas"
	"github.com/tu-usuario/libreria-online/internal/domain/repository"
)

// DashboardUseCase genera el resumen de ventas bajo demanda a partir del
// ledger completo. Solo lectura.
type DashboardUseCase struct {
	compraRepo repository.CompraRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(compraRepo repository.CompraRepository) *DashboardUseCase {
	return &DashboardUseCase{compraRepo: compraRepo}
}

// Resumen lee todas las compras y las pliega en {totalVentas, librosVendidos}.
func (uc *DashboardUseCase) Resumen(ctx context.Context) (*dto.DashboardResponse, error) {
	compras, err := uc.compraRepo.ListarTodas(ctx)
	if err != nil {
		return nil, err
	}
	res := domventas.Resumir(compras)
	return &dto.DashboardResponse{
		TotalVentas:    res.TotalVentas,
		LibrosVendidos: res.LibrosVendidos,
	}, nil
}
