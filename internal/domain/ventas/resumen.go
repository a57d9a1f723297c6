// Package ventas contiene el cálculo de dominio para el resumen de ventas del
// dashboard. Es una función pura sobre el ledger: sin efectos secundarios y
// conmutativa respecto al orden de las compras.
package ventas

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/libreria-online/internal/domain/entity"
)

// Resumen agrega el ledger completo: ingresos totales y unidades vendidas por
// título.
type Resumen struct {
	TotalVentas    decimal.Decimal
	LibrosVendidos map[string]int64
}

// Resumir pliega una secuencia de compras en el resumen de ventas.
//
// TotalVentas es Σ compra.Total (se confía en el invariante de creación:
// Total == Σ precio×cantidad de sus líneas). LibrosVendidos acumula la
// cantidad por título a través de todas las líneas de todas las compras.
// Una secuencia vacía produce total cero y mapa vacío, nunca nil.
func Resumir(compras []*entity.Compra) Resumen {
	res := Resumen{
		TotalVentas:    decimal.Zero,
		LibrosVendidos: make(map[string]int64),
	}
	for _, c := range compras {
		res.TotalVentas = res.TotalVentas.Add(c.Total)
		for _, linea := range c.Libros {
			res.LibrosVendidos[linea.Titulo] += linea.Cantidad
		}
	}
	return res
}
