package ventas_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/libreria-online/internal/domain/entity"
	"github.com/tu-usuario/libreria-online/internal/domain/ventas"
)

func compra(email string, total int64, lineas ...entity.LineaCompra) *entity.Compra {
	return &entity.Compra{
		ID:             email + "-compra",
		CompradorEmail: email,
		Libros:         lineas,
		Total:          decimal.NewFromInt(total),
		Fecha:          time.Now(),
	}
}

func linea(titulo string, precio, cantidad int64) entity.LineaCompra {
	return entity.LineaCompra{Titulo: titulo, Precio: decimal.NewFromInt(precio), Cantidad: cantidad}
}

// Ledger vacío → total cero y mapa vacío (no nil).
func TestResumir_LedgerVacio(t *testing.T) {
	res := ventas.Resumir(nil)

	assert.True(t, res.TotalVentas.IsZero(), "total de un ledger vacío debe ser 0")
	require.NotNil(t, res.LibrosVendidos)
	assert.Empty(t, res.LibrosVendidos)
}

// El total del resumen es la suma de los totales de cada compra.
func TestResumir_TotalEsSumaDeTotales(t *testing.T) {
	compras := []*entity.Compra{
		compra("a@x.com", 3000, linea("JS avanzado", 1500, 2)),
		compra("b@x.com", 1200, linea("El arte de programar", 1200, 1)),
	}

	res := ventas.Resumir(compras)

	assert.True(t, res.TotalVentas.Equal(decimal.NewFromInt(4200)),
		"totalVentas debe ser 4200, fue %s", res.TotalVentas)
}

// Las unidades por título se acumulan a través de compras y compradores.
func TestResumir_UnidadesPorTitulo(t *testing.T) {
	compras := []*entity.Compra{
		compra("a@x.com", 3000, linea("JS avanzado", 1500, 2)),
		compra("b@x.com", 2700, linea("JS avanzado", 1500, 1), linea("El arte de programar", 1200, 1)),
	}

	res := ventas.Resumir(compras)

	assert.Equal(t, int64(3), res.LibrosVendidos["JS avanzado"])
	assert.Equal(t, int64(1), res.LibrosVendidos["El arte de programar"])
	assert.Len(t, res.LibrosVendidos, 2)
}

// El orden de las compras no altera el resultado.
func TestResumir_OrdenIrrelevante(t *testing.T) {
	a := compra("a@x.com", 3000, linea("JS avanzado", 1500, 2))
	b := compra("b@x.com", 500, linea("Cuentos", 500, 1))

	r1 := ventas.Resumir([]*entity.Compra{a, b})
	r2 := ventas.Resumir([]*entity.Compra{b, a})

	assert.True(t, r1.TotalVentas.Equal(r2.TotalVentas))
	assert.Equal(t, r1.LibrosVendidos, r2.LibrosVendidos)
}

// Totales con centavos se suman en el dominio decimal sin redondeo binario.
func TestResumir_TotalesFraccionarios(t *testing.T) {
	c1 := &entity.Compra{Total: decimal.RequireFromString("19.99"), Libros: []entity.LineaCompra{linea("Go", 1999, 1)}}
	c2 := &entity.Compra{Total: decimal.RequireFromString("0.01"), Libros: nil}

	res := ventas.Resumir([]*entity.Compra{c1, c2})

	assert.True(t, res.TotalVentas.Equal(decimal.RequireFromString("20")),
		"19.99 + 0.01 debe ser exactamente 20, fue %s", res.TotalVentas)
}
