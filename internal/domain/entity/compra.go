package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaCompra es una línea del carrito en el momento de la compra. El precio
// queda congelado aquí: los registros de compra son snapshots, nunca se
// recalculan contra el catálogo vivo.
type LineaCompra struct {
	LibroID  string
	Titulo   string
	Precio   decimal.Decimal
	Cantidad int64 // >= 1
}

// Subtotal devuelve Precio × Cantidad de la línea.
func (l LineaCompra) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(l.Cantidad))
}

// Compra es un registro inmutable del ledger de compras, ligado al email del
// comprador. Total es siempre la suma de los subtotales de sus líneas al
// momento de creación.
type Compra struct {
	ID             string
	CompradorEmail string
	Libros         []LineaCompra
	Total          decimal.Decimal
	Fecha          time.Time
}
