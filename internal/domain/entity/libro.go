package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Libro representa un título del catálogo. El catálogo es append-only: los
// libros nunca se actualizan ni se borran.
type Libro struct {
	ID          string
	Titulo      string
	Descripcion string
	Precio      decimal.Decimal // nunca negativo
	Imagen      string          // URL de la portada
	CreadoEn    time.Time
}
