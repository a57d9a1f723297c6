package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaCarrito es una línea del carrito tal como la persiste el cliente en
// localStorage bajo la clave "cart". Las claves van en inglés: son el
// contrato del colaborador front-end, no del dominio.
type LineaCarrito struct {
	ID       string          `json:"id"`
	Titulo   string          `json:"title"`
	Precio   decimal.Decimal `json:"price"`
	Cantidad int64           `json:"quantity"`
}

// CrearPreferenciaRequest entrada de POST /crear-preferencia.
type CrearPreferenciaRequest struct {
	Cart []LineaCarrito `json:"cart" validate:"required,min=1"`
}

// PreferenciaResponse salida con el id de la preferencia y la URL de checkout.
type PreferenciaResponse struct {
	PreferenciaID string `json:"preferenciaId"`
	InitPoint     string `json:"init_point"`
}

// CompraResponse un registro del historial de compras.
type CompraResponse struct {
	ID     string          `json:"id"`
	Fecha  time.Time       `json:"fecha"`
	Libros []LineaCarrito  `json:"libros"`
	Total  decimal.Decimal `json:"total"`
}
