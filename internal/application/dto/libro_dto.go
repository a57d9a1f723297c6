package dto

import "github.com/shopspring/decimal"

// CrearLibroRequest entrada para subir un libro al catálogo (solo admin).
type CrearLibroRequest struct {
	Titulo      string          `json:"titulo" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio" validate:"min=0"`
	Imagen      string          `json:"imagen"`
}

// LibroResponse salida de un libro del catálogo.
type LibroResponse struct {
	ID          string          `json:"id"`
	Titulo      string          `json:"titulo"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Imagen      string          `json:"imagen"`
}

// CrearLibroResponse salida de POST /libros.
type CrearLibroResponse struct {
	Mensaje string        `json:"mensaje"`
	Libro   LibroResponse `json:"libro"`
}
