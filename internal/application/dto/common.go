package dto

// ErrorResponse cuerpo de error HTTP. Todo error de la API tiene esta forma.
type ErrorResponse struct {
	Error string `json:"error"`
}
