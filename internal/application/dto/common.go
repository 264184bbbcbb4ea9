package dto

// ErrorResponse cuerpo de error HTTP. Message es el detalle legible que el
// dashboard muestra tal cual.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje para operaciones sin cuerpo propio
// (delete, purchase, restock).
type MessageResponse struct {
	Message string `json:"message"`
}
