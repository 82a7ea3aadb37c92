package dto

// ErrorResponse cuerpo de error HTTP. "error" es el campo que ya consumen los clientes;
// "code" es el código estable para tratamiento programático.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
