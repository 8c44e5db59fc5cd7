package dto

// RegistroRequest entrada del formulario de registro (/validar).
// Llega como form-urlencoded desde la página o como JSON.
type RegistroRequest struct {
	User  string `json:"user" form:"user"`
	Email string `json:"email" form:"email"`
	Pass  string `json:"pass" form:"pass"`
	CPass string `json:"c_pass" form:"c_pass"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// SesionResponse identidad resultante de registro o login; con ella el
// handler emite la cookie de sesión.
type SesionResponse struct {
	UsuarioID string `json:"usuario_id"`
	Nombre    string `json:"nombre"`
}
