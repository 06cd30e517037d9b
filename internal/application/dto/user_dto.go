package dto

// RegisterRequest datos del formulario de registro. Los valores llegan tal cual
// los escribió el usuario; el caso de uso recorta y normaliza.
type RegisterRequest struct {
	Username        string
	Password        string
	ConfirmPassword string
	FullName        string
	Email           string
	Phone           string
	Address         string
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string
	Password string
}
