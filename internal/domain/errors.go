package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNoEncontrado      = errors.New("recurso no encontrado")
	ErrEmailYaRegistrado = errors.New("el correo electrónico ya existe")
	ErrEntradaInvalida   = errors.New("entrada inválida")
	ErrCredenciales      = errors.New("credenciales incorrectas")
	ErrNoAutenticado     = errors.New("usuario no autenticado")
)
