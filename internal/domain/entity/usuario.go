package entity

import "time"

// Rol es el rol de un usuario. Enum cerrado: cualquier otro valor es inválido.
type Rol string

// Roles válidos para Usuario.
const (
	RolUsuario Rol = "usuario"
	RolAdmin   Rol = "admin"
)

// EsValido indica si el rol es uno de los conocidos.
func (r Rol) EsValido() bool {
	switch r {
	case RolUsuario, RolAdmin:
		return true
	}
	return false
}

// ParseRol convierte un string a Rol; ok=false si no es un rol conocido.
func ParseRol(s string) (Rol, bool) {
	r := Rol(s)
	return r, r.EsValido()
}

// Usuario representa una cuenta registrada. El email es único en todo el
// sistema y el registro es inmutable después de creado (no hay edición de
// perfil). El rol se fija al registrarse; la única vía para obtener admin es
// el seed fuera de banda (cmd/seed).
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca el password plano
	Rol          Rol
	CreadoEn     time.Time
}
