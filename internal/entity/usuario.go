package entity

import "strings"

type Rol string

const (
	RolAdmin      Rol = "ADMIN"
	RolDocente    Rol = "DOCENTE"
	RolEstudiante Rol = "ESTUDIANTE"
)

// Roles lists every role the backend knows about.
var Roles = []Rol{RolAdmin, RolDocente, RolEstudiante}

// ParseRol accepts a role name in any letter case.
func ParseRol(s string) (Rol, bool) {
	r := Rol(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

func (r Rol) Valid() bool {
	_, ok := ParseRol(string(r))
	return ok
}

// In reports whether r is one of allowed.
func (r Rol) In(allowed ...Rol) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// SessionUser is the user record kept next to the token in the browser session.
type SessionUser struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido,omitempty"`
	Email    string `json:"email"`
	Rol      Rol    `json:"rol"`
}

func (u SessionUser) NombreCompleto() string {
	return strings.TrimSpace(u.Nombre + " " + u.Apellido)
}

// Usuario is the admin-managed user as returned by GET /usuarios and GET /perfil.
type Usuario struct {
	ID                    int64  `json:"id"`
	Nombre                string `json:"nombre"`
	Apellido              string `json:"apellido,omitempty"`
	Email                 string `json:"email"`
	Rol                   Rol    `json:"rol"`
	Activo                bool   `json:"activo"`
	FechaRegistro         Fecha  `json:"fechaRegistro,omitempty"`
	Foto                  string `json:"foto,omitempty"`
	Biografia             string `json:"biografia,omitempty"`
	UltimaActualizacion   Fecha  `json:"ultimaActualizacion,omitempty"`
	MateriaFavoritaID     *int64 `json:"materiaFavoritaId,omitempty"`
	MateriaFavoritaNombre string `json:"materiaFavoritaNombre,omitempty"`
}

func (u Usuario) NombreCompleto() string {
	return strings.TrimSpace(u.Nombre + " " + u.Apellido)
}

// SessionUser trims the full record down to what the session keeps.
func (u Usuario) SessionUser() SessionUser {
	return SessionUser{
		ID:       u.ID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Email:    u.Email,
		Rol:      u.Rol,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body of POST /usuarios/login and POST /usuarios/registro.
type LoginResponse struct {
	Token   string   `json:"token"`
	Usuario *Usuario `json:"usuario,omitempty"`
	Mensaje string   `json:"mensaje,omitempty"`
}

type RegistroRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      Rol    `json:"rol"`
}

type ActualizarPerfilRequest struct {
	Nombre            string `json:"nombre"`
	Apellido          string `json:"apellido"`
	Biografia         string `json:"biografia"`
	MateriaFavoritaID *int64 `json:"materiaFavoritaId"`
}
