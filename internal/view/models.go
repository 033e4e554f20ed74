package view

import "eduaventuras/internal/entity"

// FieldErrors maps a form field to the message shown under it.
type FieldErrors map[string]string

type HomeData struct {
	Materias []entity.Materia
	Failed   bool
}

type LoginData struct {
	Email      string
	Recordarme bool
	Errors     FieldErrors
}

type RegistroData struct {
	Form   any
	Roles  []entity.Rol
	Errors FieldErrors
}

type MateriasData struct {
	Materias []entity.Materia
	Q        string
	Orden    string
	Total    int
}

type RecursosData struct {
	Materia  entity.Materia
	Recursos []entity.Recurso
	Q        string
	Total    int
}

type SubirData struct {
	Materias []entity.Materia
	Form     any
	MaxSize  string
	Errors   FieldErrors
}

// Actividad is one line of a recent-activity list.
type Actividad struct {
	Icono string
	Texto string
	Fecha entity.Fecha
}

type PerfilData struct {
	Usuario    entity.Usuario
	Materias   []entity.Materia
	FavoritaID int64
	Actividad  []Actividad
	MaxFoto    string
	Errors     FieldErrors
}

type Totales struct {
	Usuarios  int64 `json:"usuarios"`
	Materias  int64 `json:"materias"`
	Recursos  int64 `json:"recursos"`
	Descargas int64 `json:"descargas"`
}

// Serie is one labelled value of a chart.
type Serie struct {
	Label string `json:"label"`
	Valor int64  `json:"valor"`
}

// Graficos is the chart data handed to the charting script.
type Graficos struct {
	UsuariosPorRol     []Serie `json:"usuariosPorRol"`
	RecursosPorMateria []Serie `json:"recursosPorMateria"`
}

type DashboardData struct {
	Totales        Totales
	Graficos       Graficos
	Actividad      []entity.Recurso
	ActividadFalla bool
}

type AdminMateriasData struct {
	Materias []entity.Materia
	Q        string
	Form     any
	EditID   int64
	Errors   FieldErrors
}

type AdminUsuariosData struct {
	Usuarios []entity.Usuario
	Q        string
	Roles    []entity.Rol
	SelfID   int64
}

type RecuperarData struct {
	Paso   int
	Email  string
	Enlace string
	Token  string
	Errors FieldErrors
}

type ErrorData struct {
	Mensaje string
}
