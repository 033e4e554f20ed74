package entity

// Estadisticas is the body of GET /admin/dashboard/estadisticas.
type Estadisticas struct {
	Usuarios          *EstadisticasUsuarios  `json:"usuarios,omitempty"`
	Contenido         *EstadisticasContenido `json:"contenido,omitempty"`
	RecursosPopulares []Recurso              `json:"recursosPopulares,omitempty"`
	UsuariosRecientes []Usuario              `json:"usuariosRecientes,omitempty"`
	RecursosRecientes []Recurso              `json:"recursosRecientes,omitempty"`

	// flat layout used by older backends
	TotalUsuarios  int64 `json:"totalUsuarios,omitempty"`
	TotalMaterias  int64 `json:"totalMaterias,omitempty"`
	TotalRecursos  int64 `json:"totalRecursos,omitempty"`
	TotalDescargas int64 `json:"totalDescargas,omitempty"`
}

type EstadisticasUsuarios struct {
	TotalUsuarios    int64 `json:"totalUsuarios"`
	TotalEstudiantes int64 `json:"totalEstudiantes"`
	TotalDocentes    int64 `json:"totalDocentes"`
	TotalAdmins      int64 `json:"totalAdmins"`
}

type EstadisticasContenido struct {
	TotalMaterias  int64 `json:"totalMaterias"`
	TotalRecursos  int64 `json:"totalRecursos"`
	TotalDescargas int64 `json:"totalDescargas"`
}

// Resumen is the body of GET /admin/dashboard/resumen.
type Resumen struct {
	TotalUsuarios     int64     `json:"totalUsuarios"`
	TotalMaterias     int64     `json:"totalMaterias"`
	TotalRecursos     int64     `json:"totalRecursos"`
	TotalDescargas    int64     `json:"totalDescargas"`
	RecursosRecientes []Recurso `json:"recursosRecientes,omitempty"`
}
