package entity

type Materia struct {
	ID               int64  `json:"id"`
	Nombre           string `json:"nombre"`
	Descripcion      string `json:"descripcion"`
	ImagenURL        string `json:"imagenUrl,omitempty"`
	Icono            string `json:"icono,omitempty"`
	CantidadRecursos int64  `json:"cantidadRecursos"`
}

// MateriaRequest is the body of POST /materias and PUT /materias/{id}.
type MateriaRequest struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	ImagenURL   *string `json:"imagenUrl"`
}
