package entity

type Recurso struct {
	ID                int64  `json:"id"`
	Titulo            string `json:"titulo"`
	Descripcion       string `json:"descripcion"`
	NombreArchivo     string `json:"nombreArchivo"`
	TamanioBytes      int64  `json:"tamanioBytes"`
	MateriaID         int64  `json:"materiaId"`
	MateriaNombre     string `json:"materiaNombre,omitempty"`
	SubidoPorID       int64  `json:"subidoPorId,omitempty"`
	SubidoPorNombre   string `json:"subidoPorNombre,omitempty"`
	FechaSubida       Fecha  `json:"fechaSubida,omitempty"`
	CantidadDescargas int64  `json:"cantidadDescargas"`
}

// NuevoRecurso carries the text fields of the multipart POST /recursos/subir.
type NuevoRecurso struct {
	Titulo      string
	Descripcion string
	MateriaID   int64
	UsuarioID   int64
}
