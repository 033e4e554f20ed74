package handler

import (
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"eduaventuras/internal/api"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/view"
)

// MateriaHandler serves the subject catalogue and each subject's resources.
type MateriaHandler struct {
	base
}

func NewMateriaHandler(deps *Deps) *MateriaHandler {
	return &MateriaHandler{base{deps}}
}

func (h *MateriaHandler) MateriasPage(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	orden := r.URL.Query().Get("orden")
	if orden != "recursos" {
		orden = "nombre"
	}

	materias, err := h.API.ListMaterias(h.ctx(r))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	shown := FilterMaterias(materias, q)
	SortMaterias(shown, orden)
	h.render(w, r, http.StatusOK, "materias", "materias.titulo", view.MateriasData{
		Materias: shown,
		Q:        q,
		Orden:    orden,
		Total:    len(materias),
	})
}

// RecursosPage shows one subject and its resources. Both are fetched at once.
func (h *MateriaHandler) RecursosPage(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r, "id")
	if !ok {
		h.notFoundPage(w, r)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))

	var (
		materia  *entity.Materia
		recursos []entity.Recurso
	)
	g, ctx := errgroup.WithContext(h.ctx(r))
	g.Go(func() error {
		var err error
		materia, err = h.API.GetMateria(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		recursos, err = h.API.ListRecursosByMateria(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if api.StatusIs(err, http.StatusNotFound) {
			h.notFoundPage(w, r)
			return
		}
		h.failPage(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "recursos", "materias.titulo", view.RecursosData{
		Materia:  *materia,
		Recursos: FilterRecursos(recursos, q),
		Q:        q,
		Total:    len(recursos),
	})
}

func (h *MateriaHandler) notFoundPage(w http.ResponseWriter, r *http.Request) {
	loc := h.localizer(r)
	h.render(w, r, http.StatusNotFound, "error", "error.pagina", view.ErrorData{},
		withAlert("danger", "error.no.encontrado", map[string]string{"recurso": loc.T("admin.materias.materia")}))
}
