package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"eduaventuras/internal/cache"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/view"
)

const adminMaterias = "/admin/materias"

type materiaForm struct {
	Nombre      string `form:"nombre" validate:"notblank,max=100"`
	Descripcion string `form:"descripcion" validate:"max=500"`
	ImagenURL   string `form:"imagenUrl" validate:"omitempty,url"`
}

func (f materiaForm) request() entity.MateriaRequest {
	req := entity.MateriaRequest{Nombre: f.Nombre, Descripcion: f.Descripcion}
	if f.ImagenURL != "" {
		req.ImagenURL = &f.ImagenURL
	}
	return req
}

// AdminMateriaHandler manages subjects. Every listing is kept as a per-user snapshot so that
// writes can be checked against what the user was actually shown.
type AdminMateriaHandler struct {
	base
}

func NewAdminMateriaHandler(deps *Deps) *AdminMateriaHandler {
	return &AdminMateriaHandler{base{deps}}
}

func (h *AdminMateriaHandler) key(r *http.Request) string {
	return cache.Key("materias", h.session(r).CurrentUser().ID)
}

func (h *AdminMateriaHandler) MateriasPage(w http.ResponseWriter, r *http.Request) {
	data := view.AdminMateriasData{Q: strings.TrimSpace(r.URL.Query().Get("q")), Form: materiaForm{}}
	if id, err := strconv.ParseInt(r.URL.Query().Get("editar"), 10, 64); err == nil {
		data.EditID = id
	}
	h.page(w, r, http.StatusOK, data)
}

// page loads the listing, refreshes the snapshot and renders. A form in data is kept, otherwise
// the subject being edited prefills it.
func (h *AdminMateriaHandler) page(w http.ResponseWriter, r *http.Request, status int, data view.AdminMateriasData) {
	materias, err := h.API.ListMaterias(h.ctx(r))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if err := h.Materias.Set(r.Context(), h.key(r), materias); err != nil {
		h.log(r).WithError(err).Warn("storing materias snapshot")
	}

	if data.EditID != 0 && data.Errors == nil {
		data.Form = materiaForm{}
		editID := data.EditID
		data.EditID = 0
		for _, m := range materias {
			if m.ID == editID {
				data.EditID = m.ID
				data.Form = materiaForm{Nombre: m.Nombre, Descripcion: m.Descripcion, ImagenURL: m.ImagenURL}
			}
		}
	}
	shown := FilterMaterias(materias, data.Q)
	SortMaterias(shown, "nombre")
	data.Materias = shown
	h.render(w, r, status, "admin_materias", "admin.materias.titulo", data)
}

// known reports whether id is in the user's snapshot. A backend that cannot be read skips the
// check; a missing snapshot does not.
func (h *AdminMateriaHandler) known(r *http.Request, id int64) bool {
	_, found, err := cache.Find(r.Context(), h.Materias, h.key(r), func(m entity.Materia) bool { return m.ID == id })
	switch {
	case errors.Is(err, cache.ErrMiss):
		return false
	case err != nil:
		h.log(r).WithError(err).Warn("materias snapshot unavailable, skipping local check")
		return true
	}
	return found
}

func (h *AdminMateriaHandler) mirror(r *http.Request, fn func([]entity.Materia) []entity.Materia) {
	if err := cache.Update(r.Context(), h.Materias, h.key(r), fn); err != nil {
		h.log(r).WithError(err).Warn("updating materias snapshot")
	}
}

func (h *AdminMateriaHandler) readForm(r *http.Request) (materiaForm, view.FieldErrors, error) {
	form := materiaForm{
		Nombre:      strings.TrimSpace(r.PostFormValue("nombre")),
		Descripcion: strings.TrimSpace(r.PostFormValue("descripcion")),
		ImagenURL:   strings.TrimSpace(r.PostFormValue("imagenUrl")),
	}
	errs, err := fieldErrors(h.Validator.Struct(h.localizer(r).Locale, form))
	return form, errs, err
}

func (h *AdminMateriaHandler) Crear(w http.ResponseWriter, r *http.Request) {
	form, errs, err := h.readForm(r)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if errs != nil {
		h.page(w, r, http.StatusUnprocessableEntity, view.AdminMateriasData{Form: form, Errors: errs})
		return
	}

	created, err := h.API.CreateMateria(h.ctx(r), h.session(r), form.request())
	if err != nil {
		h.failAction(w, r, err, adminMaterias)
		return
	}
	// the next listing picks up a creation the backend did not echo
	if created.ID != 0 {
		h.mirror(r, func(ms []entity.Materia) []entity.Materia { return append(ms, *created) })
	}
	h.log(r).WithField("materia_id", created.ID).Info("materia created")
	h.redirect(w, r, adminMaterias, "success", "admin.materias.creada", nil)
}

func (h *AdminMateriaHandler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r, "id")
	if !ok || !h.known(r, id) {
		h.notFound(w, r, adminMaterias, "admin.materias.materia")
		return
	}
	form, errs, err := h.readForm(r)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if errs != nil {
		h.page(w, r, http.StatusUnprocessableEntity, view.AdminMateriasData{Form: form, EditID: id, Errors: errs})
		return
	}

	if _, err := h.API.UpdateMateria(h.ctx(r), h.session(r), id, form.request()); err != nil {
		h.failAction(w, r, err, fmt.Sprintf("%s?editar=%d", adminMaterias, id))
		return
	}
	h.mirror(r, func(ms []entity.Materia) []entity.Materia {
		for i := range ms {
			if ms[i].ID == id {
				ms[i].Nombre, ms[i].Descripcion, ms[i].ImagenURL = form.Nombre, form.Descripcion, form.ImagenURL
			}
		}
		return ms
	})
	h.log(r).WithField("materia_id", id).Info("materia updated")
	h.redirect(w, r, adminMaterias, "success", "admin.materias.actualizada", nil)
}

func (h *AdminMateriaHandler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r, "id")
	if !ok || !h.known(r, id) {
		h.notFound(w, r, adminMaterias, "admin.materias.materia")
		return
	}
	if err := h.API.DeleteMateria(h.ctx(r), h.session(r), id); err != nil {
		h.failAction(w, r, err, adminMaterias)
		return
	}
	h.mirror(r, func(ms []entity.Materia) []entity.Materia {
		out := ms[:0]
		for _, m := range ms {
			if m.ID != id {
				out = append(out, m)
			}
		}
		return out
	})
	h.log(r).WithField("materia_id", id).Info("materia deleted")
	h.redirect(w, r, adminMaterias, "success", "admin.materias.eliminada", nil)
}
