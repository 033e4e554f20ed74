package handler

import (
	"net/http"

	"eduaventuras/internal/view"
)

// IndexHandler serves the public landing page.
type IndexHandler struct {
	base
}

func NewIndexHandler(deps *Deps) *IndexHandler {
	return &IndexHandler{base{deps}}
}

func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	materias, err := h.API.ListMaterias(h.ctx(r))
	if err != nil {
		h.failOn(w, r, "home", "app.nombre", view.HomeData{Failed: true}, err)
		return
	}
	SortMaterias(materias, "nombre")
	h.render(w, r, http.StatusOK, "home", "app.nombre", view.HomeData{Materias: materias})
}

// NotFound answers routes that do not exist.
func (h *IndexHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error", "error.pagina", view.ErrorData{})
}

// Failed answers a request whose handler panicked.
func (h *IndexHandler) Failed(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusInternalServerError, "error", "error.pagina", view.ErrorData{Mensaje: "error.general"})
}
