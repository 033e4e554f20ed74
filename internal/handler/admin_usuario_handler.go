package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"eduaventuras/internal/cache"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/view"
)

const adminUsuarios = "/admin/usuarios"

// AdminUsuarioHandler manages accounts and serves the PDF reports.
type AdminUsuarioHandler struct {
	base
}

func NewAdminUsuarioHandler(deps *Deps) *AdminUsuarioHandler {
	return &AdminUsuarioHandler{base{deps}}
}

func (h *AdminUsuarioHandler) key(r *http.Request) string {
	return cache.Key("usuarios", h.session(r).CurrentUser().ID)
}

func (h *AdminUsuarioHandler) UsuariosPage(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.API.ListUsuarios(h.ctx(r), h.session(r))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if err := h.Usuarios.Set(r.Context(), h.key(r), usuarios); err != nil {
		h.log(r).WithError(err).Warn("storing usuarios snapshot")
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	h.render(w, r, http.StatusOK, "admin_usuarios", "admin.usuarios.titulo", view.AdminUsuariosData{
		Usuarios: FilterUsuarios(usuarios, q),
		Q:        q,
		Roles:    entity.Roles,
		SelfID:   h.session(r).CurrentUser().ID,
	})
}

// target looks the path's user up in the snapshot. It answers the request itself and returns
// false when the action must not go ahead.
func (h *AdminUsuarioHandler) target(w http.ResponseWriter, r *http.Request) (entity.Usuario, bool) {
	id, ok := idVar(r, "id")
	if !ok {
		h.notFound(w, r, adminUsuarios, "admin.usuarios.usuario")
		return entity.Usuario{}, false
	}
	if id == h.session(r).CurrentUser().ID {
		h.redirect(w, r, adminUsuarios, "warning", "admin.usuarios.propio", nil)
		return entity.Usuario{}, false
	}

	u, found, err := cache.Find(r.Context(), h.Usuarios, h.key(r), func(u entity.Usuario) bool { return u.ID == id })
	switch {
	case errors.Is(err, cache.ErrMiss) || (err == nil && !found):
		h.notFound(w, r, adminUsuarios, "admin.usuarios.usuario")
		return entity.Usuario{}, false
	case err != nil:
		h.log(r).WithError(err).Warn("usuarios snapshot unavailable, skipping local check")
		return entity.Usuario{ID: id, Activo: r.PostFormValue("activo") == "true"}, true
	}
	return u, true
}

func (h *AdminUsuarioHandler) mirror(r *http.Request, id int64, fn func(*entity.Usuario) bool) {
	err := cache.Update(r.Context(), h.Usuarios, h.key(r), func(us []entity.Usuario) []entity.Usuario {
		out := us[:0]
		for i := range us {
			if us[i].ID != id || fn(&us[i]) {
				out = append(out, us[i])
			}
		}
		return out
	})
	if err != nil {
		h.log(r).WithError(err).Warn("updating usuarios snapshot")
	}
}

func (h *AdminUsuarioHandler) targetLog(r *http.Request, u entity.Usuario) *logrus.Entry {
	return h.log(r).WithField("target_id", u.ID)
}

func (h *AdminUsuarioHandler) CambiarRol(w http.ResponseWriter, r *http.Request) {
	rol, valid := entity.ParseRol(r.PostFormValue("rol"))
	if !valid {
		h.redirect(w, r, adminUsuarios, "danger", "admin.usuarios.rol.invalido", nil)
		return
	}
	u, ok := h.target(w, r)
	if !ok {
		return
	}
	if err := h.API.ChangeRol(h.ctx(r), h.session(r), u.ID, rol); err != nil {
		h.failAction(w, r, err, adminUsuarios)
		return
	}
	h.mirror(r, u.ID, func(u *entity.Usuario) bool { u.Rol = rol; return true })
	h.targetLog(r, u).WithField("rol", rol).Info("rol changed")
	h.redirect(w, r, adminUsuarios, "success", "admin.usuarios.rol.cambiado", nil)
}

// CambiarEstado flips the account between active and inactive.
func (h *AdminUsuarioHandler) CambiarEstado(w http.ResponseWriter, r *http.Request) {
	u, ok := h.target(w, r)
	if !ok {
		return
	}
	activo := !u.Activo
	if err := h.API.ChangeEstado(h.ctx(r), h.session(r), u.ID, activo); err != nil {
		h.failAction(w, r, err, adminUsuarios)
		return
	}
	h.mirror(r, u.ID, func(u *entity.Usuario) bool { u.Activo = activo; return true })
	h.targetLog(r, u).WithField("activo", activo).Info("estado changed")
	h.redirect(w, r, adminUsuarios, "success", "admin.usuarios.estado.cambiado", nil)
}

func (h *AdminUsuarioHandler) Eliminar(w http.ResponseWriter, r *http.Request) {
	u, ok := h.target(w, r)
	if !ok {
		return
	}
	if err := h.API.DeleteUsuario(h.ctx(r), h.session(r), u.ID); err != nil {
		h.failAction(w, r, err, adminUsuarios)
		return
	}
	h.mirror(r, u.ID, func(*entity.Usuario) bool { return false })
	h.targetLog(r, u).Info("usuario deleted")
	h.redirect(w, r, adminUsuarios, "success", "admin.usuarios.eliminado", nil)
}

func (h *AdminUsuarioHandler) ReporteEstadisticas(w http.ResponseWriter, r *http.Request) {
	d, err := h.API.DownloadReporteEstadisticas(h.ctx(r), h.session(r))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.stream(w, r, d, false)
}

func (h *AdminUsuarioHandler) ReporteMateria(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	d, err := h.API.DownloadReporteMateria(h.ctx(r), h.session(r), id)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.stream(w, r, d, false)
}
