package handler

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"eduaventuras/internal/entity"
	"eduaventuras/internal/validation"
	"eduaventuras/internal/view"
)

type perfilForm struct {
	Nombre            string `form:"nombre" validate:"notblank,min=2"`
	Apellido          string `form:"apellido" validate:"notblank,min=2"`
	Biografia         string `form:"biografia" validate:"max=500"`
	MateriaFavoritaID *int64 `form:"materiaFavoritaId" validate:"omitempty,gt=0"`
}

// PerfilHandler serves the signed-in user's own profile.
type PerfilHandler struct {
	base
}

func NewPerfilHandler(deps *Deps) *PerfilHandler {
	return &PerfilHandler{base{deps}}
}

func (h *PerfilHandler) PerfilPage(w http.ResponseWriter, r *http.Request) {
	h.perfilPage(w, r, http.StatusOK, nil, nil)
}

// perfilPage fetches the profile and the subject list at once. edit, when set, overlays the
// submitted values on the fetched profile.
func (h *PerfilHandler) perfilPage(w http.ResponseWriter, r *http.Request, status int, edit *perfilForm, errs view.FieldErrors) {
	var (
		perfil   *entity.Usuario
		materias []entity.Materia
	)
	g, ctx := errgroup.WithContext(h.ctx(r))
	g.Go(func() error {
		var err error
		perfil, err = h.API.GetPerfil(ctx, h.session(r))
		return err
	})
	g.Go(func() error {
		var err error
		materias, err = h.API.ListMaterias(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		h.failPage(w, r, err)
		return
	}

	if edit != nil {
		perfil.Nombre = edit.Nombre
		perfil.Apellido = edit.Apellido
		perfil.Biografia = edit.Biografia
		perfil.MateriaFavoritaID = edit.MateriaFavoritaID
	}
	SortMaterias(materias, "nombre")

	data := view.PerfilData{
		Usuario:   *perfil,
		Materias:  materias,
		Actividad: actividad(*perfil),
		MaxFoto:   validation.FormatSize(validation.MaxFotoBytes),
		Errors:    errs,
	}
	if perfil.MateriaFavoritaID != nil {
		data.FavoritaID = *perfil.MateriaFavoritaID
	}
	h.render(w, r, status, "perfil", "perfil.titulo", data)
}

// actividad lists what is known about the account's history, newest first.
func actividad(u entity.Usuario) []view.Actividad {
	var out []view.Actividad
	if !u.FechaRegistro.IsZero() {
		out = append(out, view.Actividad{Icono: "🎉", Texto: "perfil.actividad.registro", Fecha: u.FechaRegistro})
	}
	if !u.UltimaActualizacion.IsZero() && !u.UltimaActualizacion.Equal(u.FechaRegistro.Time) {
		out = append(out, view.Actividad{Icono: "✏️", Texto: "perfil.actividad.actualizacion", Fecha: u.UltimaActualizacion})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha.Time) })
	return out
}

// Actualizar saves the profile form and keeps the session's copy of the name in step.
func (h *PerfilHandler) Actualizar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	form := perfilForm{
		Nombre:    strings.TrimSpace(r.PostFormValue("nombre")),
		Apellido:  strings.TrimSpace(r.PostFormValue("apellido")),
		Biografia: strings.TrimSpace(r.PostFormValue("biografia")),
	}
	if raw := r.PostFormValue("materiaFavoritaId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			id = -1
		}
		form.MateriaFavoritaID = &id
	}

	errs, err := fieldErrors(h.Validator.Struct(h.localizer(r).Locale, form))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	if errs != nil {
		h.perfilPage(w, r, http.StatusUnprocessableEntity, &form, errs)
		return
	}

	sess := h.session(r)
	updated, err := h.API.UpdatePerfil(h.ctx(r), sess, entity.ActualizarPerfilRequest{
		Nombre:            form.Nombre,
		Apellido:          form.Apellido,
		Biografia:         form.Biografia,
		MateriaFavoritaID: form.MateriaFavoritaID,
	})
	if err != nil {
		h.failAction(w, r, err, "/perfil")
		return
	}

	user := *sess.CurrentUser()
	user.Nombre, user.Apellido = form.Nombre, form.Apellido
	if updated != nil && updated.Nombre != "" {
		user.Nombre, user.Apellido = updated.Nombre, updated.Apellido
	}
	if err := sess.SetSession(sess.Token(), user); err != nil {
		h.log(r).WithError(err).Error("refreshing session user")
	}
	h.redirect(w, r, "/perfil", "success", "perfil.actualizado", nil)
}

func (h *PerfilHandler) SubirFoto(w http.ResponseWriter, r *http.Request) {
	limit := validation.MaxFotoBytes + uploadSlack
	if r.ContentLength > limit {
		h.rejectFoto(w, r, validation.ErrFileTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.rejectFoto(w, r, validation.ErrFileTooLarge)
			return
		}
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	fh := firstFile(r, "foto")
	contentType, err := validation.CheckFile(fh, validation.MaxFotoBytes, "image/*")
	if err != nil {
		h.rejectFoto(w, r, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.failAction(w, r, errors.Wrap(err, "opening upload"), "/perfil")
		return
	}
	defer f.Close()

	if err := h.API.UploadFoto(h.ctx(r), h.session(r), fh.Filename, contentType, f); err != nil {
		h.failAction(w, r, err, "/perfil")
		return
	}
	h.redirect(w, r, "/perfil", "success", "perfil.foto.actualizada", nil)
}

func (h *PerfilHandler) rejectFoto(w http.ResponseWriter, r *http.Request, err error) {
	h.log(r).WithError(err).Info("foto rejected")
	switch {
	case errors.Is(err, validation.ErrFileMissing):
		h.redirect(w, r, "/perfil", "warning", "perfil.foto.requerida", nil)
	case errors.Is(err, validation.ErrFileTooLarge):
		h.redirect(w, r, "/perfil", "danger", "perfil.foto.grande",
			map[string]string{"max": validation.FormatSize(validation.MaxFotoBytes)})
	case errors.Is(err, validation.ErrFileType):
		h.redirect(w, r, "/perfil", "danger", "perfil.foto.imagen", nil)
	default:
		h.failAction(w, r, err, "/perfil")
	}
}

func (h *PerfilHandler) EliminarFoto(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteFoto(h.ctx(r), h.session(r)); err != nil {
		h.failAction(w, r, err, "/perfil")
		return
	}
	h.redirect(w, r, "/perfil", "success", "perfil.foto.eliminada", nil)
}

// Foto relays a user's picture so the page never talks to the backend directly.
func (h *PerfilHandler) Foto(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	d, err := h.API.Foto(h.ctx(r), id)
	if err != nil {
		h.log(r).WithError(err).WithField("usuario_id", id).Debug("foto unavailable")
		http.NotFound(w, r)
		return
	}
	h.stream(w, r, d, true)
}
