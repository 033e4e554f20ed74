package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"eduaventuras/internal/cache"
	"eduaventuras/internal/entity"
	"eduaventuras/internal/validation"
	"eduaventuras/internal/view"
)

const (
	// multipart overhead allowed on top of the file limit
	uploadSlack     = 1 << 20
	multipartMemory = 8 << 20
)

type subirForm struct {
	Titulo      string `form:"titulo" validate:"notblank,max=200"`
	Descripcion string `form:"descripcion" validate:"max=500"`
	MateriaID   int64  `form:"materiaId" validate:"gt=0"`
}

// RecursoHandler downloads, uploads and deletes study resources.
type RecursoHandler struct {
	base
}

func NewRecursoHandler(deps *Deps) *RecursoHandler {
	return &RecursoHandler{base{deps}}
}

func (h *RecursoHandler) Descargar(w http.ResponseWriter, r *http.Request) {
	id, ok := idVar(r, "id")
	if !ok {
		http.NotFound(w, r)
		return
	}
	d, err := h.API.DownloadRecurso(h.ctx(r), h.session(r), id)
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	h.log(r).WithField("recurso_id", id).Info("download")
	h.stream(w, r, d, false)
}

// Eliminar deletes a resource and returns to its subject's list.
func (h *RecursoHandler) Eliminar(w http.ResponseWriter, r *http.Request) {
	back := backTo(r, "/materias")
	if mid, err := strconv.ParseInt(r.PostFormValue("materiaId"), 10, 64); err == nil && mid > 0 {
		back = fmt.Sprintf("/materias/%d/recursos", mid)
	}
	id, ok := idVar(r, "id")
	if !ok {
		h.notFound(w, r, back, "recursos.recurso")
		return
	}

	if err := h.API.DeleteRecurso(h.ctx(r), h.session(r), id); err != nil {
		h.failAction(w, r, err, back)
		return
	}
	h.log(r).WithField("recurso_id", id).Info("recurso deleted")
	h.redirect(w, r, back, "success", "recursos.eliminado", nil)
}

func (h *RecursoHandler) SubirPage(w http.ResponseWriter, r *http.Request) {
	form := subirForm{}
	if mid, err := strconv.ParseInt(r.URL.Query().Get("materia"), 10, 64); err == nil {
		form.MateriaID = mid
	}
	h.subirPage(w, r, http.StatusOK, form, nil)
}

func (h *RecursoHandler) subirPage(w http.ResponseWriter, r *http.Request, status int, form subirForm, errs view.FieldErrors, opts ...pageOpt) {
	materias, err := h.API.ListMaterias(h.ctx(r))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	SortMaterias(materias, "nombre")
	h.render(w, r, status, "subir", "subir.titulo", view.SubirData{
		Materias: materias,
		Form:     form,
		MaxSize:  validation.FormatSize(validation.MaxPDFBytes),
		Errors:   errs,
	}, opts...)
}

// Subir checks the form and the PDF locally, then forwards both as one multipart request.
func (h *RecursoHandler) Subir(w http.ResponseWriter, r *http.Request) {
	loc := h.localizer(r)
	maxSize := validation.FormatSize(validation.MaxPDFBytes)

	tooLarge := func() {
		h.log(r).WithField("content_length", r.ContentLength).Info("upload rejected: body too large")
		h.subirPage(w, r, http.StatusRequestEntityTooLarge, subirForm{},
			view.FieldErrors{"file": loc.T("subir.archivo.grande", "max", maxSize)})
	}
	limit := validation.MaxPDFBytes + uploadSlack
	if r.ContentLength > limit {
		tooLarge()
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			tooLarge()
			return
		}
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	form := subirForm{
		Titulo:      strings.TrimSpace(r.PostFormValue("titulo")),
		Descripcion: strings.TrimSpace(r.PostFormValue("descripcion")),
	}
	form.MateriaID, _ = strconv.ParseInt(r.PostFormValue("materiaId"), 10, 64)

	errs, err := fieldErrors(h.Validator.Struct(loc.Locale, form))
	if err != nil {
		h.failPage(w, r, err)
		return
	}

	fh := firstFile(r, "file")
	if _, err := validation.CheckFile(fh, validation.MaxPDFBytes, "application/pdf"); err != nil {
		switch {
		case errors.Is(err, validation.ErrFileMissing):
			errs = withField(errs, "file", loc.T("subir.archivo.requerido"))
		case errors.Is(err, validation.ErrFileTooLarge):
			errs = withField(errs, "file", loc.T("subir.archivo.grande", "max", maxSize))
		case errors.Is(err, validation.ErrFileType):
			errs = withField(errs, "file", loc.T("subir.archivo.pdf"))
		default:
			h.failPage(w, r, err)
			return
		}
		h.log(r).WithError(err).Info("upload rejected")
	}
	if errs != nil {
		h.subirPage(w, r, http.StatusUnprocessableEntity, form, errs)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.failPage(w, r, errors.Wrap(err, "opening upload"))
		return
	}
	defer f.Close()

	sess := h.session(r)
	user := sess.CurrentUser()
	recurso, err := h.API.UploadRecurso(h.ctx(r), sess, entity.NuevoRecurso{
		Titulo:      form.Titulo,
		Descripcion: form.Descripcion,
		MateriaID:   form.MateriaID,
		UsuarioID:   user.ID,
	}, fh.Filename, f)
	if err != nil {
		if status, opts, handled := h.failure(w, r, err); !handled {
			h.subirPage(w, r, status, form, nil, opts...)
		}
		return
	}

	err = cache.Update(r.Context(), h.Materias, cache.Key("materias", user.ID), func(ms []entity.Materia) []entity.Materia {
		for i := range ms {
			if ms[i].ID == form.MateriaID {
				ms[i].CantidadRecursos++
			}
		}
		return ms
	})
	if err != nil {
		h.log(r).WithError(err).Warn("updating materias snapshot")
	}

	h.log(r).WithFields(logrus.Fields{"recurso_id": recurso.ID, "materia_id": form.MateriaID}).Info("recurso uploaded")
	h.redirect(w, r, fmt.Sprintf("/materias/%d/recursos", form.MateriaID), "success", "subir.exito", nil)
}

// firstFile returns the first upload of field, or nil.
func firstFile(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	if fhs := r.MultipartForm.File[field]; len(fhs) > 0 {
		return fhs[0]
	}
	return nil
}
