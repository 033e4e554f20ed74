package validation

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Nombre    string `form:"nombre" validate:"notblank,min=2"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=6"`
	Confirmar string `form:"confirmar" validate:"eqfield=Password"`
	Rol       string `form:"rol" validate:"required,rol"`
}

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New()
	require.NoError(t, err)
	return v
}

func TestStructValid(t *testing.T) {
	v := newValidator(t)

	err := v.Struct("es", signup{Nombre: "Ana", Email: "ana@x.com", Password: "secret", Confirmar: "secret", Rol: "docente"})
	assert.NoError(t, err)
}

func TestStructReportsFormFieldNames(t *testing.T) {
	v := newValidator(t)

	err := v.Struct("en", signup{Nombre: " ", Email: "nope", Password: "123", Confirmar: "124", Rol: "JEFE"})

	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe, "nombre")
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "password")
	assert.Contains(t, fe, "confirmar")
	assert.Equal(t, "rol must be a valid role", fe["rol"])
	assert.Equal(t, "nombre cannot be blank", fe["nombre"])
}

func TestStructMessagesAreLocalized(t *testing.T) {
	v := newValidator(t)
	bad := signup{Nombre: "Ana", Email: "ana@x.com", Password: "secret", Confirmar: "secret", Rol: "x"}

	var esErr, frErr, fallback FieldErrors
	require.ErrorAs(t, v.Struct("es", bad), &esErr)
	require.ErrorAs(t, v.Struct("fr", bad), &frErr)
	require.ErrorAs(t, v.Struct("de", bad), &fallback)

	assert.Equal(t, "rol debe ser un rol válido", esErr["rol"])
	assert.Equal(t, "rol doit être un rôle valide", frErr["rol"])
	assert.Equal(t, esErr["rol"], fallback["rol"])
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	w, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest("POST", "/", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, r.ParseMultipartForm(1<<20))
	_, fh, err := r.FormFile("file")
	require.NoError(t, err)
	return fh
}

var pdf = []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")

func TestCheckFile(t *testing.T) {
	mt, err := CheckFile(fileHeader(t, "guia.pdf", pdf), MaxPDFBytes, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mt)

	_, err = CheckFile(fileHeader(t, "notas.pdf", []byte("solo texto plano")), MaxPDFBytes, "application/pdf")
	assert.ErrorIs(t, err, ErrFileType, "extension alone is not enough")

	_, err = CheckFile(nil, MaxPDFBytes, "application/pdf")
	assert.ErrorIs(t, err, ErrFileMissing)
}

func TestCheckFileTooLarge(t *testing.T) {
	fh := fileHeader(t, "grande.pdf", pdf)
	fh.Size = 12 << 20

	_, err := CheckFile(fh, MaxPDFBytes, "application/pdf")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestCheckFileImageFamily(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	mt, err := CheckFile(fileHeader(t, "yo.png", png), MaxFotoBytes, "image/*")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(mt, "image/"))

	_, err = CheckFile(fileHeader(t, "yo.png", pdf), MaxFotoBytes, "image/*")
	assert.ErrorIs(t, err, ErrFileType)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 Bytes", FormatSize(0))
	assert.Equal(t, "512 Bytes", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "10 MB", FormatSize(10<<20))
	assert.Equal(t, "1.23 GB", FormatSize(1320702444))
}
