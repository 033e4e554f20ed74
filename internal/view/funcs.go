package view

import (
	"html/template"
	"strconv"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"

	"eduaventuras/internal/entity"
	"eduaventuras/internal/i18n"
	"eduaventuras/internal/session"
	"eduaventuras/internal/validation"
)

var calendars = map[string]locales.Translator{
	"es": es.New(),
	"en": en.New(),
	"fr": fr.New(),
}

var badges = map[string]string{
	"Matemáticas y geometria": "badge-matematicas",
	"Matemática":              "badge-matematicas",
	"Ciencias Naturales":      "badge-ciencias",
	"Ciencias y Quimica":      "badge-ciencias",
	"Español":                 "badge-espanol",
	"Lenguaje y Literatura":   "badge-espanol",
	"Lengua y Literatura":     "badge-espanol",
	"Literatura":              "badge-espanol",
}

// Badge returns the CSS class for a subject name.
func Badge(materia string) string {
	if c, ok := badges[materia]; ok {
		return c
	}
	return "badge-default"
}

// FormatDate renders a date the long way in locale, or "-" for a missing date.
func FormatDate(locale string, f entity.Fecha) string {
	if f.IsZero() {
		return "-"
	}
	cal, ok := calendars[locale]
	if !ok {
		cal = calendars[i18n.Default]
	}
	return cal.FmtDateLong(f.Time)
}

// RelativeTime renders how long ago f was, switching to the long date after 30 days.
func RelativeTime(loc *i18n.Localizer, now time.Time, f entity.Fecha) string {
	if f.IsZero() {
		return "-"
	}
	d := now.Sub(f.Time)
	minutes := int(d.Minutes())
	hours := int(d.Hours())
	days := hours / 24
	switch {
	case minutes < 1:
		return loc.T("tiempo.ahora")
	case minutes < 60:
		return loc.T("tiempo.minutos", "n", minutes)
	case hours < 24:
		return loc.T("tiempo.horas", "n", hours)
	case days < 30:
		return loc.T("tiempo.dias", "n", days)
	}
	return FormatDate(loc.Locale, f)
}

// CountRecursos renders a resource count with its plural.
func CountRecursos(loc *i18n.Localizer, n int64) string {
	if n == 1 {
		return loc.T("materias.recursos.uno")
	}
	return loc.T("materias.recursos.varios", "n", strconv.FormatInt(n, 10))
}

// funcs binds the template functions to loc. With a nil loc it returns parse-time stubs.
func (r *Renderer) funcs(loc *i18n.Localizer) template.FuncMap {
	if loc == nil {
		return template.FuncMap{
			"t":        func(string, ...any) string { return "" },
			"msg":      func(session.Alert) string { return "" },
			"rol":      func(entity.Rol) string { return "" },
			"recursos": func(int64) string { return "" },
			"fecha":    func(entity.Fecha) string { return "" },
			"hace":     func(entity.Fecha) string { return "" },
			"size":     validation.FormatSize,
			"badge":    Badge,
		}
	}
	return template.FuncMap{
		"t":        loc.T,
		"msg":      func(a session.Alert) string { return loc.Message(a.Mensaje, a.Params) },
		"rol":      func(r entity.Rol) string { return loc.T("rol." + string(r)) },
		"recursos": func(n int64) string { return CountRecursos(loc, n) },
		"fecha":    func(f entity.Fecha) string { return FormatDate(loc.Locale, f) },
		"hace":     func(f entity.Fecha) string { return RelativeTime(loc, r.now(), f) },
		"size":     validation.FormatSize,
		"badge":    Badge,
	}
}
