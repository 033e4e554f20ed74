package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	fr_translations "github.com/go-playground/validator/v10/translations/fr"
	"github.com/pkg/errors"

	"eduaventuras/internal/entity"
)

const defaultLocale = "es"

// custom validation tags
const (
	notBlankTag = "notblank"
	rolTag      = "rol"
)

var customTexts = map[string]map[string]string{
	notBlankTag: {
		"es": "{0} no puede estar vacío",
		"en": "{0} cannot be blank",
		"fr": "{0} ne peut pas être vide",
	},
	rolTag: {
		"es": "{0} debe ser un rol válido",
		"en": "{0} must be a valid role",
		"fr": "{0} doit être un rôle valide",
	},
}

// Validator checks form structs and reports failures in the request locale.
type Validator struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
}

// New builds a validator with es, en and fr messages. Field names in messages come from the
// struct's form tags.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation(notBlankTag, notBlank); err != nil {
		return nil, errors.Wrap(err, "registering notblank")
	}
	if err := v.RegisterValidation(rolTag, validRol); err != nil {
		return nil, errors.Wrap(err, "registering rol")
	}

	_es := es.New()
	uni := ut.New(_es, _es, en.New(), fr.New())

	defaults := map[string]func(*validator.Validate, ut.Translator) error{
		"es": es_translations.RegisterDefaultTranslations,
		"en": en_translations.RegisterDefaultTranslations,
		"fr": fr_translations.RegisterDefaultTranslations,
	}
	for locale, register := range defaults {
		trans, _ := uni.GetTranslator(locale)
		if err := register(v, trans); err != nil {
			return nil, errors.Wrapf(err, "registering %s translations", locale)
		}
		for tag, texts := range customTexts {
			if err := registerCustom(v, trans, tag, texts[locale]); err != nil {
				return nil, errors.Wrapf(err, "registering %s translation for %s", locale, tag)
			}
		}
	}
	return &Validator{validate: v, uni: uni}, nil
}

func registerCustom(v *validator.Validate, trans ut.Translator, tag, text string) error {
	return v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		})
}

// FieldErrors maps a form field name to its localized message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for field, msg := range f {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Struct validates s. It returns nil, FieldErrors, or an error for a value that cannot be
// validated at all.
func (v *Validator) Struct(locale string, s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	trans, found := v.uni.GetTranslator(locale)
	if !found {
		trans, _ = v.uni.GetTranslator(defaultLocale)
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = fe.Translate(trans)
		}
	}
	return out
}

func notBlank(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return false
}

func validRol(fl validator.FieldLevel) bool {
	switch r := fl.Field().Interface().(type) {
	case string:
		_, ok := entity.ParseRol(r)
		return ok
	case entity.Rol:
		return r.Valid()
	}
	return false
}
