package i18n

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Default is the fallback locale for missing keys and unknown browsers.
const Default = "es"

var ErrUnsupportedLocale = errors.New("unsupported locale")

// Language describes a selectable locale.
type Language struct {
	Code    string
	Nombre  string
	Bandera string
}

// Languages lists the supported locales in selector order.
var Languages = []Language{
	{Code: "es", Nombre: "Español", Bandera: "🇪🇸"},
	{Code: "en", Nombre: "English", Bandera: "🇺🇸"},
	{Code: "fr", Nombre: "Français", Bandera: "🇫🇷"},
}

func IsSupported(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Detect picks the locale for a request: the persisted choice when supported, else the first
// Accept-Language entry whose base language is supported, else Default.
func Detect(persisted, acceptLanguage string) string {
	if IsSupported(persisted) {
		return persisted
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return Default
	}
	for _, tag := range tags {
		base, _ := tag.Base()
		if IsSupported(base.String()) {
			return base.String()
		}
	}
	return Default
}

// LocaleSetter persists a locale choice.
type LocaleSetter interface {
	SetLocale(code string) error
}

// Fetcher loads message overrides from the backend.
type Fetcher interface {
	Mensajes(ctx context.Context, lang string) (map[string]string, error)
	IdiomasDisponibles(ctx context.Context) (map[string]string, error)
}

// Bundle holds one message table per locale. Tables start from the built-in messages and may be
// overlaid with the backend's.
type Bundle struct {
	mu     sync.RWMutex
	tables map[string]map[string]string
	log    *logrus.Logger
}

func NewBundle(log *logrus.Logger) *Bundle {
	tables := make(map[string]map[string]string, len(builtin))
	for code, msgs := range builtin {
		t := make(map[string]string, len(msgs))
		for k, v := range msgs {
			t[k] = v
		}
		tables[code] = t
	}
	return &Bundle{tables: tables, log: log}
}

// Translate resolves key in locale, then in Default, then returns the key itself. Every
// {name} placeholder is replaced with params[name].
func (b *Bundle) Translate(locale, key string, params map[string]string) string {
	b.mu.RLock()
	msg, ok := b.tables[locale][key]
	if !ok {
		msg, ok = b.tables[Default][key]
	}
	b.mu.RUnlock()
	if !ok {
		msg = key
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// Has reports whether key exists in locale or in Default.
func (b *Bundle) Has(locale, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if _, ok := b.tables[locale][key]; ok {
		return true
	}
	_, ok := b.tables[Default][key]
	return ok
}

// SetLocale persists code through s. Unsupported codes are logged and rejected.
func (b *Bundle) SetLocale(s LocaleSetter, code string) error {
	if !IsSupported(code) {
		b.log.WithField("locale", code).Warn("unsupported locale requested")
		return errors.Wrap(ErrUnsupportedLocale, code)
	}
	return s.SetLocale(code)
}

// Refresh overlays the backend's messages for locale on the built-in table. On failure the
// current table stays in place.
func (b *Bundle) Refresh(ctx context.Context, f Fetcher, locale string) error {
	if !IsSupported(locale) {
		return errors.Wrap(ErrUnsupportedLocale, locale)
	}
	remote, err := f.Mensajes(ctx, locale)
	if err != nil {
		b.log.WithError(err).WithField("locale", locale).Warn("loading remote messages")
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	table := b.tables[locale]
	for k, v := range remote {
		table[k] = v
	}
	b.log.WithFields(logrus.Fields{"locale": locale, "messages": len(remote)}).Debug("remote messages loaded")
	return nil
}

// Available returns the locales the backend advertises that this client can render, falling
// back to Languages when the backend cannot be asked.
func (b *Bundle) Available(ctx context.Context, f Fetcher) []Language {
	remote, err := f.IdiomasDisponibles(ctx)
	if err != nil || len(remote) == 0 {
		return Languages
	}
	var out []Language
	for _, l := range Languages {
		if _, ok := remote[l.Code]; ok {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return Languages
	}
	return out
}

// Localizer binds a Bundle to one locale for rendering.
type Localizer struct {
	bundle *Bundle
	Locale string
}

func (b *Bundle) Localizer(locale string) *Localizer {
	if !IsSupported(locale) {
		locale = Default
	}
	return &Localizer{bundle: b, Locale: locale}
}

// T translates key. Extra arguments are name/value pairs for placeholders.
func (l *Localizer) T(key string, kv ...any) string {
	var params map[string]string
	if len(kv) > 1 {
		params = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = fmt.Sprint(kv[i+1])
		}
	}
	return l.bundle.Translate(l.Locale, key, params)
}

// Message translates key when it is a known message key and returns text unchanged otherwise,
// so redirects may carry either a key or literal text.
func (l *Localizer) Message(text string, params map[string]string) string {
	if l.bundle.Has(l.Locale, text) {
		return l.bundle.Translate(l.Locale, text, params)
	}
	return text
}
