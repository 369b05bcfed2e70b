package i18n

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
)

// Translator serves messages from YAML catalogs. Catalogs are loaded once;
// a Translator is read-only afterwards and safe for concurrent use.
type Translator struct {
	catalogs map[string]map[string]string
	base     string
	logger   *slog.Logger
}

// TranslatorOption configures a Translator.
type TranslatorOption func(*Translator)

// WithTranslatorLogger reports missing keys at debug level.
func WithTranslatorLogger(l *slog.Logger) TranslatorOption {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTranslator loads every *.yaml / *.yml file of fsys. Later files override
// keys of earlier ones in lexical path order.
func NewTranslator(fsys fs.FS, base string, opts ...TranslatorOption) (*Translator, error) {
	t := &Translator{
		catalogs: make(map[string]map[string]string),
		base:     normalizeTag(base),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(name)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Join(ErrFailedToReadCatalog, err)
		}
		catalog, err := parseCatalog(content)
		if err != nil {
			return err
		}
		mergeCatalogs(t.catalogs, catalog)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(t.catalogs) == 0 {
		return nil, ErrNoCatalogs
	}
	return t, nil
}

// T translates key for locale. Missing keys fall back to the base locale and
// then to the key itself. args are name/value pairs replacing %{name}.
func (t *Translator) T(locale, key string, args ...string) string {
	msg, ok := t.lookup(normalizeTag(locale), key)
	if !ok {
		t.logger.Debug("missing translation", slog.String("locale", locale), slog.String("key", key))
		msg, ok = t.lookup(t.base, key)
	}
	if !ok {
		msg = key
	}
	return substitute(msg, args)
}

// Tc translates key for the locale bound to ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	locale, ok := LocaleFromContext(ctx)
	if !ok {
		locale = t.base
	}
	return t.T(locale, key, args...)
}

// Locales returns the locales that have a catalog, sorted.
func (t *Translator) Locales() []string {
	locales := make([]string, 0, len(t.catalogs))
	for locale := range t.catalogs {
		locales = append(locales, locale)
	}
	slices.Sort(locales)
	return locales
}

func (t *Translator) lookup(locale, key string) (string, bool) {
	messages, ok := t.catalogs[locale]
	if !ok {
		return "", false
	}
	msg, ok := messages[key]
	return msg, ok
}

func substitute(msg string, args []string) string {
	if len(args) < 2 || !strings.Contains(msg, "%{") {
		return msg
	}
	pairs := make([]string, 0, len(args))
	for i := 0; i+1 < len(args); i += 2 {
		pairs = append(pairs, "%{"+args[i]+"}", args[i+1])
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}
