package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/frontdoor/pkg/i18n"
)

// page is the data every view renders with.
type page struct {
	Locale   string
	Title    string
	Path     string // path after the locale prefix, "/" for the home page
	Switcher []i18n.LanguageOption
	T        func(key string, args ...string) string
}

func (p page) href(locale, path string) string {
	if path == "/" {
		return "/" + locale + "/"
	}
	return "/" + locale + path
}

// layout wraps body in the document shell with navigation and the language switcher.
func layout(p page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="`)
		b.WriteString(templ.EscapeString(p.Locale))
		b.WriteString(`"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		b.WriteString(templ.EscapeString(p.Title + " | " + p.T("site.name")))
		b.WriteString(`</title></head><body><header><nav>`)
		writeLink(&b, p.href(p.Locale, "/"), p.T("nav.home"), p.Path == "/")
		writeLink(&b, p.href(p.Locale, "/about"), p.T("nav.about"), p.Path == "/about")
		b.WriteString(`</nav>`)
		writeSwitcher(&b, p)
		b.WriteString(`</header><main id="content">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func writeLink(b *strings.Builder, href, label string, current bool) {
	b.WriteString(`<a href="`)
	b.WriteString(templ.EscapeString(href))
	b.WriteString(`"`)
	if current {
		b.WriteString(` aria-current="page"`)
	}
	b.WriteString(`>`)
	b.WriteString(templ.EscapeString(label))
	b.WriteString(`</a>`)
}

// writeSwitcher links the current page in every supported locale. Following a
// link moves the path prefix, which the pipeline then stores in the locale cookie.
func writeSwitcher(b *strings.Builder, p page) {
	b.WriteString(`<nav aria-label="`)
	b.WriteString(templ.EscapeString(p.T("nav.language")))
	b.WriteString(`"><ul class="languages">`)
	for _, opt := range p.Switcher {
		b.WriteString(`<li><a hreflang="`)
		b.WriteString(templ.EscapeString(opt.Tag))
		b.WriteString(`" lang="`)
		b.WriteString(templ.EscapeString(opt.Tag))
		b.WriteString(`" href="`)
		b.WriteString(templ.EscapeString(p.href(opt.Tag, p.Path)))
		b.WriteString(`"`)
		if opt.Active {
			b.WriteString(` aria-current="true"`)
		}
		b.WriteString(`>`)
		b.WriteString(templ.EscapeString(opt.Label))
		b.WriteString(`</a></li>`)
	}
	b.WriteString(`</ul></nav>`)
}

// article renders a heading and one paragraph.
func article(title, text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<article><h1>`+templ.EscapeString(title)+`</h1><p>`+templ.EscapeString(text)+`</p></article>`)
		return err
	})
}

func homeView(p page) templ.Component {
	return layout(p, article(p.T("home.title"), p.T("home.lead")))
}

func aboutView(p page) templ.Component {
	return layout(p, article(p.T("about.title"), p.T("about.body")))
}

func notFoundView(p page, path string) templ.Component {
	return layout(p, article(p.T("notfound.title"), p.T("notfound.body", "path", path)))
}
