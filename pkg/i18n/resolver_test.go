package i18n_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frontdoor/pkg/i18n"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func headers(kv ...string) http.Header {
	h := http.Header{}
	for i := 0; i+1 < len(kv); i += 2 {
		h.Add(kv[i], kv[i+1])
	}
	return h
}

func TestNewResolver(t *testing.T) {
	t.Parallel()

	_, err := i18n.NewResolver(nil, "en")
	assert.ErrorIs(t, err, i18n.ErrNoSupportedLocales)

	_, err = i18n.NewResolver([]string{"en"}, " ")
	assert.ErrorIs(t, err, i18n.ErrEmptyBaseLocale)

	_, err = i18n.NewResolver([]string{"en", "fr"}, "de")
	assert.ErrorIs(t, err, i18n.ErrBaseNotSupported)

	r, err := i18n.NewResolver([]string{"EN", "fr", "en", ""}, "En")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, r.Supported())
	assert.Equal(t, "en", r.Base())
	assert.Equal(t, i18n.DefaultCookieName, r.CookieName())
}

func TestResolver_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		header    http.Header
		supported []string
		base      string
		want      string
	}{
		{
			name:      "lang query on root",
			url:       "/?lang=fr",
			header:    headers(),
			supported: []string{"en", "fr", "de"},
			base:      "en",
			want:      "fr",
		},
		{
			name:      "path beats cookie",
			url:       "/de/about",
			header:    headers("Cookie", "PARAGLIDE_LOCALE=fr"),
			supported: []string{"en", "fr", "de"},
			base:      "en",
			want:      "de",
		},
		{
			name:      "accept-language primary subtag",
			url:       "/",
			header:    headers("Accept-Language", "es-MX,en;q=0.8"),
			supported: []string{"en", "es"},
			base:      "en",
			want:      "es",
		},
		{
			name:      "gl used when lang is absent",
			url:       "/about?gl=de",
			header:    headers(),
			supported: []string{"en", "de"},
			base:      "en",
			want:      "de",
		},
		{
			name:      "present but unknown lang does not fall through to gl",
			url:       "/about?lang=xx&gl=de",
			header:    headers(),
			supported: []string{"en", "de"},
			base:      "en",
			want:      "en",
		},
		{
			name:      "unknown query falls through to path",
			url:       "/fr/?lang=zz",
			header:    headers(),
			supported: []string{"en", "fr"},
			base:      "en",
			want:      "fr",
		},
		{
			name:      "cookie beats accept-language",
			url:       "/about",
			header:    headers("Cookie", "theme=dark; PARAGLIDE_LOCALE=de", "Accept-Language", "fr"),
			supported: []string{"en", "fr", "de"},
			base:      "en",
			want:      "de",
		},
		{
			name:      "unsupported cookie falls through to accept-language",
			url:       "/about",
			header:    headers("Cookie", "PARAGLIDE_LOCALE=ja", "Accept-Language", "fr-CA"),
			supported: []string{"en", "fr"},
			base:      "en",
			want:      "fr",
		},
		{
			name:      "only first accept-language entry counts",
			url:       "/",
			header:    headers("Accept-Language", "ja-JP,fr;q=0.9"),
			supported: []string{"en", "fr"},
			base:      "en",
			want:      "en",
		},
		{
			name:      "case-insensitive everywhere",
			url:       "/FR/about",
			header:    headers(),
			supported: []string{"en", "fr"},
			base:      "en",
			want:      "fr",
		},
		{
			name:      "nothing matches",
			url:       "/about",
			header:    headers("Accept-Language", "*"),
			supported: []string{"en", "fr"},
			base:      "en",
			want:      "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := mustURL(t, tt.url)
			assert.Equal(t, tt.want, i18n.Resolve(u, tt.header, tt.supported, tt.base))

			r, err := i18n.NewResolver(tt.supported, tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Resolve(u, tt.header))
		})
	}
}

func TestResolver_QueryWinsOverEverything(t *testing.T) {
	t.Parallel()

	sets := [][]string{
		{"en", "fr"},
		{"en", "fr", "de", "es"},
		{"pt-br", "en", "ja"},
	}
	for _, supported := range sets {
		for _, member := range supported {
			for _, param := range []string{"lang", "gl"} {
				u := mustURL(t, "/"+supported[0]+"/page?"+param+"="+strings.ToUpper(member))
				h := headers(
					"Cookie", "PARAGLIDE_LOCALE="+supported[len(supported)-1],
					"Accept-Language", supported[0],
				)
				assert.Equal(t, member, i18n.Resolve(u, h, supported, supported[0]),
					"param=%s supported=%v", param, supported)
			}
		}
	}
}

func TestResolver_PathWinsOverCookieAndHeader(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "fr", "de"}
	for _, member := range supported {
		for _, other := range supported {
			u := mustURL(t, "/"+member+"/x/y")
			h := headers("Cookie", "PARAGLIDE_LOCALE="+other, "Accept-Language", other+"-XX")
			assert.Equal(t, member, i18n.Resolve(u, h, supported, "en"))
		}
	}
}

func TestResolver_Fallback(t *testing.T) {
	t.Parallel()

	// base outside the supported set is returned verbatim by the functional form
	assert.Equal(t, "xx", i18n.Resolve(mustURL(t, "/"), headers(), []string{"en"}, "xx"))
	assert.Equal(t, "en", i18n.Resolve(nil, nil, []string{"fr"}, "en"))
}

func TestResolver_Limits(t *testing.T) {
	t.Parallel()

	r, err := i18n.NewResolver([]string{"en", "fr"}, "en")
	require.NoError(t, err)

	assert.False(t, r.IsSupported(strings.Repeat("a", 40)))

	long := strings.Repeat("x", 5000) + ",fr"
	assert.Equal(t, "en", r.Resolve(mustURL(t, "/"), headers("Accept-Language", long)))
}

func TestResolver_Options(t *testing.T) {
	t.Parallel()

	r, err := i18n.NewResolver([]string{"en", "fr", "de"}, "en",
		i18n.WithCookieName("site_lang"),
		i18n.WithQueryParams("locale"),
	)
	require.NoError(t, err)

	assert.Equal(t, "de", r.Resolve(mustURL(t, "/?locale=de&lang=fr"), headers()))
	assert.Equal(t, "fr", r.Resolve(mustURL(t, "/"), headers("Cookie", "PARAGLIDE_LOCALE=de; site_lang=fr")))
}

func TestResolver_IsSupportedAndPathLocale(t *testing.T) {
	t.Parallel()

	r, err := i18n.NewResolver([]string{"en", "pt-br"}, "en")
	require.NoError(t, err)

	assert.True(t, r.IsSupported("PT-BR"))
	assert.True(t, r.IsSupported(" en "))
	assert.False(t, r.IsSupported("pt"))
	assert.False(t, r.IsSupported(""))

	tag, ok := r.PathLocale("/pt-BR/pricing")
	assert.True(t, ok)
	assert.Equal(t, "pt-br", tag)

	_, ok = r.PathLocale("/")
	assert.False(t, ok)
	_, ok = r.PathLocale("/pricing")
	assert.False(t, ok)
}
