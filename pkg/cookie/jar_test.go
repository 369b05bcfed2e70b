package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/frontdoor/pkg/cookie"
)

func TestJar_ReadsRequestCookies(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "a", Value: "1"})
	jar := cookie.NewJar(httptest.NewRecorder(), r)

	got, err := jar.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	_, err = jar.Get("b")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	assert.True(t, jar.Writable())
}

func TestJar_WritesAreVisibleToLaterReads(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "a", Value: "old"})
	jar := cookie.NewJar(w, r)

	require.NoError(t, jar.Set(&http.Cookie{Name: "a", Value: "new"}))

	got, err := jar.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "new", got)

	require.NoError(t, jar.Set(&http.Cookie{Name: "a", MaxAge: -1}))
	_, err = jar.Get("a")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)

	assert.Len(t, w.Result().Cookies(), 2)
}

func TestJar_RejectsNamelessCookie(t *testing.T) {
	t.Parallel()

	jar := cookie.NewJar(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, jar.Set(&http.Cookie{Value: "x"}), cookie.ErrInvalidFormat)
	assert.ErrorIs(t, jar.Set(nil), cookie.ErrInvalidFormat)
}

func TestReadOnlyJar(t *testing.T) {
	t.Parallel()

	t.Run("reads request and drops writes", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "a", Value: "1"})
		jar := cookie.ReadOnlyJar(r)

		assert.False(t, jar.Writable())
		assert.ErrorIs(t, jar.Set(&http.Cookie{Name: "a", Value: "2"}), cookie.ErrNotWritable)

		got, err := jar.Get("a")
		require.NoError(t, err)
		assert.Equal(t, "1", got)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		jar := cookie.ReadOnlyJar(nil)
		_, err := jar.Get("a")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("NewJar without writer", func(t *testing.T) {
		t.Parallel()

		jar := cookie.NewJar(nil, nil)
		assert.False(t, jar.Writable())
	})
}
