package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/frontdoor/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	_, ok := i18n.LocaleFromContext(context.Background())
	assert.False(t, ok)

	ctx := i18n.WithLocale(context.Background(), "de")
	locale, ok := i18n.LocaleFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "de", locale)

	attr, ok := i18n.LoggerExtractor()(ctx)
	assert.True(t, ok)
	assert.Equal(t, "locale", attr.Key)
	assert.Equal(t, "de", attr.Value.String())

	_, ok = i18n.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}

func TestLanguageOptions(t *testing.T) {
	t.Parallel()

	options := i18n.LanguageOptions([]string{"en", "fr", "not a tag"}, "FR")
	assert.Len(t, options, 3)

	assert.Equal(t, "en", options[0].Tag)
	assert.Equal(t, "English", options[0].Label)
	assert.False(t, options[0].Active)

	assert.True(t, options[1].Active)
	assert.NotEmpty(t, options[1].Label)

	assert.Equal(t, "not a tag", options[2].Label)
}
