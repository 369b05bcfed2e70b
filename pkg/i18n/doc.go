// Package i18n resolves the locale of an incoming request and serves translated
// messages for it.
//
// # Locale resolution
//
// Resolver evaluates four tiers strictly in order and returns on the first supported value:
//
//  1. the "lang" query parameter, else "gl" (campaign override)
//  2. the first path segment ("/fr/about")
//  3. the locale cookie (PARAGLIDE_LOCALE by default)
//  4. the primary subtag of the first Accept-Language entry
//
// Unknown values at any tier are ignored and the cascade moves on; when nothing matches the
// base locale is returned. Resolution is a pure function of the URL and headers passed in:
//
//	r, err := i18n.NewResolver([]string{"en", "fr", "de"}, "en")
//	if err != nil {
//		log.Fatal(err)
//	}
//	locale := r.Resolve(req.URL, req.Header)
//
// The resolved value is threaded through the request with WithLocale and read back with
// LocaleFromContext; there is no process-wide current locale.
//
// # Translations
//
// Translator loads YAML catalogs from any fs.FS (typically embed.FS). Top-level keys are
// locales, nested keys are flattened with dots:
//
//	en:
//	  home:
//	    greeting: "Hello, %{name}!"
//
//	t.T("en", "home.greeting", "name", "Ada") // "Hello, Ada!"
package i18n
