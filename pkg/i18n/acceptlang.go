package i18n

import "strings"

// maxAcceptLanguageLength caps how much of an Accept-Language header is inspected.
// RFC 7231 sets no limit; 4KB covers any legitimate header.
const maxAcceptLanguageLength = 4096

// primaryLanguage returns the primary language subtag of the first
// Accept-Language entry, lower-cased. Quality values are not consulted:
// the first entry is the browser's own preference order.
//
//	"es-MX,en;q=0.8" -> "es"
func primaryLanguage(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	first, _, _ := strings.Cut(header, ",")
	first, _, _ = strings.Cut(first, ";")
	first = strings.TrimSpace(first)
	if first == "" || first == "*" {
		return ""
	}

	if idx := strings.IndexAny(first, "-_"); idx >= 0 {
		first = first[:idx]
	}
	return strings.ToLower(first)
}
