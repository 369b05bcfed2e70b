package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageOption is one entry of a language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// LanguageOptions labels each supported locale with its own name
// ("Deutsch", "español", ...), falling back to the raw tag.
func LanguageOptions(supported []string, active string) []LanguageOption {
	options := make([]LanguageOption, 0, len(supported))
	for _, s := range supported {
		label := s
		if tag, err := language.Parse(s); err == nil {
			if name := display.Self.Name(tag); name != "" {
				label = name
			}
		}
		options = append(options, LanguageOption{
			Tag:    s,
			Label:  label,
			Active: strings.EqualFold(s, active),
		})
	}
	return options
}
