package i18n

import (
	"errors"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// parseCatalog parses a YAML catalog whose top-level keys are locales and
// flattens nested sections into dot-separated keys:
//
//	en:
//	  home:
//	    title: Welcome   ->   catalogs["en"]["home.title"] = "Welcome"
func parseCatalog(content []byte) (map[string]map[string]string, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}

	result := make(map[string]map[string]string, len(data))
	for locale, val := range data {
		section, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q: expected map, got %T", ErrFailedToParseCatalog, locale, val)
		}
		flat := make(map[string]string)
		flatten("", section, flat)
		result[normalizeTag(locale)] = flat
	}
	return result, nil
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for key, val := range in {
		if prefix != "" {
			key = prefix + "." + key
		}
		switch v := val.(type) {
		case map[string]any:
			flatten(key, v, out)
		case string:
			out[key] = v
		case nil:
		default:
			out[key] = fmt.Sprint(v)
		}
	}
}

func mergeCatalogs(dst, src map[string]map[string]string) {
	for locale, messages := range src {
		if dst[locale] == nil {
			dst[locale] = make(map[string]string, len(messages))
		}
		maps.Copy(dst[locale], messages)
	}
}
