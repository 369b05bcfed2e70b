package web

import (
	"embed"
	"io/fs"
)

//go:embed translations/*.yaml
var translations embed.FS

// Translations returns the bundled message catalogs.
func Translations() fs.FS {
	sub, err := fs.Sub(translations, "translations")
	if err != nil {
		panic(err)
	}
	return sub
}
