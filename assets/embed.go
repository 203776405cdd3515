// assets/embed.go
//
// Embedded message catalogs, one dotenv-style file per language.

package assets

import (
	"embed"
	"io"
)

//go:embed messages_*.env
var FS embed.FS

// Catalog opens the embedded catalog for lang (e.g. "en", "pt").
func Catalog(lang string) (io.ReadCloser, error) {
	return FS.Open("messages_" + lang + ".env")
}
