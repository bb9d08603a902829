// Package static embeds the catalog data files served by default.
package static

import (
	"embed"
	"io/fs"
)

//go:embed data/*.json
var dataFS embed.FS

// Data returns the embedded data files, rooted at the data directory.
func Data() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
