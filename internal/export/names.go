package export

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrUnsafeName is returned when an identifier cannot be used as a file name
// inside an output directory.
var ErrUnsafeName = eris.New("export: unsafe file name")

// SafeName returns id unchanged when it is usable as a single path element.
// Empty ids, "." and "..", and ids with a path separator are rejected.
func SafeName(id string) (string, error) {
	if id == "" || id == "." || id == ".." ||
		strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return "", eris.Wrapf(ErrUnsafeName, "%q", id)
	}
	return id, nil
}
