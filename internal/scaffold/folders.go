package scaffold

import (
	"os"
	"path/filepath"

	"github.com/sfp-labs/sfp/internal/failure"
)

// DirPermNormal is the mode for created project folders.
const DirPermNormal os.FileMode = 0755

// Folders are created under the project root, in this order.
var Folders = []string{"src", "resources"}

// Provision creates each of Folders under root. It stops at the first
// failure, so later folders are never attempted; existing folders count as
// failures. The created paths are returned.
func Provision(root string) ([]string, error) {
	created := make([]string, 0, len(Folders))
	for _, name := range Folders {
		path := filepath.Join(root, name)
		if err := os.Mkdir(path, DirPermNormal); err != nil {
			return created, failure.Folder(path, err)
		}
		created = append(created, path)
	}
	return created, nil
}
