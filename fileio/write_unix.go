//go:build !windows

package fileio

import (
	"io/fs"

	"github.com/google/renameio/v2"
)

func writeFile(path string, data []byte, mode fs.FileMode) error {
	return renameio.WriteFile(path, data, mode, renameio.WithExistingPermissions())
}
