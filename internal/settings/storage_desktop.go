//go:build !android && !js

package settings

import (
	"os"
	"path/filepath"
)

const appDir = "solo-mission"

func newStorage() Storage {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return NewFileStorage(filepath.Join(dir, appDir, fileName))
}
