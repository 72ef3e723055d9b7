//go:build android

package settings

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	dirMu     sync.Mutex
	customDir string
)

// SetDir 由 mobile 包调用，设置存储目录
func SetDir(path string) {
	dirMu.Lock()
	defer dirMu.Unlock()
	customDir = path
}

// androidStorage resolves its file on every call, so a directory handed
// over by the Java side after start-up still takes effect.
type androidStorage struct{}

func newStorage() Storage {
	return androidStorage{}
}

func (androidStorage) file() *FileStorage {
	dirMu.Lock()
	dir := customDir
	dirMu.Unlock()
	// 优先使用 Java 层传递的目录
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			dir = "."
		}
	}
	return NewFileStorage(filepath.Join(dir, fileName))
}

func (s androidStorage) Save(settings Settings) error {
	return s.file().Save(settings)
}

func (s androidStorage) Load() (Settings, error) {
	return s.file().Load()
}
