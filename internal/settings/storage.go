// Package settings persists the player's preferences between runs. Each
// platform supplies its own Storage through build tags.
package settings

// Settings are the preferences kept between runs.
type Settings struct {
	Muted     bool `json:"muted"`
	ShowDebug bool `json:"show_debug"`
}

type Storage interface {
	Save(s Settings) error
	Load() (Settings, error)
}

// NewStorage returns the storage for the current platform.
func NewStorage() Storage {
	// 具体实现由各平台的 build tag 文件提供
	return newStorage()
}
