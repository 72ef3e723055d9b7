//go:build android

package mobile

import "solo/internal/settings"

// SetSettingsDir 由 Java 层调用，设置偏好存储目录
func SetSettingsDir(path string) {
	settings.SetDir(path)
}
