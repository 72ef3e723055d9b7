package mobile

import (
	"solo"
	"solo/internal/scene"

	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	// the mobile build always runs the default portrait scene
	mobile.SetGame(solo.NewGame(scene.DefaultConfig()))
}

// ShouldExit 导出函数，供 Android 检查是否需要退出应用
//
//export ShouldExit
func ShouldExit() bool {
	return solo.ShouldExit()
}

// SetExitFlag 导出函数，供游戏内部设置退出标志
//
//export SetExitFlag
func SetExitFlag(exit bool) {
	solo.SetExitFlag(exit)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
