package solo

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"sync/atomic"

	"solo/internal/scene"
	"solo/internal/settings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	fontSize  = 13
	fontScale = 3

	// keyboardSpeed is how fast the arrow keys drag the ship, in scene units
	// per second.
	keyboardSpeed = 900
)

// Game State
type GameState int

const (
	StateGame GameState = iota
	StatePause
	StateExitConfirm
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

var (
	hudColor     = color.RGBA{255, 255, 255, 255}
	dimColor     = color.RGBA{0, 0, 0, 160}
	warningColor = color.RGBA{255, 80, 80, 255}
)

var exitFlag atomic.Bool

// ShouldExit reports whether the player asked to quit. Android polls it.
func ShouldExit() bool {
	return exitFlag.Load()
}

func SetExitFlag(exit bool) {
	exitFlag.Store(exit)
}

type Game struct {
	state     GameState
	scene     *scene.Scene
	resources *ResourceManager
	sounds    *SoundManager
	touches   *touchTracker

	storage  settings.Storage
	settings settings.Settings

	// 消息提示
	message      string
	messageTimer int // 显示剩余帧数
}

// NewGame builds the scene described by cfg and starts it.
func NewGame(cfg scene.Config) *Game {
	g := &Game{
		sounds:  NewSoundManager(),
		storage: settings.NewStorage(),
	}
	g.scene = scene.New(cfg, g.sounds)
	g.resources = NewResourceManager(g.scene.Config())
	g.touches = newTouchTracker(g.scene.Size().H)

	s, err := g.storage.Load()
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
	}
	g.settings = s
	g.sounds.SetMuted(s.Muted)

	if err := g.resources.PreloadResources(); err != nil {
		log.Printf("Failed to preload resources: %v", err)
	}

	g.scene.Start()
	g.state = StateGame
	return g
}

// Scene exposes the running scene.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

func (g *Game) Update() error {
	g.handleToggles()

	switch g.state {
	case StateGame:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			g.state = StatePause
			g.showMessage("PAUSED", 60)
			return nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.state = StateExitConfirm
			return nil
		}
		g.updateGame()
	case StatePause:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			g.touches.reset()
			g.state = StateGame
			g.showMessage("GO!", 60)
		}
	case StateExitConfirm:
		if inpututil.IsKeyJustPressed(ebiten.KeyY) {
			g.scene.Teardown()
			g.resources.ClearCache()
			SetExitFlag(true)
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.touches.reset()
			g.state = StateGame
		}
	}
	return nil
}

func (g *Game) updateGame() {
	began, moved := g.touches.poll()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		began = append(began, scene.Touch{ID: keyboardTouchID})
	}
	if len(began) > 0 {
		g.scene.TouchesBegan(began)
	}
	if len(moved) > 0 {
		g.scene.TouchesMoved(moved)
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	dt := 1.0 / float64(tps)
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.scene.DragPlayer(-keyboardSpeed * dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.scene.DragPlayer(keyboardSpeed * dt)
	}

	g.scene.Update(dt)
}

func (g *Game) handleToggles() {
	changed := false
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.settings.Muted = !g.settings.Muted
		g.sounds.SetMuted(g.settings.Muted)
		if g.settings.Muted {
			g.showMessage("SOUND OFF", 60)
		} else {
			g.showMessage("SOUND ON", 60)
		}
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.settings.ShowDebug = !g.settings.ShowDebug
		changed = true
	}
	if changed {
		if err := g.storage.Save(g.settings); err != nil {
			log.Printf("Failed to save settings: %v", err)
		}
	}
}

// drawText 辅助函数，简化 text/v2 的文本绘制
func drawText(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	lines := strings.Split(str, "\n")
	for i, line := range lines {
		dopt := &text.DrawOptions{}
		dopt.GeoM.Scale(fontScale, fontScale)
		dopt.GeoM.Translate(float64(x), float64(y+i*(fontSize+2)*fontScale))
		dopt.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, hudFace, dopt)
	}
}

// drawCentered draws one line of text centred on x.
func drawCentered(screen *ebiten.Image, str string, x, y int, clr color.Color) {
	w, _ := text.Measure(str, hudFace, 0)
	drawText(screen, str, x-int(w*fontScale/2), y, clr)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawGameScene(screen)

	switch g.state {
	case StatePause:
		g.drawOverlay(screen, "PAUSED\n\n[Z] resume")
	case StateExitConfirm:
		g.drawOverlay(screen, "QUIT? Y/N")
	}

	g.drawGameHUD(screen)

	// 消息提示统一绘制
	if g.messageTimer > 0 {
		size := g.scene.Size()
		drawCentered(screen, g.message, int(size.W/2), int(size.H*0.45), hudColor)
		g.messageTimer--
	}
}

func (g *Game) drawGameScene(screen *ebiten.Image) {
	if bg := g.resources.GetResource(ResourceBackground); bg != nil {
		screen.DrawImage(bg, &ebiten.DrawImageOptions{})
	} else {
		screen.Fill(spaceColor)
	}

	height := g.scene.Size().H
	for _, e := range g.scene.Entities() {
		img := g.resources.SpriteFor(e.Kind)
		if img == nil {
			continue
		}
		bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bw)/2, -float64(bh)/2)
		// scene rotation is counter-clockwise with y up
		op.GeoM.Rotate(-e.ZRotation)
		op.GeoM.Translate(e.X, height-e.Y)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

func (g *Game) drawGameHUD(screen *ebiten.Image) {
	if g.sounds.Muted() {
		drawText(screen, "MUTED", 20, 20, hudColor)
	}
	if !g.settings.ShowDebug {
		return
	}
	stats := g.scene.Stats()
	arena := g.scene.Arena()
	msg := fmt.Sprintf("TPS: %0.1f\nEnemies: %d\nBullets: %d\nFired: %d\nSpawned: %d\nContacts: %d\nActions: %d\nSprites: %d\nArena: %.0f..%.0f",
		ebiten.ActualTPS(),
		g.scene.Count(scene.KindEnemy),
		g.scene.Count(scene.KindBullet),
		stats.Fired,
		stats.Spawned,
		stats.Contacts,
		g.scene.RunningActions(),
		g.resources.GetCacheSize(),
		arena.MinX(), arena.MaxX(),
	)
	ebitenutil.DebugPrintAt(screen, msg, 4, 40)

	// arena edges
	edge := color.RGBA{80, 255, 120, 120}
	h := float32(g.scene.Size().H)
	vector.DrawFilledRect(screen, float32(arena.MinX()), 0, 2, h, edge, false)
	vector.DrawFilledRect(screen, float32(arena.MaxX())-2, 0, 2, h, edge, false)
}

func (g *Game) drawOverlay(screen *ebiten.Image, msg string) {
	size := g.scene.Size()
	vector.DrawFilledRect(screen, 0, 0, float32(size.W), float32(size.H), dimColor, false)
	lines := strings.Split(msg, "\n")
	y := int(size.H / 2)
	for i, line := range lines {
		clr := hudColor
		if g.state == StateExitConfirm {
			clr = warningColor
		}
		drawCentered(screen, line, int(size.W/2), y+i*(fontSize+2)*fontScale, clr)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.scene.Size()
	return int(size.W), int(size.H)
}

// 消息提示方法
func (g *Game) showMessage(msg string, duration int) {
	g.message = msg
	g.messageTimer = duration
}
