package solo

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"math/rand"
	"sync"

	"solo/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResourceType 定义资源类型
type ResourceType string

const (
	ResourceBackground ResourceType = "background"
	ResourcePlayerShip ResourceType = "playerShip"
	ResourceBullet     ResourceType = "bullet"
	ResourceEnemyShip  ResourceType = "enemyShip"
)

var resourceTypes = []ResourceType{
	ResourceBackground,
	ResourcePlayerShip,
	ResourceBullet,
	ResourceEnemyShip,
}

var (
	spaceColor      = color.RGBA{8, 10, 32, 255}
	starColor       = color.RGBA{200, 210, 255, 255}
	playerHullColor = color.RGBA{90, 200, 255, 255}
	playerWingColor = color.RGBA{40, 110, 200, 255}
	bulletColor     = color.RGBA{255, 230, 90, 255}
	enemyHullColor  = color.RGBA{230, 60, 70, 255}
	enemyWingColor  = color.RGBA{140, 30, 40, 255}
	engineColor     = color.RGBA{255, 160, 40, 255}
	fallbackColor   = color.RGBA{255, 0, 255, 255}
)

const fallbackSize = 16

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ResourceManager 资源管理器. Sprites are drawn procedurally the first time
// they are asked for and cached afterwards.
type ResourceManager struct {
	cfg    scene.Config
	cache  map[ResourceType]*ebiten.Image
	mutex  sync.RWMutex
	loaded bool
}

// NewResourceManager 创建新的资源管理器
func NewResourceManager(cfg scene.Config) *ResourceManager {
	return &ResourceManager{
		cfg:   cfg,
		cache: make(map[ResourceType]*ebiten.Image),
	}
}

// LoadResource 加载单个资源
func (rm *ResourceManager) LoadResource(resourceType ResourceType) (*ebiten.Image, error) {
	rm.mutex.RLock()
	if img, exists := rm.cache[resourceType]; exists {
		rm.mutex.RUnlock()
		return img, nil
	}
	rm.mutex.RUnlock()

	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	// 双重检查，防止并发加载同一资源
	if img, exists := rm.cache[resourceType]; exists {
		return img, nil
	}

	img, err := rm.build(resourceType)
	if err != nil {
		return nil, err
	}
	rm.cache[resourceType] = img
	log.Printf("Loaded resource: %s", resourceType)
	return img, nil
}

// LoadResourceSafe 安全加载资源，失败时缓存并返回一张降级图像
func (rm *ResourceManager) LoadResourceSafe(resourceType ResourceType) *ebiten.Image {
	img, err := rm.LoadResource(resourceType)
	if err == nil {
		return img
	}
	log.Printf("Failed to load resource %s: %v", resourceType, err)
	img = rm.CreateFallbackImage(fallbackSize, fallbackSize, fallbackColor)
	rm.mutex.Lock()
	rm.cache[resourceType] = img
	rm.mutex.Unlock()
	return img
}

// PreloadResources 预加载所有资源
func (rm *ResourceManager) PreloadResources() error {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	if rm.loaded {
		return nil
	}
	for _, resourceType := range resourceTypes {
		if _, exists := rm.cache[resourceType]; exists {
			continue
		}
		img, err := rm.build(resourceType)
		if err != nil {
			return err
		}
		rm.cache[resourceType] = img
		log.Printf("Preloaded resource: %s", resourceType)
	}
	rm.loaded = true
	log.Println("All resources preloaded successfully")
	return nil
}

// GetResource 获取资源，如果未加载则自动加载
func (rm *ResourceManager) GetResource(resourceType ResourceType) *ebiten.Image {
	return rm.LoadResourceSafe(resourceType)
}

// SpriteFor returns the sprite drawn for entities of the given kind.
func (rm *ResourceManager) SpriteFor(kind scene.Kind) *ebiten.Image {
	switch kind {
	case scene.KindPlayer:
		return rm.GetResource(ResourcePlayerShip)
	case scene.KindBullet:
		return rm.GetResource(ResourceBullet)
	case scene.KindEnemy:
		return rm.GetResource(ResourceEnemyShip)
	default:
		return nil
	}
}

// ClearCache 清空资源缓存并释放图像
func (rm *ResourceManager) ClearCache() {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()
	for _, img := range rm.cache {
		img.Deallocate()
	}
	rm.cache = make(map[ResourceType]*ebiten.Image)
	rm.loaded = false
	log.Println("Resource cache cleared")
}

// GetCacheSize 获取缓存大小
func (rm *ResourceManager) GetCacheSize() int {
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()
	return len(rm.cache)
}

// CreateFallbackImage 创建降级图像
func (rm *ResourceManager) CreateFallbackImage(width, height int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(clr)
	return img
}

func (rm *ResourceManager) build(resourceType ResourceType) (*ebiten.Image, error) {
	switch resourceType {
	case ResourceBackground:
		return drawBackground(rm.cfg.Width, rm.cfg.Height), nil
	case ResourcePlayerShip:
		return drawPlayerShip(rm.cfg.PlayerSize), nil
	case ResourceBullet:
		return drawBullet(rm.cfg.BulletSize), nil
	case ResourceEnemyShip:
		return drawEnemyShip(rm.cfg.EnemySize), nil
	default:
		return nil, fmt.Errorf("unknown resource type: %s", resourceType)
	}
}

func imageSize(w, h float64) (int, int) {
	return max(1, int(math.Ceil(w))), max(1, int(math.Ceil(h)))
}

func drawBackground(w, h float64) *ebiten.Image {
	iw, ih := imageSize(w, h)
	img := ebiten.NewImage(iw, ih)
	img.Fill(spaceColor)

	// Fixed seed so the star field is the same every run.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < iw*ih/6000; i++ {
		x := float32(rng.Float64() * w)
		y := float32(rng.Float64() * h)
		r := float32(1 + rng.Float64()*2.5)
		vector.DrawFilledCircle(img, x, y, r, starColor, true)
	}
	return img
}

// drawPlayerShip draws a ship pointing up.
func drawPlayerShip(size scene.Size) *ebiten.Image {
	iw, ih := imageSize(size.W, size.H)
	img := ebiten.NewImage(iw, ih)
	w, h := float32(size.W), float32(size.H)

	fillPolygon(img, playerWingColor,
		0, h*0.85, w/2, h*0.35, w, h*0.85, w/2, h*0.7)
	fillPolygon(img, playerHullColor,
		w/2, 0, w*0.68, h*0.9, w/2, h*0.8, w*0.32, h*0.9)
	vector.DrawFilledRect(img, w*0.42, h*0.9, w*0.16, h*0.1, engineColor, true)
	return img
}

func drawBullet(size scene.Size) *ebiten.Image {
	iw, ih := imageSize(size.W, size.H)
	img := ebiten.NewImage(iw, ih)
	w, h := float32(size.W), float32(size.H)
	vector.DrawFilledRect(img, 0, w/2, w, h-w, bulletColor, true)
	vector.DrawFilledCircle(img, w/2, w/2, w/2, bulletColor, true)
	vector.DrawFilledCircle(img, w/2, h-w/2, w/2, bulletColor, true)
	return img
}

// drawEnemyShip draws a ship pointing along +x, the direction a zero
// rotation faces.
func drawEnemyShip(size scene.Size) *ebiten.Image {
	iw, ih := imageSize(size.W, size.H)
	img := ebiten.NewImage(iw, ih)
	w, h := float32(size.W), float32(size.H)

	fillPolygon(img, enemyWingColor,
		w*0.15, 0, w*0.65, h/2, w*0.15, h, w*0.3, h/2)
	fillPolygon(img, enemyHullColor,
		w, h/2, w*0.1, h*0.68, w*0.2, h/2, w*0.1, h*0.32)
	vector.DrawFilledRect(img, 0, h*0.42, w*0.1, h*0.16, engineColor, true)
	return img
}

// fillPolygon fills the closed polygon given as x, y pairs.
func fillPolygon(dst *ebiten.Image, clr color.Color, xy ...float32) {
	var path vector.Path
	path.MoveTo(xy[0], xy[1])
	for i := 2; i+1 < len(xy); i += 2 {
		path.LineTo(xy[i], xy[i+1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
