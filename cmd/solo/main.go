package main

import (
	"flag"
	"log"
	"os"

	"solo"
	"solo/internal/scene"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scale := flag.Float64("scale", 0.4, "window size relative to the scene")
	seed := flag.Int64("seed", 0, "random seed for enemy paths (0 picks one from the clock)")
	restore := flag.String("restore", "", "restore a saved scene (not supported)")
	flag.Parse()

	if *restore != "" {
		f, err := os.Open(*restore)
		if err != nil {
			log.Fatalf("failed to open %s: %v", *restore, err)
		}
		if _, err := scene.Decode(f); err != nil {
			log.Fatalf("failed to restore scene: %v", err)
		}
	}

	cfg := scene.DefaultConfig()
	cfg.Seed = *seed

	ebiten.SetWindowSize(int(cfg.Width * *scale), int(cfg.Height * *scale))
	ebiten.SetWindowTitle("Solo Mission")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := solo.NewGame(cfg)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
