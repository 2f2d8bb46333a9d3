package main

import (
	"flag"
	"log"

	"github.com/decker502/catan/pkg/app"
	"github.com/decker502/catan/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose     = flag.Bool("verbose", false, "print log output")
	configPath  = flag.String("config", "data/app.yaml", "app config file")
	contentPath = flag.String("content", "", "content file (overrides the app config)")
	watch       = flag.Bool("watch", false, "reload content when it changes on disk")
	mute        = flag.Bool("mute", false, "disable audio")
	volume      = flag.Float64("volume", 0, "sound volume 0-1 (0 uses the app config)")
	chapter     = flag.Int("chapter", -1, "open this chapter's section list on start")
)

func main() {
	flag.Parse()

	embedded.Init(assetsFS, dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		ContentPath: *contentPath,
		Watch:       *watch,
		Mute:        *mute,
		Volume:      *volume,
		Chapter:     *chapter,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer game.Close()

	window := game.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
