// Package app wires the tutorial together and implements ebiten.Game.
//
// Desktop builds create the App from main.go, mobile builds from
// mobile/mobile.go. Both must call embedded.Init first.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/decker502/catan/pkg/config"
	"github.com/decker502/catan/pkg/content"
	"github.com/decker502/catan/pkg/game"
	"github.com/decker502/catan/pkg/tutorial"
	"github.com/decker502/catan/pkg/ui"
	"github.com/decker502/catan/pkg/video"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sampleRate of the shared audio context.
const sampleRate = 48000

// frameDT is the fixed step passed to the tutorial state machines.
const frameDT = 1.0 / 60.0

// diceGroup is the resource group loaded at startup for the practice screen.
const diceGroup = "dice"

// Config holds the startup options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath is the app config YAML; empty uses the built-in defaults.
	ConfigPath string
	// ContentPath overrides the content file named in the app config.
	ContentPath string
	// Watch forces content hot reload on.
	Watch bool
	// Mute disables all audio.
	Mute bool
	// Volume overrides the app config volume when above zero.
	Volume float64
	// Chapter opens the section select of this chapter instead of the
	// title screen. Negative shows the title screen.
	Chapter int
}

// App implements ebiten.Game.
type App struct {
	config *config.AppConfig

	resources *game.ResourceManager
	audio     *game.AudioManager
	presenter *ui.Presenter
	nav       *tutorial.NavigationController
	clip      *video.ClipPlayer
	watcher   *content.Watcher

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp loads config, resources and content and shows the first screen.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	appConfig := config.DefaultAppConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadAppConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("app config: %w", err)
		}
		appConfig = loaded
	}
	if cfg.ContentPath != "" {
		appConfig.ContentPath = cfg.ContentPath
	}
	if cfg.Watch {
		appConfig.Watch = true
	}
	if cfg.Volume > 0 {
		appConfig.Volume = cfg.Volume
	}

	audioContext := audio.NewContext(sampleRate)
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(appConfig.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("resource config: %w", err)
	}
	if err := resourceManager.LoadResourceGroup(diceGroup); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	audioManager := game.NewAudioManager(resourceManager)
	audioManager.SetVolume(appConfig.Volume)
	audioManager.SetMuted(cfg.Mute)
	log.Printf("[App] AudioManager initialized (volume %.2f)", appConfig.Volume)

	face, err := resourceManager.LoadFontOrDefault(appConfig.Font.Path, appConfig.Font.Size)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}

	lib, err := content.Load(appConfig.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	preload(resourceManager, lib)

	a := &App{
		config:    appConfig,
		resources: resourceManager,
		audio:     audioManager,
	}

	a.presenter = ui.NewPresenter(resourceManager, audioManager, face, appConfig.SectionSlots)
	a.clip = video.NewClipPlayer(lib.Intro, video.Hooks{
		OnFrame: func(id string) { a.presenter.SetImage(tutorial.FieldVideoFrame, id) },
		OnPlay:  func(id string) { audioManager.PlayMusic(id) },
		OnStop:  audioManager.StopMusic,
	})
	a.nav = tutorial.NewNavigationController(a.presenter, lib, tutorial.NavigationOptions{
		SectionSlots: appConfig.SectionSlots,
		Video:        a.clip,
	})
	a.presenter.Build(lib, a.nav)
	a.nav.Slides().SetOnComplete(func(sc *content.Scenario) {
		log.Printf("[App] Scenario %q complete", sc.Title)
	})
	a.nav.Practice().SetOnComplete(func() {
		log.Printf("[App] Practice complete")
	})

	if cfg.Chapter >= 0 {
		log.Printf("[App] Opening chapter %d", cfg.Chapter)
		a.nav.GoToSectionSelect(cfg.Chapter)
	} else {
		a.nav.ShowTitle()
	}

	if appConfig.Watch {
		dir := filepath.Dir(appConfig.ContentPath)
		w, err := content.NewWatcher(dir)
		if err != nil {
			log.Printf("[App] Warning: hot reload disabled: %v", err)
		} else {
			a.watcher = w
			log.Printf("[App] Watching %s for content changes", dir)
		}
	}

	return a, nil
}

// preload loads every image the content references so missing files show
// up in the log at startup instead of mid-tutorial.
func preload(rm *game.ResourceManager, lib *content.Library) {
	if failed := rm.Preload(lib.ResourceIDs()); len(failed) > 0 {
		log.Printf("[App] Warning: %d images failed to preload: %v", len(failed), failed)
	}
}

// Update runs one tick.
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.config.Window.Width, a.config.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.config.Window.Width, a.config.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.reloadContent()
	a.handleKeys()

	a.presenter.Update()
	a.clip.Update(frameDT)
	a.nav.Update(frameDT)
	return nil
}

func (a *App) toggleFullscreen() {
	if !ebiten.IsFullscreen() {
		ebiten.SetFullscreen(true)
		return
	}
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// the window manager needs a few frames before the size sticks
	a.pendingWindowSizeReset = true
	a.windowSizeResetCountdown = config.FullscreenResetDelayFrames
	log.Printf("[App] Exit fullscreen, will reset window size in %d frames", config.FullscreenResetDelayFrames)
}

func (a *App) handleKeys() {
	screen := a.nav.State().Screen

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		switch screen {
		case tutorial.ScreenVideo:
			a.nav.SkipVideo()
		case tutorial.ScreenGame:
			a.nav.ToggleGameMenu()
		}
		return
	}

	if screen != tutorial.ScreenGame || a.nav.State().MenuOpen {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.nav.OnClickNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		a.nav.OnClickPrev()
	}
}

// reloadContent drains the watcher and reloads the content file once if
// it changed.
func (a *App) reloadContent() {
	if a.watcher == nil {
		return
	}

	select {
	case err := <-a.watcher.Errors:
		log.Printf("[App] Warning: content watcher: %v", err)
	default:
	}

	changed := false
	for {
		name, ok := a.watcher.Poll()
		if !ok {
			break
		}
		if filepath.Clean(name) == filepath.Clean(a.config.ContentPath) {
			changed = true
		}
	}
	if !changed {
		return
	}

	lib, err := content.Load(a.config.ContentPath)
	if err != nil {
		log.Printf("[App] Reload failed, keeping previous content: %v", err)
		return
	}
	preload(a.resources, lib)
	a.clip.SetClip(lib.Intro)
	a.nav.SetLibrary(lib)
	a.presenter.RebuildChapters(lib, a.nav)
	log.Printf("[App] Content reloaded from %s", lib.Source())
}

// Draw draws the current screen.
func (a *App) Draw(screen *ebiten.Image) {
	a.presenter.Draw(screen)
}

// DrawFinalScreen letterboxes the logical screen in black with linear
// filtering when the window is larger than the logical size.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// WindowConfig returns the window settings from the app config.
func (a *App) WindowConfig() config.WindowConfig {
	return a.config.Window
}

// Close stops audio and the content watcher.
func (a *App) Close() error {
	a.audio.StopAll()
	if a.watcher != nil {
		return a.watcher.Close()
	}
	return nil
}
