//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// Build with -tags mobile:
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.catan -o build/android/catan.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Catan.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/catan/pkg/app"
	"github.com/decker502/catan/pkg/embedded"
)

func init() {
	embedded.Init(assetsFS, dataFS)

	// no file system to watch on mobile; everything comes from the embedded copy
	gameApp, err := app.NewApp(app.Config{
		Verbose:    true,
		ConfigPath: "data/app.yaml",
		Chapter:    -1,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy keeps the package exported for ebitenmobile.
func Dummy() {}
