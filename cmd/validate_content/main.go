// validate_content checks a tutorial content file and the resource IDs it
// references.
//
//	go run ./cmd/validate_content --content data/content.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/catan/pkg/content"
	"github.com/decker502/catan/pkg/game"
)

var (
	contentPath  = flag.String("content", "data/content.yaml", "content file to check")
	resourcePath = flag.String("resources", "assets/config/resources.yaml", "resource config; empty skips the ID check")
	verbose      = flag.Bool("verbose", false, "print log output")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	lib, err := content.Load(*contentPath)
	if err != nil {
		fmt.Printf("FAIL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s\n", lib.Source())
	fmt.Printf("  intro: %d frames, %.1fs\n", len(lib.Intro.Frames), lib.Intro.Duration)
	for i, ch := range lib.Chapters {
		steps := 0
		for _, sc := range ch.Scenarios {
			steps += sc.StepCount()
		}
		fmt.Printf("  chapter %d %q: %d sections, %d steps\n", i, ch.Name, len(ch.Scenarios), steps)
	}

	if *resourcePath == "" {
		return
	}

	rm := game.NewResourceManager(nil)
	if err := rm.LoadResourceConfig(*resourcePath); err != nil {
		fmt.Printf("FAIL: %v\n", err)
		os.Exit(1)
	}

	missing := 0
	for _, id := range lib.ResourceIDs() {
		if !rm.HasResource(id) {
			fmt.Printf("  missing resource: %s\n", id)
			missing++
		}
	}
	if missing > 0 {
		fmt.Printf("FAIL: %d resource IDs are not in %s\n", missing, *resourcePath)
		os.Exit(1)
	}
	fmt.Printf("OK: all %d resource IDs defined\n", len(lib.ResourceIDs()))
}
