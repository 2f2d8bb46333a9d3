package game

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResourceConfig is the top-level structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  dice:
//	    images:
//	      - id: IMAGE_DIE_1
//	        path: images/dice/die1
//	    sounds:
//	      - id: SOUND_DICE_ROLL
//	        path: sounds/dice_roll.ogg
//	    fonts:
//	      - id: FONT_UI
//	        path: fonts/ui.ttf
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"` // prefix for every resource path, e.g. "assets"
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup is a set of resources preloaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource maps an image ID to a file. Paths without an extension
// default to .png.
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource maps a sound ID to a file. Paths without an extension
// default to .ogg.
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
	Loop bool   `yaml:"loop,omitempty"` // music beds loop, narration and effects do not
}

// FontResource maps a font ID to a TrueType/OpenType file.
type FontResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Resource ID prefixes. The prefix decides how an ID is loaded.
const (
	ImageIDPrefix = "IMAGE_"
	SoundIDPrefix = "SOUND_"
	FontIDPrefix  = "FONT_"
)

// validate checks IDs are unique and carry the prefix of their kind.
func (c *ResourceConfig) validate() error {
	seen := make(map[string]string)
	check := func(group, id, prefix string) error {
		if id == "" {
			return fmt.Errorf("group %s: resource with empty id", group)
		}
		if !strings.HasPrefix(id, prefix) {
			return fmt.Errorf("group %s: %s must start with %s", group, id, prefix)
		}
		if other, dup := seen[id]; dup {
			return fmt.Errorf("group %s: %s already defined in group %s", group, id, other)
		}
		seen[id] = group
		return nil
	}

	for name, group := range c.Groups {
		for _, img := range group.Images {
			if err := check(name, img.ID, ImageIDPrefix); err != nil {
				return err
			}
		}
		for _, snd := range group.Sounds {
			if err := check(name, snd.ID, SoundIDPrefix); err != nil {
				return err
			}
		}
		for _, font := range group.Fonts {
			if err := check(name, font.ID, FontIDPrefix); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildFullPath joins the base path and a resource path, adding
// defaultExt when the resource path has no extension.
//
// Parameters:
//   - basePath: base path from ResourceConfig (e.g., "assets")
//   - relativePath: resource path (e.g., "images/dice/die1")
//   - defaultExt: extension to append when missing (e.g., ".png"), may be empty
//
// Returns:
//   - slash-separated path (e.g., "assets/images/dice/die1.png")
func buildFullPath(basePath, relativePath, defaultExt string) string {
	full := strings.TrimPrefix(relativePath, "/")
	if basePath != "" {
		full = strings.TrimSuffix(basePath, "/") + "/" + full
	}
	if defaultExt != "" && filepath.Ext(full) == "" {
		full += defaultExt
	}
	return full
}
