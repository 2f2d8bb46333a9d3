package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/catan/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// placeholderSize is the edge length of the image returned for missing IDs.
const placeholderSize = 64

var placeholderColor = color.RGBA{R: 200, G: 0, B: 200, A: 255}

// ResourceManager loads and caches images, sounds and fonts.
//
// Every file is read from disk first and from the embedded assets second,
// so authors can override any embedded asset by dropping a file next to
// the binary.
//
// Not thread-safe: all calls happen on the game loop goroutine.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	img := rm.ImageByID("IMAGE_DIE_6")
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // path -> image
	audioCache    map[string]*audio.Player    // path -> player
	audioContext  *audio.Context              // nil disables audio
	fontFaceCache map[string]*text.GoTextFace // "path:size" -> face
	defaultFont   *text.GoTextFaceSource

	config      *ResourceConfig
	resourceMap map[string]string // resource ID -> file path
	loopSounds  map[string]bool   // sound IDs marked loop in the config

	placeholder *ebiten.Image
	missing     map[string]bool // IDs already reported missing
}

// NewResourceManager creates a ResourceManager with empty caches.
// audioContext may be nil, in which case every sound fails to load.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
		loopSounds:    make(map[string]bool),
		missing:       make(map[string]bool),
	}
}

// readFile reads path from disk, falling back to the embedded assets.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	embeddedData, embErr := embedded.ReadFile(path)
	if embErr != nil {
		return nil, err
	}
	return embeddedData, nil
}

// LoadImage loads and caches an image file.
//
// Parameters:
//   - path: image path, e.g. "assets/images/board.png"
//
// Returns:
//   - *ebiten.Image: the cached image
//   - error: the file cannot be read or decoded
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cached, ok := rm.imageCache[path]; ok {
		return cached, nil
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// decodeAudio picks a decoder by file extension.
func decodeAudio(path string, data []byte) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	reader := bytes.NewReader(data)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}

// loadPlayer decodes a sound file into a cached player, wrapped in an
// infinite loop when loop is set.
func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	if cached, ok := rm.audioCache[path]; ok {
		return cached, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("failed to load audio %s: no audio context", path)
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	stream, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadFont loads a font file at the given size.
//
// Parameters:
//   - path: font file path, e.g. "assets/fonts/ui.ttf"
//   - size: font size in pixels
//
// Returns:
//   - *text.GoTextFace: the cached face
//   - error: the file cannot be read or is not a font
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cached, ok := rm.fontFaceCache[cacheKey]; ok {
		return cached, nil
	}

	fontData, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// DefaultFont returns the built-in Go Regular face at the given size.
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	if rm.defaultFont == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		rm.defaultFont = source
	}
	return &text.GoTextFace{
		Source:    rm.defaultFont,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// LoadFontOrDefault loads path, or the built-in face when path is empty or
// cannot be loaded.
func (rm *ResourceManager) LoadFontOrDefault(path string, size float64) (*text.GoTextFace, error) {
	if path != "" {
		face, err := rm.LoadFont(path, size)
		if err == nil {
			return face, nil
		}
		log.Printf("[ResourceManager] Warning: %v, using default font", err)
	}
	return rm.DefaultFont(size)
}

// LoadResourceConfig loads the resource ID table.
//
// Parameters:
//   - configPath: path to resources.yaml
//
// Returns:
//   - error: the file cannot be read, parsed or has bad IDs
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := readFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}
	if err := config.validate(); err != nil {
		return fmt.Errorf("invalid resource config %s: %w", configPath, err)
	}

	rm.config = &config
	rm.buildResourceMap()
	log.Printf("[ResourceManager] Loaded %d resource IDs from %s", len(rm.resourceMap), configPath)
	return nil
}

// buildResourceMap flattens every group into the ID -> path table.
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	rm.loopSounds = make(map[string]bool)
	if rm.config == nil {
		return
	}

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = buildFullPath(rm.config.BasePath, img.Path, ".png")
		}
		for _, sound := range group.Sounds {
			rm.resourceMap[sound.ID] = buildFullPath(rm.config.BasePath, sound.Path, ".ogg")
			if sound.Loop {
				rm.loopSounds[sound.ID] = true
			}
		}
		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path, "")
		}
	}
}

// HasResource reports whether an ID is defined in the resource config.
func (rm *ResourceManager) HasResource(resourceID string) bool {
	_, ok := rm.resourceMap[resourceID]
	return ok
}

// ResourcePath returns the file behind an ID.
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// LoadImageByID loads an image by resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return rm.LoadImage(filePath)
}

// ImageByID returns the image for an ID, or a placeholder when the ID is
// unknown or its file cannot be loaded. Each missing ID is logged once.
func (rm *ResourceManager) ImageByID(resourceID string) *ebiten.Image {
	img, err := rm.LoadImageByID(resourceID)
	if err == nil {
		return img
	}
	if !rm.missing[resourceID] {
		rm.missing[resourceID] = true
		log.Printf("[ResourceManager] Warning: %v, using placeholder", err)
	}
	return rm.Placeholder()
}

// Placeholder returns the image drawn for missing resources.
func (rm *ResourceManager) Placeholder() *ebiten.Image {
	if rm.placeholder == nil {
		rm.placeholder = ebiten.NewImage(placeholderSize, placeholderSize)
		rm.placeholder.Fill(placeholderColor)
	}
	return rm.placeholder
}

// LoadSoundByID loads a sound by resource ID, looping it if the config
// marks it as a loop.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("sound resource ID not found: %s", resourceID)
	}
	return rm.loadPlayer(filePath, rm.loopSounds[resourceID])
}

// LoadResourceGroup preloads every image and sound in a group.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, ok := rm.config.Groups[groupName]
	if !ok {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}
	return nil
}

// Preload loads every image ID in ids and reports the IDs that failed.
// Sounds are loaded lazily on first play.
func (rm *ResourceManager) Preload(ids []string) []string {
	var failed []string
	for _, id := range ids {
		if !strings.HasPrefix(id, ImageIDPrefix) {
			continue
		}
		if _, err := rm.LoadImageByID(id); err != nil {
			log.Printf("[ResourceManager] Warning: preload %s: %v", id, err)
			failed = append(failed, id)
		}
	}
	return failed
}
