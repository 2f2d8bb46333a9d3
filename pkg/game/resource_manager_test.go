package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/catan/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Ebitengine only allows one audio context per process.
var testAudioContext *audio.Context

func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// encodeTestPNG returns a w x h blue PNG.
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

// writeTestFile writes data under dir and returns the full path.
func writeTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// encodeTestWAV returns a short silent 16-bit stereo PCM WAV.
func encodeTestWAV(samples int) []byte {
	const (
		channels      = 2
		sampleRate    = 48000
		bitsPerSample = 16
	)
	dataSize := samples * channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	if rm.imageCache == nil || rm.audioCache == nil || rm.fontFaceCache == nil {
		t.Fatal("Caches not initialized")
	}
	if rm.audioContext != testAudioContext {
		t.Error("audioContext not set correctly")
	}
}

func TestLoadImage(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "board.png", encodeTestPNG(t, 10, 6))
	rm := NewResourceManager(testAudioContext)

	if rm.imageCache[path] != nil {
		t.Error("Image should not be cached before loading")
	}

	img, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Errorf("Image dimensions incorrect: got %dx%d, want 10x6", b.Dx(), b.Dy())
	}

	again, err := rm.LoadImage(path)
	if err != nil {
		t.Fatalf("Second LoadImage failed: %v", err)
	}
	if again != img {
		t.Error("Images are not cached - different instances returned")
	}
	if rm.imageCache[path] != img {
		t.Error("Cache does not hold the loaded image")
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := writeTestFile(t, dir, "invalid.png", []byte("not a valid png"))
	rm := NewResourceManager(testAudioContext)

	if _, err := rm.LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
	if _, err := rm.LoadImage(invalid); err == nil {
		t.Error("Expected error for invalid image, got nil")
	}
}

// TestLoadImageEmbeddedFallback verifies files missing on disk are read
// from the embedded assets.
func TestLoadImageEmbeddedFallback(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"assets/images/embedded_only.png": {Data: encodeTestPNG(t, 4, 4)},
	}, fstest.MapFS{})

	rm := NewResourceManager(testAudioContext)
	img, err := rm.LoadImage("assets/images/embedded_only.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("Expected embedded 4x4 image, got %v", img.Bounds())
	}
}

const testResourceConfig = `
version: "1.0"
base_path: %s
groups:
  dice:
    images:
      - id: IMAGE_DIE_1
        path: images/die1
      - id: IMAGE_BOARD
        path: images/board.png
    sounds:
      - id: SOUND_DICE
        path: sounds/dice.wav
      - id: SOUND_INTRO
        path: sounds/intro
        loop: true
  ui:
    fonts:
      - id: FONT_UI
        path: fonts/ui.ttf
`

// setupResourceDir writes a resource config and its files into a temp dir.
func setupResourceDir(t *testing.T) (configPath, base string) {
	t.Helper()
	base = filepath.ToSlash(t.TempDir())
	writeTestFile(t, base, "images/die1.png", encodeTestPNG(t, 8, 8))
	writeTestFile(t, base, "sounds/dice.wav", encodeTestWAV(480))
	configPath = writeTestFile(t, base, "config/resources.yaml",
		[]byte(fmt.Sprintf(testResourceConfig, base)))
	return configPath, base
}

func TestLoadResourceConfig(t *testing.T) {
	configPath, base := setupResourceDir(t)
	rm := NewResourceManager(testAudioContext)

	if err := rm.LoadResourceConfig(configPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	tests := []struct {
		id   string
		want string
	}{
		{"IMAGE_DIE_1", base + "/images/die1.png"},
		{"IMAGE_BOARD", base + "/images/board.png"},
		{"SOUND_DICE", base + "/sounds/dice.wav"},
		{"SOUND_INTRO", base + "/sounds/intro.ogg"},
		{"FONT_UI", base + "/fonts/ui.ttf"},
	}
	for _, tt := range tests {
		got, ok := rm.ResourcePath(tt.id)
		if !ok || got != tt.want {
			t.Errorf("ResourcePath(%s) = %q, %v; want %q", tt.id, got, ok, tt.want)
		}
	}
	if !rm.loopSounds["SOUND_INTRO"] || rm.loopSounds["SOUND_DICE"] {
		t.Errorf("Unexpected loop flags: %v", rm.loopSounds)
	}
}

func TestLoadImageByID(t *testing.T) {
	configPath, _ := setupResourceDir(t)
	rm := NewResourceManager(testAudioContext)

	if _, err := rm.LoadImageByID("IMAGE_DIE_1"); err == nil {
		t.Error("Expected error before LoadResourceConfig")
	}
	if err := rm.LoadResourceConfig(configPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	img, err := rm.LoadImageByID("IMAGE_DIE_1")
	if err != nil {
		t.Fatalf("LoadImageByID failed: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("Expected 8x8 die, got %v", img.Bounds())
	}
	if _, err := rm.LoadImageByID("IMAGE_UNKNOWN"); err == nil {
		t.Error("Expected error for unknown ID")
	}
}

// TestImageByIDPlaceholder verifies unknown IDs and missing files resolve
// to the shared placeholder.
func TestImageByIDPlaceholder(t *testing.T) {
	configPath, _ := setupResourceDir(t)
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig(configPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	unknown := rm.ImageByID("IMAGE_UNKNOWN")
	missingFile := rm.ImageByID("IMAGE_BOARD")

	if unknown == nil || unknown != rm.Placeholder() {
		t.Error("Expected placeholder for unknown ID")
	}
	if missingFile != rm.Placeholder() {
		t.Error("Expected placeholder for missing file")
	}
	if b := unknown.Bounds(); b.Dx() != placeholderSize {
		t.Errorf("Expected %dpx placeholder, got %v", placeholderSize, b)
	}
	if !rm.missing["IMAGE_UNKNOWN"] || !rm.missing["IMAGE_BOARD"] {
		t.Error("Missing IDs were not recorded")
	}
	if rm.ImageByID("IMAGE_DIE_1") == rm.Placeholder() {
		t.Error("Existing image resolved to the placeholder")
	}
}

func TestPreload(t *testing.T) {
	configPath, _ := setupResourceDir(t)
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig(configPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	failed := rm.Preload([]string{"IMAGE_DIE_1", "IMAGE_BOARD", "SOUND_DICE", "IMAGE_NOPE"})

	if len(failed) != 2 || failed[0] != "IMAGE_BOARD" || failed[1] != "IMAGE_NOPE" {
		t.Errorf("Expected IMAGE_BOARD and IMAGE_NOPE to fail, got %v", failed)
	}
}

func TestLoadResourceGroup(t *testing.T) {
	configPath, _ := setupResourceDir(t)
	rm := NewResourceManager(testAudioContext)
	if err := rm.LoadResourceConfig(configPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	// IMAGE_BOARD has no file
	if err := rm.LoadResourceGroup("dice"); err == nil {
		t.Error("Expected error for group with a missing file")
	}
	if err := rm.LoadResourceGroup("ui"); err != nil {
		t.Errorf("Font-only group should load: %v", err)
	}
	if err := rm.LoadResourceGroup("nope"); err == nil {
		t.Error("Expected error for unknown group")
	}
}

func TestDecodeAudio(t *testing.T) {
	if _, err := decodeAudio("click.wav", encodeTestWAV(480)); err != nil {
		t.Errorf("WAV decode failed: %v", err)
	}
	if _, err := decodeAudio("click.flac", []byte("x")); err == nil {
		t.Error("Expected error for unsupported format")
	}
	if _, err := decodeAudio("broken.ogg", []byte("not ogg")); err == nil {
		t.Error("Expected error for corrupted OGG")
	}
}

func TestLoadSoundWithoutAudioContext(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "dice.wav", encodeTestWAV(480))
	rm := NewResourceManager(nil)

	if _, err := rm.loadPlayer(path, false); err == nil {
		t.Error("Expected error without audio context")
	}
}

func TestDefaultFont(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	face, err := rm.DefaultFont(18)
	if err != nil {
		t.Fatalf("DefaultFont failed: %v", err)
	}
	if face.Size != 18 || face.Source == nil {
		t.Errorf("Unexpected face %+v", face)
	}

	fallback, err := rm.LoadFontOrDefault(filepath.Join(t.TempDir(), "missing.ttf"), 12)
	if err != nil {
		t.Fatalf("LoadFontOrDefault failed: %v", err)
	}
	if fallback.Source != face.Source {
		t.Error("Expected the default font source to be shared")
	}
}
