// Package embedded gives the rest of the program access to the files embedded
// by the root package.
//
// //go:embed can only reach files below the declaring package, so the
// embed.FS values live in the project root (embed.go) and are handed over
// here through Init before any resource is loaded.
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// errNotInitialized is returned by every accessor before Init.
var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init registers the file systems backing "assets/" and "data/" paths.
// Must be called at the top of main(), before any resource loading.
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// resolve picks the file system for a path by its prefix.
func resolve(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", errNotInitialized
	}

	// embed.FS always uses forward slashes
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open opens an embedded file. The path must start with "assets/" or "data/".
func Open(path string) (fs.File, error) {
	fsys, clean, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(clean)
}

// ReadFile reads an embedded file. The path must start with "assets/" or "data/".
func ReadFile(path string) ([]byte, error) {
	fsys, clean, err := resolve(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, clean)
}

// Exists reports whether the embedded file exists.
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob matches embedded files. The pattern must start with "assets/" or "data/".
func Glob(pattern string) ([]string, error) {
	fsys, clean, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, clean)
}
