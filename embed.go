// The go:embed patterns only reach files below this directory, so this file
// stays at the module root next to assets/ and data/.
package main

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/content.yaml data/app.yaml
var dataFS embed.FS
