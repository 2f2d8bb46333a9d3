//go:build mobile

// Built only with -tags mobile. Copy assets/ and data/ into this directory
// first:
//
//	cp -r ../assets ../data .
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/content.yaml data/app.yaml
var dataFS embed.FS
