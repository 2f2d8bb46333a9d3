package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// wrapText breaks s into lines no wider than maxWidth. Existing line breaks
// are kept; a single word wider than maxWidth gets a line of its own.
func wrapText(s string, face text.Face, maxWidth float64) string {
	if maxWidth <= 0 || s == "" {
		return s
	}

	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if text.Advance(candidate, face) <= maxWidth {
				line = candidate
				continue
			}
			out = append(out, line)
			line = w
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
