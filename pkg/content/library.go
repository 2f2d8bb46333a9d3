package content

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/catan/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// IntroChapterID is the chapter reserved for the intro clip.
const IntroChapterID = 0

// Library is the whole authored tutorial: intro clip plus chapters.
// It is read-only after Load; hot reload replaces the Library wholesale.
type Library struct {
	Intro    IntroClip  `yaml:"intro"`
	Chapters []*Chapter `yaml:"chapters"`

	source string // file the library was loaded from, for log lines
}

// Load reads a content file from disk, falling back to the embedded copy.
//
// Parameters:
//   - path: content file path, e.g. "data/content.yaml"
//
// Returns:
//   - *Library: parsed, defaulted and validated content
//   - error: read, parse or validation failure
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		embeddedData, embErr := embedded.ReadFile(path)
		if embErr != nil {
			return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
		}
		log.Printf("[Content] %s not found on disk, using embedded copy", path)
		data = embeddedData
	}
	return Parse(data, path)
}

// Parse decodes content YAML. source is only used in error messages.
func Parse(data []byte, source string) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML from %s: %w", source, err)
	}

	applyDefaults(&lib)

	if err := validateLibrary(&lib); err != nil {
		return nil, fmt.Errorf("invalid content in %s: %w", source, err)
	}

	lib.source = source
	return &lib, nil
}

// applyDefaults fills optional fields.
func applyDefaults(lib *Library) {
	for _, ch := range lib.Chapters {
		if ch == nil {
			continue
		}
		for i, sc := range ch.Scenarios {
			// a null entry stays null; StartGame reports it as not found
			if sc == nil {
				continue
			}
			if sc.Title == "" {
				sc.Title = fmt.Sprintf("%s - %d", ch.Name, i+1)
			}
		}
	}
}

// validateLibrary checks the structural rules authoring tools rely on.
func validateLibrary(lib *Library) error {
	if len(lib.Chapters) == 0 {
		return fmt.Errorf("at least one chapter is required")
	}

	if lib.Intro.Duration < 0 {
		return fmt.Errorf("intro duration must be >= 0, got %.2f", lib.Intro.Duration)
	}

	for ci, ch := range lib.Chapters {
		if ch == nil {
			return fmt.Errorf("chapter %d: chapter is null", ci)
		}
		if ch.Name == "" {
			return fmt.Errorf("chapter %d: name is required", ci)
		}
		for si, sc := range ch.Scenarios {
			if sc == nil {
				continue
			}
			for pi, step := range sc.Steps {
				if (step.Action == ActionClick || step.Action == ActionDrag) && step.TargetObject == "" {
					return fmt.Errorf("chapter %d scenario %d step %d: action %s requires a target",
						ci, si, pi, step.Action)
				}
			}
		}
	}
	return nil
}

// Source returns the file the library was loaded from.
func (l *Library) Source() string {
	return l.source
}

// ChapterCount returns the number of chapters.
func (l *Library) ChapterCount() int {
	if l == nil {
		return 0
	}
	return len(l.Chapters)
}

// Chapter returns the chapter at id, or ErrOutOfRange.
func (l *Library) Chapter(id int) (*Chapter, error) {
	if id < 0 || id >= l.ChapterCount() {
		return nil, fmt.Errorf("%w: chapter %d (have %d)", ErrOutOfRange, id, l.ChapterCount())
	}
	return l.Chapters[id], nil
}

// Scenario returns the scenario for a chapter and section.
//
// Every failure wraps ErrContentNotFound; index failures additionally wrap
// ErrOutOfRange so callers can tell a bad index from a null entry.
func (l *Library) Scenario(chapterID, sectionIndex int) (*Scenario, error) {
	ch, err := l.Chapter(chapterID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrContentNotFound, err)
	}
	if sectionIndex < 0 || sectionIndex >= len(ch.Scenarios) {
		return nil, fmt.Errorf("%w: %w: chapter %d section %d (have %d)",
			ErrContentNotFound, ErrOutOfRange, chapterID, sectionIndex, len(ch.Scenarios))
	}
	sc := ch.Scenarios[sectionIndex]
	if sc == nil {
		return nil, fmt.Errorf("%w: chapter %d section %d is null", ErrContentNotFound, chapterID, sectionIndex)
	}
	return sc, nil
}

// ResourceIDs lists every image and sound ID referenced by the content,
// deduplicated, in first-seen order.
func (l *Library) ResourceIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}

	for _, f := range l.Intro.Frames {
		add(f)
	}
	add(l.Intro.Music)
	for _, ch := range l.Chapters {
		for _, sc := range ch.Scenarios {
			if sc == nil {
				continue
			}
			for _, step := range sc.Steps {
				add(step.Background)
				add(step.Center)
				add(step.Voice)
				add(step.Sfx)
			}
		}
	}
	return ids
}
