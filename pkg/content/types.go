package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ActionType is what a step waits for before the narration may advance.
type ActionType int

const (
	// ActionNext read-only step, advanced with the Next control
	ActionNext ActionType = iota

	// ActionClick waits for a click on TargetObject
	ActionClick

	// ActionDrag waits for TargetObject to be dragged
	ActionDrag
)

// String returns the authoring name of the action.
func (a ActionType) String() string {
	switch a {
	case ActionNext:
		return "next"
	case ActionClick:
		return "click"
	case ActionDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// ParseActionType maps an authoring name onto an ActionType.
// The empty string is treated as "next".
func ParseActionType(s string) (ActionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "next":
		return ActionNext, nil
	case "click":
		return ActionClick, nil
	case "drag":
		return ActionDrag, nil
	default:
		return ActionNext, fmt.Errorf("unknown action %q (want next, click or drag)", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *ActionType) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseActionType(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a ActionType) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// Step is one slide of a scenario.
//
// Image and audio fields hold resource IDs from assets/config/resources.yaml
// (e.g. "IMAGE_BG_TABLE", "SOUND_PAGE"). Empty means "not supplied".
type Step struct {
	Speaker      string     `yaml:"speaker"`
	Text         string     `yaml:"text"`
	Background   string     `yaml:"background"`
	Center       string     `yaml:"center"`
	Voice        string     `yaml:"voice"`
	Sfx          string     `yaml:"sfx"`
	Action       ActionType `yaml:"action"`
	TargetObject string     `yaml:"target"` // only meaningful for click/drag
}

// Scenario is an ordered slideshow. Immutable once loaded.
type Scenario struct {
	Title string `yaml:"title"`
	Steps []Step `yaml:"steps"`
}

// StepCount returns the number of steps, 0 for a nil scenario.
func (s *Scenario) StepCount() int {
	if s == nil {
		return 0
	}
	return len(s.Steps)
}

// Chapter groups the scenarios shown on one section select screen.
type Chapter struct {
	Name      string      `yaml:"name"`
	Scenarios []*Scenario `yaml:"scenarios"`
}

// IntroClip describes the opening clip shown for chapter 0.
type IntroClip struct {
	Duration float64  `yaml:"duration"` // seconds
	Frames   []string `yaml:"frames"`   // image resource IDs, shown evenly over Duration
	Music    string   `yaml:"music"`    // optional sound resource ID
}
